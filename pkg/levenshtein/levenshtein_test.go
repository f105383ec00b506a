package levenshtein_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/activityviz/pkg/levenshtein"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{a: "", b: "", want: 0},
		{a: "", b: "abc", want: 3},
		{a: "kitten", b: "sitting", want: 3},
		{a: "flaw", b: "lawn", want: 2},
		{a: "sqrt", b: "sqrt", want: 0},
		{a: "sqr", b: "sqrt", want: 1},
		{a: "dakr", b: "dark", want: 2},
		{a: "héllo", b: "hello", want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein.Distance(tt.a, tt.b), "%q -> %q", tt.a, tt.b)
		assert.Equal(t, tt.want, levenshtein.Distance(tt.b, tt.a), "%q -> %q", tt.b, tt.a)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	candidates := []string{"light", "dark"}

	assert.Equal(t, "dark", levenshtein.Suggest("drak", candidates...))
	assert.Equal(t, "light", levenshtein.Suggest("LIHGT", candidates...))
	assert.Empty(t, levenshtein.Suggest("dark", candidates...))
	assert.Empty(t, levenshtein.Suggest("", candidates...))
	assert.Empty(t, levenshtein.Suggest("solarized", candidates...))
	assert.Empty(t, levenshtein.Suggest("dark"))
}

func TestHint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ` (did you mean "sqrt"?)`, levenshtein.Hint("sqr", "sqrt", "log"))
	assert.Empty(t, levenshtein.Hint("linear", "sqrt", "log"))
}
