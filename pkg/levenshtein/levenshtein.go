// Package levenshtein computes edit distances between short strings and uses
// them to suggest the intended spelling of a mistyped option value.
package levenshtein

import (
	"fmt"
	"strings"
)

// minSuggestDistance is the edit budget for short inputs. Longer inputs may
// be off by a third of their length.
const minSuggestDistance = 2

// Distance returns the minimum number of single-rune insertions, deletions
// and substitutions that turn a into b. It keeps a single column of the
// dynamic-programming table.
func Distance(a, b string) int {
	s1, s2 := []rune(a), []rune(b)
	if len(s1) < len(s2) {
		s1, s2 = s2, s1
	}

	if len(s2) == 0 {
		return len(s1)
	}

	column := make([]int, len(s2)+1)
	for i := range column {
		column[i] = i
	}

	for _, r1 := range s1 {
		diag := column[0]
		column[0]++

		for j, r2 := range s2 {
			above := column[j+1]

			cost := 1
			if r1 == r2 {
				cost = 0
			}

			column[j+1] = min(above+1, column[j]+1, diag+cost)
			diag = above
		}
	}

	return column[len(s2)]
}

// Suggest returns the candidate closest to input, or "" when input is empty,
// already valid or too far from every candidate. Comparison ignores case.
// Ties go to the earliest candidate.
func Suggest(input string, candidates ...string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	budget := max(minSuggestDistance, len([]rune(input))/3)
	best, bestDist := "", budget+1

	for _, c := range candidates {
		d := Distance(input, strings.ToLower(c))
		if d == 0 {
			return ""
		}

		if d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}

// Hint formats Suggest's answer for appending to an error message.
func Hint(input string, candidates ...string) string {
	s := Suggest(input, candidates...)
	if s == "" {
		return ""
	}

	return fmt.Sprintf(" (did you mean %q?)", s)
}
