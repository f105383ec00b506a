package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	root := newRootCommand()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"render", "show", "export", "validate", "serve", "mcp", "version"})

	for _, flag := range []string{"config", "verbose", "quiet"} {
		require.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}
