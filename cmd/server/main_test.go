package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "check-overdue-invoices", "seed"} {
		assert.True(t, names[want], "missing %s command", want)
	}

	overdue, _, err := root.Find([]string{"check-overdue-invoices"})
	require.NoError(t, err)
	flag := overdue.Flags().Lookup("dry-run")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)

	seedCmd, _, err := root.Find([]string{"seed"})
	require.NoError(t, err)
	assert.Equal(t, "scripts/data", seedCmd.Flags().Lookup("dir").DefValue)
}
