package minter

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDMinter(t *testing.T) {
	m := UUIDMinter{}
	stub := "https://rdfstore.c360.io/resource#"

	first := m.MintURI(stub)
	second := m.MintURI(stub)

	assert.True(t, strings.HasPrefix(first, stub))
	assert.NotEqual(t, first, second, "each mint must produce a distinct URI")

	// The suffix must be a parseable UUID.
	_, err := uuid.Parse(strings.TrimPrefix(first, stub))
	require.NoError(t, err)
}

func TestFixedMinter(t *testing.T) {
	m := Fixed("node-1")
	assert.Equal(t, "https://x/node-1", m.MintURI("https://x/"))
	assert.Equal(t, "https://x/node-1", m.MintURI("https://x/"))
}
