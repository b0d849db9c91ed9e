package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBindLookup(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()

	_, ok := r.Lookup(id)
	assert.False(t, ok)

	require.True(t, r.Bind(id, "alice", "r1"))

	s, ok := r.Lookup(id)
	require.True(t, ok)
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, "r1", s.Website)
}

func TestRegistryFirstBindWins(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()

	require.True(t, r.Bind(id, "alice", "r1"))
	assert.False(t, r.Bind(id, "mallory", "r2"))

	s, ok := r.Lookup(id)
	require.True(t, ok)
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, "r1", s.Website)
}

func TestRegistryUnbind(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()

	require.True(t, r.Bind(id, "alice", "r1"))
	r.Unbind(id)

	_, ok := r.Lookup(id)
	assert.False(t, ok)

	// The slot is reusable after unbind.
	assert.True(t, r.Bind(id, "bob", "r2"))
}
