package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("LongEnough1")
	require.NoError(t, err)
	assert.NotEqual(t, "LongEnough1", hash)

	assert.NoError(t, hasher.Verify("LongEnough1", hash))
	assert.Error(t, hasher.Verify("WrongPassword1", hash))
}

func TestBcryptHasherDistinctHashes(t *testing.T) {
	hasher := NewBcryptHasher()

	h1, err := hasher.Hash("LongEnough1")
	require.NoError(t, err)
	h2, err := hasher.Hash("LongEnough1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
