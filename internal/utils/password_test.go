package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Compare(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	ok, err := ComparePassword(hash, "secret123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ComparePassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	ok, err := ComparePassword("not-a-bcrypt-hash", "secret123")

	assert.Error(t, err)
	assert.False(t, ok)
}
