package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, CheckPassword(hash, "s3cret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret-password"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
