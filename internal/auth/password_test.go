package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("correct horse battery", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery", hashed)

	assert.NoError(t, ComparePassword(hashed, "correct horse battery"))
	assert.Error(t, ComparePassword(hashed, "wrong password"))
	assert.Error(t, ComparePassword("not-a-hash", "correct horse battery"))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	a, err := HashPassword("same input", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("same input", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
