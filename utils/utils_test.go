package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("admin-pw")
	require.NoError(t, err)
	assert.NotEqual(t, "admin-pw", hash)

	assert.NoError(t, ComparePassword(hash, "admin-pw"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
