package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTempPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		pw, err := GenerateTempPassword(12)
		require.NoError(t, err)
		assert.Len(t, pw, 12)
		for _, r := range pw {
			assert.True(t, strings.ContainsRune(tempPasswordChars, r), "unexpected character %q", r)
		}
		seen[pw] = true
	}
	// 20 draws from a 12-char space should never collide
	assert.Len(t, seen, 20)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, CheckPassword(hash, "s3cret-pass"))
	assert.Error(t, CheckPassword(hash, "wrong-pass"))
}
