package crypto

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-sekali")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, CheckPassword("rahasia-sekali", hash))
	assert.False(t, CheckPassword("salah-password", hash))
}

func TestHashPassword_Distinct(t *testing.T) {
	// bcrypt salts per call, two hashes of the same input must differ
	h1, err := HashPassword("same-input-password")
	assert.NoError(t, err)
	h2, err := HashPassword("same-input-password")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_Error(t *testing.T) {
	orig := bcryptGenerateFromPassword
	t.Cleanup(func() { bcryptGenerateFromPassword = orig })
	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("cost out of range")
	}

	_, err := HashPassword("whatever-password")
	assert.Error(t, err)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("password", "not-a-bcrypt-hash"))
}
