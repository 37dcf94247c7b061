package auth

import (
	"testing"

	"portal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("K7Q2ZX9A1B")
	require.NoError(t, err)
	assert.NotEqual(t, "K7Q2ZX9A1B", hash)

	assert.True(t, hasher.Check("K7Q2ZX9A1B", hash))
	assert.False(t, hasher.Check("K7Q2ZX9A1C", hash))
	assert.False(t, hasher.Check("K7Q2ZX9A1B", "not-a-hash"))
}

func TestBcryptHasher_Cost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})
	hash, err := hasher.Hash("code")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(nil).(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}).(*bcryptHasher).cost)
}
