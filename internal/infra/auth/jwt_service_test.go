package auth

import (
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, now time.Time) *jwtService {
	t.Helper()
	cfg := &config.Config{Auth: &config.AuthConfig{
		AccessSecret: "test_access_secret_key_very_long_for_testing",
		AccessTTL:    time.Hour,
		Issuer:       "portal",
	}}

	s, err := newJWTService(cfg, func() time.Time { return now })
	require.NoError(t, err)

	return s
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	s := newTestJWTService(t, now)

	token, expiresAt, err := s.IssueRoleToken("uid-1", entity.RoleTeacher)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.Identity("uid-1"), claims.Identity())
	assert.Equal(t, entity.RoleTeacher, claims.Role)
	assert.Equal(t, "portal", claims.Issuer)
}

func TestJWTService_RejectsExpiredAndForeignTokens(t *testing.T) {
	issued := time.Now().Truncate(time.Second)
	token, _, err := newTestJWTService(t, issued).IssueRoleToken("uid-1", entity.RoleStudent)
	require.NoError(t, err)

	_, err = newTestJWTService(t, issued.Add(2*time.Hour)).ValidateToken(token)
	assert.Error(t, err)

	other, err := newJWTService(&config.Config{Auth: &config.AuthConfig{AccessSecret: "another_secret"}}, func() time.Time { return issued })
	require.NoError(t, err)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = newTestJWTService(t, issued).ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_RequiresIdentityAndRole(t *testing.T) {
	s := newTestJWTService(t, time.Now())

	_, _, err := s.IssueRoleToken("", entity.RoleStudent)
	assert.Error(t, err)

	_, _, err = s.IssueRoleToken("uid-1", entity.Role("admin"))
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	s, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})

	assert.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
