package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portal/internal/domain/entity"
)

// Claims defines the custom claims for role session tokens.
// The identity travels in the registered "sub" claim.
type Claims struct {
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity returns the identity the token was issued to.
func (c *Claims) Identity() entity.Identity {
	return entity.Identity(c.Subject)
}

// TokenService issues and validates the tokens handed out after a role gate admits an identity.
type TokenService interface {
	// IssueRoleToken creates a session token scoped to one role.
	IssueRoleToken(identity entity.Identity, role entity.Role) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
