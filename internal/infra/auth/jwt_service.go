// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
)

const defaultAccessTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing role tokens.
	accessTTL    time.Duration // Time-to-live for role tokens.
	issuer       string
	now          service.Clock
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, service.SystemClock)
}

func newJWTService(cfg *config.Config, now service.Clock) (*jwtService, error) {
	if cfg.Auth == nil || cfg.Auth.AccessSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.AccessTTL
	if ttl <= 0 {
		ttl = defaultAccessTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.Auth.AccessSecret),
		accessTTL:    ttl,
		issuer:       cfg.Auth.Issuer,
		now:          now,
	}, nil
}

// IssueRoleToken creates a token for identity scoped to role.
func (s *jwtService) IssueRoleToken(identity entity.Identity, role entity.Role) (string, time.Time, error) {
	if identity.IsZero() || !role.IsValid() {
		return "", time.Time{}, errors.New("identity and role are required")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.accessTTL)
	claims := &service.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign role token")
	}

	return token, expiresAt, nil
}

// ValidateToken checks the signature, expiry and issuer of a role token.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || !claims.Role.IsValid() || claims.Subject == "" {
		return nil, errors.New("invalid role token claims")
	}

	return claims, nil
}
