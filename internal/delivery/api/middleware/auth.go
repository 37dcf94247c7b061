package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates role session tokens and scopes routes to a role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token and stores its identity and role on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WithCause(err)
		}

		identity := claims.Identity()
		deliverycontext.SetSession(c, identity, claims.Role)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			logger = logger.With(slog.String("identity", identity.String()), slog.String("role", claims.Role.String()))
			c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))
		}

		return next(c)
	}
}

// RequireRole rejects tokens issued for another role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok || role != requiredRole {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetIdentity returns the identity set by Authenticate.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	return deliverycontext.GetIdentity(c)
}

// GetRole returns the role set by Authenticate.
func GetRole(c echo.Context) (entity.Role, bool) {
	return deliverycontext.GetRole(c)
}
