package rest

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"task-service/internal/application/interfaces"
	"task-service/internal/domain"
	"task-service/internal/domain/entities"
)

const identityKey = "identity"

// RequireIdentity resolves the bearer token and attaches the caller to the
// request context. A request without a token is rejected before the
// resolver runs.
func RequireIdentity(auth interfaces.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return fmt.Errorf("%w: no token", domain.ErrUnauthorized)
			}

			user, err := auth.ResolveIdentity(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// RequireRole rejects callers whose resolved identity lacks role. It must run
// after RequireIdentity.
func RequireRole(role entities.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := identity(c)
			if user == nil {
				return fmt.Errorf("%w: no identity", domain.ErrUnauthorized)
			}
			if user.Role != role {
				return fmt.Errorf("%w: %s only", domain.ErrForbidden, role)
			}
			return next(c)
		}
	}
}

func identity(c echo.Context) *entities.User {
	user, _ := c.Get(identityKey).(*entities.User)
	return user
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
