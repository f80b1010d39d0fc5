package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Cybrite/primetrade/internal/core/domain"
	"github.com/Cybrite/primetrade/internal/core/ports"
	"github.com/Cybrite/primetrade/internal/core/service"
)

// CurrentUserKey is the echo context key under which Auth stores the
// resolved *domain.User.
const CurrentUserKey = "current_user"

// TokenVerifier abstracts the token service for the middleware.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// Auth is the sole gate that establishes request identity. It extracts the
// bearer token, verifies it, resolves the embedded user against the store and
// attaches the user to the context. Inactive and missing users are rejected
// before any handler runs.
func Auth(tokens TokenVerifier, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return err
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return err
			}
			if !user.IsActive {
				return domain.ErrUserInactive
			}

			c.Set(CurrentUserKey, user)
			return next(c)
		}
	}
}
