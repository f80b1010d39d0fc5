package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Cybrite/primetrade/internal/core/domain"
)

// RBAC enforces role-based access control against an allow-list of roles.
// Must run after Auth: it reads the user Auth attached to the context.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(CurrentUserKey).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
			}
			if _, ok := allowed[user.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
