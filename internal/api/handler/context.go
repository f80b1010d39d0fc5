package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Cybrite/primetrade/internal/api/middleware"
	"github.com/Cybrite/primetrade/internal/core/domain"
)

// currentUser extracts the user attached by the Auth middleware. Its presence
// proves the middleware ran; a protected route reached without it is a wiring
// bug and is rejected with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.CurrentUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
	}
	return user, nil
}
