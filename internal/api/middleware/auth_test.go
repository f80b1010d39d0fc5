package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Cybrite/primetrade/internal/core/domain"
	"github.com/Cybrite/primetrade/internal/core/service"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id, name, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func newAuthFixture(users ...*domain.User) (*service.TokenService, *stubUserRepo) {
	repo := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return service.NewTokenService("secret", time.Hour), repo
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	user := &domain.User{ID: "user_1", Name: "Alice", Role: domain.RoleAdmin, IsActive: true}
	tokens, repo := newAuthFixture(user)

	signed, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens, repo)
	handler := mw(func(c echo.Context) error {
		called = true
		got, ok := c.Get(CurrentUserKey).(*domain.User)
		if !ok || got.ID != "user_1" {
			t.Fatalf("current user not attached: %+v", got)
		}
		if got.Name != "Alice" {
			t.Fatalf("unexpected user: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	tokens, repo := newAuthFixture()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(tokens, repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	e := echo.New()
	tokens, repo := newAuthFixture()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(tokens, repo)
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	tokens, repo := newAuthFixture()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(tokens, repo)
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	user := &domain.User{ID: "user_1", Role: domain.RoleUser, IsActive: true}
	_, repo := newAuthFixture(user)

	expired := service.NewTokenService("secret", time.Nanosecond)
	signed, err := expired.Issue(user)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	time.Sleep(time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(expired, repo)
	mwErr := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if !errors.Is(mwErr, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", mwErr)
	}
}

func TestAuth_UserNotFound(t *testing.T) {
	e := echo.New()
	tokens, repo := newAuthFixture() // empty store

	signed, err := tokens.Issue(&domain.User{ID: "ghost", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(tokens, repo)
	mwErr := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if !errors.Is(mwErr, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", mwErr)
	}
}

func TestAuth_InactiveUser(t *testing.T) {
	e := echo.New()
	user := &domain.User{ID: "user_1", Role: domain.RoleUser, IsActive: false}
	tokens, repo := newAuthFixture(user)

	signed, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(tokens, repo)
	mwErr := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if !errors.Is(mwErr, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", mwErr)
	}
}
