package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant-service/pkg/jwtutil"

	"github.com/labstack/echo/v4"
)

func newGuardedEcho(jwt *jwtutil.JWT) *echo.Echo {
	e := echo.New()
	e.Use(Auth(jwt))
	handler := func(c echo.Context) error {
		ident, ok := IdentityFromContext(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"user_id":       ident.UserID,
			"restaurant_id": ident.RestaurantID,
		})
	}
	e.GET("/guarded", handler)
	e.OPTIONS("/guarded", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	return e
}

func TestAuthMissingToken(t *testing.T) {
	e := newGuardedEcho(jwtutil.New("key", time.Hour))

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"bare token", "sometoken"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "Token is missing") {
				t.Errorf("unexpected body: %s", rec.Body.String())
			}
		})
	}
}

func TestAuthInvalidToken(t *testing.T) {
	jwt := jwtutil.New("key", time.Hour)
	e := newGuardedEcho(jwt)

	otherCodec := jwtutil.New("other-key", time.Hour)
	foreign, err := otherCodec.Generate(1, "alice", 2)
	if err != nil {
		t.Fatal(err)
	}
	expiredCodec := jwtutil.New("key", -time.Hour)
	expired, err := expiredCodec.Generate(1, "alice", 2)
	if err != nil {
		t.Fatal(err)
	}

	for name, token := range map[string]string{
		"garbage":         "not.a.token",
		"wrong signature": foreign,
		"expired":         expired,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "Token is invalid") {
				t.Errorf("unexpected body: %s", rec.Body.String())
			}
		})
	}
}

func TestAuthValidToken(t *testing.T) {
	jwt := jwtutil.New("key", time.Hour)
	e := newGuardedEcho(jwt)

	token, err := jwt.Generate(7, "alice", 42)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"restaurant_id":42`) {
		t.Errorf("identity not propagated: %s", rec.Body.String())
	}
}

func TestAuthPreflightBypass(t *testing.T) {
	e := newGuardedEcho(jwtutil.New("key", time.Hour))

	req := httptest.NewRequest(http.MethodOptions, "/guarded", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code == http.StatusUnauthorized {
		t.Fatalf("preflight must bypass the guard, got %d", rec.Code)
	}
}
