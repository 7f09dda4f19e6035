package handler

import (
	"net/http"

	"restaurant-service/internal/middleware"
	"restaurant-service/internal/store"
	"restaurant-service/pkg/jwtutil"

	"github.com/labstack/echo/v4"
)

// Handler holds the dependencies the HTTP handlers need. Everything is
// injected at startup; there are no package-level singletons.
type Handler struct {
	store store.Store
	jwt   *jwtutil.JWT
}

// New creates a Handler backed by the given store and token codec.
func New(st store.Store, jwt *jwtutil.JWT) *Handler {
	return &Handler{store: st, jwt: jwt}
}

// unauthorized is the response for handlers reached without an identity in
// context, which only happens when a route is mounted outside the guard by
// mistake.
func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token is missing"})
}

// identity pulls the authenticated identity the guard stored for this request.
func identity(c echo.Context) (middleware.Identity, bool) {
	return middleware.IdentityFromContext(c)
}
