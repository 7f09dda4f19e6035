package middleware

import (
	"net/http"
	"strings"

	"restaurant-service/pkg/jwtutil"
	"restaurant-service/pkg/logger"
	"restaurant-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware.
const (
	UserIDKey       = "user_id"
	UsernameKey     = "username"
	RestaurantIDKey = "restaurant_id"
)

// Identity is the per-request authenticated identity recovered from a
// verified token. It lives only in the echo.Context of the request that
// carried the token.
type Identity struct {
	UserID       uint
	Username     string
	RestaurantID uint
}

// IdentityFromContext returns the identity the auth middleware stored for
// this request. The second return is false on routes outside the guard.
func IdentityFromContext(c echo.Context) (Identity, bool) {
	userID, ok := c.Get(UserIDKey).(uint)
	if !ok {
		return Identity{}, false
	}
	restaurantID, ok := c.Get(RestaurantIDKey).(uint)
	if !ok {
		return Identity{}, false
	}
	username, _ := c.Get(UsernameKey).(string)
	return Identity{UserID: userID, Username: username, RestaurantID: restaurantID}, true
}

// Auth returns the tenant-scoping guard: it verifies the bearer token and
// stores the decoded identity in the request context. Every handler behind it
// must filter its queries by the restaurant ID found there. CORS preflight
// requests pass through unchecked.
func Auth(jwt *jwtutil.JWT) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodOptions {
				return next(c)
			}

			log := logger.FromContext(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Error("Missing Authorization header")
				prometheus.RecordAuthError("missing_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token is missing"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				log.Error("Invalid Authorization header format")
				prometheus.RecordAuthError("missing_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token is missing"})
			}

			claims, err := jwt.Validate(parts[1])
			if err != nil {
				log.Error("Invalid JWT token", zap.Error(err))
				prometheus.RecordAuthError("invalid_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token is invalid"})
			}

			c.Set(UserIDKey, claims.UserID)
			c.Set(UsernameKey, claims.Username)
			c.Set(RestaurantIDKey, claims.RestaurantID)

			return next(c)
		}
	}
}
