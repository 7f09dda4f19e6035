package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"restaurant-service/internal/store"
	"restaurant-service/pkg/logger"
	"restaurant-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// customerSuffix marks a customer-facing login: "alice" logging in as
// "aliceUser" authenticates against the "alice" account but is routed to the
// customer front end.
const customerSuffix = "User"

// Register provisions a restaurant and its first admin account.
func (h *Handler) Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username, password, and email are required"})
	}

	if req.Username == "" || req.Password == "" || req.Email == "" {
		prometheus.RecordAuthError("incomplete_registration")
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username, password, and email are required"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		prometheus.RecordAuthError("password_hash_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Registration failed"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	user, err := h.store.Register(req.Username, string(hashedPassword), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			prometheus.RecordAuthError("username_taken")
			return c.JSON(http.StatusConflict, echo.Map{"message": "Username already exists"})
		case errors.Is(err, store.ErrEmailTaken):
			prometheus.RecordAuthError("email_taken")
			return c.JSON(http.StatusConflict, echo.Map{"message": "Email already exists"})
		default:
			log.Error("Failed to register user", zap.Error(err))
			prometheus.RecordAuthError("registration_failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error during registration"})
		}
	}

	log.Info("Admin registered, restaurant created",
		zap.String("username", user.Username),
		zap.Uint("restaurant_id", user.RestaurantID))

	return c.JSON(http.StatusCreated, echo.Map{
		"message":       "Admin registered, restaurant created successfully",
		"username":      user.Username,
		"role":          user.Role,
		"restaurant_id": user.RestaurantID,
	})
}

// Login verifies credentials and mints a session token. A username ending in
// the customer suffix is stripped for lookup and flagged is_customer so one
// endpoint serves both front-end personas.
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
	}

	isCustomer := strings.HasSuffix(req.Username, customerSuffix)
	loginUsername := req.Username
	if isCustomer {
		loginUsername = strings.TrimSuffix(req.Username, customerSuffix)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	user, err := h.store.GetUserByUsername(loginUsername)
	// A missing account and a wrong password produce the exact same response
	// so the two cases cannot be told apart.
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("Failed to look up user", zap.Error(err))
		}
		prometheus.RecordAuthError("invalid_credentials")
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or password"})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		prometheus.RecordAuthError("invalid_credentials")
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or password"})
	}

	// The token carries the username as supplied, suffix included.
	token, err := h.jwt.Generate(user.ID, req.Username, user.RestaurantID)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Token error"})
	}

	prometheus.IncreaseActiveTokens()
	log.Info("User logged in",
		zap.String("username", loginUsername),
		zap.Uint("restaurant_id", user.RestaurantID),
		zap.Bool("is_customer", isCustomer))

	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Login successful",
		"token":         token,
		"restaurant_id": user.RestaurantID,
		"is_customer":   isCustomer,
	})
}

// ProtectedData echoes the identity decoded from the caller's token. Useful
// for front ends checking that a stored token is still valid.
func (h *Handler) ProtectedData(c echo.Context) error {
	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Access granted",
		"user_id":       ident.UserID,
		"username":      ident.Username,
		"restaurant_id": ident.RestaurantID,
	})
}
