package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, expired,
// malformed, or a payload missing the user or restaurant identity. Callers
// only need to distinguish "invalid" from "missing"; the latter never reaches
// this package.
var ErrInvalidToken = errors.New("invalid or expired token")

// UserClaims represents the JWT claims for an authenticated session. The
// restaurant ID is the tenant boundary every data query is scoped by.
type UserClaims struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	RestaurantID uint   `json:"restaurant_id"`
	jwt.RegisteredClaims
}

// JWT signs and verifies session tokens with a process-wide symmetric key.
// Constructed once at startup from configuration and injected wherever tokens
// are minted or checked.
type JWT struct {
	secret []byte
	ttl    time.Duration
}

// New creates a JWT codec with the given signing key and token lifetime.
func New(signingKey string, ttl time.Duration) *JWT {
	return &JWT{secret: []byte(signingKey), ttl: ttl}
}

// Generate creates a signed HS256 token carrying the user and restaurant
// identity, valid for the configured lifetime.
func (j *JWT) Generate(userID uint, username string, restaurantID uint) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID:       userID,
		Username:     username,
		RestaurantID: restaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// Validate parses and verifies the token string. Signature mismatch, expiry
// and structural problems all collapse into ErrInvalidToken.
func (j *JWT) Validate(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// A token without both identities cannot scope anything.
	if claims.UserID == 0 || claims.RestaurantID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
