// middleware/jwt_middleware.go
package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// UserTypeAdmin is the only user type the API issues tokens for
const UserTypeAdmin = "admin"

// TokenTTL is how long an admin token stays valid
const TokenTTL = 24 * time.Hour

// JwtCustomClaims for JWT token
type JwtCustomClaims struct {
	Email    string `json:"email"`
	UserType string `json:"userType"`
	jwt.StandardClaims
}

// GenerateJWT signs an admin token for email
func GenerateJWT(secret, email string) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET environment variable is required")
	}

	now := time.Now()
	expiresAt := now.Add(TokenTTL)
	claims := &JwtCustomClaims{
		Email:    email,
		UserType: UserTypeAdmin,
		StandardClaims: jwt.StandardClaims{
			Subject:   email,
			IssuedAt:  now.Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ParseJWT validates the signature and expiry of tokenString
func ParseJWT(secret, tokenString string) (*JwtCustomClaims, error) {
	if secret == "" {
		return nil, errors.New("JWT configuration error")
	}

	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
