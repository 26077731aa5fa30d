package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the JWT claims for shopper session tokens.
// UserID is the commerce API's registration id.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTService handles session token generation and verification
type JWTService struct {
	secretKey string
	expiry    time.Duration
}

var jwtService *JWTService

// InitJWTService initializes the JWT service with a secret key. Token
// lifetime comes from JWT_EXPIRY (default 24h).
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = &JWTService{
		secretKey: secretKey,
		expiry:    sessionExpiry(),
	}
	return nil
}

func sessionExpiry() time.Duration {
	expiryStr := os.Getenv("JWT_EXPIRY")
	if expiryStr == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(expiryStr)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// GetJWTService returns the initialized JWT service
func GetJWTService() *JWTService {
	if jwtService == nil {
		// Fallback to environment variable if not initialized
		secretKey := os.Getenv("JWT_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secretKey: secretKey, expiry: sessionExpiry()}
	}
	return jwtService
}

// GenerateSessionJWT creates a new JWT token for a logged-in shopper
func (j *JWTService) GenerateSessionJWT(userID, email, name string) (string, error) {
	if userID == "" || email == "" {
		return "", errors.New("userID and email cannot be empty")
	}

	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "shoppulse-storefront",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifySessionJWT verifies and parses a JWT token
// Returns claims if valid, error if invalid or expired
func (j *JWTService) VerifySessionJWT(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	// Check if token has required claims
	if claims.UserID == "" || claims.Email == "" {
		return nil, errors.New("token missing required claims")
	}

	return claims, nil
}

// Convenience functions that use the global service

// GenerateSessionJWT generates a JWT token using the global JWT service
func GenerateSessionJWT(userID, email, name string) (string, error) {
	return GetJWTService().GenerateSessionJWT(userID, email, name)
}

// VerifySessionJWT verifies a JWT token using the global JWT service
func VerifySessionJWT(tokenString string) (*SessionClaims, error) {
	return GetJWTService().VerifySessionJWT(tokenString)
}
