package auth

import (
	"fmt"
	"time"

	apperrors "maintenance-registry-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims represents the JWT token claims of an authenticated admin
type Claims struct {
	Username             string `json:"username" example:"admin"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Service issues and verifies the bearer tokens guarding the API
type Service struct {
	config *AuthConfig
	users  map[string]string
}

// NewService creates a new authentication service
func NewService(config *AuthConfig) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	users := make(map[string]string, len(config.Users))
	for _, user := range config.Users {
		users[user.Username] = user.PasswordHash
	}

	return &Service{
		config: config,
		users:  users,
	}, nil
}

// Login verifies the credentials and issues a signed token
func (s *Service) Login(username, password string) (token string, expiresAt time.Time, err error) {
	hash, ok := s.users[username]
	if !ok {
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt = now.Add(s.config.TokenTTL)
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify parses and validates a bearer token, returning its claims
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
