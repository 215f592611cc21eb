package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "project-allocation"

// AuthClaims are the claims carried by bearer tokens. Tokens are issued by
// the identity service; this service only validates them.
type AuthClaims struct {
	Email        string    `json:"email" example:"hod@uni.edu"`
	DepartmentID uuid.UUID `json:"department_id" example:"5f0c6a8e-3f5b-4a51-8c84-2f3c4cb0d1a2"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenService validates HMAC signed tokens
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service for the shared secret
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// GenerateJWT signs a token for the given user. Used by tests and local tooling.
func (s *TokenService) GenerateJWT(email string, departmentID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Email:        email,
		DepartmentID: departmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}).SignedString(s.secret)
}

// ValidateJWT accepts only HS256 tokens from this issuer that carry an expiry
func (s *TokenService) ValidateJWT(raw string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}
