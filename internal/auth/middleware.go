package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by RequireAuth. EmailKey doubles as the logger's user field.
const (
	EmailKey        = "email"
	DepartmentIDKey = "department_id"
	ClaimsKey       = "auth_claims"
)

// RequireAuth rejects requests without a valid bearer token and scopes the
// request to the token's department.
func RequireAuth(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, problem := bearerToken(c.GetHeader("Authorization"))
		if problem != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": problem})
			return
		}

		claims, err := tokens.ValidateJWT(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(EmailKey, claims.Email)
		if claims.DepartmentID != uuid.Nil {
			c.Set(DepartmentIDKey, claims.DepartmentID)
		}
		c.Next()
	}
}

// bearerToken returns the token or a client-facing reason it is missing
func bearerToken(header string) (string, string) {
	if header == "" {
		return "", "Authorization header is required"
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", "Invalid authorization header format"
	}
	return strings.TrimSpace(token), ""
}

// GetDepartmentID returns the department the caller's token is scoped to
func GetDepartmentID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := c.Value(DepartmentIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// GetClaims returns the validated token claims
func GetClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, ok := c.Value(ClaimsKey).(*AuthClaims)
	return claims, ok
}
