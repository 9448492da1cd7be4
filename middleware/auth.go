package middleware

import (
	"net/http"
	"strings"
	"time"

	"restaurant-pos-api/models"
	"restaurant-pos-api/policy"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies the JWTs that carry staff identity
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret []byte) *TokenManager {
	return &TokenManager{secret: secret}
}

// Issue creates a signed JWT for a given user
func (m *TokenManager) Issue(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a token string and returns its claims
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// AuthRequired validates the JWT and injects the caller identity into the
// request context
func AuthRequired(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(identityKey, models.Identity{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		})
		c.Next()
	}
}

// PermissionRequired enforces that the caller's role holds the permission
// tag for this area of the API. Finer rules (kitchen transitions, cash-only
// waiters, staff provisioning) live in the services behind it.
func PermissionRequired(perm policy.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(identityKey)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Identity not found in context"})
			c.Abort()
			return
		}
		identity := val.(models.Identity)
		if !policy.HasPermission(identity.Role, perm) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied. Required permission: " + string(perm),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity extracts the caller identity from context
func Identity(c *gin.Context) models.Identity {
	val, _ := c.Get(identityKey)
	identity, _ := val.(models.Identity)
	return identity
}
