package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextClaims is the key used to store token claims in the Gin context.
	ContextClaims = "claims"
)

// Authoriz rejects requests without a valid bearer token and stores the token
// claims in the context for the handlers that follow.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing authorization header")
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
			unauthorized(c, "malformed authorization header")
			return
		}

		claims, err := ts.Decode(strings.TrimSpace(parts[1]))
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// Subject returns the "sub" claim of the authorized request, or "" when absent.
func Subject(c *gin.Context) string {
	raw, ok := c.Get(ContextClaims)
	if !ok {
		return ""
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
