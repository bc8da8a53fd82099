package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/four-in-a-row-bot/pkg/auth"
	"github.com/iamasit07/four-in-a-row-bot/pkg/httputil"
)

const ClientIDKey = "client_id"

// AuthMiddleware requires a valid client token. An empty secret turns
// authentication off and every caller is treated as "anonymous".
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Set(ClientIDKey, "anonymous")
			c.Next()
			return
		}

		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateClientToken(secret, tokenString)
		if err != nil {
			log.Printf("[AUTH] Rejected token from %s: %v", c.ClientIP(), err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ClientIDKey, claims.ClientID)
		c.Next()
	}
}
