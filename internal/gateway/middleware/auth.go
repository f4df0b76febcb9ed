package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"crm-commissions/internal/utils"
)

// Context keys set by JWTAuth.
const (
	ContextUserID         = "user_id"
	ContextUsername       = "username"
	ContextOrganisationID = "organisation_id"
)

func JWTAuth(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Missing bearer token",
			})
			return
		}

		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextOrganisationID, claims.OrganisationID)
		c.Next()
	}
}
