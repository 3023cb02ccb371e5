package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/auth"
)

const AdminSubjectKey = "admin_subject"

// AdminAuth requires an admin bearer token.
func AdminAuth(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "unauthorized"})
			return
		}

		claims, err := jwtSvc.Validate(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			logrus.WithError(err).Warn("rejected admin token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "unauthorized"})
			return
		}

		c.Set(AdminSubjectKey, claims.Subject)
		c.Next()
	}
}
