package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/teamboard/teamboard/internal/shared/logger"
	"github.com/teamboard/teamboard/internal/shared/utils"
)

// CronAuth protects trigger endpoints with a shared bearer secret. An empty
// secret disables the endpoints entirely.
func CronAuth(secret string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			log.Warnw("trigger endpoint called but no trigger secret is configured",
				"path", c.Request.URL.Path,
			)
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "trigger endpoint is not configured")
			c.Abort()
			return
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			log.Warnw("rejected trigger request",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or missing trigger secret")
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
