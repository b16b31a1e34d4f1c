package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Logger writes one structured line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			"uri":      c.Request.RequestURI,
			"method":   c.Request.Method,
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
			"size":     c.Writer.Size(),
		})
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Warn("request completed")
			return
		}
		entry.Info("request completed")
	}
}

// Recovery logs the panic and answers 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorf("[http][middleware] recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	})
}
