package middleware

import (
	"github.com/gin-gonic/gin"

	"biztime/internal/core/apperror"
	"biztime/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON responses:
// a single message field plus the carried HTTP status. Internal causes are
// logged, never exposed.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			c.JSON(appErr.HTTPStatus, gin.H{"message": appErr.Message})
			return
		}

		// Unknown error - log and return generic message
		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
		)

		c.JSON(500, gin.H{"message": "Internal server error"})
	}
}
