package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/logger"
)

// ErrorHandler converts errors appended to the gin context into the response
// envelope. Server faults (5xx) log at error level, client faults at warn.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal("", err)
		}

		attrs := []any{
			"code", appErr.Code,
			"path", c.FullPath(),
			"module", appErr.Module,
			"method", appErr.Method,
			"subject", appErr.Subject,
		}
		if appErr.Err != nil {
			attrs = append(attrs, "error", appErr.Err)
		}
		if appErr.Code > 499 {
			logger.Log.Error(appErr.Message, attrs...)
		} else {
			logger.Log.Warn(appErr.Message, attrs...)
		}

		message := appErr.Message
		if appErr.Code >= http.StatusInternalServerError {
			// Internal details stay server-side.
			message = "An unexpected error occurred. Please try again later."
		}
		response.Error(c, appErr.Code, message, "")
	}
}
