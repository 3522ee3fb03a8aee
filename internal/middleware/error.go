package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"anoa.com/portfoliocms/pkg/apperror"
	"anoa.com/portfoliocms/pkg/response"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed by a handler as a failure
// envelope. Taxonomy errors map to their own status; anything else is logged
// and answered with a generic 500. exposeDetail adds the error type and text
// to the envelope and must stay off in production.
func ErrorHandler(logger *slog.Logger, exposeDetail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var detail []string
		if apperror.KindOf(err) == apperror.KindInternal {
			logger.Error("unhandled error",
				slog.String("type", fmt.Sprintf("%T", err)),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()),
			)
			if exposeDetail {
				detail = []string{fmt.Sprintf("%T: %s", err, err.Error())}
			}
		}

		response.Failure(c, err, detail)
	}
}

// Recovery turns a panic into the internal-error envelope.
func Recovery(logger *slog.Logger, exposeDetail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			stack := string(debug.Stack())
			logger.Error("panic recovered",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.Any("panic", rec),
				slog.String("stack", stack),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			var detail []string
			if exposeDetail {
				detail = append([]string{fmt.Sprintf("panic: %v", rec)}, strings.Split(strings.TrimSpace(stack), "\n")...)
			}
			response.Failure(c, fmt.Errorf("panic: %v", rec), detail)
			c.Abort()
		}()

		c.Next()
	}
}

func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Failure(c, apperror.NotFound("route not found"), nil)
	}
}

func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Fail(c, http.StatusMethodNotAllowed, "method not allowed")
	}
}
