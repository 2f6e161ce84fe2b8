package middleware

import (
	"log/slog"
	"net/http"

	"teetime-exchange/internal/handler/httperr"
	"teetime-exchange/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the response recorded by httperr when a handler
// pushed an error without writing a body. Server errors are logged with
// their stack.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for i := len(c.Errors) - 1; i >= 0; i-- {
			resp, ok := c.Errors[i].Meta.(httperr.Response)
			if !ok {
				continue
			}
			if resp.Status >= http.StatusInternalServerError {
				slog.ErrorContext(c.Request.Context(), "request failed",
					slog.String("request_id", GetRequestID(c)),
					slog.String("error", c.Errors[i].Err.Error()),
					slog.Any("stack", errs.ExtractStackLines(c.Errors[i].Err, 12)))
			}
			if !c.Writer.Written() {
				c.JSON(resp.Status, resp)
			}
			return
		}

		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal())
	}
}

// CustomRecovery turns a panic into the generic 500 body.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					slog.Any("panic", r),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)))
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
