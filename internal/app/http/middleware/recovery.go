package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studentpages/internal/app/http/view"
)

// ZapRecovery turns a handler panic into the generic error page.
func ZapRecovery(log *zap.Logger, homePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered", zap.Any("panic", rec))
				c.Abort()
				c.HTML(http.StatusInternalServerError, "error.html", view.Error{
					Title:    "Something Went Wrong",
					Message:  "An unexpected error occurred while processing your request.",
					HomePath: homePath,
				})
			}
		}()

		c.Next()
	}
}
