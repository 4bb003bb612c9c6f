package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/kalpavruksha/eduhub-admin/pkg/errors"
	"github.com/kalpavruksha/eduhub-admin/pkg/response"
)

// Recovery turns panics into the standard 500 error body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered",
			zap.String("path", c.Request.URL.Path),
			zap.String("panic", fmt.Sprint(recovered)),
			zap.Stack("stack"),
		)
		response.Error(c, appErrors.ErrInternal)
		c.Abort()
	})
}
