package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"baikuk-backoffice-api/internal/constant"
	"baikuk-backoffice-api/internal/logger"
	"baikuk-backoffice-api/internal/utils"
)

func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Request.Errorf("panic recovered: %v path=%s", r, c.Request.URL.Path)
				c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeSystemError))
				c.Abort()
			}
		}()
		c.Next()
	}
}
