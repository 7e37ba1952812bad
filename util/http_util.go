// api/util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/staffhubhq/staffhub/api/logging"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"success": false, "message": message})
}

func RespondWithData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func RespondWithMessage(c *gin.Context, code int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// GetAdminIDFromContext returns the authenticated admin's identifier
// attached by the auth middleware.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	adminID, exists := c.Get("adminID")
	if !exists {
		return "", false
	}
	id, ok := adminID.(string)
	return id, ok && id != ""
}
