package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/staffhubhq/staffhub/api/dao"
	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	logger "github.com/staffhubhq/staffhub/api/logging"
)

// TokenVerifier validates a bearer token and returns the admin ID it names.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// AuthMiddleware verifies the bearer token and requires the admin it names
// to still exist and not be soft-deleted. A token for a deleted admin is
// rejected like any other invalid token.
func AuthMiddleware(tokens TokenVerifier, adminDAO dao.IAdminDAO) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "Missing or malformed authorization header")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		adminID, err := tokens.Verify(tokenString)
		if err != nil {
			if errors.Is(err, staffhub_errors.ErrTokenExpired) {
				abortUnauthorized(c, "Token expired")
			} else {
				abortUnauthorized(c, "Invalid token")
			}
			return
		}

		id, err := primitive.ObjectIDFromHex(adminID)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		admin, err := adminDAO.FindActiveByID(c, id)
		if err != nil {
			if !errors.Is(err, staffhub_errors.ErrAdminNotFound) {
				logger.Error("Failed to load admin for token",
					zap.Error(err),
					zap.String("adminID", adminID))
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("adminID", adminID)
		c.Set("admin", admin)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
