// api/router/router.go

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/staffhubhq/staffhub/api/controller"
	"github.com/staffhubhq/staffhub/api/dao"
	"github.com/staffhubhq/staffhub/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	tokens middleware.TokenVerifier,
	adminDAO dao.IAdminDAO,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "StaffHub API is running",
		})
	})

	api := router.Group("/api")

	// Registration and login are the only unauthenticated endpoints.
	controllers.Auth.RegisterPublicRoutes(api)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(tokens, adminDAO))

	controllers.Auth.RegisterRoutes(authed)
	controllers.Admin.RegisterRoutes(authed)
	controllers.Department.RegisterRoutes(authed)
	controllers.Employee.RegisterRoutes(authed)

	return router
}
