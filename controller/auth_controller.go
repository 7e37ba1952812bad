// api/controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	"github.com/staffhubhq/staffhub/api/model"
	"github.com/staffhubhq/staffhub/api/service"
	"github.com/staffhubhq/staffhub/api/util"
)

type AuthController struct {
	adminService service.IAdminService
}

func NewAuthController(adminService service.IAdminService) *AuthController {
	return &AuthController{
		adminService: adminService,
	}
}

// RegisterPublicRoutes registers the routes reachable without a token.
func (ac *AuthController) RegisterPublicRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
	}
}

// RegisterRoutes registers the token-protected auth routes.
func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.GET("/me", ac.Me)
		auth.PUT("/change-password", ac.ChangePassword)
	}
}

// Register endpoint
func (ac *AuthController) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid registration data", staffhub_errors.ErrInvalidAdminData)
		return
	}

	admin, err := ac.adminService.Register(c, req)
	if err != nil {
		switch {
		case errors.Is(err, staffhub_errors.ErrDuplicateUsername):
			util.RespondWithError(c, http.StatusBadRequest, "Username already in use", err)
		case errors.Is(err, staffhub_errors.ErrDuplicateEmail):
			util.RespondWithError(c, http.StatusBadRequest, "Email already in use", err)
		case errors.Is(err, staffhub_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to register admin", staffhub_errors.ErrInternalServer)
		}
		return
	}

	util.RespondWithMessage(c, http.StatusCreated, "Admin registered successfully", admin)
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid login data", staffhub_errors.ErrInvalidAdminData)
		return
	}

	token, admin, err := ac.adminService.Login(c, req)
	if err != nil {
		// Unknown username and wrong password share one message.
		if errors.Is(err, staffhub_errors.ErrInvalidCredentials) {
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to log in", staffhub_errors.ErrInternalServer)
		}
		return
	}

	util.RespondWithData(c, http.StatusOK, gin.H{"token": token, "admin": admin})
}

// Me endpoint
func (ac *AuthController) Me(c *gin.Context) {
	adminID, ok := util.GetAdminIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", staffhub_errors.ErrUnauthorized)
		return
	}

	admin, err := ac.adminService.GetAdmin(c, adminID)
	if err != nil {
		if errors.Is(err, staffhub_errors.ErrAdminNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Admin not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile", staffhub_errors.ErrInternalServer)
		}
		return
	}

	util.RespondWithData(c, http.StatusOK, admin)
}

// ChangePassword endpoint
func (ac *AuthController) ChangePassword(c *gin.Context) {
	adminID, ok := util.GetAdminIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", staffhub_errors.ErrUnauthorized)
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid password data", staffhub_errors.ErrInvalidAdminData)
		return
	}

	if err := ac.adminService.ChangePassword(c, adminID, req); err != nil {
		switch {
		case errors.Is(err, staffhub_errors.ErrWrongPassword):
			util.RespondWithError(c, http.StatusBadRequest, "Current password is incorrect", err)
		case errors.Is(err, staffhub_errors.ErrAdminNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Admin not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to change password", staffhub_errors.ErrInternalServer)
		}
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "Password changed successfully", nil)
}
