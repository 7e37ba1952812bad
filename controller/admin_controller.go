// api/controller/admin_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	"github.com/staffhubhq/staffhub/api/model"
	"github.com/staffhubhq/staffhub/api/service"
	"github.com/staffhubhq/staffhub/api/util"
	helper_util "github.com/staffhubhq/staffhub/api/util/helper"
)

type AdminController struct {
	adminService service.IAdminService
	statsService service.IStatsService
}

func NewAdminController(adminService service.IAdminService, statsService service.IStatsService) *AdminController {
	return &AdminController{
		adminService: adminService,
		statsService: statsService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AdminController) RegisterRoutes(r *gin.RouterGroup) {
	admins := r.Group("/admin")
	{
		admins.GET("", ac.ListAdmins)
		admins.GET("/stats/overview", ac.SystemOverview)
		admins.GET("/:id", ac.GetAdmin)
		admins.PUT("/:id", ac.UpdateAdmin)
		admins.DELETE("/:id", ac.DeleteAdmin)
	}
}

// ListAdmins endpoint
func (ac *AdminController) ListAdmins(c *gin.Context) {
	page, limit, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	admins, pagination, err := ac.adminService.ListAdmins(c, model.AdminSearchCriteria{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list admins", staffhub_errors.ErrInternalServer)
		return
	}

	util.RespondWithData(c, http.StatusOK, gin.H{"admins": admins, "pagination": pagination})
}

// GetAdmin endpoint
func (ac *AdminController) GetAdmin(c *gin.Context) {
	admin, err := ac.adminService.GetAdmin(c, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, staffhub_errors.ErrMalformedID):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid admin ID", err)
		case errors.Is(err, staffhub_errors.ErrAdminNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Admin not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to get admin", staffhub_errors.ErrInternalServer)
		}
		return
	}

	util.RespondWithData(c, http.StatusOK, admin)
}

// UpdateAdmin endpoint
func (ac *AdminController) UpdateAdmin(c *gin.Context) {
	var req model.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid admin data", staffhub_errors.ErrInvalidAdminData)
		return
	}

	admin, err := ac.adminService.UpdateAdmin(c, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, staffhub_errors.ErrMalformedID):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid admin ID", err)
		case errors.Is(err, staffhub_errors.ErrAdminNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Admin not found", err)
		case errors.Is(err, staffhub_errors.ErrDuplicateUsername):
			util.RespondWithError(c, http.StatusBadRequest, "Username already in use", err)
		case errors.Is(err, staffhub_errors.ErrDuplicateEmail):
			util.RespondWithError(c, http.StatusBadRequest, "Email already in use", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update admin", staffhub_errors.ErrInternalServer)
		}
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "Admin updated successfully", admin)
}

// DeleteAdmin endpoint
func (ac *AdminController) DeleteAdmin(c *gin.Context) {
	callerID, ok := util.GetAdminIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", staffhub_errors.ErrUnauthorized)
		return
	}

	if err := ac.adminService.DeleteAdmin(c, c.Param("id"), callerID); err != nil {
		switch {
		case errors.Is(err, staffhub_errors.ErrMalformedID):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid admin ID", err)
		case errors.Is(err, staffhub_errors.ErrSelfDeletion):
			util.RespondWithError(c, http.StatusBadRequest, "Cannot delete your own account", err)
		case errors.Is(err, staffhub_errors.ErrAdminNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Admin not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete admin", staffhub_errors.ErrInternalServer)
		}
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "Admin deleted successfully", nil)
}

// SystemOverview endpoint
func (ac *AdminController) SystemOverview(c *gin.Context) {
	overview, err := ac.statsService.SystemOverview(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to build system overview", staffhub_errors.ErrInternalServer)
		return
	}

	util.RespondWithData(c, http.StatusOK, overview)
}
