// api/controller/department_controller.go
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

type DepartmentController struct {
	departmentService service.IDepartmentService
	statsService      service.IStatsService
}

func NewDepartmentController(departmentService service.IDepartmentService, statsService service.IStatsService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		statsService:      statsService,
	}
}

// RegisterRoutes registers the API routes
func (dc *DepartmentController) RegisterRoutes(r *gin.RouterGroup) {
	departments := r.Group("/departments")
	{
		departments.POST("", dc.CreateDepartment)
		departments.GET("", dc.ListDepartments)
		departments.GET("/:id", dc.GetDepartment)
		departments.PUT("/:id", dc.UpdateDepartment)
		departments.DELETE("/:id", dc.DeleteDepartment)
		departments.GET("/:id/stats", dc.DepartmentStats)
	}
}

// CreateDepartment endpoint
func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	var req model.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", staffhub_errors.ErrInvalidDepartmentData)
		return
	}
	adminID, ok := util.GetAdminIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", staffhub_errors.ErrUnauthorized)
		return
	}

	department, err := dc.departmentService.CreateDepartment(c, req, adminID)
	if err != nil {
		dc.respondDepartmentError(c, err, "Failed to create department")
		return
	}

	util.RespondWithMessage(c, http.StatusCreated, "Department created successfully", department)
}

// ListDepartments endpoint
func (dc *DepartmentController) ListDepartments(c *gin.Context) {
	page, limit, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	departments, pagination, err := dc.departmentService.ListDepartments(c, model.DepartmentSearchCriteria{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list departments", staffhub_errors.ErrInternalServer)
		return
	}

	util.RespondWithData(c, http.StatusOK, gin.H{"departments": departments, "pagination": pagination})
}

// GetDepartment endpoint
func (dc *DepartmentController) GetDepartment(c *gin.Context) {
	detail, err := dc.departmentService.GetDepartment(c, c.Param("id"))
	if err != nil {
		dc.respondDepartmentError(c, err, "Failed to get department")
		return
	}

	util.RespondWithData(c, http.StatusOK, detail)
}

// UpdateDepartment endpoint
func (dc *DepartmentController) UpdateDepartment(c *gin.Context) {
	var req model.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", staffhub_errors.ErrInvalidDepartmentData)
		return
	}

	department, err := dc.departmentService.UpdateDepartment(c, c.Param("id"), req)
	if err != nil {
		dc.respondDepartmentError(c, err, "Failed to update department")
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "Department updated successfully", department)
}

// DeleteDepartment endpoint
func (dc *DepartmentController) DeleteDepartment(c *gin.Context) {
	if err := dc.departmentService.DeleteDepartment(c, c.Param("id")); err != nil {
		if errors.Is(err, staffhub_errors.ErrDepartmentHasEmployees) {
			// The wrapped message carries the live employee count.
			util.RespondWithError(c, http.StatusBadRequest, "Cannot delete department: "+err.Error(), err)
			return
		}
		dc.respondDepartmentError(c, err, "Failed to delete department")
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "Department deleted successfully", nil)
}

// DepartmentStats endpoint
func (dc *DepartmentController) DepartmentStats(c *gin.Context) {
	stats, err := dc.statsService.DepartmentStats(c, c.Param("id"))
	if err != nil {
		dc.respondDepartmentError(c, err, "Failed to build department statistics")
		return
	}

	util.RespondWithData(c, http.StatusOK, stats)
}

func (dc *DepartmentController) respondDepartmentError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, staffhub_errors.ErrMalformedID):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid ID", err)
	case errors.Is(err, staffhub_errors.ErrInvalidDepartmentData):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", err)
	case errors.Is(err, staffhub_errors.ErrDuplicateDepartmentName):
		util.RespondWithError(c, http.StatusBadRequest, "Department name already in use", err)
	case errors.Is(err, staffhub_errors.ErrDuplicateDepartmentCode):
		util.RespondWithError(c, http.StatusBadRequest, "Department code already in use", err)
	case errors.Is(err, staffhub_errors.ErrDepartmentNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Department not found", err)
	case errors.Is(err, staffhub_errors.ErrEmployeeNotFound):
		util.RespondWithError(c, http.StatusBadRequest, "Manager employee not found", err)
	case errors.Is(err, staffhub_errors.ErrDatabaseOperation):
		util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, staffhub_errors.ErrInternalServer)
	}
}
