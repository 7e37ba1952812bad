// api/controller/employee_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	"github.com/staffhubhq/staffhub/api/model"
	"github.com/staffhubhq/staffhub/api/service"
	"github.com/staffhubhq/staffhub/api/util"
	helper_util "github.com/staffhubhq/staffhub/api/util/helper"
)

type EmployeeController struct {
	employeeService service.IEmployeeService
	statsService    service.IStatsService
}

func NewEmployeeController(employeeService service.IEmployeeService, statsService service.IStatsService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		statsService:    statsService,
	}
}

// RegisterRoutes registers the API routes
func (ec *EmployeeController) RegisterRoutes(r *gin.RouterGroup) {
	employees := r.Group("/employees")
	{
		employees.POST("", ec.CreateEmployee)
		employees.GET("", ec.ListEmployees)
		employees.GET("/stats/overview", ec.EmployeeStats)
		employees.PUT("/batch/transfer", ec.TransferEmployees)
		employees.GET("/:id", ec.GetEmployee)
		employees.PUT("/:id", ec.UpdateEmployee)
		employees.DELETE("/:id", ec.DeleteEmployee)
	}
}

// CreateEmployee endpoint
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req model.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee data", staffhub_errors.ErrInvalidEmployeeData)
		return
	}
	adminID, ok := util.GetAdminIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", staffhub_errors.ErrUnauthorized)
		return
	}

	employee, err := ec.employeeService.CreateEmployee(c, req, adminID)
	if err != nil {
		ec.respondEmployeeError(c, err, "Failed to create employee")
		return
	}

	util.RespondWithMessage(c, http.StatusCreated, "Employee created successfully", employee)
}

// ListEmployees endpoint
func (ec *EmployeeController) ListEmployees(c *gin.Context) {
	page, limit, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	criteria := model.EmployeeSearchCriteria{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}
	if deptHex := c.Query("department"); deptHex != "" {
		deptID, err := primitive.ObjectIDFromHex(deptHex)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid department ID", staffhub_errors.ErrMalformedID)
			return
		}
		criteria.DepartmentID = &deptID
	}

	employees, pagination, err := ec.employeeService.ListEmployees(c, criteria)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list employees", staffhub_errors.ErrInternalServer)
		return
	}

	util.RespondWithData(c, http.StatusOK, gin.H{"employees": employees, "pagination": pagination})
}

// GetEmployee endpoint
func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	detail, err := ec.employeeService.GetEmployee(c, c.Param("id"))
	if err != nil {
		ec.respondEmployeeError(c, err, "Failed to get employee")
		return
	}

	util.RespondWithData(c, http.StatusOK, detail)
}

// UpdateEmployee endpoint
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	var req model.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee data", staffhub_errors.ErrInvalidEmployeeData)
		return
	}

	employee, err := ec.employeeService.UpdateEmployee(c, c.Param("id"), req)
	if err != nil {
		ec.respondEmployeeError(c, err, "Failed to update employee")
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "Employee updated successfully", employee)
}

// DeleteEmployee endpoint
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	if err := ec.employeeService.DeleteEmployee(c, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, staffhub_errors.ErrEmployeeHasSubordinates),
			errors.Is(err, staffhub_errors.ErrEmployeeManagesDept):
			// The wrapped message names the dependents blocking the delete.
			util.RespondWithError(c, http.StatusBadRequest, "Cannot delete employee: "+err.Error(), err)
		default:
			ec.respondEmployeeError(c, err, "Failed to delete employee")
		}
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "Employee deleted successfully", nil)
}

// TransferEmployees endpoint
func (ec *EmployeeController) TransferEmployees(c *gin.Context) {
	var req model.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid transfer data", staffhub_errors.ErrInvalidEmployeeData)
		return
	}

	result, err := ec.employeeService.TransferEmployees(c, req)
	if err != nil {
		if errors.Is(err, staffhub_errors.ErrNoTransferableEmployees) {
			util.RespondWithError(c, http.StatusBadRequest, "No transferable employees found", err)
			return
		}
		ec.respondEmployeeError(c, err, "Failed to transfer employees")
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "Employees transferred successfully", result)
}

// EmployeeStats endpoint
func (ec *EmployeeController) EmployeeStats(c *gin.Context) {
	stats, err := ec.statsService.EmployeeStats(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to build employee statistics", staffhub_errors.ErrInternalServer)
		return
	}

	util.RespondWithData(c, http.StatusOK, stats)
}

func (ec *EmployeeController) respondEmployeeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, staffhub_errors.ErrMalformedID):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid ID", err)
	case errors.Is(err, staffhub_errors.ErrInvalidEmployeeData):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee data", err)
	case errors.Is(err, staffhub_errors.ErrDuplicateEmployeeID):
		util.RespondWithError(c, http.StatusBadRequest, "Employee ID already in use", err)
	case errors.Is(err, staffhub_errors.ErrDuplicateEmployeeEmail):
		util.RespondWithError(c, http.StatusBadRequest, "Employee email already in use", err)
	case errors.Is(err, staffhub_errors.ErrSupervisorNotFound):
		util.RespondWithError(c, http.StatusBadRequest, "Supervisor not found", err)
	case errors.Is(err, staffhub_errors.ErrSupervisorOtherDept):
		util.RespondWithError(c, http.StatusBadRequest, "Supervisor must belong to the same department", err)
	case errors.Is(err, staffhub_errors.ErrSelfSupervision):
		util.RespondWithError(c, http.StatusBadRequest, "Employee cannot supervise themselves", err)
	case errors.Is(err, staffhub_errors.ErrDepartmentNotFound):
		util.RespondWithError(c, http.StatusBadRequest, "Department not found", err)
	case errors.Is(err, staffhub_errors.ErrEmployeeNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Employee not found", err)
	case errors.Is(err, staffhub_errors.ErrDatabaseOperation):
		util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, staffhub_errors.ErrInternalServer)
	}
}
