// api/util/validation_util.go

package util

import (
	"fmt"

	"github.com/staffhubhq/staffhub/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateDepartmentRequest(req model.DepartmentRequest) error {
	if req.Name == "" {
		return fmt.Errorf("department name cannot be empty")
	}
	if req.Code == "" {
		return fmt.Errorf("department code cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateEmployeeRequest(req model.EmployeeRequest) error {
	if req.Name == "" {
		return fmt.Errorf("employee name cannot be empty")
	}
	if req.EmployeeID == "" {
		return fmt.Errorf("employee id cannot be empty")
	}
	if req.Email == "" {
		return fmt.Errorf("employee email cannot be empty")
	}
	if req.Position == "" {
		return fmt.Errorf("employee position cannot be empty")
	}
	if req.DepartmentID == "" {
		return fmt.Errorf("employee department cannot be empty")
	}
	if req.Salary != nil && *req.Salary < 0 {
		return fmt.Errorf("employee salary cannot be negative")
	}
	if req.Status != "" && !v.IsValidStatus(req.Status) {
		return fmt.Errorf("invalid employee status: %s", req.Status)
	}
	return nil
}

func (v *ValidationUtil) IsValidStatus(status string) bool {
	for _, s := range model.ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
