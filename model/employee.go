package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee status values.
const (
	StatusActive    = "Active"
	StatusResigned  = "Resigned"
	StatusOnLeave   = "OnLeave"
	StatusProbation = "Probation"
)

// ValidStatuses lists the accepted employee status values.
var ValidStatuses = []string{StatusActive, StatusResigned, StatusOnLeave, StatusProbation}

type Employee struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name       string              `bson:"name" json:"name"`
	EmployeeID string              `bson:"employeeId" json:"employeeId"`
	Email      string              `bson:"email" json:"email"`
	Phone      string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Position   string              `bson:"position" json:"position"`
	Salary     *float64            `bson:"salary,omitempty" json:"salary,omitempty"`
	HireDate   time.Time           `bson:"hireDate" json:"hireDate"`
	Department primitive.ObjectID  `bson:"department" json:"departmentId"`
	Supervisor *primitive.ObjectID `bson:"supervisor,omitempty" json:"supervisorId,omitempty"`
	Status     string              `bson:"status" json:"status"`
	Address    string              `bson:"address,omitempty" json:"address,omitempty"`
	IsDeleted  bool                `bson:"isDeleted" json:"-"`
	CreatedBy  primitive.ObjectID  `bson:"createdBy" json:"-"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// EmployeeSummary is the populated supervisor/manager reference shape.
type EmployeeSummary struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	EmployeeID string             `bson:"employeeId" json:"employeeId"`
	Position   string             `bson:"position" json:"position"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
}

// EmployeeView is an employee with its references populated.
type EmployeeView struct {
	Employee
	DepartmentInfo *DepartmentSummary `json:"department,omitempty"`
	SupervisorInfo *EmployeeSummary   `json:"supervisor,omitempty"`
	CreatedByMe    *AdminSummary      `json:"createdBy,omitempty"`
}

// EmployeeDetail pairs an employee with its direct reports.
type EmployeeDetail struct {
	Employee     EmployeeView    `json:"employee"`
	Subordinates []*EmployeeView `json:"subordinates"`
}

type EmployeeRequest struct {
	Name         string   `json:"name" binding:"required"`
	EmployeeID   string   `json:"employeeId" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone"`
	Position     string   `json:"position" binding:"required"`
	Salary       *float64 `json:"salary"`
	HireDate     string   `json:"hireDate"`
	DepartmentID string   `json:"departmentId" binding:"required"`
	SupervisorID string   `json:"supervisorId"`
	Status       string   `json:"status"`
	Address      string   `json:"address"`
}

type TransferRequest struct {
	EmployeeIDs        []string `json:"employeeIds" binding:"required,min=1"`
	TargetDepartmentID string   `json:"targetDepartmentId" binding:"required"`
}

// TransferResult reports the outcome of a bulk department reassignment.
type TransferResult struct {
	TransferredCount     int                `json:"transferredCount"`
	TargetDepartment     DepartmentSummary  `json:"targetDepartment"`
	TransferredEmployees []*EmployeeSummary `json:"transferredEmployees"`
}

type EmployeeSearchCriteria struct {
	Search       string
	DepartmentID *primitive.ObjectID
	Status       string
	Page         int64
	Limit        int64
}
