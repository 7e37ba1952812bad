package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Department struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name"`
	Code          string              `bson:"code" json:"code"`
	Description   string              `bson:"description,omitempty" json:"description,omitempty"`
	Manager       *primitive.ObjectID `bson:"manager,omitempty" json:"managerId,omitempty"`
	Location      string              `bson:"location,omitempty" json:"location,omitempty"`
	Phone         string              `bson:"phone,omitempty" json:"phone,omitempty"`
	EmployeeCount int64               `bson:"employeeCount" json:"employeeCount"`
	IsDeleted     bool                `bson:"isDeleted" json:"-"`
	CreatedBy     primitive.ObjectID  `bson:"createdBy" json:"-"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// DepartmentSummary is the populated department reference shape.
type DepartmentSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Code     string             `bson:"code" json:"code"`
	Location string             `bson:"location,omitempty" json:"location,omitempty"`
}

// DepartmentView is a department with its references populated.
type DepartmentView struct {
	Department
	ManagerInfo *EmployeeSummary `json:"manager,omitempty"`
	CreatedByMe *AdminSummary    `json:"createdBy,omitempty"`
}

// DepartmentDetail pairs a department with its active employees.
type DepartmentDetail struct {
	Department DepartmentView  `json:"department"`
	Employees  []*EmployeeView `json:"employees"`
}

type DepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	ManagerID   string `json:"managerId"`
}

type DepartmentSearchCriteria struct {
	Search string
	Page   int64
	Limit  int64
}

// DepartmentStats is the per-department reporting payload.
type DepartmentStats struct {
	DepartmentInfo DepartmentSummary    `json:"departmentInfo"`
	Statistics     DepartmentStatistics `json:"statistics"`
	GeneratedAt    time.Time            `json:"generatedAt"`
}

type DepartmentStatistics struct {
	TotalEmployees    int64             `json:"totalEmployees"`
	EmployeesByStatus map[string]int64  `json:"employeesByStatus"`
	AverageSalary     float64           `json:"averageSalary"`
	RecentHires       RecentHireSummary `json:"recentHires"`
}

type RecentHireSummary struct {
	Count     int               `json:"count"`
	Employees []*EmployeeRecent `json:"employees"`
}

type EmployeeRecent struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	EmployeeID string             `bson:"employeeId" json:"employeeId"`
	Position   string             `bson:"position" json:"position"`
	HireDate   time.Time          `bson:"hireDate" json:"hireDate"`
}
