package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SystemOverview carries system-wide active-record counts.
type SystemOverview struct {
	TotalAdmins      int64     `json:"totalAdmins"`
	TotalDepartments int64     `json:"totalDepartments"`
	TotalEmployees   int64     `json:"totalEmployees"`
	GeneratedAt      time.Time `json:"generatedAt"`
}

// SalaryOverview is the overall count/avg/min/max aggregate.
type SalaryOverview struct {
	TotalEmployees int64   `bson:"totalEmployees" json:"totalEmployees"`
	AverageSalary  float64 `bson:"avgSalary" json:"averageSalary"`
	MaxSalary      float64 `bson:"maxSalary" json:"maxSalary"`
	MinSalary      float64 `bson:"minSalary" json:"minSalary"`
}

type StatusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

// DepartmentBreakdown is the per-department slice of the global stats,
// joined with the department's name and code.
type DepartmentBreakdown struct {
	DepartmentID   primitive.ObjectID `bson:"_id" json:"departmentId"`
	DepartmentName string             `bson:"departmentName" json:"departmentName"`
	DepartmentCode string             `bson:"departmentCode" json:"departmentCode"`
	EmployeeCount  int64              `bson:"employeeCount" json:"employeeCount"`
	AverageSalary  float64            `bson:"avgSalary" json:"averageSalary"`
}

// SalaryBucket is one bin of the fixed-boundary salary histogram.
type SalaryBucket struct {
	LowerBound    interface{} `bson:"_id" json:"lowerBound"`
	Count         int64       `bson:"count" json:"count"`
	AverageSalary float64     `bson:"avgSalary" json:"averageSalary"`
}

// MonthlyHires is one (year, month) bin of the trailing hire histogram.
type MonthlyHires struct {
	Period HirePeriod `bson:"_id" json:"period"`
	Count  int64      `bson:"count" json:"count"`
}

type HirePeriod struct {
	Year  int `bson:"year" json:"year"`
	Month int `bson:"month" json:"month"`
}

// EmployeeStats is the global employee reporting payload.
type EmployeeStats struct {
	Overview               SalaryOverview         `json:"overview"`
	StatusDistribution     []StatusCount          `json:"statusDistribution"`
	DepartmentDistribution []*DepartmentBreakdown `json:"departmentDistribution"`
	SalaryDistribution     []*SalaryBucket        `json:"salaryDistribution"`
	RecentHires            []*MonthlyHires        `json:"recentHires"`
	GeneratedAt            time.Time              `json:"generatedAt"`
}

// Pagination is the list-endpoint envelope.
type Pagination struct {
	CurrentPage  int64 `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	PageSize     int64 `json:"pageSize"`
}

// NewPagination derives the envelope from a total record count.
func NewPagination(page, limit, total int64) *Pagination {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return &Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: total,
		PageSize:     limit,
	}
}
