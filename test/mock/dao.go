// test/mock/dao.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/staffhubhq/staffhub/api/model"
)

// MockAdminDAO is a mock implementation of dao.IAdminDAO
type MockAdminDAO struct {
	mock.Mock
}

func (m *MockAdminDAO) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Admin, error) {
	args := m.Called(ctx, id)
	admin, _ := args.Get(0).(*model.Admin)
	return admin, args.Error(1)
}

func (m *MockAdminDAO) FindActiveByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	admin, _ := args.Get(0).(*model.Admin)
	return admin, args.Error(1)
}

func (m *MockAdminDAO) ExistsActiveUsername(ctx context.Context, username string, exclude *primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, username, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminDAO) ExistsActiveEmail(ctx context.Context, email string, exclude *primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, email, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminDAO) Create(ctx context.Context, admin *model.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminDAO) List(ctx context.Context, criteria model.AdminSearchCriteria) ([]*model.Admin, int64, error) {
	args := m.Called(ctx, criteria)
	admins, _ := args.Get(0).([]*model.Admin)
	return admins, args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminDAO) UpdateProfile(ctx context.Context, id primitive.ObjectID, username, email, fullName string) (*model.Admin, error) {
	args := m.Called(ctx, id, username, email, fullName)
	admin, _ := args.Get(0).(*model.Admin)
	return admin, args.Error(1)
}

func (m *MockAdminDAO) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockAdminDAO) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminDAO) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminDAO) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.AdminSummary, error) {
	args := m.Called(ctx, ids)
	summaries, _ := args.Get(0).(map[primitive.ObjectID]*model.AdminSummary)
	return summaries, args.Error(1)
}

// MockDepartmentDAO is a mock implementation of dao.IDepartmentDAO
type MockDepartmentDAO struct {
	mock.Mock
}

func (m *MockDepartmentDAO) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Department, error) {
	args := m.Called(ctx, id)
	dept, _ := args.Get(0).(*model.Department)
	return dept, args.Error(1)
}

func (m *MockDepartmentDAO) FindActiveByManager(ctx context.Context, employeeID primitive.ObjectID) (*model.Department, error) {
	args := m.Called(ctx, employeeID)
	dept, _ := args.Get(0).(*model.Department)
	return dept, args.Error(1)
}

func (m *MockDepartmentDAO) ExistsActiveName(ctx context.Context, name string, exclude *primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, name, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentDAO) ExistsActiveCode(ctx context.Context, code string, exclude *primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, code, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentDAO) Create(ctx context.Context, department *model.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentDAO) List(ctx context.Context, criteria model.DepartmentSearchCriteria) ([]*model.Department, int64, error) {
	args := m.Called(ctx, criteria)
	departments, _ := args.Get(0).([]*model.Department)
	return departments, args.Get(1).(int64), args.Error(2)
}

func (m *MockDepartmentDAO) Update(ctx context.Context, department *model.Department) (*model.Department, error) {
	args := m.Called(ctx, department)
	dept, _ := args.Get(0).(*model.Department)
	return dept, args.Error(1)
}

func (m *MockDepartmentDAO) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDepartmentDAO) IncrementEmployeeCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockDepartmentDAO) SetEmployeeCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}

func (m *MockDepartmentDAO) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepartmentDAO) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.DepartmentSummary, error) {
	args := m.Called(ctx, ids)
	summaries, _ := args.Get(0).(map[primitive.ObjectID]*model.DepartmentSummary)
	return summaries, args.Error(1)
}

// MockEmployeeDAO is a mock implementation of dao.IEmployeeDAO
type MockEmployeeDAO struct {
	mock.Mock
}

func (m *MockEmployeeDAO) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error) {
	args := m.Called(ctx, id)
	employee, _ := args.Get(0).(*model.Employee)
	return employee, args.Error(1)
}

func (m *MockEmployeeDAO) FindActiveByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Employee, error) {
	args := m.Called(ctx, ids)
	employees, _ := args.Get(0).([]*model.Employee)
	return employees, args.Error(1)
}

func (m *MockEmployeeDAO) ExistsActiveEmployeeID(ctx context.Context, employeeID string, exclude *primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, employeeID, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeDAO) ExistsActiveEmail(ctx context.Context, email string, exclude *primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, email, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeDAO) Create(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeDAO) List(ctx context.Context, criteria model.EmployeeSearchCriteria) ([]*model.Employee, int64, error) {
	args := m.Called(ctx, criteria)
	employees, _ := args.Get(0).([]*model.Employee)
	return employees, args.Get(1).(int64), args.Error(2)
}

func (m *MockEmployeeDAO) Update(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, employee)
	updated, _ := args.Get(0).(*model.Employee)
	return updated, args.Error(1)
}

func (m *MockEmployeeDAO) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeDAO) BulkReassignDepartment(ctx context.Context, ids []primitive.ObjectID, target primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, ids, target)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeDAO) CountActiveBySupervisor(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeDAO) ListActiveBySupervisor(ctx context.Context, id primitive.ObjectID) ([]*model.Employee, error) {
	args := m.Called(ctx, id)
	employees, _ := args.Get(0).([]*model.Employee)
	return employees, args.Error(1)
}

func (m *MockEmployeeDAO) CountActiveByDepartment(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeDAO) ListActiveByDepartment(ctx context.Context, id primitive.ObjectID) ([]*model.Employee, error) {
	args := m.Called(ctx, id)
	employees, _ := args.Get(0).([]*model.Employee)
	return employees, args.Error(1)
}

func (m *MockEmployeeDAO) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeDAO) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.EmployeeSummary, error) {
	args := m.Called(ctx, ids)
	summaries, _ := args.Get(0).(map[primitive.ObjectID]*model.EmployeeSummary)
	return summaries, args.Error(1)
}

func (m *MockEmployeeDAO) SalaryOverview(ctx context.Context) (*model.SalaryOverview, error) {
	args := m.Called(ctx)
	overview, _ := args.Get(0).(*model.SalaryOverview)
	return overview, args.Error(1)
}

func (m *MockEmployeeDAO) CountsByStatus(ctx context.Context, departmentID *primitive.ObjectID) ([]model.StatusCount, error) {
	args := m.Called(ctx, departmentID)
	counts, _ := args.Get(0).([]model.StatusCount)
	return counts, args.Error(1)
}

func (m *MockEmployeeDAO) DepartmentBreakdown(ctx context.Context) ([]*model.DepartmentBreakdown, error) {
	args := m.Called(ctx)
	breakdown, _ := args.Get(0).([]*model.DepartmentBreakdown)
	return breakdown, args.Error(1)
}

func (m *MockEmployeeDAO) SalaryBuckets(ctx context.Context) ([]*model.SalaryBucket, error) {
	args := m.Called(ctx)
	buckets, _ := args.Get(0).([]*model.SalaryBucket)
	return buckets, args.Error(1)
}

func (m *MockEmployeeDAO) HiresByMonth(ctx context.Context, since time.Time) ([]*model.MonthlyHires, error) {
	args := m.Called(ctx, since)
	hires, _ := args.Get(0).([]*model.MonthlyHires)
	return hires, args.Error(1)
}

func (m *MockEmployeeDAO) AverageSalaryByDepartment(ctx context.Context, departmentID primitive.ObjectID) (float64, error) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockEmployeeDAO) RecentHiresByDepartment(ctx context.Context, departmentID primitive.ObjectID, since time.Time) ([]*model.EmployeeRecent, error) {
	args := m.Called(ctx, departmentID, since)
	recent, _ := args.Get(0).([]*model.EmployeeRecent)
	return recent, args.Error(1)
}
