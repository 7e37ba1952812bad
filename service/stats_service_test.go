// api/service/stats_service_test.go
package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	logger "github.com/staffhubhq/staffhub/api/logging"
	"github.com/staffhubhq/staffhub/api/model"
	"github.com/staffhubhq/staffhub/api/service"
	"github.com/staffhubhq/staffhub/api/test/mock"
)

func TestStatsService(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("SystemOverview_CountsAllEntities", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		deptDAO := new(mock.MockDepartmentDAO)
		empDAO := new(mock.MockEmployeeDAO)
		svc := service.NewStatsService(adminDAO, deptDAO, empDAO)

		adminDAO.On("CountActive", testify_mock.Anything).Return(int64(2), nil)
		deptDAO.On("CountActive", testify_mock.Anything).Return(int64(3), nil)
		empDAO.On("CountActive", testify_mock.Anything).Return(int64(40), nil)

		overview, err := svc.SystemOverview(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), overview.TotalAdmins)
		assert.Equal(t, int64(3), overview.TotalDepartments)
		assert.Equal(t, int64(40), overview.TotalEmployees)
		assert.False(t, overview.GeneratedAt.IsZero())
	})

	t.Run("SystemOverview_PropagatesCountError", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		deptDAO := new(mock.MockDepartmentDAO)
		empDAO := new(mock.MockEmployeeDAO)
		svc := service.NewStatsService(adminDAO, deptDAO, empDAO)

		adminDAO.On("CountActive", testify_mock.Anything).Return(int64(0), staffhub_errors.ErrDatabaseOperation)
		deptDAO.On("CountActive", testify_mock.Anything).Return(int64(3), nil)
		empDAO.On("CountActive", testify_mock.Anything).Return(int64(40), nil)

		_, err := svc.SystemOverview(ctx)
		assert.True(t, errors.Is(err, staffhub_errors.ErrDatabaseOperation))
	})

	t.Run("DepartmentStats_AllStatusesPresent", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		deptDAO := new(mock.MockDepartmentDAO)
		empDAO := new(mock.MockEmployeeDAO)
		svc := service.NewStatsService(adminDAO, deptDAO, empDAO)

		deptID := primitive.NewObjectID()
		deptDAO.On("FindActiveByID", ctx, deptID).
			Return(&model.Department{ID: deptID, Name: "Engineering", Code: "ENG"}, nil)
		empDAO.On("CountsByStatus", ctx, &deptID).Return([]model.StatusCount{
			{Status: model.StatusActive, Count: 5},
			{Status: model.StatusProbation, Count: 2},
		}, nil)
		empDAO.On("AverageSalaryByDepartment", ctx, deptID).Return(12345.678, nil)
		empDAO.On("RecentHiresByDepartment", ctx, deptID, testify_mock.Anything).Return(nil, nil)

		stats, err := svc.DepartmentStats(ctx, deptID.Hex())
		assert.NoError(t, err)
		assert.Equal(t, "Engineering", stats.DepartmentInfo.Name)
		assert.Equal(t, int64(7), stats.Statistics.TotalEmployees)
		// Zero-valued statuses still appear in the map.
		assert.Equal(t, int64(5), stats.Statistics.EmployeesByStatus["active"])
		assert.Equal(t, int64(2), stats.Statistics.EmployeesByStatus["probation"])
		assert.Equal(t, int64(0), stats.Statistics.EmployeesByStatus["onLeave"])
		assert.Equal(t, int64(0), stats.Statistics.EmployeesByStatus["resigned"])
		assert.Equal(t, 12345.68, stats.Statistics.AverageSalary)
		assert.Equal(t, 0, stats.Statistics.RecentHires.Count)
		assert.NotNil(t, stats.Statistics.RecentHires.Employees)
	})

	t.Run("EmployeeStats_EmptySystem_ZeroedAggregates", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		deptDAO := new(mock.MockDepartmentDAO)
		empDAO := new(mock.MockEmployeeDAO)
		svc := service.NewStatsService(adminDAO, deptDAO, empDAO)

		empDAO.On("SalaryOverview", testify_mock.Anything).Return(&model.SalaryOverview{}, nil)
		empDAO.On("CountsByStatus", testify_mock.Anything, (*primitive.ObjectID)(nil)).Return(nil, nil)
		empDAO.On("DepartmentBreakdown", testify_mock.Anything).Return(nil, nil)
		empDAO.On("SalaryBuckets", testify_mock.Anything).Return(nil, nil)
		empDAO.On("HiresByMonth", testify_mock.Anything, testify_mock.Anything).Return(nil, nil)

		stats, err := svc.EmployeeStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), stats.Overview.TotalEmployees)
		assert.NotNil(t, stats.StatusDistribution)
		assert.NotNil(t, stats.DepartmentDistribution)
		assert.NotNil(t, stats.SalaryDistribution)
		assert.NotNil(t, stats.RecentHires)
		assert.Empty(t, stats.StatusDistribution)
	})

	t.Run("EmployeeStats_PopulatedAggregates", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		deptDAO := new(mock.MockDepartmentDAO)
		empDAO := new(mock.MockEmployeeDAO)
		svc := service.NewStatsService(adminDAO, deptDAO, empDAO)

		empDAO.On("SalaryOverview", testify_mock.Anything).
			Return(&model.SalaryOverview{TotalEmployees: 10, AverageSalary: 9123.456, MaxSalary: 20000, MinSalary: 3000}, nil)
		empDAO.On("CountsByStatus", testify_mock.Anything, (*primitive.ObjectID)(nil)).
			Return([]model.StatusCount{{Status: model.StatusActive, Count: 10}}, nil)
		empDAO.On("DepartmentBreakdown", testify_mock.Anything).
			Return([]*model.DepartmentBreakdown{{DepartmentName: "Engineering", EmployeeCount: 10}}, nil)
		empDAO.On("SalaryBuckets", testify_mock.Anything).
			Return([]*model.SalaryBucket{{Count: 10, AverageSalary: 9000}}, nil)
		empDAO.On("HiresByMonth", testify_mock.Anything, testify_mock.Anything).
			Return([]*model.MonthlyHires{{Period: model.HirePeriod{Year: 2026, Month: 8}, Count: 4}}, nil)

		stats, err := svc.EmployeeStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), stats.Overview.TotalEmployees)
		assert.Equal(t, 9123.0, stats.Overview.AverageSalary)
		assert.Len(t, stats.StatusDistribution, 1)
		assert.Len(t, stats.DepartmentDistribution, 1)
		assert.Len(t, stats.SalaryDistribution, 1)
		assert.Len(t, stats.RecentHires, 1)
	})
}
