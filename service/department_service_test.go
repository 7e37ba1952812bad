// api/service/department_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	logger "github.com/staffhubhq/staffhub/api/logging"
	"github.com/staffhubhq/staffhub/api/model"
	"github.com/staffhubhq/staffhub/api/service"
	"github.com/staffhubhq/staffhub/api/test/mock"
	"github.com/staffhubhq/staffhub/api/util"
)

type departmentServiceFixture struct {
	svc      *service.DepartmentService
	deptDAO  *mock.MockDepartmentDAO
	empDAO   *mock.MockEmployeeDAO
	adminDAO *mock.MockAdminDAO
	cache    *mock.InMemoryCache
}

func newDepartmentServiceFixture() *departmentServiceFixture {
	deptDAO := new(mock.MockDepartmentDAO)
	empDAO := new(mock.MockEmployeeDAO)
	adminDAO := new(mock.MockAdminDAO)
	cache := mock.NewInMemoryCache()
	consistency := service.NewConsistencyService(deptDAO, empDAO)
	eventBus := util.NewEventBus()

	svc := service.NewDepartmentService(
		deptDAO, empDAO, adminDAO, consistency,
		util.NewValidationUtil(), cache, eventBus,
	)
	return &departmentServiceFixture{
		svc:      svc,
		deptDAO:  deptDAO,
		empDAO:   empDAO,
		adminDAO: adminDAO,
		cache:    cache,
	}
}

func (f *departmentServiceFixture) expectSummaries() {
	f.empDAO.On("SummariesByIDs", testify_mock.Anything, testify_mock.Anything).
		Return(map[primitive.ObjectID]*model.EmployeeSummary{}, nil)
	f.adminDAO.On("SummariesByIDs", testify_mock.Anything, testify_mock.Anything).
		Return(map[primitive.ObjectID]*model.AdminSummary{}, nil)
	f.deptDAO.On("SummariesByIDs", testify_mock.Anything, testify_mock.Anything).
		Return(map[primitive.ObjectID]*model.DepartmentSummary{}, nil)
}

func TestDepartmentService(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("CreateDepartment_UppercasesCode", func(t *testing.T) {
		f := newDepartmentServiceFixture()
		creator := primitive.NewObjectID()

		f.deptDAO.On("ExistsActiveName", ctx, "Engineering", (*primitive.ObjectID)(nil)).Return(false, nil)
		f.deptDAO.On("ExistsActiveCode", ctx, "ENG", (*primitive.ObjectID)(nil)).Return(false, nil)
		f.deptDAO.On("Create", ctx, testify_mock.AnythingOfType("*model.Department")).Return(nil)
		f.expectSummaries()

		view, err := f.svc.CreateDepartment(ctx, model.DepartmentRequest{
			Name: "Engineering",
			Code: "eng",
		}, creator.Hex())
		assert.NoError(t, err)
		assert.Equal(t, "ENG", view.Code)
	})

	t.Run("CreateDepartment_DuplicateName", func(t *testing.T) {
		f := newDepartmentServiceFixture()

		f.deptDAO.On("ExistsActiveName", ctx, "Engineering", (*primitive.ObjectID)(nil)).Return(true, nil)

		_, err := f.svc.CreateDepartment(ctx, model.DepartmentRequest{
			Name: "Engineering",
			Code: "ENG",
		}, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, staffhub_errors.ErrDuplicateDepartmentName)
		f.deptDAO.AssertNotCalled(t, "Create")
	})

	t.Run("DeleteDepartment_LiveEmployees_Blocked", func(t *testing.T) {
		f := newDepartmentServiceFixture()
		deptID := primitive.NewObjectID()

		// Stored counter says zero but the live count disagrees; the live
		// count wins and the delete is blocked.
		f.deptDAO.On("FindActiveByID", ctx, deptID).
			Return(&model.Department{ID: deptID, EmployeeCount: 0}, nil)
		f.empDAO.On("CountActiveByDepartment", ctx, deptID).Return(int64(2), nil)

		err := f.svc.DeleteDepartment(ctx, deptID.Hex())
		assert.ErrorIs(t, err, staffhub_errors.ErrDepartmentHasEmployees)
		assert.Contains(t, err.Error(), "2")
		f.deptDAO.AssertNotCalled(t, "SoftDelete")
	})

	t.Run("DeleteDepartment_StaleNonzeroCounter_Allowed", func(t *testing.T) {
		f := newDepartmentServiceFixture()
		deptID := primitive.NewObjectID()

		f.deptDAO.On("FindActiveByID", ctx, deptID).
			Return(&model.Department{ID: deptID, EmployeeCount: 5}, nil)
		f.empDAO.On("CountActiveByDepartment", ctx, deptID).Return(int64(0), nil)
		f.deptDAO.On("SoftDelete", ctx, deptID).Return(nil)

		assert.NoError(t, f.svc.DeleteDepartment(ctx, deptID.Hex()))
		f.deptDAO.AssertCalled(t, "SoftDelete", ctx, deptID)
	})

	t.Run("GetDepartment_ReconcilesStaleCounter", func(t *testing.T) {
		f := newDepartmentServiceFixture()
		deptID := primitive.NewObjectID()

		dept := &model.Department{ID: deptID, Name: "Engineering", Code: "ENG", EmployeeCount: 9}
		f.deptDAO.On("FindActiveByID", ctx, deptID).Return(dept, nil)
		f.empDAO.On("CountActiveByDepartment", ctx, deptID).Return(int64(1), nil)
		f.deptDAO.On("SetEmployeeCount", ctx, deptID, int64(1)).Return(nil)
		f.empDAO.On("ListActiveByDepartment", ctx, deptID).
			Return([]*model.Employee{{ID: primitive.NewObjectID(), Department: deptID}}, nil)
		f.expectSummaries()

		detail, err := f.svc.GetDepartment(ctx, deptID.Hex())
		assert.NoError(t, err)
		assert.Equal(t, int64(1), detail.Department.EmployeeCount)
		assert.Len(t, detail.Employees, 1)
		f.deptDAO.AssertCalled(t, "SetEmployeeCount", ctx, deptID, int64(1))
	})

	t.Run("ListDepartments_ReconcilesEachCounter", func(t *testing.T) {
		f := newDepartmentServiceFixture()
		d1 := &model.Department{ID: primitive.NewObjectID(), Name: "A", Code: "A", EmployeeCount: 4}
		d2 := &model.Department{ID: primitive.NewObjectID(), Name: "B", Code: "B", EmployeeCount: 2}

		criteria := model.DepartmentSearchCriteria{Page: 1, Limit: 10}
		f.deptDAO.On("List", ctx, criteria).Return([]*model.Department{d1, d2}, int64(2), nil)
		f.empDAO.On("CountActiveByDepartment", ctx, d1.ID).Return(int64(4), nil)
		f.empDAO.On("CountActiveByDepartment", ctx, d2.ID).Return(int64(5), nil)
		f.deptDAO.On("SetEmployeeCount", ctx, d2.ID, int64(5)).Return(nil)
		f.expectSummaries()

		views, pagination, err := f.svc.ListDepartments(ctx, criteria)
		assert.NoError(t, err)
		assert.Len(t, views, 2)
		assert.Equal(t, int64(4), views[0].EmployeeCount)
		assert.Equal(t, int64(5), views[1].EmployeeCount)
		assert.Equal(t, int64(2), pagination.TotalRecords)
		assert.Equal(t, int64(1), pagination.TotalPages)
	})

	t.Run("UpdateDepartment_ManagerMustBeActiveEmployee", func(t *testing.T) {
		f := newDepartmentServiceFixture()
		deptID := primitive.NewObjectID()
		managerID := primitive.NewObjectID()

		f.deptDAO.On("FindActiveByID", ctx, deptID).
			Return(&model.Department{ID: deptID, Name: "Engineering", Code: "ENG"}, nil)
		f.deptDAO.On("ExistsActiveName", ctx, "Engineering", &deptID).Return(false, nil)
		f.deptDAO.On("ExistsActiveCode", ctx, "ENG", &deptID).Return(false, nil)
		f.empDAO.On("FindActiveByID", ctx, managerID).Return(nil, staffhub_errors.ErrEmployeeNotFound)

		_, err := f.svc.UpdateDepartment(ctx, deptID.Hex(), model.DepartmentRequest{
			Name:      "Engineering",
			Code:      "ENG",
			ManagerID: managerID.Hex(),
		})
		assert.ErrorIs(t, err, staffhub_errors.ErrEmployeeNotFound)
		f.deptDAO.AssertNotCalled(t, "Update")
	})
}
