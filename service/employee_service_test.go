// api/service/employee_service_test.go
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

type employeeServiceFixture struct {
	svc      *service.EmployeeService
	empDAO   *mock.MockEmployeeDAO
	deptDAO  *mock.MockDepartmentDAO
	adminDAO *mock.MockAdminDAO
	cache    *mock.InMemoryCache
}

func newEmployeeServiceFixture() *employeeServiceFixture {
	empDAO := new(mock.MockEmployeeDAO)
	deptDAO := new(mock.MockDepartmentDAO)
	adminDAO := new(mock.MockAdminDAO)
	cache := mock.NewInMemoryCache()
	consistency := service.NewConsistencyService(deptDAO, empDAO)
	eventBus := util.NewEventBus()

	svc := service.NewEmployeeService(
		empDAO, deptDAO, adminDAO, consistency,
		util.NewValidationUtil(), cache, eventBus,
	)
	return &employeeServiceFixture{
		svc:      svc,
		empDAO:   empDAO,
		deptDAO:  deptDAO,
		adminDAO: adminDAO,
		cache:    cache,
	}
}

func (f *employeeServiceFixture) expectSummaries() {
	f.deptDAO.On("SummariesByIDs", testify_mock.Anything, testify_mock.Anything).
		Return(map[primitive.ObjectID]*model.DepartmentSummary{}, nil)
	f.empDAO.On("SummariesByIDs", testify_mock.Anything, testify_mock.Anything).
		Return(map[primitive.ObjectID]*model.EmployeeSummary{}, nil)
	f.adminDAO.On("SummariesByIDs", testify_mock.Anything, testify_mock.Anything).
		Return(map[primitive.ObjectID]*model.AdminSummary{}, nil)
}

func TestEmployeeService(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	validRequest := func(deptID primitive.ObjectID) model.EmployeeRequest {
		return model.EmployeeRequest{
			Name:         "Bob Smith",
			EmployeeID:   "EMP-001",
			Email:        "bob@example.com",
			Position:     "Engineer",
			DepartmentID: deptID.Hex(),
		}
	}

	t.Run("CreateEmployee_IncrementsDepartmentCounter", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		deptID := primitive.NewObjectID()
		creator := primitive.NewObjectID()

		f.empDAO.On("ExistsActiveEmployeeID", ctx, "EMP-001", (*primitive.ObjectID)(nil)).Return(false, nil)
		f.empDAO.On("ExistsActiveEmail", ctx, "bob@example.com", (*primitive.ObjectID)(nil)).Return(false, nil)
		f.deptDAO.On("FindActiveByID", ctx, deptID).Return(&model.Department{ID: deptID}, nil)
		f.empDAO.On("Create", ctx, testify_mock.AnythingOfType("*model.Employee")).Return(nil)
		f.deptDAO.On("IncrementEmployeeCount", ctx, deptID, int64(1)).Return(nil)
		f.expectSummaries()

		view, err := f.svc.CreateEmployee(ctx, validRequest(deptID), creator.Hex())
		assert.NoError(t, err)
		assert.Equal(t, model.StatusProbation, view.Status)
		assert.Equal(t, deptID, view.Employee.Department)
		f.deptDAO.AssertCalled(t, "IncrementEmployeeCount", ctx, deptID, int64(1))
	})

	t.Run("CreateEmployee_CounterUpdateFails_ReturnsError", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		deptID := primitive.NewObjectID()

		f.empDAO.On("ExistsActiveEmployeeID", ctx, "EMP-001", (*primitive.ObjectID)(nil)).Return(false, nil)
		f.empDAO.On("ExistsActiveEmail", ctx, "bob@example.com", (*primitive.ObjectID)(nil)).Return(false, nil)
		f.deptDAO.On("FindActiveByID", ctx, deptID).Return(&model.Department{ID: deptID}, nil)
		f.empDAO.On("Create", ctx, testify_mock.AnythingOfType("*model.Employee")).Return(nil)
		f.deptDAO.On("IncrementEmployeeCount", ctx, deptID, int64(1)).
			Return(staffhub_errors.ErrDatabaseOperation)

		view, err := f.svc.CreateEmployee(ctx, validRequest(deptID), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, staffhub_errors.ErrDatabaseOperation)
		assert.Nil(t, view)
	})

	t.Run("CreateEmployee_SupervisorInOtherDepartment_Rejected", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		deptID := primitive.NewObjectID()
		otherDept := primitive.NewObjectID()
		supervisorID := primitive.NewObjectID()
		creator := primitive.NewObjectID()

		f.empDAO.On("ExistsActiveEmployeeID", ctx, "EMP-001", (*primitive.ObjectID)(nil)).Return(false, nil)
		f.empDAO.On("ExistsActiveEmail", ctx, "bob@example.com", (*primitive.ObjectID)(nil)).Return(false, nil)
		f.deptDAO.On("FindActiveByID", ctx, deptID).Return(&model.Department{ID: deptID}, nil)
		f.empDAO.On("FindActiveByID", ctx, supervisorID).
			Return(&model.Employee{ID: supervisorID, Department: otherDept}, nil)

		req := validRequest(deptID)
		req.SupervisorID = supervisorID.Hex()
		_, err := f.svc.CreateEmployee(ctx, req, creator.Hex())
		assert.ErrorIs(t, err, staffhub_errors.ErrSupervisorOtherDept)
		f.empDAO.AssertNotCalled(t, "Create")
	})

	t.Run("CreateEmployee_DuplicateEmployeeID", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		deptID := primitive.NewObjectID()

		f.empDAO.On("ExistsActiveEmployeeID", ctx, "EMP-001", (*primitive.ObjectID)(nil)).Return(true, nil)

		_, err := f.svc.CreateEmployee(ctx, validRequest(deptID), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, staffhub_errors.ErrDuplicateEmployeeID)
	})

	t.Run("UpdateEmployee_SelfSupervision_Rejected", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		deptID := primitive.NewObjectID()
		empID := primitive.NewObjectID()

		f.empDAO.On("FindActiveByID", ctx, empID).
			Return(&model.Employee{ID: empID, Department: deptID}, nil)
		f.empDAO.On("ExistsActiveEmployeeID", ctx, "EMP-001", &empID).Return(false, nil)
		f.empDAO.On("ExistsActiveEmail", ctx, "bob@example.com", &empID).Return(false, nil)
		f.deptDAO.On("FindActiveByID", ctx, deptID).Return(&model.Department{ID: deptID}, nil)

		req := validRequest(deptID)
		req.SupervisorID = empID.Hex()
		_, err := f.svc.UpdateEmployee(ctx, empID.Hex(), req)
		assert.ErrorIs(t, err, staffhub_errors.ErrSelfSupervision)
		f.empDAO.AssertNotCalled(t, "Update")
	})

	t.Run("UpdateEmployee_DepartmentChange_MovesCounters", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		oldDept := primitive.NewObjectID()
		newDept := primitive.NewObjectID()
		empID := primitive.NewObjectID()

		existing := &model.Employee{ID: empID, Department: oldDept, Status: model.StatusActive}
		f.empDAO.On("FindActiveByID", ctx, empID).Return(existing, nil)
		f.empDAO.On("ExistsActiveEmployeeID", ctx, "EMP-001", &empID).Return(false, nil)
		f.empDAO.On("ExistsActiveEmail", ctx, "bob@example.com", &empID).Return(false, nil)
		f.deptDAO.On("FindActiveByID", ctx, newDept).Return(&model.Department{ID: newDept}, nil)
		f.empDAO.On("Update", ctx, testify_mock.AnythingOfType("*model.Employee")).Return(existing, nil)
		f.deptDAO.On("IncrementEmployeeCount", ctx, oldDept, int64(-1)).Return(nil)
		f.deptDAO.On("IncrementEmployeeCount", ctx, newDept, int64(1)).Return(nil)
		f.expectSummaries()

		_, err := f.svc.UpdateEmployee(ctx, empID.Hex(), validRequest(newDept))
		assert.NoError(t, err)
		f.deptDAO.AssertCalled(t, "IncrementEmployeeCount", ctx, oldDept, int64(-1))
		f.deptDAO.AssertCalled(t, "IncrementEmployeeCount", ctx, newDept, int64(1))
	})

	t.Run("UpdateEmployee_CounterMoveFails_ReturnsError", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		oldDept := primitive.NewObjectID()
		newDept := primitive.NewObjectID()
		empID := primitive.NewObjectID()

		existing := &model.Employee{ID: empID, Department: oldDept, Status: model.StatusActive}
		f.empDAO.On("FindActiveByID", ctx, empID).Return(existing, nil)
		f.empDAO.On("ExistsActiveEmployeeID", ctx, "EMP-001", &empID).Return(false, nil)
		f.empDAO.On("ExistsActiveEmail", ctx, "bob@example.com", &empID).Return(false, nil)
		f.deptDAO.On("FindActiveByID", ctx, newDept).Return(&model.Department{ID: newDept}, nil)
		f.empDAO.On("Update", ctx, testify_mock.AnythingOfType("*model.Employee")).Return(existing, nil)
		f.deptDAO.On("IncrementEmployeeCount", ctx, oldDept, int64(-1)).
			Return(staffhub_errors.ErrDatabaseOperation)

		_, err := f.svc.UpdateEmployee(ctx, empID.Hex(), validRequest(newDept))
		assert.ErrorIs(t, err, staffhub_errors.ErrDatabaseOperation)
	})

	t.Run("UpdateEmployee_OmittedSalary_Preserved", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		deptID := primitive.NewObjectID()
		empID := primitive.NewObjectID()
		salary := 85000.0

		existing := &model.Employee{
			ID:         empID,
			Department: deptID,
			Status:     model.StatusActive,
			Salary:     &salary,
		}
		f.empDAO.On("FindActiveByID", ctx, empID).Return(existing, nil)
		f.empDAO.On("ExistsActiveEmployeeID", ctx, "EMP-001", &empID).Return(false, nil)
		f.empDAO.On("ExistsActiveEmail", ctx, "bob@example.com", &empID).Return(false, nil)
		f.deptDAO.On("FindActiveByID", ctx, deptID).Return(&model.Department{ID: deptID}, nil)
		f.empDAO.On("Update", ctx, testify_mock.AnythingOfType("*model.Employee")).Return(existing, nil)
		f.expectSummaries()

		_, err := f.svc.UpdateEmployee(ctx, empID.Hex(), validRequest(deptID))
		assert.NoError(t, err)
		if assert.NotNil(t, existing.Salary) {
			assert.Equal(t, 85000.0, *existing.Salary)
		}
	})

	t.Run("DeleteEmployee_WithSubordinates_Blocked", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		empID := primitive.NewObjectID()
		deptID := primitive.NewObjectID()

		f.empDAO.On("FindActiveByID", ctx, empID).
			Return(&model.Employee{ID: empID, Department: deptID}, nil)
		f.empDAO.On("CountActiveBySupervisor", ctx, empID).Return(int64(3), nil)

		err := f.svc.DeleteEmployee(ctx, empID.Hex())
		assert.ErrorIs(t, err, staffhub_errors.ErrEmployeeHasSubordinates)
		assert.Contains(t, err.Error(), "3")
		f.empDAO.AssertNotCalled(t, "SoftDelete")
	})

	t.Run("DeleteEmployee_DepartmentManager_Blocked", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		empID := primitive.NewObjectID()
		deptID := primitive.NewObjectID()

		f.empDAO.On("FindActiveByID", ctx, empID).
			Return(&model.Employee{ID: empID, Department: deptID}, nil)
		f.empDAO.On("CountActiveBySupervisor", ctx, empID).Return(int64(0), nil)
		f.deptDAO.On("FindActiveByManager", ctx, empID).
			Return(&model.Department{ID: deptID, Name: "Engineering"}, nil)

		err := f.svc.DeleteEmployee(ctx, empID.Hex())
		assert.ErrorIs(t, err, staffhub_errors.ErrEmployeeManagesDept)
		assert.Contains(t, err.Error(), "Engineering")
		f.empDAO.AssertNotCalled(t, "SoftDelete")
	})

	t.Run("DeleteEmployee_Success_DecrementsCounter", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		empID := primitive.NewObjectID()
		deptID := primitive.NewObjectID()

		f.empDAO.On("FindActiveByID", ctx, empID).
			Return(&model.Employee{ID: empID, Department: deptID}, nil)
		f.empDAO.On("CountActiveBySupervisor", ctx, empID).Return(int64(0), nil)
		f.deptDAO.On("FindActiveByManager", ctx, empID).Return(nil, staffhub_errors.ErrDepartmentNotFound)
		f.empDAO.On("SoftDelete", ctx, empID).Return(nil)
		f.deptDAO.On("IncrementEmployeeCount", ctx, deptID, int64(-1)).Return(nil)

		assert.NoError(t, f.svc.DeleteEmployee(ctx, empID.Hex()))
		f.deptDAO.AssertCalled(t, "IncrementEmployeeCount", ctx, deptID, int64(-1))
	})

	t.Run("DeleteEmployee_CounterUpdateFails_ReturnsError", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		empID := primitive.NewObjectID()
		deptID := primitive.NewObjectID()

		f.empDAO.On("FindActiveByID", ctx, empID).
			Return(&model.Employee{ID: empID, Department: deptID}, nil)
		f.empDAO.On("CountActiveBySupervisor", ctx, empID).Return(int64(0), nil)
		f.deptDAO.On("FindActiveByManager", ctx, empID).Return(nil, staffhub_errors.ErrDepartmentNotFound)
		f.empDAO.On("SoftDelete", ctx, empID).Return(nil)
		f.deptDAO.On("IncrementEmployeeCount", ctx, deptID, int64(-1)).
			Return(staffhub_errors.ErrDatabaseOperation)

		err := f.svc.DeleteEmployee(ctx, empID.Hex())
		assert.ErrorIs(t, err, staffhub_errors.ErrDatabaseOperation)
	})

	t.Run("TransferEmployees_NoneActive_Rejected", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		targetID := primitive.NewObjectID()
		ghost := primitive.NewObjectID()

		f.deptDAO.On("FindActiveByID", ctx, targetID).Return(&model.Department{ID: targetID}, nil)
		f.empDAO.On("FindActiveByIDs", ctx, []primitive.ObjectID{ghost}).Return(nil, nil)

		_, err := f.svc.TransferEmployees(ctx, model.TransferRequest{
			EmployeeIDs:        []string{ghost.Hex()},
			TargetDepartmentID: targetID.Hex(),
		})
		assert.ErrorIs(t, err, staffhub_errors.ErrNoTransferableEmployees)
		f.empDAO.AssertNotCalled(t, "BulkReassignDepartment")
	})

	t.Run("TransferEmployees_Success", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		sourceID := primitive.NewObjectID()
		targetID := primitive.NewObjectID()
		e1 := &model.Employee{ID: primitive.NewObjectID(), Name: "A", Department: sourceID}
		e2 := &model.Employee{ID: primitive.NewObjectID(), Name: "B", Department: sourceID}
		ids := []primitive.ObjectID{e1.ID, e2.ID}

		f.deptDAO.On("FindActiveByID", ctx, targetID).
			Return(&model.Department{ID: targetID, Name: "Sales", Code: "SLS"}, nil)
		f.empDAO.On("FindActiveByIDs", ctx, ids).Return([]*model.Employee{e1, e2}, nil)
		f.empDAO.On("BulkReassignDepartment", ctx, ids, targetID).Return(int64(2), nil)
		f.deptDAO.On("IncrementEmployeeCount", ctx, sourceID, int64(-2)).Return(nil)
		f.deptDAO.On("IncrementEmployeeCount", ctx, targetID, int64(2)).Return(nil)

		result, err := f.svc.TransferEmployees(ctx, model.TransferRequest{
			EmployeeIDs:        []string{e1.ID.Hex(), e2.ID.Hex()},
			TargetDepartmentID: targetID.Hex(),
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, result.TransferredCount)
		assert.Equal(t, "Sales", result.TargetDepartment.Name)
		assert.Len(t, result.TransferredEmployees, 2)
	})

	t.Run("GetEmployee_CachesDetail", func(t *testing.T) {
		f := newEmployeeServiceFixture()
		empID := primitive.NewObjectID()
		deptID := primitive.NewObjectID()

		f.empDAO.On("FindActiveByID", ctx, empID).
			Return(&model.Employee{ID: empID, Department: deptID}, nil).Once()
		f.empDAO.On("ListActiveBySupervisor", ctx, empID).Return(nil, nil).Once()
		f.expectSummaries()

		first, err := f.svc.GetEmployee(ctx, empID.Hex())
		assert.NoError(t, err)

		// The second read is served from the cache without touching the DAO.
		second, err := f.svc.GetEmployee(ctx, empID.Hex())
		assert.NoError(t, err)
		assert.Equal(t, first, second)
		f.empDAO.AssertNumberOfCalls(t, "FindActiveByID", 1)
	})
}
