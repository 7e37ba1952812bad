package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/staffhubhq/staffhub/api/dao"
	logger "github.com/staffhubhq/staffhub/api/logging"
	"github.com/staffhubhq/staffhub/api/model"
)

// IConsistencyService centralizes every side effect that keeps
// Department.employeeCount and cross-entity references correct as employees
// are created, moved, or deleted. Keeping the increments in one place bounds
// the blast radius of a missed update; the reconcile path is the correctness
// backstop for the non-transactional multi-step sequences.
type IConsistencyService interface {
	EmployeeHired(ctx context.Context, departmentID primitive.ObjectID) error
	EmployeeMoved(ctx context.Context, oldDepartmentID, newDepartmentID primitive.ObjectID) error
	EmployeeRemoved(ctx context.Context, departmentID primitive.ObjectID) error
	TransferEmployees(ctx context.Context, employees []*model.Employee, target primitive.ObjectID) (int64, error)
	Reconcile(ctx context.Context, department *model.Department) (int64, error)
}

type ConsistencyService struct {
	departmentDAO dao.IDepartmentDAO
	employeeDAO   dao.IEmployeeDAO
}

var _ IConsistencyService = &ConsistencyService{}

func NewConsistencyService(departmentDAO dao.IDepartmentDAO, employeeDAO dao.IEmployeeDAO) *ConsistencyService {
	return &ConsistencyService{
		departmentDAO: departmentDAO,
		employeeDAO:   employeeDAO,
	}
}

func (s *ConsistencyService) EmployeeHired(ctx context.Context, departmentID primitive.ObjectID) error {
	return s.departmentDAO.IncrementEmployeeCount(ctx, departmentID, 1)
}

// EmployeeMoved applies two independent atomic increments; there is no
// transaction spanning them, so a failure between the two leaves the counters
// stale until the next reconcile-on-read.
func (s *ConsistencyService) EmployeeMoved(ctx context.Context, oldDepartmentID, newDepartmentID primitive.ObjectID) error {
	if oldDepartmentID == newDepartmentID {
		return nil
	}
	if err := s.departmentDAO.IncrementEmployeeCount(ctx, oldDepartmentID, -1); err != nil {
		return err
	}
	return s.departmentDAO.IncrementEmployeeCount(ctx, newDepartmentID, 1)
}

func (s *ConsistencyService) EmployeeRemoved(ctx context.Context, departmentID primitive.ObjectID) error {
	return s.departmentDAO.IncrementEmployeeCount(ctx, departmentID, -1)
}

// TransferEmployees reassigns the given employees to the target department,
// clears their supervisor links, and settles the counters: each source
// department is decremented by the number of employees it loses, the target
// is incremented by the total. An employee already in the target contributes
// to both sides and nets out to zero, matching the per-source bookkeeping.
func (s *ConsistencyService) TransferEmployees(ctx context.Context, employees []*model.Employee, target primitive.ObjectID) (int64, error) {
	ids := make([]primitive.ObjectID, 0, len(employees))
	sourceCounts := make(map[primitive.ObjectID]int64)
	for _, emp := range employees {
		ids = append(ids, emp.ID)
		sourceCounts[emp.Department]++
	}

	moved, err := s.employeeDAO.BulkReassignDepartment(ctx, ids, target)
	if err != nil {
		return 0, err
	}

	for sourceID, count := range sourceCounts {
		if err := s.departmentDAO.IncrementEmployeeCount(ctx, sourceID, -count); err != nil {
			return moved, err
		}
	}
	if err := s.departmentDAO.IncrementEmployeeCount(ctx, target, int64(len(employees))); err != nil {
		return moved, err
	}

	logger.Info("Employees transferred",
		zap.Int64("moved", moved),
		zap.Int("sourceDepartments", len(sourceCounts)),
		zap.String("targetDept", target.Hex()))
	return moved, nil
}

// Reconcile overwrites a stale stored counter with the live count of active
// employees referencing the department. Called on department reads; the
// reporting paths never reconcile.
func (s *ConsistencyService) Reconcile(ctx context.Context, department *model.Department) (int64, error) {
	live, err := s.employeeDAO.CountActiveByDepartment(ctx, department.ID)
	if err != nil {
		return department.EmployeeCount, err
	}

	if live != department.EmployeeCount {
		logger.Warn("Department employee count out of sync, reconciling",
			zap.String("deptID", department.ID.Hex()),
			zap.Int64("stored", department.EmployeeCount),
			zap.Int64("live", live))
		if err := s.departmentDAO.SetEmployeeCount(ctx, department.ID, live); err != nil {
			return department.EmployeeCount, err
		}
		department.EmployeeCount = live
	}
	return live, nil
}
