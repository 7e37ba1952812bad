package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/staffhubhq/staffhub/api/dao"
	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	logger "github.com/staffhubhq/staffhub/api/logging"
	"github.com/staffhubhq/staffhub/api/model"
	"github.com/staffhubhq/staffhub/api/util"
)

// IEmployeeService defines the interface for employee operations
type IEmployeeService interface {
	CreateEmployee(ctx context.Context, req model.EmployeeRequest, creatorID string) (*model.EmployeeView, error)
	UpdateEmployee(ctx context.Context, employeeID string, req model.EmployeeRequest) (*model.EmployeeView, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
	GetEmployee(ctx context.Context, employeeID string) (*model.EmployeeDetail, error)
	ListEmployees(ctx context.Context, criteria model.EmployeeSearchCriteria) ([]*model.EmployeeView, *model.Pagination, error)
	TransferEmployees(ctx context.Context, req model.TransferRequest) (*model.TransferResult, error)
}

// EmployeeService handles business logic for employee operations
type EmployeeService struct {
	employeeDAO    dao.IEmployeeDAO
	departmentDAO  dao.IDepartmentDAO
	adminDAO       dao.IAdminDAO
	consistency    IConsistencyService
	validationUtil *util.ValidationUtil
	cacheService   util.ICacheService
	eventBus       *util.EventBus
}

var _ IEmployeeService = &EmployeeService{}

func NewEmployeeService(
	employeeDAO dao.IEmployeeDAO,
	departmentDAO dao.IDepartmentDAO,
	adminDAO dao.IAdminDAO,
	consistency IConsistencyService,
	validationUtil *util.ValidationUtil,
	cacheService util.ICacheService,
	eventBus *util.EventBus,
) *EmployeeService {
	service := &EmployeeService{
		employeeDAO:    employeeDAO,
		departmentDAO:  departmentDAO,
		adminDAO:       adminDAO,
		consistency:    consistency,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		eventBus:       eventBus,
	}

	for _, eventType := range []string{
		util.EventEmployeeUpdated,
		util.EventEmployeeDeleted,
		util.EventEmployeesTransferred,
	} {
		eventBus.Subscribe(eventType, service.handleEmployeeChanged)
	}

	return service
}

func (s *EmployeeService) handleEmployeeChanged(ctx context.Context, event util.Event) error {
	payload, ok := event.Payload.(employeeEvent)
	if !ok || payload.EmployeeID == "" {
		return nil
	}
	if err := s.cacheService.DeleteEmployeeDetail(ctx, payload.EmployeeID); err != nil {
		logger.Warn("Failed to invalidate cached employee",
			zap.Error(err),
			zap.String("employeeID", payload.EmployeeID))
	}
	return nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, req model.EmployeeRequest, creatorID string) (*model.EmployeeView, error) {
	if err := s.validationUtil.ValidateEmployeeRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", staffhub_errors.ErrInvalidEmployeeData, err)
	}

	createdBy, err := parseID(creatorID)
	if err != nil {
		return nil, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if taken, err := s.employeeDAO.ExistsActiveEmployeeID(ctx, employeeID, nil); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateEmployeeID
	}
	if taken, err := s.employeeDAO.ExistsActiveEmail(ctx, email, nil); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateEmployeeEmail
	}

	departmentID, err := parseID(req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.departmentDAO.FindActiveByID(ctx, departmentID); err != nil {
		return nil, err
	}

	supervisor, err := s.resolveSupervisor(ctx, req.SupervisorID, departmentID, nil)
	if err != nil {
		return nil, err
	}

	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusProbation
	}

	employee := &model.Employee{
		Name:       strings.TrimSpace(req.Name),
		EmployeeID: employeeID,
		Email:      email,
		Phone:      strings.TrimSpace(req.Phone),
		Position:   strings.TrimSpace(req.Position),
		Salary:     req.Salary,
		HireDate:   hireDate,
		Department: departmentID,
		Supervisor: supervisor,
		Status:     status,
		Address:    strings.TrimSpace(req.Address),
		CreatedBy:  createdBy,
	}
	if err := s.employeeDAO.Create(ctx, employee); err != nil {
		return nil, err
	}

	if err := s.consistency.EmployeeHired(ctx, departmentID); err != nil {
		logger.Error("Failed to increment department employee count",
			zap.Error(err),
			zap.String("deptID", departmentID.Hex()))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventEmployeeCreated, employeeEvent{
		EmployeeID:    employee.ID.Hex(),
		DepartmentIDs: []string{departmentID.Hex()},
	})

	return s.buildView(ctx, employee)
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, employeeID string, req model.EmployeeRequest) (*model.EmployeeView, error) {
	if err := s.validationUtil.ValidateEmployeeRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", staffhub_errors.ErrInvalidEmployeeData, err)
	}

	id, err := parseID(employeeID)
	if err != nil {
		return nil, err
	}

	existing, err := s.employeeDAO.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	badgeID := strings.TrimSpace(req.EmployeeID)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if taken, err := s.employeeDAO.ExistsActiveEmployeeID(ctx, badgeID, &id); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateEmployeeID
	}
	if taken, err := s.employeeDAO.ExistsActiveEmail(ctx, email, &id); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateEmployeeEmail
	}

	departmentID, err := parseID(req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.departmentDAO.FindActiveByID(ctx, departmentID); err != nil {
		return nil, err
	}

	// The supervisor must belong to the department the employee will be
	// in after this update, not the one being left.
	supervisor, err := s.resolveSupervisor(ctx, req.SupervisorID, departmentID, &id)
	if err != nil {
		return nil, err
	}

	hireDate := existing.HireDate
	if req.HireDate != "" {
		if hireDate, err = parseHireDate(req.HireDate); err != nil {
			return nil, err
		}
	}

	status := req.Status
	if status == "" {
		status = existing.Status
	}

	oldDepartment := existing.Department

	existing.Name = strings.TrimSpace(req.Name)
	existing.EmployeeID = badgeID
	existing.Email = email
	existing.Phone = strings.TrimSpace(req.Phone)
	existing.Position = strings.TrimSpace(req.Position)
	// An absent salary leaves the stored value alone, like the absent
	// hireDate and status below.
	if req.Salary != nil {
		existing.Salary = req.Salary
	}
	existing.HireDate = hireDate
	existing.Department = departmentID
	existing.Supervisor = supervisor
	existing.Status = status
	existing.Address = strings.TrimSpace(req.Address)

	updated, err := s.employeeDAO.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	if oldDepartment != departmentID {
		if err := s.consistency.EmployeeMoved(ctx, oldDepartment, departmentID); err != nil {
			logger.Error("Failed to move department employee counts",
				zap.Error(err),
				zap.String("fromDeptID", oldDepartment.Hex()),
				zap.String("toDeptID", departmentID.Hex()))
			return nil, err
		}
	}

	s.eventBus.Publish(ctx, util.EventEmployeeUpdated, employeeEvent{
		EmployeeID:    employeeID,
		DepartmentIDs: []string{oldDepartment.Hex(), departmentID.Hex()},
	})

	return s.buildView(ctx, updated)
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	id, err := parseID(employeeID)
	if err != nil {
		return err
	}

	employee, err := s.employeeDAO.FindActiveByID(ctx, id)
	if err != nil {
		return err
	}

	subordinates, err := s.employeeDAO.CountActiveBySupervisor(ctx, id)
	if err != nil {
		return err
	}
	if subordinates > 0 {
		return fmt.Errorf("%w: %d direct reports", staffhub_errors.ErrEmployeeHasSubordinates, subordinates)
	}

	managed, err := s.departmentDAO.FindActiveByManager(ctx, id)
	if err != nil && !errors.Is(err, staffhub_errors.ErrDepartmentNotFound) {
		return err
	}
	if managed != nil {
		return fmt.Errorf("%w: manages %s", staffhub_errors.ErrEmployeeManagesDept, managed.Name)
	}

	if err := s.employeeDAO.SoftDelete(ctx, id); err != nil {
		return err
	}

	if err := s.consistency.EmployeeRemoved(ctx, employee.Department); err != nil {
		logger.Error("Failed to decrement department employee count",
			zap.Error(err),
			zap.String("deptID", employee.Department.Hex()))
		return err
	}

	s.eventBus.Publish(ctx, util.EventEmployeeDeleted, employeeEvent{
		EmployeeID:    employeeID,
		DepartmentIDs: []string{employee.Department.Hex()},
	})
	return nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, employeeID string) (*model.EmployeeDetail, error) {
	id, err := parseID(employeeID)
	if err != nil {
		return nil, err
	}

	if cached, err := s.cacheService.GetEmployeeDetail(ctx, employeeID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		logger.Debug("Employee cache lookup failed", zap.Error(err), zap.String("employeeID", employeeID))
	}

	employee, err := s.employeeDAO.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subordinates, err := s.employeeDAO.ListActiveBySupervisor(ctx, id)
	if err != nil {
		return nil, err
	}
	subordinateViews, err := buildEmployeeViews(ctx, subordinates, s.departmentDAO, s.employeeDAO, s.adminDAO)
	if err != nil {
		return nil, err
	}

	view, err := s.buildView(ctx, employee)
	if err != nil {
		return nil, err
	}

	detail := &model.EmployeeDetail{
		Employee:     *view,
		Subordinates: subordinateViews,
	}
	if err := s.cacheService.SetEmployeeDetail(ctx, employeeID, detail); err != nil {
		logger.Warn("Failed to cache employee detail", zap.Error(err), zap.String("employeeID", employeeID))
	}
	return detail, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context, criteria model.EmployeeSearchCriteria) ([]*model.EmployeeView, *model.Pagination, error) {
	employees, total, err := s.employeeDAO.List(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}
	views, err := buildEmployeeViews(ctx, employees, s.departmentDAO, s.employeeDAO, s.adminDAO)
	if err != nil {
		return nil, nil, err
	}
	return views, model.NewPagination(criteria.Page, criteria.Limit, total), nil
}

func (s *EmployeeService) TransferEmployees(ctx context.Context, req model.TransferRequest) (*model.TransferResult, error) {
	targetID, err := parseID(req.TargetDepartmentID)
	if err != nil {
		return nil, err
	}
	target, err := s.departmentDAO.FindActiveByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(req.EmployeeIDs))
	for _, hex := range req.EmployeeIDs {
		id, err := parseID(hex)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	employees, err := s.employeeDAO.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, staffhub_errors.ErrNoTransferableEmployees
	}

	moved, err := s.consistency.TransferEmployees(ctx, employees, targetID)
	if err != nil {
		return nil, err
	}

	departmentIDs := []string{targetID.Hex()}
	transferred := make([]*model.EmployeeSummary, 0, len(employees))
	for _, employee := range employees {
		departmentIDs = append(departmentIDs, employee.Department.Hex())
		transferred = append(transferred, &model.EmployeeSummary{
			ID:         employee.ID,
			Name:       employee.Name,
			EmployeeID: employee.EmployeeID,
			Position:   employee.Position,
			Email:      employee.Email,
		})
		s.eventBus.Publish(ctx, util.EventEmployeesTransferred, employeeEvent{
			EmployeeID:    employee.ID.Hex(),
			DepartmentIDs: nil,
		})
	}
	s.eventBus.Publish(ctx, util.EventEmployeesTransferred, employeeEvent{DepartmentIDs: departmentIDs})

	return &model.TransferResult{
		TransferredCount: int(moved),
		TargetDepartment: model.DepartmentSummary{
			ID:   target.ID,
			Name: target.Name,
			Code: target.Code,
		},
		TransferredEmployees: transferred,
	}, nil
}

// resolveSupervisor validates the optional supervisor reference. The
// supervisor must be an active employee in the same department, and an
// employee can never supervise themselves.
func (s *EmployeeService) resolveSupervisor(ctx context.Context, supervisorID string, departmentID primitive.ObjectID, self *primitive.ObjectID) (*primitive.ObjectID, error) {
	if supervisorID == "" {
		return nil, nil
	}
	id, err := parseID(supervisorID)
	if err != nil {
		return nil, err
	}
	if self != nil && id == *self {
		return nil, staffhub_errors.ErrSelfSupervision
	}
	supervisor, err := s.employeeDAO.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffhub_errors.ErrEmployeeNotFound) {
			return nil, staffhub_errors.ErrSupervisorNotFound
		}
		return nil, err
	}
	if supervisor.Department != departmentID {
		return nil, staffhub_errors.ErrSupervisorOtherDept
	}
	return &id, nil
}

func (s *EmployeeService) buildView(ctx context.Context, employee *model.Employee) (*model.EmployeeView, error) {
	views, err := buildEmployeeViews(ctx, []*model.Employee{employee}, s.departmentDAO, s.employeeDAO, s.adminDAO)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}
