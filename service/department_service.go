package service

import (
	"context"
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

// IDepartmentService defines the interface for department operations
type IDepartmentService interface {
	CreateDepartment(ctx context.Context, req model.DepartmentRequest, creatorID string) (*model.DepartmentView, error)
	UpdateDepartment(ctx context.Context, departmentID string, req model.DepartmentRequest) (*model.DepartmentView, error)
	DeleteDepartment(ctx context.Context, departmentID string) error
	GetDepartment(ctx context.Context, departmentID string) (*model.DepartmentDetail, error)
	ListDepartments(ctx context.Context, criteria model.DepartmentSearchCriteria) ([]*model.DepartmentView, *model.Pagination, error)
}

// DepartmentService handles business logic for department operations
type DepartmentService struct {
	departmentDAO  dao.IDepartmentDAO
	employeeDAO    dao.IEmployeeDAO
	adminDAO       dao.IAdminDAO
	consistency    IConsistencyService
	validationUtil *util.ValidationUtil
	cacheService   util.ICacheService
	eventBus       *util.EventBus
}

var _ IDepartmentService = &DepartmentService{}

func NewDepartmentService(
	departmentDAO dao.IDepartmentDAO,
	employeeDAO dao.IEmployeeDAO,
	adminDAO dao.IAdminDAO,
	consistency IConsistencyService,
	validationUtil *util.ValidationUtil,
	cacheService util.ICacheService,
	eventBus *util.EventBus,
) *DepartmentService {
	service := &DepartmentService{
		departmentDAO:  departmentDAO,
		employeeDAO:    employeeDAO,
		adminDAO:       adminDAO,
		consistency:    consistency,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		eventBus:       eventBus,
	}

	// A cached department detail embeds its employee list, so employee
	// lifecycle events invalidate every affected department.
	for _, eventType := range []string{
		util.EventEmployeeCreated,
		util.EventEmployeeUpdated,
		util.EventEmployeeDeleted,
		util.EventEmployeesTransferred,
	} {
		eventBus.Subscribe(eventType, service.handleEmployeeChanged)
	}

	return service
}

func (s *DepartmentService) handleEmployeeChanged(ctx context.Context, event util.Event) error {
	payload, ok := event.Payload.(employeeEvent)
	if !ok {
		return nil
	}
	for _, deptID := range payload.DepartmentIDs {
		if err := s.cacheService.DeleteDepartmentDetail(ctx, deptID); err != nil {
			logger.Warn("Failed to invalidate cached department",
				zap.Error(err),
				zap.String("deptID", deptID))
		}
	}
	return nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, req model.DepartmentRequest, creatorID string) (*model.DepartmentView, error) {
	if err := s.validationUtil.ValidateDepartmentRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", staffhub_errors.ErrInvalidDepartmentData, err)
	}

	createdBy, err := parseID(creatorID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	if taken, err := s.departmentDAO.ExistsActiveName(ctx, name, nil); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateDepartmentName
	}
	if taken, err := s.departmentDAO.ExistsActiveCode(ctx, code, nil); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateDepartmentCode
	}

	manager, err := s.resolveManager(ctx, req.ManagerID)
	if err != nil {
		return nil, err
	}

	department := &model.Department{
		Name:        name,
		Code:        code,
		Description: strings.TrimSpace(req.Description),
		Manager:     manager,
		Location:    strings.TrimSpace(req.Location),
		Phone:       strings.TrimSpace(req.Phone),
		CreatedBy:   createdBy,
	}
	if err := s.departmentDAO.Create(ctx, department); err != nil {
		return nil, err
	}

	return s.buildView(ctx, department)
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, departmentID string, req model.DepartmentRequest) (*model.DepartmentView, error) {
	if err := s.validationUtil.ValidateDepartmentRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", staffhub_errors.ErrInvalidDepartmentData, err)
	}

	id, err := parseID(departmentID)
	if err != nil {
		return nil, err
	}

	existing, err := s.departmentDAO.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	if taken, err := s.departmentDAO.ExistsActiveName(ctx, name, &id); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateDepartmentName
	}
	if taken, err := s.departmentDAO.ExistsActiveCode(ctx, code, &id); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateDepartmentCode
	}

	manager, err := s.resolveManager(ctx, req.ManagerID)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.Code = code
	existing.Description = strings.TrimSpace(req.Description)
	existing.Location = strings.TrimSpace(req.Location)
	existing.Phone = strings.TrimSpace(req.Phone)
	existing.Manager = manager

	updated, err := s.departmentDAO.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventDepartmentUpdated, employeeEvent{DepartmentIDs: []string{departmentID}})
	if err := s.cacheService.DeleteDepartmentDetail(ctx, departmentID); err != nil {
		logger.Warn("Failed to invalidate cached department", zap.Error(err), zap.String("deptID", departmentID))
	}

	return s.buildView(ctx, updated)
}

// DeleteDepartment re-derives the employee count from a live query rather
// than trusting the cached counter, so a stale counter can neither block a
// legitimate delete nor allow an orphaning one.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, departmentID string) error {
	id, err := parseID(departmentID)
	if err != nil {
		return err
	}

	if _, err := s.departmentDAO.FindActiveByID(ctx, id); err != nil {
		return err
	}

	live, err := s.employeeDAO.CountActiveByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if live > 0 {
		return fmt.Errorf("%w: %d employees still assigned", staffhub_errors.ErrDepartmentHasEmployees, live)
	}

	if err := s.departmentDAO.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.eventBus.Publish(ctx, util.EventDepartmentDeleted, employeeEvent{DepartmentIDs: []string{departmentID}})
	if err := s.cacheService.DeleteDepartmentDetail(ctx, departmentID); err != nil {
		logger.Warn("Failed to invalidate cached department", zap.Error(err), zap.String("deptID", departmentID))
	}
	return nil
}

func (s *DepartmentService) GetDepartment(ctx context.Context, departmentID string) (*model.DepartmentDetail, error) {
	id, err := parseID(departmentID)
	if err != nil {
		return nil, err
	}

	if cached, err := s.cacheService.GetDepartmentDetail(ctx, departmentID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		logger.Debug("Department cache lookup failed", zap.Error(err), zap.String("deptID", departmentID))
	}

	department, err := s.departmentDAO.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Self-healing read: the stored counter is overwritten when it
	// disagrees with the live count.
	if _, err := s.consistency.Reconcile(ctx, department); err != nil {
		return nil, err
	}

	employees, err := s.employeeDAO.ListActiveByDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	employeeViews, err := buildEmployeeViews(ctx, employees, s.departmentDAO, s.employeeDAO, s.adminDAO)
	if err != nil {
		return nil, err
	}

	view, err := s.buildView(ctx, department)
	if err != nil {
		return nil, err
	}

	detail := &model.DepartmentDetail{
		Department: *view,
		Employees:  employeeViews,
	}
	if err := s.cacheService.SetDepartmentDetail(ctx, departmentID, detail); err != nil {
		logger.Warn("Failed to cache department detail", zap.Error(err), zap.String("deptID", departmentID))
	}
	return detail, nil
}

func (s *DepartmentService) ListDepartments(ctx context.Context, criteria model.DepartmentSearchCriteria) ([]*model.DepartmentView, *model.Pagination, error) {
	departments, total, err := s.departmentDAO.List(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}

	// The list path reconciles each returned counter against the live
	// employee count before responding.
	for _, department := range departments {
		if _, err := s.consistency.Reconcile(ctx, department); err != nil {
			return nil, nil, err
		}
	}

	views, err := s.buildViews(ctx, departments)
	if err != nil {
		return nil, nil, err
	}
	return views, model.NewPagination(criteria.Page, criteria.Limit, total), nil
}

func (s *DepartmentService) resolveManager(ctx context.Context, managerID string) (*primitive.ObjectID, error) {
	if managerID == "" {
		return nil, nil
	}
	id, err := parseID(managerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.employeeDAO.FindActiveByID(ctx, id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (s *DepartmentService) buildView(ctx context.Context, department *model.Department) (*model.DepartmentView, error) {
	views, err := s.buildViews(ctx, []*model.Department{department})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *DepartmentService) buildViews(ctx context.Context, departments []*model.Department) ([]*model.DepartmentView, error) {
	views := make([]*model.DepartmentView, 0, len(departments))
	if len(departments) == 0 {
		return views, nil
	}

	managerIDs := make([]primitive.ObjectID, 0, len(departments))
	adminIDs := make([]primitive.ObjectID, 0, len(departments))
	for _, department := range departments {
		if department.Manager != nil {
			managerIDs = append(managerIDs, *department.Manager)
		}
		if !department.CreatedBy.IsZero() {
			adminIDs = append(adminIDs, department.CreatedBy)
		}
	}

	managers, err := s.employeeDAO.SummariesByIDs(ctx, managerIDs)
	if err != nil {
		return nil, err
	}
	admins, err := s.adminDAO.SummariesByIDs(ctx, adminIDs)
	if err != nil {
		return nil, err
	}

	for _, department := range departments {
		view := &model.DepartmentView{Department: *department}
		if department.Manager != nil {
			view.ManagerInfo = managers[*department.Manager]
		}
		if !department.CreatedBy.IsZero() {
			view.CreatedByMe = admins[department.CreatedBy]
		}
		views = append(views, view)
	}
	return views, nil
}
