package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/staffhubhq/staffhub/api/dao"
	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	"github.com/staffhubhq/staffhub/api/model"
)

// parseID converts a path identifier into an ObjectID, mapping bad input to
// the malformed-identifier error the controllers translate to a 400.
func parseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, staffhub_errors.ErrMalformedID
	}
	return id, nil
}

func parseHireDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, staffhub_errors.ErrInvalidEmployeeData
	}
	return t, nil
}

// employeeEvent is the payload carried by employee lifecycle events; the
// department identifiers drive cache invalidation for every department whose
// cached detail embedded the employee.
type employeeEvent struct {
	EmployeeID    string
	DepartmentIDs []string
}

// buildEmployeeViews populates department, supervisor, and creator summaries
// for a batch of employees with one lookup per referenced collection.
func buildEmployeeViews(
	ctx context.Context,
	employees []*model.Employee,
	departmentDAO dao.IDepartmentDAO,
	employeeDAO dao.IEmployeeDAO,
	adminDAO dao.IAdminDAO,
) ([]*model.EmployeeView, error) {
	views := make([]*model.EmployeeView, 0, len(employees))
	if len(employees) == 0 {
		return views, nil
	}

	deptIDs := make([]primitive.ObjectID, 0, len(employees))
	supervisorIDs := make([]primitive.ObjectID, 0, len(employees))
	adminIDs := make([]primitive.ObjectID, 0, len(employees))
	for _, emp := range employees {
		deptIDs = append(deptIDs, emp.Department)
		if emp.Supervisor != nil {
			supervisorIDs = append(supervisorIDs, *emp.Supervisor)
		}
		if !emp.CreatedBy.IsZero() {
			adminIDs = append(adminIDs, emp.CreatedBy)
		}
	}

	departments, err := departmentDAO.SummariesByIDs(ctx, deptIDs)
	if err != nil {
		return nil, err
	}
	supervisors, err := employeeDAO.SummariesByIDs(ctx, supervisorIDs)
	if err != nil {
		return nil, err
	}
	admins, err := adminDAO.SummariesByIDs(ctx, adminIDs)
	if err != nil {
		return nil, err
	}

	for _, emp := range employees {
		view := &model.EmployeeView{Employee: *emp}
		view.DepartmentInfo = departments[emp.Department]
		if emp.Supervisor != nil {
			view.SupervisorInfo = supervisors[*emp.Supervisor]
		}
		if !emp.CreatedBy.IsZero() {
			view.CreatedByMe = admins[emp.CreatedBy]
		}
		views = append(views, view)
	}
	return views, nil
}
