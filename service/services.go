// api/service/services.go
package service

import (
	"github.com/staffhubhq/staffhub/api/dao"
	"github.com/staffhubhq/staffhub/api/db"
	"github.com/staffhubhq/staffhub/api/util"
)

type Services struct {
	Admin       IAdminService
	Department  IDepartmentService
	Employee    IEmployeeService
	Stats       IStatsService
	Consistency IConsistencyService

	AdminDAO dao.IAdminDAO
}

func InitializeServices(
	tokenIssuer *util.TokenIssuer,
	validationUtil *util.ValidationUtil,
	cacheService util.ICacheService,
	eventBus *util.EventBus,
) (*Services, error) {
	adminDAO := dao.NewAdminDAO(db.Admins())
	departmentDAO := dao.NewDepartmentDAO(db.Departments())
	employeeDAO := dao.NewEmployeeDAO(db.Employees())

	consistency := NewConsistencyService(departmentDAO, employeeDAO)

	services := &Services{
		Admin:       NewAdminService(adminDAO, tokenIssuer),
		Department:  NewDepartmentService(departmentDAO, employeeDAO, adminDAO, consistency, validationUtil, cacheService, eventBus),
		Employee:    NewEmployeeService(employeeDAO, departmentDAO, adminDAO, consistency, validationUtil, cacheService, eventBus),
		Stats:       NewStatsService(adminDAO, departmentDAO, employeeDAO),
		Consistency: consistency,
		AdminDAO:    adminDAO,
	}

	return services, nil
}
