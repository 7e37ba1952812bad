// api/controller/controllers.go
package controller

import "github.com/staffhubhq/staffhub/api/service"

type Controllers struct {
	Auth       *AuthController
	Admin      *AdminController
	Department *DepartmentController
	Employee   *EmployeeController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Auth:       NewAuthController(services.Admin),
		Admin:      NewAdminController(services.Admin, services.Stats),
		Department: NewDepartmentController(services.Department, services.Stats),
		Employee:   NewEmployeeController(services.Employee, services.Stats),
	}
}
