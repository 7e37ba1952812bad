// test/mock/cache.go
package mock

import (
	"context"
	"sync"

	"github.com/staffhubhq/staffhub/api/model"
)

// InMemoryCache is a map-backed stand-in for util.ICacheService.
type InMemoryCache struct {
	mu          sync.Mutex
	departments map[string]*model.DepartmentDetail
	employees   map[string]*model.EmployeeDetail
}

func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		departments: make(map[string]*model.DepartmentDetail),
		employees:   make(map[string]*model.EmployeeDetail),
	}
}

func (c *InMemoryCache) GetDepartmentDetail(ctx context.Context, id string) (*model.DepartmentDetail, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.departments[id], nil
}

func (c *InMemoryCache) SetDepartmentDetail(ctx context.Context, id string, detail *model.DepartmentDetail) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.departments[id] = detail
	return nil
}

func (c *InMemoryCache) DeleteDepartmentDetail(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.departments, id)
	return nil
}

func (c *InMemoryCache) GetEmployeeDetail(ctx context.Context, id string) (*model.EmployeeDetail, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.employees[id], nil
}

func (c *InMemoryCache) SetEmployeeDetail(ctx context.Context, id string, detail *model.EmployeeDetail) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.employees[id] = detail
	return nil
}

func (c *InMemoryCache) DeleteEmployeeDetail(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.employees, id)
	return nil
}
