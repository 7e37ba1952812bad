// api/util/cache_service.go

package util

import (
	"context"

	"github.com/staffhubhq/staffhub/api/db"
	"github.com/staffhubhq/staffhub/api/model"
)

// ICacheService is the read-through entity cache used by the services.
type ICacheService interface {
	GetDepartmentDetail(ctx context.Context, id string) (*model.DepartmentDetail, error)
	SetDepartmentDetail(ctx context.Context, id string, detail *model.DepartmentDetail) error
	DeleteDepartmentDetail(ctx context.Context, id string) error
	GetEmployeeDetail(ctx context.Context, id string) (*model.EmployeeDetail, error)
	SetEmployeeDetail(ctx context.Context, id string, detail *model.EmployeeDetail) error
	DeleteEmployeeDetail(ctx context.Context, id string) error
}

type CacheService struct{}

var _ ICacheService = &CacheService{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetDepartmentDetail(ctx context.Context, id string) (*model.DepartmentDetail, error) {
	return db.GetCachedDepartmentDetail(ctx, id)
}

func (c *CacheService) SetDepartmentDetail(ctx context.Context, id string, detail *model.DepartmentDetail) error {
	return db.CacheDepartmentDetail(ctx, id, detail)
}

func (c *CacheService) DeleteDepartmentDetail(ctx context.Context, id string) error {
	return db.DeleteCachedDepartmentDetail(ctx, id)
}

func (c *CacheService) GetEmployeeDetail(ctx context.Context, id string) (*model.EmployeeDetail, error) {
	return db.GetCachedEmployeeDetail(ctx, id)
}

func (c *CacheService) SetEmployeeDetail(ctx context.Context, id string, detail *model.EmployeeDetail) error {
	return db.CacheEmployeeDetail(ctx, id, detail)
}

func (c *CacheService) DeleteEmployeeDetail(ctx context.Context, id string) error {
	return db.DeleteCachedEmployeeDetail(ctx, id)
}
