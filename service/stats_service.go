package service

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/staffhubhq/staffhub/api/dao"
	"github.com/staffhubhq/staffhub/api/model"
)

// IStatsService is the read-only reporting engine. None of its operations
// mutate stored counters.
type IStatsService interface {
	SystemOverview(ctx context.Context) (*model.SystemOverview, error)
	DepartmentStats(ctx context.Context, departmentID string) (*model.DepartmentStats, error)
	EmployeeStats(ctx context.Context) (*model.EmployeeStats, error)
}

type StatsService struct {
	adminDAO      dao.IAdminDAO
	departmentDAO dao.IDepartmentDAO
	employeeDAO   dao.IEmployeeDAO
}

var _ IStatsService = &StatsService{}

func NewStatsService(adminDAO dao.IAdminDAO, departmentDAO dao.IDepartmentDAO, employeeDAO dao.IEmployeeDAO) *StatsService {
	return &StatsService{
		adminDAO:      adminDAO,
		departmentDAO: departmentDAO,
		employeeDAO:   employeeDAO,
	}
}

func (s *StatsService) SystemOverview(ctx context.Context) (*model.SystemOverview, error) {
	overview := &model.SystemOverview{GeneratedAt: time.Now().UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.adminDAO.CountActive(gctx)
		overview.TotalAdmins = count
		return err
	})
	g.Go(func() error {
		count, err := s.departmentDAO.CountActive(gctx)
		overview.TotalDepartments = count
		return err
	})
	g.Go(func() error {
		count, err := s.employeeDAO.CountActive(gctx)
		overview.TotalEmployees = count
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

func (s *StatsService) DepartmentStats(ctx context.Context, departmentID string) (*model.DepartmentStats, error) {
	id, err := parseID(departmentID)
	if err != nil {
		return nil, err
	}

	department, err := s.departmentDAO.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.employeeDAO.CountsByStatus(ctx, &id)
	if err != nil {
		return nil, err
	}
	// Every status appears in the response even when no employee holds it.
	byStatus := map[string]int64{
		"active":    0,
		"onLeave":   0,
		"probation": 0,
		"resigned":  0,
	}
	var total int64
	for _, sc := range statusCounts {
		total += sc.Count
		switch sc.Status {
		case model.StatusActive:
			byStatus["active"] = sc.Count
		case model.StatusOnLeave:
			byStatus["onLeave"] = sc.Count
		case model.StatusProbation:
			byStatus["probation"] = sc.Count
		case model.StatusResigned:
			byStatus["resigned"] = sc.Count
		}
	}

	avgSalary, err := s.employeeDAO.AverageSalaryByDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	since := time.Now().UTC().AddDate(0, 0, -30)
	recent, err := s.employeeDAO.RecentHiresByDepartment(ctx, id, since)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []*model.EmployeeRecent{}
	}

	return &model.DepartmentStats{
		DepartmentInfo: model.DepartmentSummary{
			ID:   department.ID,
			Name: department.Name,
			Code: department.Code,
		},
		Statistics: model.DepartmentStatistics{
			TotalEmployees:    total,
			EmployeesByStatus: byStatus,
			AverageSalary:     math.Round(avgSalary*100) / 100,
			RecentHires: model.RecentHireSummary{
				Count:     len(recent),
				Employees: recent,
			},
		},
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (s *StatsService) EmployeeStats(ctx context.Context) (*model.EmployeeStats, error) {
	stats := &model.EmployeeStats{GeneratedAt: time.Now().UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview, err := s.employeeDAO.SalaryOverview(gctx)
		if err != nil {
			return err
		}
		overview.AverageSalary = math.Round(overview.AverageSalary)
		stats.Overview = *overview
		return nil
	})
	g.Go(func() error {
		counts, err := s.employeeDAO.CountsByStatus(gctx, nil)
		if err != nil {
			return err
		}
		stats.StatusDistribution = counts
		return nil
	})
	g.Go(func() error {
		breakdown, err := s.employeeDAO.DepartmentBreakdown(gctx)
		if err != nil {
			return err
		}
		stats.DepartmentDistribution = breakdown
		return nil
	})
	g.Go(func() error {
		buckets, err := s.employeeDAO.SalaryBuckets(gctx)
		if err != nil {
			return err
		}
		stats.SalaryDistribution = buckets
		return nil
	})
	g.Go(func() error {
		since := time.Now().UTC().AddDate(0, 0, -90)
		hires, err := s.employeeDAO.HiresByMonth(gctx, since)
		if err != nil {
			return err
		}
		stats.RecentHires = hires
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// An empty system still reports zeroed aggregates, not nulls.
	if stats.StatusDistribution == nil {
		stats.StatusDistribution = []model.StatusCount{}
	}
	if stats.DepartmentDistribution == nil {
		stats.DepartmentDistribution = []*model.DepartmentBreakdown{}
	}
	if stats.SalaryDistribution == nil {
		stats.SalaryDistribution = []*model.SalaryBucket{}
	}
	if stats.RecentHires == nil {
		stats.RecentHires = []*model.MonthlyHires{}
	}
	return stats, nil
}
