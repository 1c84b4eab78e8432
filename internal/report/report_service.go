package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/leave"
	reporterrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/report/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const monthlyCacheTTL = 5 * time.Minute

type Service interface {
	Monthly(ctx context.Context, year, month int) (MonthlyReport, error)
	Summary(ctx context.Context) (DashboardSummary, error)
	ExportMonthly(ctx context.Context, year, month int, format string) (ExportFile, error)
	ExportLeaves(ctx context.Context, filter leave.ListFilter, format string) (ExportFile, error)
}

type service struct {
	repo   Repository
	leaves leave.Service
	rdb    *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, leaves leave.Service, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, leaves: leaves, rdb: rdb, logger: l}
}

// Monthly di-cache di Redis; singleflight mencegah stampede saat cache miss
// bersamaan dari beberapa request admin.
func (s *service) Monthly(ctx context.Context, year, month int) (MonthlyReport, error) {
	if month < 1 || month > 12 {
		return MonthlyReport{}, reporterrors.ErrInvalidMonth
	}

	cacheKey := fmt.Sprintf("report:monthly:%04d-%02d", year, month)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var report MonthlyReport
			if err := json.Unmarshal(cached, &report); err == nil {
				return report, nil
			}
		}
	}

	v, err, _ := s.group.Do(cacheKey, func() (any, error) {
		report, err := s.buildMonthly(ctx, year, month)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(report); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, monthlyCacheTTL).Err(); err != nil {
					s.logger.Warn("cache monthly report failed", zap.Error(err))
				}
			}
		}
		return report, nil
	})
	if err != nil {
		return MonthlyReport{}, err
	}

	return v.(MonthlyReport), nil
}

func (s *service) buildMonthly(ctx context.Context, year, month int) (MonthlyReport, error) {
	attendance, err := s.repo.AttendanceCountsByStatus(ctx, year, month)
	if err != nil {
		s.logger.Error("attendance counts failed", zap.Error(err))
		return MonthlyReport{}, err
	}

	leaveByType, err := s.repo.ApprovedLeaveByType(ctx, year, month)
	if err != nil {
		s.logger.Error("leave by type failed", zap.Error(err))
		return MonthlyReport{}, err
	}

	departments, err := s.repo.DepartmentHeadcount(ctx)
	if err != nil {
		s.logger.Error("department headcount failed", zap.Error(err))
		return MonthlyReport{}, err
	}

	trend, err := s.repo.ApprovedLeaveTrend(ctx, 6)
	if err != nil {
		s.logger.Error("leave trend failed", zap.Error(err))
		return MonthlyReport{}, err
	}

	return MonthlyReport{
		Month:               fmt.Sprintf("%04d-%02d", year, month),
		AttendanceByStatus:  attendance,
		LeaveByType:         leaveByType,
		DepartmentHeadcount: departments,
		Trend:               trend,
	}, nil
}

func (s *service) Summary(ctx context.Context) (DashboardSummary, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	employees, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	pending, err := s.repo.CountPendingLeaves(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	present, err := s.repo.CountPresentOn(ctx, today)
	if err != nil {
		return DashboardSummary{}, err
	}
	approvedDays, err := s.repo.SumApprovedDaysInMonth(ctx, now.Year(), int(now.Month()))
	if err != nil {
		return DashboardSummary{}, err
	}

	return DashboardSummary{
		TotalEmployees:        employees,
		PendingLeaves:         pending,
		PresentToday:          present,
		ApprovedDaysThisMonth: approvedDays,
	}, nil
}

func (s *service) ExportMonthly(ctx context.Context, year, month int, format string) (ExportFile, error) {
	report, err := s.Monthly(ctx, year, month)
	if err != nil {
		return ExportFile{}, err
	}

	baseName := "monthly-report-" + report.Month

	switch format {
	case "csv":
		return monthlyToCSV(baseName, report)
	case "xlsx":
		return monthlyToXLSX(baseName, report)
	case "pdf":
		return monthlyToPDF(baseName, report)
	case "json":
		return toJSONFile(baseName, report)
	default:
		return ExportFile{}, reporterrors.ErrUnknownFormat
	}
}

func (s *service) ExportLeaves(ctx context.Context, filter leave.ListFilter, format string) (ExportFile, error) {
	leaves, err := s.leaves.GetAll(ctx, filter)
	if err != nil {
		return ExportFile{}, err
	}

	baseName := "leave-requests-" + time.Now().UTC().Format("20060102")

	switch format {
	case "csv":
		return leavesToCSV(baseName, leaves)
	case "xlsx":
		return leavesToXLSX(baseName, leaves)
	case "pdf":
		return leavesToPDF(baseName, leaves)
	case "json":
		return toJSONFile(baseName, leaves)
	default:
		return ExportFile{}, reporterrors.ErrUnknownFormat
	}
}
