package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/leave"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/report"
	reporterrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/report/errors"

	"github.com/stretchr/testify/assert"
)

type fakeReportRepository struct {
	attendanceCountsFn func(ctx context.Context, year, month int) ([]report.StatusCountRow, error)
	leaveByTypeFn      func(ctx context.Context, year, month int) ([]report.LeaveTypeRow, error)
	headcountFn        func(ctx context.Context) ([]report.DepartmentRow, error)
	trendFn            func(ctx context.Context, months int) ([]report.TrendPoint, error)
	countEmployeesFn   func(ctx context.Context) (int, error)
	countPendingFn     func(ctx context.Context) (int, error)
	countPresentFn     func(ctx context.Context, date time.Time) (int, error)
	sumApprovedFn      func(ctx context.Context, year, month int) (int, error)
}

func (f *fakeReportRepository) AttendanceCountsByStatus(ctx context.Context, year, month int) ([]report.StatusCountRow, error) {
	if f.attendanceCountsFn != nil {
		return f.attendanceCountsFn(ctx, year, month)
	}
	return nil, nil
}

func (f *fakeReportRepository) ApprovedLeaveByType(ctx context.Context, year, month int) ([]report.LeaveTypeRow, error) {
	if f.leaveByTypeFn != nil {
		return f.leaveByTypeFn(ctx, year, month)
	}
	return nil, nil
}

func (f *fakeReportRepository) DepartmentHeadcount(ctx context.Context) ([]report.DepartmentRow, error) {
	if f.headcountFn != nil {
		return f.headcountFn(ctx)
	}
	return nil, nil
}

func (f *fakeReportRepository) ApprovedLeaveTrend(ctx context.Context, months int) ([]report.TrendPoint, error) {
	if f.trendFn != nil {
		return f.trendFn(ctx, months)
	}
	return nil, nil
}

func (f *fakeReportRepository) CountEmployees(ctx context.Context) (int, error) {
	if f.countEmployeesFn != nil {
		return f.countEmployeesFn(ctx)
	}
	return 0, nil
}

func (f *fakeReportRepository) CountPendingLeaves(ctx context.Context) (int, error) {
	if f.countPendingFn != nil {
		return f.countPendingFn(ctx)
	}
	return 0, nil
}

func (f *fakeReportRepository) CountPresentOn(ctx context.Context, date time.Time) (int, error) {
	if f.countPresentFn != nil {
		return f.countPresentFn(ctx, date)
	}
	return 0, nil
}

func (f *fakeReportRepository) SumApprovedDaysInMonth(ctx context.Context, year, month int) (int, error) {
	if f.sumApprovedFn != nil {
		return f.sumApprovedFn(ctx, year, month)
	}
	return 0, nil
}

type fakeLeaveService struct {
	getAllFn func(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Apply(ctx context.Context, actorID string, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}
func (f *fakeLeaveService) Review(ctx context.Context, adminID, id string, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}
func (f *fakeLeaveService) GetAll(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, filter)
	}
	return nil, nil
}
func (f *fakeLeaveService) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}
func (f *fakeLeaveService) GetMine(ctx context.Context, actorID string) ([]leave.LeaveResponse, error) {
	return nil, nil
}
func (f *fakeLeaveService) Balances(ctx context.Context, employeeID string) ([]leave.BalanceResponse, error) {
	return nil, nil
}

func sampleLeaves() []leave.LeaveResponse {
	return []leave.LeaveResponse{
		{
			EmployeeName:   "Ravi Shankar",
			EmployeeNumber: "EMP001",
			Department:     "Dyeing",
			LeaveType:      leave.TypeAnnual,
			StartDate:      "2024-01-01",
			EndDate:        "2024-01-05",
			TotalDays:      5,
			Status:         leave.StatusApproved,
			Reason:         "Family event",
		},
		{
			EmployeeName:   "Meena Iyer",
			EmployeeNumber: "EMP010",
			Department:     "Spinning",
			LeaveType:      leave.TypeSick,
			StartDate:      "2024-01-08",
			EndDate:        "2024-01-09",
			TotalDays:      2,
			Status:         leave.StatusPending,
			Reason:         "Fever",
		},
	}
}

func TestReportService_Monthly(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles all sections", func(t *testing.T) {
		repo := &fakeReportRepository{
			attendanceCountsFn: func(ctx context.Context, year, month int) ([]report.StatusCountRow, error) {
				assert.Equal(t, 2024, year)
				assert.Equal(t, 1, month)
				return []report.StatusCountRow{{Status: "PRESENT", Count: 40}}, nil
			},
			leaveByTypeFn: func(ctx context.Context, year, month int) ([]report.LeaveTypeRow, error) {
				return []report.LeaveTypeRow{{LeaveType: leave.TypeAnnual, ApprovedCount: 3, TotalDays: 9}}, nil
			},
			headcountFn: func(ctx context.Context) ([]report.DepartmentRow, error) {
				return []report.DepartmentRow{{Department: "Dyeing", Headcount: 12}}, nil
			},
			trendFn: func(ctx context.Context, months int) ([]report.TrendPoint, error) {
				assert.Equal(t, 6, months)
				return []report.TrendPoint{{Month: "2024-01", ApprovedCount: 3, TotalDays: 9}}, nil
			},
		}
		svc := report.NewService(repo, &fakeLeaveService{}, nil)

		result, err := svc.Monthly(ctx, 2024, 1)

		assert.NoError(t, err)
		assert.Equal(t, "2024-01", result.Month)
		assert.Len(t, result.AttendanceByStatus, 1)
		assert.Equal(t, 40, result.AttendanceByStatus[0].Count)
		assert.Len(t, result.Trend, 1)
	})

	t.Run("negative invalid month", func(t *testing.T) {
		svc := report.NewService(&fakeReportRepository{}, &fakeLeaveService{}, nil)

		_, err := svc.Monthly(ctx, 2024, 0)
		assert.ErrorIs(t, err, reporterrors.ErrInvalidMonth)
	})
}

func TestReportService_Summary(t *testing.T) {
	ctx := context.Background()

	repo := &fakeReportRepository{
		countEmployeesFn: func(ctx context.Context) (int, error) { return 55, nil },
		countPendingFn:   func(ctx context.Context) (int, error) { return 4, nil },
		countPresentFn: func(ctx context.Context, date time.Time) (int, error) {
			assert.Equal(t, 0, date.Hour())
			return 48, nil
		},
		sumApprovedFn: func(ctx context.Context, year, month int) (int, error) { return 21, nil },
	}
	svc := report.NewService(repo, &fakeLeaveService{}, nil)

	summary, err := svc.Summary(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 55, summary.TotalEmployees)
	assert.Equal(t, 4, summary.PendingLeaves)
	assert.Equal(t, 48, summary.PresentToday)
	assert.Equal(t, 21, summary.ApprovedDaysThisMonth)
}

func TestReportService_ExportLeaves(t *testing.T) {
	ctx := context.Background()

	leavesSvc := &fakeLeaveService{
		getAllFn: func(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
			return sampleLeaves(), nil
		},
	}
	svc := report.NewService(&fakeReportRepository{}, leavesSvc, nil)

	t.Run("csv", func(t *testing.T) {
		file, err := svc.ExportLeaves(ctx, leave.ListFilter{}, "csv")

		assert.NoError(t, err)
		assert.Equal(t, "text/csv", file.ContentType)
		assert.Contains(t, file.Name, ".csv")

		records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
		assert.NoError(t, err)
		assert.Len(t, records, 3)
		assert.Equal(t, "Employee", records[0][0])
		assert.Equal(t, "Ravi Shankar", records[1][0])
		assert.Equal(t, "5", records[1][6])
	})

	t.Run("json", func(t *testing.T) {
		file, err := svc.ExportLeaves(ctx, leave.ListFilter{}, "json")

		assert.NoError(t, err)
		assert.Equal(t, "application/json", file.ContentType)

		var decoded []leave.LeaveResponse
		assert.NoError(t, json.Unmarshal(file.Data, &decoded))
		assert.Len(t, decoded, 2)
		assert.Equal(t, "EMP001", decoded[0].EmployeeNumber)
	})

	t.Run("xlsx", func(t *testing.T) {
		file, err := svc.ExportLeaves(ctx, leave.ListFilter{}, "xlsx")

		assert.NoError(t, err)
		assert.NotEmpty(t, file.Data)
		assert.Contains(t, file.Name, ".xlsx")
	})

	t.Run("pdf", func(t *testing.T) {
		file, err := svc.ExportLeaves(ctx, leave.ListFilter{}, "pdf")

		assert.NoError(t, err)
		assert.Equal(t, "application/pdf", file.ContentType)
		assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
	})

	t.Run("negative unknown format", func(t *testing.T) {
		_, err := svc.ExportLeaves(ctx, leave.ListFilter{}, "docx")
		assert.ErrorIs(t, err, reporterrors.ErrUnknownFormat)
	})
}

func TestReportService_ExportMonthly(t *testing.T) {
	ctx := context.Background()

	repo := &fakeReportRepository{
		attendanceCountsFn: func(ctx context.Context, year, month int) ([]report.StatusCountRow, error) {
			return []report.StatusCountRow{{Status: "PRESENT", Count: 40}, {Status: "LATE", Count: 3}}, nil
		},
		leaveByTypeFn: func(ctx context.Context, year, month int) ([]report.LeaveTypeRow, error) {
			return []report.LeaveTypeRow{{LeaveType: leave.TypeSick, ApprovedCount: 2, TotalDays: 4}}, nil
		},
	}
	svc := report.NewService(repo, &fakeLeaveService{}, nil)

	t.Run("csv contains sections", func(t *testing.T) {
		file, err := svc.ExportMonthly(ctx, 2024, 1, "csv")

		assert.NoError(t, err)
		assert.Contains(t, string(file.Data), "Monthly Report,2024-01")
		assert.Contains(t, string(file.Data), "PRESENT,40")
		assert.Contains(t, string(file.Data), "SICK,2,4")
	})

	t.Run("pdf", func(t *testing.T) {
		file, err := svc.ExportMonthly(ctx, 2024, 1, "pdf")

		assert.NoError(t, err)
		assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
	})
}
