package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	AttendanceCountsByStatus(ctx context.Context, year, month int) ([]StatusCountRow, error)
	ApprovedLeaveByType(ctx context.Context, year, month int) ([]LeaveTypeRow, error)
	DepartmentHeadcount(ctx context.Context) ([]DepartmentRow, error)
	ApprovedLeaveTrend(ctx context.Context, months int) ([]TrendPoint, error)
	CountEmployees(ctx context.Context) (int, error)
	CountPendingLeaves(ctx context.Context) (int, error)
	CountPresentOn(ctx context.Context, date time.Time) (int, error)
	SumApprovedDaysInMonth(ctx context.Context, year, month int) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func monthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func (r *repository) AttendanceCountsByStatus(ctx context.Context, year, month int) ([]StatusCountRow, error) {
	start, end := monthBounds(year, month)

	var rows []StatusCountRow
	err := r.db.WithContext(ctx).Raw(`
SELECT status, COUNT(*) AS count
FROM attendance_records
WHERE attendance_date >= ? AND attendance_date < ?
GROUP BY status
ORDER BY status
`, start, end).Scan(&rows).Error
	return rows, err
}

func (r *repository) ApprovedLeaveByType(ctx context.Context, year, month int) ([]LeaveTypeRow, error) {
	start, end := monthBounds(year, month)

	var rows []LeaveTypeRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	leave_type,
	COUNT(*) AS approved_count,
	COALESCE(SUM(total_days), 0) AS total_days
FROM leaves
WHERE status = 'APPROVED'
	AND start_date >= ? AND start_date < ?
GROUP BY leave_type
ORDER BY leave_type
`, start, end).Scan(&rows).Error
	return rows, err
}

func (r *repository) DepartmentHeadcount(ctx context.Context) ([]DepartmentRow, error) {
	var rows []DepartmentRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	COALESCE(NULLIF(department, ''), 'Unassigned') AS department,
	COUNT(*) AS headcount
FROM employees
WHERE is_active = TRUE AND is_admin = FALSE
GROUP BY 1
ORDER BY headcount DESC, department
`).Scan(&rows).Error
	return rows, err
}

func (r *repository) ApprovedLeaveTrend(ctx context.Context, months int) ([]TrendPoint, error) {
	if months <= 0 {
		months = 6
	}
	from := time.Now().UTC().AddDate(0, -(months - 1), 0)
	from = time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)

	var rows []TrendPoint
	err := r.db.WithContext(ctx).Raw(`
SELECT
	TO_CHAR(DATE_TRUNC('month', start_date), 'YYYY-MM') AS month,
	COUNT(*) AS approved_count,
	COALESCE(SUM(total_days), 0) AS total_days
FROM leaves
WHERE status = 'APPROVED' AND start_date >= ?
GROUP BY 1
ORDER BY 1
`, from).Scan(&rows).Error
	return rows, err
}

func (r *repository) CountEmployees(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
SELECT COUNT(*) FROM employees WHERE is_active = TRUE AND is_admin = FALSE
`).Scan(&count).Error
	return int(count), err
}

func (r *repository) CountPendingLeaves(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
SELECT COUNT(*) FROM leaves WHERE status = 'PENDING'
`).Scan(&count).Error
	return int(count), err
}

func (r *repository) CountPresentOn(ctx context.Context, date time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
SELECT COUNT(*) FROM attendance_records
WHERE attendance_date = ? AND status IN ('PRESENT', 'LATE', 'HALF_DAY')
`, date).Scan(&count).Error
	return int(count), err
}

func (r *repository) SumApprovedDaysInMonth(ctx context.Context, year, month int) (int, error) {
	start, end := monthBounds(year, month)

	var sum int64
	err := r.db.WithContext(ctx).Raw(`
SELECT COALESCE(SUM(total_days), 0) FROM leaves
WHERE status = 'APPROVED' AND start_date >= ? AND start_date < ?
`, start, end).Scan(&sum).Error
	return int(sum), err
}
