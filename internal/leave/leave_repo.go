package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Leave, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	Update(ctx context.Context, l *Leave) error
	SumApprovedDays(ctx context.Context, employeeID, leaveType string) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengikat seluruh query repository ke transaksi milik caller.
// ConnPool statement gorm ditukar ke *sql.Tx, jadi rollback caller
// benar-benar membatalkan semua tulisan di sini.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Context: r.db.Statement.Context})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Leave, error) {
	db := r.db.WithContext(ctx).
		Joins("JOIN employees ON employees.id = leaves.employee_id").
		Preload("Employee")

	if filter.Status != "" && filter.Status != "all" {
		db = db.Where("leaves.status = ?", filter.Status)
	}
	if filter.LeaveType != "" {
		db = db.Where("leaves.leave_type = ?", filter.LeaveType)
	}
	if filter.Department != "" {
		db = db.Where("employees.department = ?", filter.Department)
	}
	if filter.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", filter.DateFrom); err == nil {
			db = db.Where("leaves.start_date >= ?", from)
		}
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where(
			"employees.first_name ILIKE ? OR employees.last_name ILIKE ? OR employees.employee_number ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var leaves []Leave
	err := db.Order("leaves.created_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) SumApprovedDays(ctx context.Context, employeeID, leaveType string) (int, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Select("COALESCE(SUM(total_days), 0)").
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", leaveType).
		Where("status = ?", StatusApproved).
		Scan(&sum).Error
	return int(sum), err
}
