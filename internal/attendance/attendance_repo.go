package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengikat seluruh query repository ke transaksi milik caller
// dengan menukar ConnPool statement gorm ke *sql.Tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Context: r.db.Statement.Context})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date).
		First(&a).Error
	return &a, err
}

func (r *repository) ListByDate(ctx context.Context, date time.Time) ([]Attendance, error) {
	var records []Attendance
	err := r.db.WithContext(ctx).
		Joins("JOIN employees ON employees.id = attendance_records.employee_id").
		Preload("Employee").
		Where("attendance_date = ?", date).
		Order("employees.first_name, employees.last_name").
		Find(&records).Error
	return records, err
}

func (r *repository) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]Attendance, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var records []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date >= ? AND attendance_date < ?", monthStart, monthEnd).
		Order("attendance_date").
		Find(&records).Error
	return records, err
}
