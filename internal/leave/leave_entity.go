package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Leave struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_leaves_employee_type"`

	LeaveType string    `gorm:"column:leave_type;type:varchar(20);not null;index:idx_leaves_employee_type"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null"`
	TotalDays int       `gorm:"column:total_days;type:int;not null"`
	Reason    string    `gorm:"column:reason;type:text;not null"`

	Status       string     `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index"`
	AppliedBy    uuid.UUID  `gorm:"column:applied_by;type:uuid;not null"`
	ReviewedBy   *uuid.UUID `gorm:"column:reviewed_by;type:uuid"`
	ReviewedAt   *time.Time `gorm:"column:reviewed_at"`
	AdminComment *string    `gorm:"column:admin_comment;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Leave) TableName() string {
	return "leaves"
}

// EmployeeRef adalah join minimal ke tabel employees untuk listing dan export.
type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FirstName      string    `gorm:"column:first_name"`
	LastName       string    `gorm:"column:last_name"`
	Department     string    `gorm:"column:department"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func (e EmployeeRef) FullName() string {
	return e.FirstName + " " + e.LastName
}
