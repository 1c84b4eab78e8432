package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLate    = "LATE"
	StatusHalfDay = "HALF_DAY"
)

// Statuses dalam urutan tampilan rekap harian.
var Statuses = []string{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay}

type Attendance struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`

	Status        string  `gorm:"column:status;type:varchar(20);not null"`
	CheckIn       *string `gorm:"column:check_in;type:varchar(5)"`
	CheckOut      *string `gorm:"column:check_out;type:varchar(5)"`
	OvertimeHours float64 `gorm:"column:overtime_hours;type:numeric(4,2);not null;default:0"`
	Remarks       string  `gorm:"column:remarks;type:text"`

	RecordedBy uuid.UUID `gorm:"column:recorded_by;type:uuid;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendance_records"
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

// EmployeeRef adalah join minimal ke tabel employees untuk rekap harian.
type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FirstName      string    `gorm:"column:first_name"`
	LastName       string    `gorm:"column:last_name"`
	Department     string    `gorm:"column:department"`
	Shift          string    `gorm:"column:shift"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func (e EmployeeRef) FullName() string {
	return e.FirstName + " " + e.LastName
}
