package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string    `gorm:"column:employee_number;type:varchar(20);not null;uniqueIndex"`
	FirstName      string    `gorm:"column:first_name;type:varchar(50);not null"`
	LastName       string    `gorm:"column:last_name;type:varchar(50);not null"`
	Email          string    `gorm:"column:email;type:varchar(120);not null;uniqueIndex"`
	Phone          string    `gorm:"column:phone;type:varchar(20)"`
	Department     string    `gorm:"column:department;type:varchar(50)"`
	Designation    string    `gorm:"column:designation;type:varchar(50)"`
	Shift          string    `gorm:"column:shift;type:varchar(20)"`
	HireDate       time.Time `gorm:"column:hire_date;type:date;not null"`
	Password       string    `gorm:"column:password;type:text;not null"`
	IsAdmin        bool      `gorm:"column:is_admin;not null;default:false"`
	IsActive       bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
