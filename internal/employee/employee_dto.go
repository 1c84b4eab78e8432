package employee

type UpdateEmployeeRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	IsActive    bool   `json:"is_active"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Department     string `json:"department,omitempty"`
	Designation    string `json:"designation,omitempty"`
	Shift          string `json:"shift,omitempty"`
	HireDate       string `json:"hire_date"`
	IsAdmin        bool   `json:"is_admin"`
	IsActive       bool   `json:"is_active"`
}

// EmployeeOption adalah data minimal untuk dropdown "ajukan untuk rekan kerja".
type EmployeeOption struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Department     string `json:"department,omitempty"`
}

// AdminSeed adalah akun administrator awal yang dijamin ada saat proses
// start. Tanpa satu pun admin, seluruh endpoint review/admin tidak akan
// pernah bisa dipakai di deployment baru.
type AdminSeed struct {
	EmployeeNumber string
	FirstName      string
	LastName       string
	Email          string
	Password       string
}
