package leave

type NewHirePayload struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	Designation    string `json:"designation"`
}

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=ANNUAL SICK CASUAL EMERGENCY"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`

	// Dua-duanya kosong = pengajuan untuk diri sendiri.
	CoworkerID *string         `json:"coworker_id" binding:"omitempty,uuid"`
	NewHire    *NewHirePayload `json:"new_hire"`
}

type ReviewLeaveRequest struct {
	Decision string `json:"decision" binding:"required,oneof=APPROVE REJECT"`
	Comment  string `json:"comment"`
}

type LeaveResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	EmployeeNumber string  `json:"employee_number,omitempty"`
	Department     string  `json:"department,omitempty"`
	LeaveType      string  `json:"leave_type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	TotalDays      int     `json:"total_days"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
	AppliedBy      string  `json:"applied_by"`
	ReviewedBy     *string `json:"reviewed_by,omitempty"`
	ReviewedAt     *string `json:"reviewed_at,omitempty"`
	AdminComment   *string `json:"admin_comment,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type BalanceResponse struct {
	LeaveType string `json:"leave_type"`
	Allotment int    `json:"allotment"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}

// ListFilter adalah filter daftar cuti di halaman admin.
type ListFilter struct {
	Status     string
	LeaveType  string
	Department string
	DateFrom   string
	Search     string
}
