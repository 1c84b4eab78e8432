package attendance

type MarkAttendanceRequest struct {
	EmployeeID    string  `json:"employee_id" binding:"required,uuid"`
	Date          string  `json:"date" binding:"required"`
	Status        string  `json:"status" binding:"required,oneof=PRESENT ABSENT LATE HALF_DAY"`
	CheckIn       *string `json:"check_in"`
	CheckOut      *string `json:"check_out"`
	OvertimeHours float64 `json:"overtime_hours" binding:"gte=0,lte=24"`
	Remarks       string  `json:"remarks"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	EmployeeNumber string  `json:"employee_number,omitempty"`
	Department     string  `json:"department,omitempty"`
	Shift          string  `json:"shift,omitempty"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	CheckIn        *string `json:"check_in,omitempty"`
	CheckOut       *string `json:"check_out,omitempty"`
	OvertimeHours  float64 `json:"overtime_hours"`
	Remarks        string  `json:"remarks,omitempty"`
	RecordedBy     string  `json:"recorded_by"`
}

// DailySummary adalah rekap satu hari: daftar record plus hitungan per status.
type DailySummary struct {
	Date    string               `json:"date"`
	Counts  map[string]int       `json:"counts"`
	Records []AttendanceResponse `json:"records"`
}
