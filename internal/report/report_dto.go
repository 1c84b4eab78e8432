package report

type StatusCountRow struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type LeaveTypeRow struct {
	LeaveType     string `json:"leave_type"`
	ApprovedCount int    `json:"approved_count"`
	TotalDays     int    `json:"total_days"`
}

type DepartmentRow struct {
	Department string `json:"department"`
	Headcount  int    `json:"headcount"`
}

// TrendPoint adalah satu bulan dalam grafik tren cuti disetujui.
type TrendPoint struct {
	Month         string `json:"month"`
	ApprovedCount int    `json:"approved_count"`
	TotalDays     int    `json:"total_days"`
}

type MonthlyReport struct {
	Month               string           `json:"month"`
	AttendanceByStatus  []StatusCountRow `json:"attendance_by_status"`
	LeaveByType         []LeaveTypeRow   `json:"leave_by_type"`
	DepartmentHeadcount []DepartmentRow  `json:"department_headcount"`
	Trend               []TrendPoint     `json:"trend"`
}

type DashboardSummary struct {
	TotalEmployees        int `json:"total_employees"`
	PendingLeaves         int `json:"pending_leaves"`
	PresentToday          int `json:"present_today"`
	ApprovedDaysThisMonth int `json:"approved_days_this_month"`
}

// ExportFile adalah hasil export siap kirim sebagai attachment.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}
