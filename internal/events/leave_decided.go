package events

import "time"

const LeaveDecidedTopic = "lms.leave.decision.v1"

// LeaveDecidedEvent diterbitkan setiap kali admin meng-approve atau me-reject
// sebuah pengajuan cuti.
type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	Status     string    `json:"status"`
	TotalDays  int       `json:"total_days"`
	ReviewedBy string    `json:"reviewed_by"`
	Comment    string    `json:"comment,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
