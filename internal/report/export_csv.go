package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/leave"
)

var leaveExportHeader = []string{
	"Employee", "Employee Number", "Department", "Leave Type",
	"Start Date", "End Date", "Total Days", "Status", "Reason",
}

func leaveExportRow(l leave.LeaveResponse) []string {
	return []string{
		l.EmployeeName,
		l.EmployeeNumber,
		l.Department,
		l.LeaveType,
		l.StartDate,
		l.EndDate,
		strconv.Itoa(l.TotalDays),
		l.Status,
		l.Reason,
	}
}

func leavesToCSV(baseName string, leaves []leave.LeaveResponse) (ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(leaveExportHeader); err != nil {
		return ExportFile{}, err
	}
	for _, l := range leaves {
		if err := w.Write(leaveExportRow(l)); err != nil {
			return ExportFile{}, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return ExportFile{}, err
	}

	return ExportFile{
		Name:        baseName + ".csv",
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func monthlyToCSV(baseName string, report MonthlyReport) (ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	write := func(records ...[]string) error {
		for _, record := range records {
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return nil
	}

	if err := write(
		[]string{"Monthly Report", report.Month},
		nil,
		[]string{"Attendance Status", "Count"},
	); err != nil {
		return ExportFile{}, err
	}
	for _, row := range report.AttendanceByStatus {
		if err := write([]string{row.Status, strconv.Itoa(row.Count)}); err != nil {
			return ExportFile{}, err
		}
	}

	if err := write(nil, []string{"Leave Type", "Approved Count", "Total Days"}); err != nil {
		return ExportFile{}, err
	}
	for _, row := range report.LeaveByType {
		if err := write([]string{
			row.LeaveType,
			strconv.Itoa(row.ApprovedCount),
			strconv.Itoa(row.TotalDays),
		}); err != nil {
			return ExportFile{}, err
		}
	}

	if err := write(nil, []string{"Department", "Headcount"}); err != nil {
		return ExportFile{}, err
	}
	for _, row := range report.DepartmentHeadcount {
		if err := write([]string{row.Department, strconv.Itoa(row.Headcount)}); err != nil {
			return ExportFile{}, err
		}
	}

	if err := write(nil, []string{"Month", "Approved Count", "Total Days"}); err != nil {
		return ExportFile{}, err
	}
	for _, point := range report.Trend {
		if err := write([]string{
			point.Month,
			strconv.Itoa(point.ApprovedCount),
			strconv.Itoa(point.TotalDays),
		}); err != nil {
			return ExportFile{}, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return ExportFile{}, err
	}

	return ExportFile{
		Name:        baseName + ".csv",
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}
