package report

import (
	"bytes"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/leave"

	"github.com/xuri/excelize/v2"
)

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeaderRow(f *excelize.File, sheet string, row int, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return err
	}

	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return err
	}

	for idx, value := range headers {
		if err := setCell(f, sheet, idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, startRow int, rows [][]any) (int, error) {
	row := startRow
	for _, values := range rows {
		for col, value := range values {
			if err := setCell(f, sheet, col+1, row, value); err != nil {
				return row, err
			}
		}
		row++
	}
	return row, nil
}

func leavesToXLSX(baseName string, leaves []leave.LeaveResponse) (ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leave Requests"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return ExportFile{}, err
	}

	if err := writeHeaderRow(f, sheet, 1, leaveExportHeader); err != nil {
		return ExportFile{}, err
	}

	rows := make([][]any, 0, len(leaves))
	for _, l := range leaves {
		rows = append(rows, []any{
			l.EmployeeName, l.EmployeeNumber, l.Department, l.LeaveType,
			l.StartDate, l.EndDate, l.TotalDays, l.Status, l.Reason,
		})
	}
	if _, err := writeRows(f, sheet, 2, rows); err != nil {
		return ExportFile{}, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return ExportFile{}, err
	}

	return ExportFile{
		Name:        baseName + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func monthlyToXLSX(baseName string, report MonthlyReport) (ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Monthly Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return ExportFile{}, err
	}

	row := 1
	if err := setCell(f, sheet, 1, row, "Monthly Report "+report.Month); err != nil {
		return ExportFile{}, err
	}
	row += 2

	if err := writeHeaderRow(f, sheet, row, []string{"Attendance Status", "Count"}); err != nil {
		return ExportFile{}, err
	}
	row++
	attendanceRows := make([][]any, 0, len(report.AttendanceByStatus))
	for _, r := range report.AttendanceByStatus {
		attendanceRows = append(attendanceRows, []any{r.Status, r.Count})
	}
	row, err := writeRows(f, sheet, row, attendanceRows)
	if err != nil {
		return ExportFile{}, err
	}
	row++

	if err := writeHeaderRow(f, sheet, row, []string{"Leave Type", "Approved Count", "Total Days"}); err != nil {
		return ExportFile{}, err
	}
	row++
	leaveRows := make([][]any, 0, len(report.LeaveByType))
	for _, r := range report.LeaveByType {
		leaveRows = append(leaveRows, []any{r.LeaveType, r.ApprovedCount, r.TotalDays})
	}
	row, err = writeRows(f, sheet, row, leaveRows)
	if err != nil {
		return ExportFile{}, err
	}
	row++

	if err := writeHeaderRow(f, sheet, row, []string{"Department", "Headcount"}); err != nil {
		return ExportFile{}, err
	}
	row++
	departmentRows := make([][]any, 0, len(report.DepartmentHeadcount))
	for _, r := range report.DepartmentHeadcount {
		departmentRows = append(departmentRows, []any{r.Department, r.Headcount})
	}
	row, err = writeRows(f, sheet, row, departmentRows)
	if err != nil {
		return ExportFile{}, err
	}
	row++

	if err := writeHeaderRow(f, sheet, row, []string{"Month", "Approved Count", "Total Days"}); err != nil {
		return ExportFile{}, err
	}
	row++
	trendRows := make([][]any, 0, len(report.Trend))
	for _, p := range report.Trend {
		trendRows = append(trendRows, []any{p.Month, p.ApprovedCount, p.TotalDays})
	}
	if _, err := writeRows(f, sheet, row, trendRows); err != nil {
		return ExportFile{}, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return ExportFile{}, err
	}

	return ExportFile{
		Name:        baseName + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}
