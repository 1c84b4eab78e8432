package report

import (
	"bytes"
	"strconv"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/leave"

	"github.com/go-pdf/fpdf"
)

func newReportPDF(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)
	return pdf
}

func pdfTable(pdf *fpdf.Fpdf, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for i, value := range row {
			pdf.CellFormat(widths[i], 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func pdfOutput(pdf *fpdf.Fpdf, name string) (ExportFile, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return ExportFile{}, err
	}
	return ExportFile{
		Name:        name + ".pdf",
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

func leavesToPDF(baseName string, leaves []leave.LeaveResponse) (ExportFile, error) {
	pdf := newReportPDF("Leave Requests")

	rows := make([][]string, 0, len(leaves))
	for _, l := range leaves {
		rows = append(rows, []string{
			l.EmployeeName,
			l.EmployeeNumber,
			l.LeaveType,
			l.StartDate,
			l.EndDate,
			strconv.Itoa(l.TotalDays),
			l.Status,
		})
	}

	pdfTable(pdf,
		[]string{"Employee", "Number", "Type", "Start", "End", "Days", "Status"},
		[]float64{45, 25, 25, 25, 25, 15, 30},
		rows,
	)

	return pdfOutput(pdf, baseName)
}

func monthlyToPDF(baseName string, report MonthlyReport) (ExportFile, error) {
	pdf := newReportPDF("Monthly Report " + report.Month)

	attendanceRows := make([][]string, 0, len(report.AttendanceByStatus))
	for _, r := range report.AttendanceByStatus {
		attendanceRows = append(attendanceRows, []string{r.Status, strconv.Itoa(r.Count)})
	}
	pdfTable(pdf, []string{"Attendance Status", "Count"}, []float64{95, 95}, attendanceRows)

	leaveRows := make([][]string, 0, len(report.LeaveByType))
	for _, r := range report.LeaveByType {
		leaveRows = append(leaveRows, []string{
			r.LeaveType, strconv.Itoa(r.ApprovedCount), strconv.Itoa(r.TotalDays),
		})
	}
	pdfTable(pdf, []string{"Leave Type", "Approved Count", "Total Days"}, []float64{64, 63, 63}, leaveRows)

	departmentRows := make([][]string, 0, len(report.DepartmentHeadcount))
	for _, r := range report.DepartmentHeadcount {
		departmentRows = append(departmentRows, []string{r.Department, strconv.Itoa(r.Headcount)})
	}
	pdfTable(pdf, []string{"Department", "Headcount"}, []float64{95, 95}, departmentRows)

	trendRows := make([][]string, 0, len(report.Trend))
	for _, p := range report.Trend {
		trendRows = append(trendRows, []string{
			p.Month, strconv.Itoa(p.ApprovedCount), strconv.Itoa(p.TotalDays),
		})
	}
	pdfTable(pdf, []string{"Month", "Approved Count", "Total Days"}, []float64{64, 63, 63}, trendRows)

	return pdfOutput(pdf, baseName)
}
