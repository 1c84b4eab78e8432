package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/attendance/errors"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Mark(ctx context.Context, adminID string, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetByDate(ctx context.Context, date string) (DailySummary, error)
	GetEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]AttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l}
}

// Mark meng-upsert catatan kehadiran per (karyawan, tanggal). Pencatatan ulang
// di hari yang sama menimpa record lama, bukan menambah baris baru.
func (s *service) Mark(ctx context.Context, adminID string, req MarkAttendanceRequest) (AttendanceResponse, error) {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	checkIn, checkOut, err := normalizeTimes(req.CheckIn, req.CheckOut)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qEmployees := s.employees.WithTx(tx)

	if _, err := qEmployees.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		s.logger.Error("mark attendance employee lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	record, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
	switch {
	case err == nil:
		record.Status = req.Status
		record.CheckIn = checkIn
		record.CheckOut = checkOut
		record.OvertimeHours = req.OvertimeHours
		record.Remarks = req.Remarks
		record.RecordedBy = adminUUID
		err = qtx.Update(ctx, record)

	case errors.Is(err, gorm.ErrRecordNotFound):
		record = &Attendance{
			EmployeeID:     employeeUUID,
			AttendanceDate: date,
			Status:         req.Status,
			CheckIn:        checkIn,
			CheckOut:       checkOut,
			OvertimeHours:  req.OvertimeHours,
			Remarks:        req.Remarks,
			RecordedBy:     adminUUID,
		}
		err = qtx.Create(ctx, record)
	}

	if err != nil {
		s.logger.Error("mark attendance write failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("mark attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance marked",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)

	return mapToResponse(*record), nil
}

func (s *service) GetByDate(ctx context.Context, date string) (DailySummary, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DailySummary{}, attendanceerrors.ErrInvalidDateFormat
	}

	records, err := s.repo.ListByDate(ctx, day)
	if err != nil {
		s.logger.Error("list attendance by date failed", zap.Error(err))
		return DailySummary{}, err
	}

	summary := DailySummary{
		Date:    date,
		Counts:  make(map[string]int, len(Statuses)),
		Records: make([]AttendanceResponse, 0, len(records)),
	}
	for _, status := range Statuses {
		summary.Counts[status] = 0
	}
	for _, r := range records {
		summary.Counts[r.Status]++
		summary.Records = append(summary.Records, mapToResponse(r))
	}
	return summary, nil
}

func (s *service) GetEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}
	if month < 1 || month > 12 {
		return nil, attendanceerrors.ErrInvalidMonth
	}

	records, err := s.repo.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		s.logger.Error("list attendance by month failed", zap.Error(err))
		return nil, err
	}

	responses := make([]AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, mapToResponse(r))
	}
	return responses, nil
}

func normalizeTimes(checkIn, checkOut *string) (*string, *string, error) {
	parse := func(v *string) (*string, error) {
		if v == nil || *v == "" {
			return nil, nil
		}
		t, err := time.Parse("15:04", *v)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidTimeFormat
		}
		formatted := t.Format("15:04")
		return &formatted, nil
	}

	in, err := parse(checkIn)
	if err != nil {
		return nil, nil, err
	}
	out, err := parse(checkOut)
	if err != nil {
		return nil, nil, err
	}

	if in != nil && out != nil && *out <= *in {
		return nil, nil, attendanceerrors.ErrCheckOutBeforeCheckIn
	}
	return in, out, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID.String(),
		EmployeeID:    a.EmployeeID.String(),
		Date:          a.AttendanceDate.Format("2006-01-02"),
		Status:        a.Status,
		CheckIn:       a.CheckIn,
		CheckOut:      a.CheckOut,
		OvertimeHours: a.OvertimeHours,
		Remarks:       a.Remarks,
		RecordedBy:    a.RecordedBy.String(),
	}

	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName()
		resp.EmployeeNumber = a.Employee.EmployeeNumber
		resp.Department = a.Employee.Department
		resp.Shift = a.Employee.Shift
	}
	return resp
}
