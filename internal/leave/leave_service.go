package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee"
	employeeerrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee/errors"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/events"
	leaveerrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/leave/errors"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/messaging/kafka"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tempEmailDomain = "@temp.textile.com"
	tempPassword    = "TempPass123"
)

type Service interface {
	Apply(ctx context.Context, actorID string, req ApplyLeaveRequest) (LeaveResponse, error)
	Review(ctx context.Context, adminID, id string, req ReviewLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	GetMine(ctx context.Context, actorID string) ([]LeaveResponse, error)
	Balances(ctx context.Context, employeeID string) ([]BalanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	policy    Policy
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	outbox kafka.OutboxRepository,
	policy Policy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outbox,
		policy:    policy,
		logger:    l,
	}
}

func (s *service) Apply(ctx context.Context, actorID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("apply leave requested",
		zap.String("actor_id", actorID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	if req.CoworkerID != nil && req.NewHire != nil {
		return LeaveResponse{}, leaveerrors.ErrAmbiguousTarget
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	totalDays, err := BusinessDays(startDate, endDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qEmployees := s.employees.WithTx(tx)

	ownerUUID, err := s.resolveOwner(ctx, qEmployees, actorUUID, req)
	if err != nil {
		s.logger.Warn("apply leave resolve owner failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	// Saldo hanya ditegakkan untuk pengajuan diri sendiri pada kategori
	// yang dilacak; pengajuan delegasi oleh admin lolos tanpa cek.
	if ownerUUID == actorUUID && BalanceTracked(req.LeaveType) {
		allotment, ok := s.policy.Allotment(req.LeaveType)
		if !ok {
			return LeaveResponse{}, leaveerrors.ErrUnknownLeaveType
		}

		used, err := qtx.SumApprovedDays(ctx, ownerUUID.String(), req.LeaveType)
		if err != nil {
			s.logger.Error("apply leave sum approved days failed", zap.Error(err))
			return LeaveResponse{}, err
		}

		remaining := allotment - used
		if totalDays > remaining {
			return LeaveResponse{}, leaveerrors.InsufficientBalance(req.LeaveType, remaining, totalDays)
		}
	}

	l := Leave{
		EmployeeID: ownerUUID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     StatusPending,
		AppliedBy:  actorUUID,
	}

	if err := qtx.Create(ctx, &l); err != nil {
		s.logger.Error("apply leave insert failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave applied",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", ownerUUID.String()),
		zap.String("leave_type", l.LeaveType),
		zap.Int("total_days", l.TotalDays),
	)

	return mapToResponse(l), nil
}

// resolveOwner menentukan pemilik pengajuan: diri sendiri, rekan kerja yang
// sudah terdaftar, atau pekerja baru yang di-provision di transaksi yang sama.
func (s *service) resolveOwner(
	ctx context.Context,
	qEmployees employee.Repository,
	actorUUID uuid.UUID,
	req ApplyLeaveRequest,
) (uuid.UUID, error) {
	switch {
	case req.NewHire != nil:
		return s.provisionNewHire(ctx, qEmployees, *req.NewHire)

	case req.CoworkerID != nil:
		coworker, err := qEmployees.FindByID(ctx, *req.CoworkerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, leaveerrors.ErrCoworkerNotFound
			}
			return uuid.Nil, err
		}
		return coworker.ID, nil

	default:
		return actorUUID, nil
	}
}

func (s *service) provisionNewHire(
	ctx context.Context,
	qEmployees employee.Repository,
	payload NewHirePayload,
) (uuid.UUID, error) {
	exists, err := qEmployees.ExistsByNumber(ctx, payload.EmployeeNumber)
	if err != nil {
		return uuid.Nil, err
	}
	if exists {
		return uuid.Nil, employeeerrors.ErrDuplicateEmployeeNumber
	}

	email := payload.Email
	if email == "" {
		email = strings.ToLower(payload.EmployeeNumber) + tempEmailDomain
	} else {
		taken, err := qEmployees.ExistsByEmail(ctx, email)
		if err != nil {
			return uuid.Nil, err
		}
		if taken {
			return uuid.Nil, employeeerrors.ErrDuplicateEmail
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	e := employee.Employee{
		EmployeeNumber: payload.EmployeeNumber,
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Email:          email,
		Phone:          payload.Phone,
		Department:     payload.Department,
		Designation:    payload.Designation,
		HireDate:       time.Now().UTC().Truncate(24 * time.Hour),
		Password:       string(hashed),
		IsAdmin:        false,
		IsActive:       true,
	}

	if err := qEmployees.Create(ctx, &e); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("new hire provisioned during leave apply",
		zap.String("employee_id", e.ID.String()),
		zap.String("employee_number", e.EmployeeNumber),
	)

	return e.ID, nil
}

func (s *service) Review(ctx context.Context, adminID, id string, req ReviewLeaveRequest) (LeaveResponse, error) {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("review leave lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	// Review ulang diperbolehkan: keputusan terakhir menimpa yang sebelumnya.
	status := StatusRejected
	if req.Decision == "APPROVE" {
		status = StatusApproved
	}

	now := time.Now().UTC()
	l.Status = status
	l.ReviewedBy = &adminUUID
	l.ReviewedAt = &now
	l.AdminComment = nil
	if req.Comment != "" {
		comment := req.Comment
		l.AdminComment = &comment
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("review leave update failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.enqueueDecisionEvent(ctx, tx, l); err != nil {
		s.logger.Error("review leave enqueue event failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("review leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave reviewed",
		zap.String("leave_id", l.ID.String()),
		zap.String("status", l.Status),
		zap.String("reviewed_by", adminUUID.String()),
	)

	return mapToResponse(*l), nil
}

func (s *service) enqueueDecisionEvent(ctx context.Context, tx *sql.Tx, l *Leave) error {
	event := events.LeaveDecidedEvent{
		EventType:  "leave_decided",
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		Status:     l.Status,
		TotalDays:  l.TotalDays,
		OccurredAt: time.Now().UTC(),
	}
	if l.ReviewedBy != nil {
		event.ReviewedBy = l.ReviewedBy.String()
	}
	if l.AdminComment != nil {
		event.Comment = *l.AdminComment
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "leave",
		AggregateID:   l.ID.String(),
		EventType:     event.EventType,
		Topic:         events.LeaveDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, err
	}

	responses := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, mapToResponse(l))
	}
	return responses, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("get leave by id failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) GetMine(ctx context.Context, actorID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, leaveerrors.ErrInvalidActorID
	}

	leaves, err := s.repo.FindByEmployee(ctx, actorID)
	if err != nil {
		s.logger.Error("get my leaves failed", zap.Error(err))
		return nil, err
	}

	responses := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, mapToResponse(l))
	}
	return responses, nil
}

func (s *service) Balances(ctx context.Context, employeeID string) ([]BalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidActorID
	}

	balances := make([]BalanceResponse, 0, len(Types))
	for _, leaveType := range Types {
		allotment, _ := s.policy.Allotment(leaveType)

		used, err := s.repo.SumApprovedDays(ctx, employeeID, leaveType)
		if err != nil {
			s.logger.Error("balance sum failed",
				zap.String("leave_type", leaveType),
				zap.Error(err),
			)
			return nil, err
		}

		balances = append(balances, BalanceResponse{
			LeaveType: leaveType,
			Allotment: allotment,
			Used:      used,
			Remaining: allotment - used,
		})
	}
	return balances, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		TotalDays:  l.TotalDays,
		Reason:     l.Reason,
		Status:     l.Status,
		AppliedBy:  l.AppliedBy.String(),
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}

	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FullName()
		resp.EmployeeNumber = l.Employee.EmployeeNumber
		resp.Department = l.Employee.Department
	}
	if l.ReviewedBy != nil {
		reviewedBy := l.ReviewedBy.String()
		resp.ReviewedBy = &reviewedBy
	}
	if l.ReviewedAt != nil {
		reviewedAt := l.ReviewedAt.UTC().Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	resp.AdminComment = l.AdminComment

	return resp
}
