package employee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	employeeerrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetCoworkers(ctx context.Context, actorID string) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
	EnsureAdmin(ctx context.Context, seed AdminSeed) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetCoworkers(ctx context.Context, actorID string) ([]EmployeeOption, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	employees, err := s.repo.FindActiveNonAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}

	options := make([]EmployeeOption, len(employees))
	for i, e := range employees {
		options[i] = EmployeeOption{
			ID:             e.ID.String(),
			EmployeeNumber: e.EmployeeNumber,
			FullName:       e.FullName(),
			Department:     e.Department,
		}
	}
	return options, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return MapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("employee_id", id),
		zap.String("email", req.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	if req.Email != e.Email {
		taken, err := qtx.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if taken {
			return EmployeeResponse{}, employeeerrors.ErrDuplicateEmail
		}
	}

	e.FirstName = req.FirstName
	e.LastName = req.LastName
	e.Email = req.Email
	e.Phone = req.Phone
	e.Department = req.Department
	e.Designation = req.Designation
	e.IsActive = req.IsActive

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return MapToResponse(*e), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

func (s *service) Activate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

func (s *service) setActive(ctx context.Context, id string, active bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}

	// Akun admin tidak boleh dinonaktifkan
	if !active && e.IsAdmin {
		return employeeerrors.ErrCannotDeactivateAdmin
	}

	e.IsActive = active
	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("set employee active persist failed",
			zap.String("employee_id", id),
			zap.Bool("active", active),
			zap.Error(err),
		)
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("set employee active success",
		zap.String("employee_id", id),
		zap.Bool("active", active),
	)
	return nil
}

// EnsureAdmin membuat (atau mempromosikan) akun administrator awal.
// Idempoten: dipanggil setiap proses start setelah migrasi.
func (s *service) EnsureAdmin(ctx context.Context, seed AdminSeed) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmail(ctx, seed.Email)
	switch {
	case err == nil:
		if existing.IsAdmin && existing.IsActive {
			return nil
		}
		existing.IsAdmin = true
		existing.IsActive = true
		if err := qtx.Update(ctx, existing); err != nil {
			return err
		}
		s.logger.Info("existing account promoted to admin", zap.String("email", seed.Email))
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &Employee{
			ID:             uuid.New(),
			EmployeeNumber: seed.EmployeeNumber,
			FirstName:      seed.FirstName,
			LastName:       seed.LastName,
			Email:          seed.Email,
			HireDate:       time.Now().UTC().Truncate(24 * time.Hour),
			Password:       string(hashed),
			IsAdmin:        true,
			IsActive:       true,
		}
		if err := qtx.Create(ctx, admin); err != nil {
			return err
		}
		s.logger.Info("initial admin account created",
			zap.String("employee_number", seed.EmployeeNumber),
			zap.String("email", seed.Email),
		)
	default:
		return err
	}

	return tx.Commit()
}

func MapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		FullName:       e.FullName(),
		Email:          e.Email,
		Phone:          e.Phone,
		Department:     e.Department,
		Designation:    e.Designation,
		Shift:          e.Shift,
		HireDate:       e.HireDate.Format("2006-01-02"),
		IsAdmin:        e.IsAdmin,
		IsActive:       e.IsActive,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = MapToResponse(e)
	}
	return resp
}
