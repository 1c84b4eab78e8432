package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	autherrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/auth/errors"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee"
	employeeerrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	db        *sql.DB
	employees employee.Repository
	jwtSecret string
	logger    *zap.Logger
}

func NewService(db *sql.DB, employees employee.Repository, jwtSecret string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{db: db, employees: employees, jwtSecret: jwtSecret, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	s.logger.Debug("register requested",
		zap.String("employee_number", req.EmployeeNumber),
		zap.String("email", req.Email),
	)

	if req.Password != req.ConfirmPassword {
		return AuthResponse{}, autherrors.ErrPasswordMismatch
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return AuthResponse{}, employeeerrors.ErrInvalidHireDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.Error(err))
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.employees.WithTx(tx)

	taken, err := qtx.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return AuthResponse{}, err
	}
	if taken {
		return AuthResponse{}, employeeerrors.ErrDuplicateEmail
	}

	taken, err = qtx.ExistsByNumber(ctx, req.EmployeeNumber)
	if err != nil {
		return AuthResponse{}, err
	}
	if taken {
		return AuthResponse{}, employeeerrors.ErrDuplicateEmployeeNumber
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	e := &employee.Employee{
		ID:             uuid.New(),
		EmployeeNumber: req.EmployeeNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Department:     req.Department,
		Designation:    req.Designation,
		HireDate:       hireDate,
		Password:       string(hashed),
		IsAdmin:        false,
		IsActive:       true,
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return AuthResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("employee_id", e.ID.String()),
		zap.String("employee_number", e.EmployeeNumber),
	)
	return mapToAuthResponse(e), nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	e, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return "", "", AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !e.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountDeactivated
	}

	accessToken, err := s.generateToken(e, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(e, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("employee_id", e.ID.String()))
	return accessToken, refreshToken, mapToAuthResponse(e), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	if _, err := uuid.Parse(userID); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	e, err := s.employees.FindByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}
	if !e.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountDeactivated
	}

	newAccessToken, err := s.generateToken(e, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.generateToken(e, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, mapToAuthResponse(e), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	e, err := s.employees.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrUserNotFound
		}
		return nil, err
	}

	resp := mapToAuthResponse(e)
	return &resp, nil
}

func (s *service) generateToken(e *employee.Employee, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  e.ID.String(),
		"email":    e.Email,
		"is_admin": e.IsAdmin,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func mapToAuthResponse(e *employee.Employee) AuthResponse {
	return AuthResponse{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		FullName:       e.FullName(),
		Email:          e.Email,
		Department:     e.Department,
		Designation:    e.Designation,
		IsAdmin:        e.IsAdmin,
	}
}
