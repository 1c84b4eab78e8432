package auth_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/auth"
	autherrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/auth/errors"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee"
	employeeerrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type fakeEmployeeRepository struct {
	createFn         func(ctx context.Context, e *employee.Employee) error
	findByIDFn       func(ctx context.Context, id string) (*employee.Employee, error)
	findByEmailFn    func(ctx context.Context, email string) (*employee.Employee, error)
	existsByNumberFn func(ctx context.Context, employeeNumber string) (bool, error)
	existsByEmailFn  func(ctx context.Context, email string) (bool, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindActiveNonAdmin(ctx context.Context, excludeID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) ExistsByNumber(ctx context.Context, employeeNumber string) (bool, error) {
	if f.existsByNumberFn != nil {
		return f.existsByNumberFn(ctx, employeeNumber)
	}
	return false, nil
}

func (f *fakeEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.existsByEmailFn != nil {
		return f.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }

type authServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   auth.Service
	employees *fakeEmployeeRepository
}

func setupAuthServiceTest(t *testing.T) *authServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	employees := &fakeEmployeeRepository{}
	svc := auth.NewService(db, employees, testJWTSecret)

	return &authServiceDeps{db: db, sqlMock: sqlMock, service: svc, employees: employees}
}

func activeEmployee(t *testing.T, password string) *employee.Employee {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &employee.Employee{
		ID:             uuid.New(),
		EmployeeNumber: "EMP001",
		FirstName:      "Ravi",
		LastName:       "Shankar",
		Email:          "ravi@textile.com",
		HireDate:       time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		Password:       string(hashed),
		IsActive:       true,
	}
}

func registerRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		EmployeeNumber:  "EMP010",
		FirstName:       "Meena",
		LastName:        "Iyer",
		Email:           "meena@textile.com",
		HireDate:        "2024-02-01",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.employees.createFn = func(ctx context.Context, e *employee.Employee) error {
			assert.Equal(t, "EMP010", e.EmployeeNumber)
			assert.False(t, e.IsAdmin)
			assert.True(t, e.IsActive)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(e.Password), []byte("supersecret")))
			return nil
		}

		resp, err := deps.service.Register(ctx, registerRequest())

		assert.NoError(t, err)
		assert.Equal(t, "Meena Iyer", resp.FullName)
		assert.False(t, resp.IsAdmin)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative password mismatch", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		req := registerRequest()
		req.ConfirmPassword = "different"

		_, err := deps.service.Register(ctx, req)
		assert.ErrorIs(t, err, autherrors.ErrPasswordMismatch)
	})

	t.Run("negative duplicate email", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.employees.existsByEmailFn = func(ctx context.Context, email string) (bool, error) {
			return true, nil
		}

		_, err := deps.service.Register(ctx, registerRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrDuplicateEmail)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate employee number", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.employees.existsByNumberFn = func(ctx context.Context, number string) (bool, error) {
			return true, nil
		}

		_, err := deps.service.Register(ctx, registerRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrDuplicateEmployeeNumber)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid hire date", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		req := registerRequest()
		req.HireDate = "01.02.2024"

		_, err := deps.service.Register(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues both tokens", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		e := activeEmployee(t, "supersecret")
		deps.employees.findByEmailFn = func(ctx context.Context, email string) (*employee.Employee, error) {
			assert.Equal(t, e.Email, email)
			return e, nil
		}

		accessToken, refreshToken, resp, err := deps.service.Login(ctx, e.Email, "supersecret")

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, e.ID.String(), resp.ID)

		token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, e.ID.String(), claims["user_id"])
		assert.Equal(t, false, claims["is_admin"])
	})

	t.Run("negative wrong password", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		e := activeEmployee(t, "supersecret")
		deps.employees.findByEmailFn = func(ctx context.Context, email string) (*employee.Employee, error) {
			return e, nil
		}

		_, _, _, err := deps.service.Login(ctx, e.Email, "wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative unknown email", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		_, _, _, err := deps.service.Login(ctx, "ghost@textile.com", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative deactivated account", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		e := activeEmployee(t, "supersecret")
		e.IsActive = false
		deps.employees.findByEmailFn = func(ctx context.Context, email string) (*employee.Employee, error) {
			return e, nil
		}

		_, _, _, err := deps.service.Login(ctx, e.Email, "supersecret")
		assert.ErrorIs(t, err, autherrors.ErrAccountDeactivated)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		e := activeEmployee(t, "supersecret")
		deps.employees.findByEmailFn = func(ctx context.Context, email string) (*employee.Employee, error) {
			return e, nil
		}
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			assert.Equal(t, e.ID.String(), id)
			return e, nil
		}

		_, refreshToken, _, err := deps.service.Login(ctx, e.Email, "supersecret")
		assert.NoError(t, err)

		newAccess, newRefresh, resp, err := deps.service.RefreshToken(ctx, refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, e.ID.String(), resp.ID)
	})

	t.Run("negative garbage token", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		_, _, _, err := deps.service.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		e := activeEmployee(t, "supersecret")
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return e, nil
		}

		resp, err := deps.service.GetMe(ctx, e.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, e.Email, resp.Email)
	})

	t.Run("negative unknown user", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetMe(ctx, uuid.New().String())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetMe(ctx, "nope")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})
}
