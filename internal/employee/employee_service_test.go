package employee_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee"
	employeeerrors "github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepository struct {
	createFn             func(ctx context.Context, e *employee.Employee) error
	findAllFn            func(ctx context.Context) ([]employee.Employee, error)
	findActiveNonAdminFn func(ctx context.Context, excludeID string) ([]employee.Employee, error)
	findByIDFn           func(ctx context.Context, id string) (*employee.Employee, error)
	findByEmailFn        func(ctx context.Context, email string) (*employee.Employee, error)
	existsByEmailFn      func(ctx context.Context, email string) (bool, error)
	updateFn             func(ctx context.Context, e *employee.Employee) error
}

func (f *fakeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepository) FindActiveNonAdmin(ctx context.Context, excludeID string) ([]employee.Employee, error) {
	if f.findActiveNonAdminFn != nil {
		return f.findActiveNonAdminFn(ctx, excludeID)
	}
	return nil, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) ExistsByNumber(ctx context.Context, employeeNumber string) (bool, error) {
	return false, nil
}

func (f *fakeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.existsByEmailFn != nil {
		return f.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (f *fakeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeRepository{}
	svc := employee.NewService(db, repo)

	return &serviceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func sampleEmployee(id uuid.UUID, isAdmin bool) *employee.Employee {
	return &employee.Employee{
		ID:             id,
		EmployeeNumber: "EMP001",
		FirstName:      "Ravi",
		LastName:       "Shankar",
		Email:          "ravi@textile.com",
		Department:     "Dyeing",
		HireDate:       time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		IsAdmin:        isAdmin,
		IsActive:       true,
	}
}

func TestEmployeeService_GetCoworkers(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("excludes the requester", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.findActiveNonAdminFn = func(ctx context.Context, excludeID string) ([]employee.Employee, error) {
			assert.Equal(t, actorID, excludeID)
			return []employee.Employee{*sampleEmployee(uuid.New(), false)}, nil
		}

		options, err := deps.service.GetCoworkers(ctx, actorID)

		assert.NoError(t, err)
		assert.Len(t, options, 1)
		assert.Equal(t, "Ravi Shankar", options[0].FullName)
	})

	t.Run("negative invalid actor id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetCoworkers(ctx, "nope")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return sampleEmployee(id, false), nil
		}

		var updated *employee.Employee
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			updated = e
			return nil
		}

		resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			FirstName:   "Ravi",
			LastName:    "Shankar",
			Email:       "ravi@textile.com",
			Department:  "Spinning",
			Designation: "Supervisor",
			IsActive:    true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Spinning", updated.Department)
		assert.Equal(t, "Spinning", resp.Department)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return sampleEmployee(id, false), nil
		}
		deps.repo.existsByEmailFn = func(ctx context.Context, email string) (bool, error) {
			assert.Equal(t, "taken@textile.com", email)
			return true, nil
		}

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			FirstName: "Ravi",
			LastName:  "Shankar",
			Email:     "taken@textile.com",
			IsActive:  true,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrDuplicateEmail)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			FirstName: "Ravi",
			LastName:  "Shankar",
			Email:     "ravi@textile.com",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Deactivate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return sampleEmployee(id, false), nil
		}

		var updated *employee.Employee
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			updated = e
			return nil
		}

		err := deps.service.Deactivate(ctx, id.String())

		assert.NoError(t, err)
		assert.False(t, updated.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative admin account", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return sampleEmployee(id, true), nil
		}
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			t.Fatal("update must not be called")
			return nil
		}

		err := deps.service.Deactivate(ctx, id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrCannotDeactivateAdmin)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reactivate admin allowed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		admin := sampleEmployee(id, true)
		admin.IsActive = false
		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return admin, nil
		}

		err := deps.service.Activate(ctx, id.String())

		assert.NoError(t, err)
		assert.True(t, admin.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func adminSeed() employee.AdminSeed {
	return employee.AdminSeed{
		EmployeeNumber: "ADMIN001",
		FirstName:      "System",
		LastName:       "Administrator",
		Email:          "admin@textile.com",
		Password:       "admin123",
	}
}

func TestEmployeeService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account when missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		var created *employee.Employee
		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			created = e
			return nil
		}

		err := deps.service.EnsureAdmin(ctx, adminSeed())

		assert.NoError(t, err)
		assert.Equal(t, "ADMIN001", created.EmployeeNumber)
		assert.True(t, created.IsAdmin)
		assert.True(t, created.IsActive)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("admin123")))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("no-op when the admin already exists", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByEmailFn = func(ctx context.Context, email string) (*employee.Employee, error) {
			admin := sampleEmployee(uuid.New(), true)
			admin.Email = email
			return admin, nil
		}
		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			t.Fatal("create must not be called")
			return nil
		}
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			t.Fatal("update must not be called")
			return nil
		}

		err := deps.service.EnsureAdmin(ctx, adminSeed())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("promotes an existing non-admin account", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByEmailFn = func(ctx context.Context, email string) (*employee.Employee, error) {
			e := sampleEmployee(uuid.New(), false)
			e.Email = email
			e.IsActive = false
			return e, nil
		}

		var updated *employee.Employee
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			updated = e
			return nil
		}

		err := deps.service.EnsureAdmin(ctx, adminSeed())

		assert.NoError(t, err)
		assert.True(t, updated.IsAdmin)
		assert.True(t, updated.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
