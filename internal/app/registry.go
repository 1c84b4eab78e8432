package app

import (
	"context"
	"database/sql"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/attendance"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/auth"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/config"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/leave"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/messaging/kafka"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) error {
	policy := leave.NewPolicy(
		cfg.Leave.AnnualDays,
		cfg.Leave.SickDays,
		cfg.Leave.CasualDays,
		cfg.Leave.EmergencyDays,
	)

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(db, employeeRepo, cfg.JWTSecret)
	employeeService := employee.NewService(db, employeeRepo)
	leaveService := leave.NewService(db, leaveRepo, employeeRepo, outboxRepo, policy)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo)
	reportService := report.NewService(reportRepo, leaveService, rdb)

	// Seed admin awal; tanpa satu pun admin, route AdminRequired mati semua.
	if err := employeeService.EnsureAdmin(context.Background(), employee.AdminSeed{
		EmployeeNumber: cfg.Admin.EmployeeNumber,
		FirstName:      cfg.Admin.FirstName,
		LastName:       cfg.Admin.LastName,
		Email:          cfg.Admin.Email,
		Password:       cfg.Admin.Password,
	}); err != nil {
		return err
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg.JWTSecret)
		employee.RegisterRoutes(api, employeeHandler, cfg.JWTSecret)
		leave.RegisterRoutes(api, leaveHandler, cfg.JWTSecret, rdb)
		attendance.RegisterRoutes(api, attendanceHandler, cfg.JWTSecret)
		report.RegisterRoutes(api, reportHandler, cfg.JWTSecret)
	}

	return nil
}
