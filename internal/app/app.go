package app

import (
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/attendance"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/bootstrap"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/config"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/employee"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/leave"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/middleware"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Run menyiapkan infrastruktur, mendaftarkan semua modul, lalu menjalankan
// HTTP server sampai menerima sinyal shutdown.
func Run() error {
	cfg := config.Load()

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&leave.Leave{},
		&attendance.Attendance{},
	); err != nil {
		return err
	}

	// Tabel outbox dipakai lewat database/sql murni, bukan entity gorm.
	if err := gormDB.Exec(`
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	aggregate_type VARCHAR(50) NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type VARCHAR(50) NOT NULL,
	topic VARCHAR(100) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message VARCHAR(500),
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`).Error; err != nil {
		return err
	}
	zap.L().Info("database migrated")

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	defer rdb.Close()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(rate.Limit(20), 40),
	)

	if err := registerModules(router, sqlDB, gormDB, rdb, cfg); err != nil {
		return err
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	bootstrap.StartHTTPServer(router, bootstrap.ServerConfig{
		Port:         cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, auditLogger)

	return nil
}
