package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/config"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/messaging/kafka"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/messaging/kafka/producer"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker menjalankan relay outbox: membaca event pending dari database dan
// menerbitkannya ke Kafka.
func RunWorker() error {
	logger := zap.L().Named("app.worker")
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

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBrokers, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
