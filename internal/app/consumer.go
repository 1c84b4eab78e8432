package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/bootstrap"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/config"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/events"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer mendengarkan event keputusan cuti dan mencatatnya sebagai
// notifikasi lewat audit logger.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")
	cfg := config.Load()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		Topic:          events.LeaveDecidedTopic,
		GroupID:        "lms-leave-notifications",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeLeaveDecisions(ctx, reader, bootstrap.NewStdoutAuditLogger(), logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
