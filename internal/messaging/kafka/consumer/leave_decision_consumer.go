package consumer

import (
	"context"
	"encoding/json"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/bootstrap"
	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveDecisions membaca event keputusan cuti dan meneruskannya ke
// audit logger sebagai notifikasi.
func ConsumeLeaveDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decision")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave decision event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  "LEAVE_" + event.Status,
			Message: "leave request decided",
			Meta: map[string]any{
				"leave_id":    event.LeaveID,
				"employee_id": event.EmployeeID,
				"leave_type":  event.LeaveType,
				"total_days":  event.TotalDays,
				"reviewed_by": event.ReviewedBy,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision processed",
			zap.String("leave_id", event.LeaveID),
			zap.String("status", event.Status),
		)
	}
}
