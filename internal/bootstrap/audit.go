package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger mencatat kejadian operasional penting (startup, shutdown,
// keputusan cuti) ke sink yang bisa diganti.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
