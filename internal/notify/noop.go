package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It
// is used when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards notifications with a
// log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendPriceChange logs and discards a price change notification.
func (n *NoOpNotifier) SendPriceChange(_ context.Context, change *PriceChangePayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"vehicle_id", change.VehicleID,
		"field", change.Field,
		"new_value", change.NewValue,
	)
	return nil
}
