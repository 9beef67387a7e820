// Package notify defines the notification interface and implementations
// for price change delivery.
package notify

import (
	"context"
	"time"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// PriceChangePayload contains the data needed to announce a price update.
type PriceChangePayload struct {
	VehicleID string
	Make      string
	Model     string
	YearRange string
	Field     domain.PriceField
	OldValue  string
	NewValue  string
	UserID    string
	ChangedAt time.Time
}

// Notifier defines the interface for announcing price changes.
type Notifier interface {
	SendPriceChange(ctx context.Context, change *PriceChangePayload) error
}
