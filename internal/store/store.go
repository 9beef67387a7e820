// Package store defines the datastore abstraction for the key price bot.
// Business logic depends on the Store interface, never on a concrete
// implementation, so the conversation engine and HTTP handlers can be
// tested against mocks without a running database.
package store

import (
	"context"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// VehicleQuery defines optional filters for vehicle listing queries.
type VehicleQuery struct {
	Make   *string
	Model  *string
	Limit  int // default 50
	Offset int
}

// Store defines all data access operations for the key price bot.
type Store interface {
	// Vehicles. ListVehicles returns the full record set ordered by
	// make, model, year range; numbered selection lists depend on that
	// ordering.
	ListVehicles(ctx context.Context) ([]domain.VehicleRecord, error)
	QueryVehicles(ctx context.Context, opts *VehicleQuery) ([]domain.VehicleRecord, int, error)
	GetVehicle(ctx context.Context, id string) (*domain.VehicleRecord, error)
	UpsertVehicle(ctx context.Context, v *domain.VehicleRecord) error
	UpdatePriceField(ctx context.Context, id string, field domain.PriceField, value string) error

	// Audit log, append-only.
	InsertPriceAudit(ctx context.Context, a *domain.PriceAudit) error
	ListPriceAudits(ctx context.Context, vehicleID string, limit int) ([]domain.PriceAudit, error)

	// Aggregates
	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}

// Invalidator is implemented by caching layers that can drop their
// snapshot of the record set.
type Invalidator interface {
	ClearCache()
}
