package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

const defaultPoolSize = 10

// ErrNoSuchVehicle is returned when an update targets an id that does not
// exist.
var ErrNoSuchVehicle = errors.New("vehicle not found")

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ListVehicles returns every vehicle record ordered by make, model, and
// year range.
func (s *PostgresStore) ListVehicles(ctx context.Context) ([]domain.VehicleRecord, error) {
	rows, err := s.pool.Query(ctx, queryListVehicles)
	if err != nil {
		return nil, fmt.Errorf("querying vehicles: %w", err)
	}
	defer rows.Close()

	return collectVehicles(rows)
}

// QueryVehicles queries vehicles with optional filters, returning results
// and total count.
func (s *PostgresStore) QueryVehicles(
	ctx context.Context,
	opts *VehicleQuery,
) ([]domain.VehicleRecord, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting vehicles: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying vehicles: %w", err)
	}
	defer rows.Close()

	vehicles, err := collectVehicles(rows)
	if err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

// GetVehicle retrieves a vehicle record by its UUID.
func (s *PostgresStore) GetVehicle(ctx context.Context, id string) (*domain.VehicleRecord, error) {
	v := &domain.VehicleRecord{}
	if err := scanVehicle(s.pool.QueryRow(ctx, queryGetVehicle, id), v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSuchVehicle
		}
		return nil, fmt.Errorf("getting vehicle: %w", err)
	}
	return v, nil
}

// UpsertVehicle inserts or updates a record keyed by make+model+year_range.
func (s *PostgresStore) UpsertVehicle(ctx context.Context, v *domain.VehicleRecord) error {
	args := pgx.NamedArgs{
		"year_range":         v.YearRange,
		"make":               v.Make,
		"model":              v.Model,
		"key_type":           v.KeyType,
		"key_min_price":      v.KeyMinPrice,
		"remote_min_price":   v.RemoteMinPrice,
		"p2s_min_price":      v.P2SMinPrice,
		"ignition_min_price": v.IgnitionMinPrice,
	}

	return s.pool.QueryRow(ctx, queryUpsertVehicle, args).Scan(
		&v.ID, &v.CreatedAt, &v.UpdatedAt,
	)
}

// UpdatePriceField sets one price column to the given (already validated)
// value.
func (s *PostgresStore) UpdatePriceField(
	ctx context.Context,
	id string,
	field domain.PriceField,
	value string,
) error {
	if !field.Valid() {
		return fmt.Errorf("unknown price field %q", field)
	}

	tag, err := s.pool.Exec(ctx, fmt.Sprintf(queryUpdatePriceFieldFmt, string(field)), id, value)
	if err != nil {
		return fmt.Errorf("updating %s: %w", field, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoSuchVehicle
	}
	return nil
}

// InsertPriceAudit appends an audit row. The entry's ID and ChangedAt are
// filled in when unset.
func (s *PostgresStore) InsertPriceAudit(ctx context.Context, a *domain.PriceAudit) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.ChangedAt.IsZero() {
		a.ChangedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx, queryInsertPriceAudit,
		a.ID, a.VehicleID, a.UserID, string(a.FieldChanged),
		a.OldValue, a.NewValue, a.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting price audit: %w", err)
	}
	return nil
}

// ListPriceAudits returns audit rows newest first. An empty vehicleID
// returns audits across all vehicles.
func (s *PostgresStore) ListPriceAudits(
	ctx context.Context,
	vehicleID string,
	limit int,
) ([]domain.PriceAudit, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	var rows pgx.Rows
	var err error
	if vehicleID == "" {
		rows, err = s.pool.Query(ctx, queryListPriceAudits, limit)
	} else {
		rows, err = s.pool.Query(ctx, queryListPriceAuditsByVehicle, vehicleID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("querying price audits: %w", err)
	}
	defer rows.Close()

	var audits []domain.PriceAudit
	for rows.Next() {
		var a domain.PriceAudit
		var field string
		if err := rows.Scan(
			&a.ID, &a.VehicleID, &a.UserID, &field,
			&a.OldValue, &a.NewValue, &a.ChangedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning price audit: %w", err)
		}
		a.FieldChanged = domain.PriceField(field)
		audits = append(audits, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price audits: %w", err)
	}

	return audits, nil
}

// GetSystemState returns aggregate counts for the admin API.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	err := s.pool.QueryRow(ctx, querySystemState).Scan(
		&st.VehiclesTotal, &st.MakesTotal, &st.AuditsTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("querying system state: %w", err)
	}
	return st, nil
}

func collectVehicles(rows pgx.Rows) ([]domain.VehicleRecord, error) {
	var vehicles []domain.VehicleRecord
	for rows.Next() {
		var v domain.VehicleRecord
		if err := scanVehicle(rows, &v); err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vehicles: %w", err)
	}
	return vehicles, nil
}

func scanVehicle(row pgx.Row, v *domain.VehicleRecord) error {
	return row.Scan(
		&v.ID, &v.YearRange, &v.Make, &v.Model, &v.KeyType,
		&v.KeyMinPrice, &v.RemoteMinPrice, &v.P2SMinPrice, &v.IgnitionMinPrice,
		&v.CreatedAt, &v.UpdatedAt,
	)
}
