//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/autokeyhq/keyprice-bot/internal/store"
	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("kpb_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testVehicle() *domain.VehicleRecord {
	return &domain.VehicleRecord{
		YearRange:        "2012-2017",
		Make:             "Toyota",
		Model:            "Camry",
		KeyType:          "smart",
		KeyMinPrice:      "180",
		RemoteMinPrice:   "220",
		P2SMinPrice:      "250",
		IgnitionMinPrice: "320",
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_UpsertVehicle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("insert new record", func(t *testing.T) {
		v := testVehicle()
		require.NoError(t, s.UpsertVehicle(ctx, v))

		assert.NotEmpty(t, v.ID)
		assert.False(t, v.CreatedAt.IsZero())
		assert.False(t, v.UpdatedAt.IsZero())

		got, err := s.GetVehicle(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, "Toyota", got.Make)
		assert.Equal(t, "180", got.KeyMinPrice)
	})

	t.Run("conflict on make model year range updates in place", func(t *testing.T) {
		first := testVehicle()
		first.Make = "Honda"
		first.Model = "Civic"
		require.NoError(t, s.UpsertVehicle(ctx, first))

		again := testVehicle()
		again.Make = "Honda"
		again.Model = "Civic"
		again.KeyType = "transponder"
		again.KeyMinPrice = "150"
		require.NoError(t, s.UpsertVehicle(ctx, again))

		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, first.CreatedAt, again.CreatedAt)

		got, err := s.GetVehicle(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "transponder", got.KeyType)
		assert.Equal(t, "150", got.KeyMinPrice)
		assert.Equal(t, "220", got.RemoteMinPrice)
	})
}

func TestPostgresStore_ListVehiclesOrdering(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	// Inserted out of order on purpose; listings must come back sorted by
	// make, model, year range so numbered menus stay stable.
	for _, r := range []struct{ yr, mk, md string }{
		{"2015-2020", "Toyota", "Corolla"},
		{"2010-2014", "Honda", "Civic"},
		{"2010-2014", "Toyota", "Corolla"},
		{"2012-2017", "Honda", "Accord"},
	} {
		v := testVehicle()
		v.YearRange, v.Make, v.Model = r.yr, r.mk, r.md
		require.NoError(t, s.UpsertVehicle(ctx, v))
	}

	all, err := s.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	assert.Equal(t, "Accord", all[0].Model)
	assert.Equal(t, "Civic", all[1].Model)
	assert.Equal(t, "2010-2014", all[2].YearRange)
	assert.Equal(t, "2015-2020", all[3].YearRange)
}

func TestPostgresStore_QueryVehicles(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for _, r := range []struct{ mk, md string }{
		{"Toyota", "Corolla"},
		{"Toyota", "Camry"},
		{"Honda", "Civic"},
	} {
		v := testVehicle()
		v.Make, v.Model = r.mk, r.md
		require.NoError(t, s.UpsertVehicle(ctx, v))
	}

	mk := "toyota"
	got, total, err := s.QueryVehicles(ctx, &store.VehicleQuery{Make: &mk})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, "Camry", got[0].Model)
	assert.Equal(t, "Corolla", got[1].Model)
}

func TestPostgresStore_GetVehicleNotFound(t *testing.T) {
	s := setupPostgres(t)

	_, err := s.GetVehicle(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, store.ErrNoSuchVehicle)
}

func TestPostgresStore_UpdatePriceField(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	v := testVehicle()
	require.NoError(t, s.UpsertVehicle(ctx, v))

	t.Run("value persists and updated_at advances", func(t *testing.T) {
		require.NoError(t, s.UpdatePriceField(ctx, v.ID, domain.FieldRemoteMin, "199.99"))

		got, err := s.GetVehicle(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, "199.99", got.RemoteMinPrice)
		assert.Equal(t, "180", got.KeyMinPrice)
		assert.True(t, got.UpdatedAt.After(v.UpdatedAt) || got.UpdatedAt.Equal(v.UpdatedAt))
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		err := s.UpdatePriceField(ctx,
			"00000000-0000-0000-0000-000000000000", domain.FieldKeyMin, "100")
		assert.ErrorIs(t, err, store.ErrNoSuchVehicle)
	})

	t.Run("invalid field rejected before touching the database", func(t *testing.T) {
		err := s.UpdatePriceField(ctx, v.ID, domain.PriceField("updated_at"), "boom")
		assert.Error(t, err)
	})
}

func TestPostgresStore_PriceAudits(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	v := testVehicle()
	require.NoError(t, s.UpsertVehicle(ctx, v))

	other := testVehicle()
	other.Model = "Corolla"
	require.NoError(t, s.UpsertVehicle(ctx, other))

	first := &domain.PriceAudit{
		VehicleID:    v.ID,
		UserID:       "42",
		FieldChanged: domain.FieldKeyMin,
		OldValue:     "180",
		NewValue:     "190",
	}
	require.NoError(t, s.InsertPriceAudit(ctx, first))
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.ChangedAt.IsZero())

	second := &domain.PriceAudit{
		VehicleID:    v.ID,
		UserID:       "42",
		FieldChanged: domain.FieldKeyMin,
		OldValue:     "190",
		NewValue:     "200",
		ChangedAt:    first.ChangedAt.Add(time.Second),
	}
	require.NoError(t, s.InsertPriceAudit(ctx, second))

	require.NoError(t, s.InsertPriceAudit(ctx, &domain.PriceAudit{
		VehicleID:    other.ID,
		UserID:       "7",
		FieldChanged: domain.FieldRemoteMin,
		OldValue:     "220",
		NewValue:     "230",
		ChangedAt:    first.ChangedAt.Add(2 * time.Second),
	}))

	t.Run("newest first across vehicles", func(t *testing.T) {
		audits, err := s.ListPriceAudits(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, audits, 3)
		assert.Equal(t, other.ID, audits[0].VehicleID)
		assert.Equal(t, "200", audits[1].NewValue)
		assert.Equal(t, "190", audits[2].NewValue)
	})

	t.Run("filtered by vehicle", func(t *testing.T) {
		audits, err := s.ListPriceAudits(ctx, v.ID, 10)
		require.NoError(t, err)
		require.Len(t, audits, 2)
		assert.Equal(t, second.ID, audits[0].ID)
		assert.Equal(t, domain.FieldKeyMin, audits[0].FieldChanged)
	})

	t.Run("limit applies", func(t *testing.T) {
		audits, err := s.ListPriceAudits(ctx, "", 1)
		require.NoError(t, err)
		require.Len(t, audits, 1)
	})
}

func TestPostgresStore_GetSystemState(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for _, r := range []struct{ mk, md string }{
		{"Toyota", "Corolla"},
		{"toyota", "Camry"},
		{"Honda", "Civic"},
	} {
		v := testVehicle()
		v.Make, v.Model = r.mk, r.md
		require.NoError(t, s.UpsertVehicle(ctx, v))
	}

	st, err := s.GetSystemState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.VehiclesTotal)
	assert.Equal(t, 2, st.MakesTotal)
	assert.Equal(t, 0, st.AuditsTotal)
}
