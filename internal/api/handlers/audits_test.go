package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/autokeyhq/keyprice-bot/internal/api/handlers"
	"github.com/autokeyhq/keyprice-bot/internal/store/mocks"
	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

func TestListAudits(t *testing.T) {
	t.Parallel()

	audits := []domain.PriceAudit{
		{
			ID: "a1", VehicleID: "v2", UserID: "tg:42",
			FieldChanged: domain.FieldRemoteMin,
			OldValue:     "80", NewValue: "195",
			ChangedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	m := mocks.NewMockStore(t)
	m.EXPECT().ListPriceAudits(mock.Anything, "v2", 10).Return(audits, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterAuditRoutes(api, handlers.NewAuditsHandler(m))

	resp := api.Get("/api/v1/audits?vehicle_id=v2&limit=10")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"field_changed":"remote_min_price"`)
	assert.Contains(t, resp.Body.String(), `"old_value":"80"`)
}

func TestListAudits_DefaultLimit(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	m.EXPECT().ListPriceAudits(mock.Anything, "", 50).Return(nil, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterAuditRoutes(api, handlers.NewAuditsHandler(m))

	resp := api.Get("/api/v1/audits")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"audits":[]`)
}

func TestListAudits_StoreError(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	m.EXPECT().ListPriceAudits(mock.Anything, "", 50).Return(nil, errors.New("db down")).Once()

	_, api := humatest.New(t)
	handlers.RegisterAuditRoutes(api, handlers.NewAuditsHandler(m))

	resp := api.Get("/api/v1/audits")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
