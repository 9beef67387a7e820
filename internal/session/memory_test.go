package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autokeyhq/keyprice-bot/internal/session"
	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	t.Parallel()

	m := session.NewMemoryStore()

	_, err := m.Get(context.Background(), "tg:12345")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStore_PutGet(t *testing.T) {
	t.Parallel()

	m := session.NewMemoryStore()
	s := domain.NewSession("tg:12345", time.Now())
	s.State = domain.StateSelectingModel
	s.Make = "Honda"
	s.Models = []string{"Accord", "Civic"}

	require.NoError(t, m.Put(context.Background(), s))

	got, err := m.Get(context.Background(), "tg:12345")
	require.NoError(t, err)
	assert.Equal(t, domain.StateSelectingModel, got.State)
	assert.Equal(t, []string{"Accord", "Civic"}, got.Models)
}

func TestMemoryStore_PutReplaces(t *testing.T) {
	t.Parallel()

	m := session.NewMemoryStore()
	require.NoError(t, m.Put(context.Background(), domain.NewSession("tg:1", time.Now())))

	s := domain.NewSession("tg:1", time.Now())
	s.State = domain.StateUpdatingPrice
	require.NoError(t, m.Put(context.Background(), s))

	got, err := m.Get(context.Background(), "tg:1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateUpdatingPrice, got.State)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Parallel()

	m := session.NewMemoryStore()
	require.NoError(t, m.Put(context.Background(), domain.NewSession("tg:1", time.Now())))
	require.NoError(t, m.Delete(context.Background(), "tg:1"))
	require.NoError(t, m.Delete(context.Background(), "tg:1"))

	_, err := m.Get(context.Background(), "tg:1")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStore_Sweep(t *testing.T) {
	t.Parallel()

	m := session.NewMemoryStore()
	now := time.Now()

	stale := domain.NewSession("tg:old", now.Add(-15*time.Minute))
	fresh := domain.NewSession("tg:new", now)
	require.NoError(t, m.Put(context.Background(), stale))
	require.NoError(t, m.Put(context.Background(), fresh))

	removed, err := m.Sweep(context.Background(), 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = m.Get(context.Background(), "tg:old")
	assert.ErrorIs(t, err, session.ErrNotFound)

	_, err = m.Get(context.Background(), "tg:new")
	assert.NoError(t, err)
}
