package bot

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/autokeyhq/keyprice-bot/internal/session"
	"github.com/autokeyhq/keyprice-bot/internal/store/mocks"
	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// fleet is a small record set exercising every disambiguation branch:
// Toyota has two models, Corolla has two year ranges with an overlap, and
// the Camry range has two key-hardware variants.
func fleet() []domain.VehicleRecord {
	return []domain.VehicleRecord{
		{
			ID: "v1", Make: "Toyota", Model: "Corolla", YearRange: "2010-2015",
			KeyType: "TOY43", KeyMinPrice: "100", RemoteMinPrice: "70",
			P2SMinPrice: "180", IgnitionMinPrice: "140",
		},
		{
			ID: "v2", Make: "Toyota", Model: "Corolla", YearRange: "2012-2014",
			KeyType: "TOY44H", KeyMinPrice: "120", RemoteMinPrice: "80",
			P2SMinPrice: "200", IgnitionMinPrice: "150",
		},
		{
			ID: "v3", Make: "Toyota", Model: "Camry", YearRange: "2018-2022",
			KeyType: "TOY51", KeyMinPrice: "150", RemoteMinPrice: "95",
		},
		{
			ID: "v4", Make: "Toyota", Model: "Camry", YearRange: "2018-2022",
			KeyType: "TOY51-PROX", KeyMinPrice: "210", RemoteMinPrice: "160",
		},
	}
}

func newTestEngine(t *testing.T, opts ...EngineOption) (*Engine, *mocks.MockStore) {
	t.Helper()

	m := mocks.NewMockStore(t)
	m.EXPECT().ListVehicles(mock.Anything).Return(fleet(), nil).Maybe()

	updater := NewUpdater(m)
	return NewEngine(m, session.NewMemoryStore(), updater, opts...), m
}

func TestEngine_EndToEndScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, m := newTestEngine(t)
	const user = "tg:42"

	// Models for the make, numbered from 1.
	reply, err := e.HandleMessage(ctx, user, "toyota")
	require.NoError(t, err)
	assert.Contains(t, reply, "Models for Toyota:")
	assert.Contains(t, reply, "1. Corolla")
	assert.Contains(t, reply, "2. Camry")

	// Model by number: Corolla has two ranges, so a year prompt follows.
	reply, err = e.HandleMessage(ctx, user, "1")
	require.NoError(t, err)
	assert.Contains(t, reply, "Year ranges for Toyota Corolla:")
	assert.Contains(t, reply, "1. 2010-2015")
	assert.Contains(t, reply, "2. 2012-2014")

	// A year inside both ranges resolves to the narrower record.
	reply, err = e.HandleMessage(ctx, user, "2013")
	require.NoError(t, err)
	assert.Contains(t, reply, "Toyota Corolla 2013")
	assert.Contains(t, reply, "Key: TOY44H")
	assert.Contains(t, reply, "Remote Min: $80")

	// "9" opens the price menu for the resolved record.
	reply, err = e.HandleMessage(ctx, user, "9")
	require.NoError(t, err)
	assert.Contains(t, reply, "Update pricing for Toyota Corolla 2012-2014:")
	assert.Contains(t, reply, "2. Remote Min: $80")

	// "2 195" updates the remote price and audits the change.
	m.EXPECT().GetVehicle(mock.Anything, "v2").Return(&fleet()[1], nil).Once()
	m.EXPECT().UpdatePriceField(mock.Anything, "v2", domain.FieldRemoteMin, "195").Return(nil).Once()
	m.EXPECT().
		InsertPriceAudit(mock.Anything, mock.AnythingOfType("*domain.PriceAudit")).
		Run(func(_ context.Context, a *domain.PriceAudit) {
			assert.Equal(t, "v2", a.VehicleID)
			assert.Equal(t, user, a.UserID)
			assert.Equal(t, domain.FieldRemoteMin, a.FieldChanged)
			assert.Equal(t, "80", a.OldValue)
			assert.Equal(t, "195", a.NewValue)
		}).
		Return(nil).
		Once()

	reply, err = e.HandleMessage(ctx, user, "2 195")
	require.NoError(t, err)
	assert.Contains(t, reply, "Remote Min updated to $195")
	assert.Contains(t, reply, "entire 2012-2014 year range")
}

func TestEngine_FullQueryResolvesDirectly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, _ := newTestEngine(t)

	for _, input := range []string{"Toyota Corolla 2013", "2013 Toyota Corolla", "TOYOTA COROLLA 2013"} {
		reply, err := e.HandleMessage(ctx, "tg:1", input)
		require.NoError(t, err)
		assert.Contains(t, reply, "Toyota Corolla 2013", "input %q", input)
		assert.Contains(t, reply, "Key: TOY44H", "input %q", input)
	}
}

func TestEngine_NotFoundSuggestsRanges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, _ := newTestEngine(t)

	// 2020 is outside both Corolla ranges.
	reply, err := e.HandleMessage(ctx, "tg:1", "Toyota Corolla 2020")
	require.NoError(t, err)
	assert.Contains(t, reply, ReplyNotFound)
	assert.Contains(t, reply, "1. 2010-2015")

	// The suggestion list is selectable by number.
	reply, err = e.HandleMessage(ctx, "tg:1", "2")
	require.NoError(t, err)
	assert.Contains(t, reply, "Toyota Corolla 2012-2014")
}

func TestEngine_UnknownVehicleNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, _ := newTestEngine(t)

	reply, err := e.HandleMessage(ctx, "tg:1", "Zamboni Brontosaurus 2015")
	require.NoError(t, err)
	assert.Equal(t, ReplyNotFound, reply)
}

func TestEngine_VariantSelection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, _ := newTestEngine(t)
	const user = "tg:7"

	// Camry has a single range shared by two key variants.
	reply, err := e.HandleMessage(ctx, user, "Toyota Camry")
	require.NoError(t, err)
	assert.Contains(t, reply, "Multiple records share that year range:")
	assert.Contains(t, reply, "1. Toyota Camry 2018-2022 (Key: TOY51)")
	assert.Contains(t, reply, "2. Toyota Camry 2018-2022 (Key: TOY51-PROX)")

	reply, err = e.HandleMessage(ctx, user, "2")
	require.NoError(t, err)
	assert.Contains(t, reply, "Selected Toyota Camry 2018-2022.")
	assert.Contains(t, reply, "Key: TOY51-PROX")
	assert.Contains(t, reply, "Send 9 to update its prices.")
}

func TestEngine_CancellationFromAnyState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	stateSetups := map[string][]string{
		"selecting_model": {"toyota"},
		"selecting_year":  {"Toyota Corolla"},
		"updating_price":  {"Toyota Corolla 2013", "9"},
	}

	for name, setup := range stateSetups {
		setup := setup
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			e, _ := newTestEngine(t)
			const user = "tg:9"

			for _, msg := range setup {
				_, err := e.HandleMessage(ctx, user, msg)
				require.NoError(t, err)
			}

			reply, err := e.HandleMessage(ctx, user, "cancel")
			require.NoError(t, err)
			assert.Equal(t, replyCancelled, reply)

			// The next message starts from scratch.
			reply, err = e.HandleMessage(ctx, user, "toyota")
			require.NoError(t, err)
			assert.Contains(t, reply, "Models for Toyota:")
		})
	}
}

func TestEngine_ExitCommandVariants(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, _ := newTestEngine(t)

	for _, cmd := range []string{"cancel", "EXIT", "Stop", "back", "quit", "done", "no", "nevermind", "never mind"} {
		reply, err := e.HandleMessage(ctx, "tg:1", cmd)
		require.NoError(t, err)
		assert.Equal(t, replyCancelled, reply, "command %q", cmd)
	}
}

func TestEngine_ValidationRejection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, _ := newTestEngine(t)
	const user = "tg:11"

	_, err := e.HandleMessage(ctx, user, "Toyota Corolla 2013")
	require.NoError(t, err)
	_, err = e.HandleMessage(ctx, user, "9")
	require.NoError(t, err)

	// None of these may touch the store: no UpdatePriceField or
	// InsertPriceAudit expectations are registered.
	for _, bad := range []string{"1 abc", "1 -5", "1 10000", "5 100", "zero"} {
		reply, err := e.HandleMessage(ctx, user, bad)
		require.NoError(t, err)
		assert.Equal(t, replyInvalidPrice, reply, "input %q", bad)
	}
}

func TestEngine_StaleNumberInIdle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, _ := newTestEngine(t)

	reply, err := e.HandleMessage(ctx, "tg:1", "3")
	require.NoError(t, err)
	assert.Equal(t, replyStaleNumber, reply)
}

func TestEngine_BareYearGetsHelp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, _ := newTestEngine(t)

	reply, err := e.HandleMessage(ctx, "tg:1", "2015")
	require.NoError(t, err)
	assert.Equal(t, replyHelp, reply)
}

func TestEngine_MidFlowReprompt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, _ := newTestEngine(t)
	const user = "tg:13"

	_, err := e.HandleMessage(ctx, user, "toyota")
	require.NoError(t, err)

	// Out-of-range and non-matching input re-prompts, never falls
	// through to a fresh parse.
	reply, err := e.HandleMessage(ctx, user, "17")
	require.NoError(t, err)
	assert.Equal(t, formatReprompt(2), reply)

	// Exact model name works where a number would.
	reply, err = e.HandleMessage(ctx, user, "camry")
	require.NoError(t, err)
	assert.Contains(t, reply, "Multiple records share that year range:")
}

func TestEngine_UpdateAllowList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, _ := newTestEngine(t, WithUpdaterAllowList([]string{"tg:boss"}))
	const user = "tg:intern"

	_, err := e.HandleMessage(ctx, user, "Toyota Corolla 2013")
	require.NoError(t, err)

	reply, err := e.HandleMessage(ctx, user, "9")
	require.NoError(t, err)
	assert.Equal(t, replyNotAuthorized, reply)
}

func TestEngine_NineWithoutVehicleIsStale(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e, _ := newTestEngine(t)

	reply, err := e.HandleMessage(ctx, "tg:1", "9")
	require.NoError(t, err)
	assert.Equal(t, replyStaleNumber, reply)
}

func TestEngine_SessionActivityBumped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sessions := session.NewMemoryStore()

	m := mocks.NewMockStore(t)
	m.EXPECT().ListVehicles(mock.Anything).Return(fleet(), nil).Maybe()

	e := NewEngine(m, sessions, NewUpdater(m), WithClock(func() time.Time { return clock }))

	_, err := e.HandleMessage(ctx, "tg:1", "toyota")
	require.NoError(t, err)

	s, err := sessions.Get(ctx, "tg:1")
	require.NoError(t, err)
	assert.Equal(t, clock, s.LastActivity)
	assert.Equal(t, domain.StateSelectingModel, s.State)
}

func TestEngine_UserLockStableAndBounded(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)

	// The same user must always get the same mutex or serialization breaks.
	assert.Same(t, e.userLock("tg:1"), e.userLock("tg:1"))

	// Lock storage is a fixed shard pool; an arbitrary number of distinct
	// users maps into it without allocating per-user state.
	seen := make(map[*sync.Mutex]bool)
	for i := 0; i < 10_000; i++ {
		seen[e.userLock(fmt.Sprintf("tg:%d", i))] = true
	}
	assert.LessOrEqual(t, len(seen), lockShards)
}
