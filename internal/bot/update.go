package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/autokeyhq/keyprice-bot/internal/metrics"
	"github.com/autokeyhq/keyprice-bot/internal/notify"
	"github.com/autokeyhq/keyprice-bot/internal/store"
	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// priceRe accepts a non-negative amount with up to two decimal places.
var priceRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

const maxPrice = 9999

// ErrInvalidPrice is returned when the submitted price fails validation.
// No mutation is attempted.
var ErrInvalidPrice = errors.New("invalid price")

// ErrUnaudited is returned when the price write succeeded but the audit
// row could not be appended. The update stands; the caller must surface
// the partial success rather than report a clean confirmation.
var ErrUnaudited = errors.New("price updated but audit append failed")

// ValidatePrice checks the price text against the accepted format and the
// [0, 9999] bound.
func ValidatePrice(text string) error {
	if !priceRe.MatchString(text) {
		return ErrInvalidPrice
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v < 0 || v > maxPrice {
		return ErrInvalidPrice
	}
	return nil
}

// Updater applies price mutations: validate, write, audit, invalidate the
// cache, then notify. The cache invalidation is synchronous so the user
// never sees a stale price after their own update.
type Updater struct {
	store    store.Store
	cache    store.Invalidator
	notifier notify.Notifier
	log      *slog.Logger
	now      func() time.Time
}

// NewUpdater creates a price update orchestrator. cache and notifier may
// be nil when there is nothing to invalidate or announce.
func NewUpdater(s store.Store, opts ...UpdaterOption) *Updater {
	u := &Updater{
		store: s,
		log:   slog.Default(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// UpdaterOption configures an Updater.
type UpdaterOption func(*Updater)

// WithCache sets the cache to invalidate after successful writes.
func WithCache(c store.Invalidator) UpdaterOption {
	return func(u *Updater) {
		u.cache = c
	}
}

// WithNotifier sets the notifier for price change announcements.
func WithNotifier(n notify.Notifier) UpdaterOption {
	return func(u *Updater) {
		u.notifier = n
	}
}

// WithUpdaterLogger sets the logger.
func WithUpdaterLogger(log *slog.Logger) UpdaterOption {
	return func(u *Updater) {
		u.log = log
	}
}

// WithUpdaterClock overrides the clock, for tests.
func WithUpdaterClock(now func() time.Time) UpdaterOption {
	return func(u *Updater) {
		u.now = now
	}
}

// UpdatePrice validates newPrice and applies it to the given field of rec.
// On success rec is mutated in place so the caller's session view stays
// current. Returns ErrInvalidPrice, ErrUnaudited, or a wrapped store error.
func (u *Updater) UpdatePrice(
	ctx context.Context,
	rec *domain.VehicleRecord,
	field domain.PriceField,
	newPrice string,
	userID string,
) error {
	if err := ValidatePrice(newPrice); err != nil {
		metrics.PriceUpdateRejectionsTotal.Inc()
		return err
	}

	oldValue := rec.Price(field)
	if rec.ID != "" {
		// Re-read so the audit old value reflects the store, not a
		// possibly stale session copy.
		current, err := u.store.GetVehicle(ctx, rec.ID)
		if err == nil {
			oldValue = current.Price(field)
		} else if !errors.Is(err, store.ErrNoSuchVehicle) {
			return fmt.Errorf("reading current price: %w", err)
		}
	}

	if err := u.store.UpdatePriceField(ctx, rec.ID, field, newPrice); err != nil {
		return fmt.Errorf("updating price field: %w", err)
	}

	rec.SetPrice(field, newPrice)
	metrics.PriceUpdatesTotal.Inc()

	auditErr := u.store.InsertPriceAudit(ctx, &domain.PriceAudit{
		VehicleID:    rec.ID,
		UserID:       userID,
		FieldChanged: field,
		OldValue:     oldValue,
		NewValue:     newPrice,
		ChangedAt:    u.now().UTC(),
	})

	if u.cache != nil {
		u.cache.ClearCache()
	}

	u.sendNotification(ctx, rec, field, oldValue, newPrice, userID)

	if auditErr != nil {
		u.log.Error("audit append failed after successful price write",
			"vehicle_id", rec.ID,
			"field", field,
			"error", auditErr,
		)
		return ErrUnaudited
	}
	return nil
}

func (u *Updater) sendNotification(
	ctx context.Context,
	rec *domain.VehicleRecord,
	field domain.PriceField,
	oldValue, newValue, userID string,
) {
	if u.notifier == nil {
		return
	}

	err := u.notifier.SendPriceChange(ctx, &notify.PriceChangePayload{
		VehicleID: rec.ID,
		Make:      rec.Make,
		Model:     rec.Model,
		YearRange: rec.YearRange,
		Field:     field,
		OldValue:  oldValue,
		NewValue:  newValue,
		UserID:    userID,
		ChangedAt: u.now().UTC(),
	})
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		u.log.Warn("price change notification failed", "vehicle_id", rec.ID, "error", err)
	}
}
