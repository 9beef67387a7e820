// Package bot implements the conversational engine: a per-user state
// machine that turns free-text vehicle queries into pricing replies and
// drives the interactive disambiguation and price-update flows. The
// engine is transport-agnostic; adapters (Telegram) feed it text and
// relay its replies.
package bot

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/autokeyhq/keyprice-bot/internal/match"
	"github.com/autokeyhq/keyprice-bot/internal/metrics"
	"github.com/autokeyhq/keyprice-bot/internal/session"
	"github.com/autokeyhq/keyprice-bot/internal/store"
	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// exitCommands clear the session from any state. Checked before anything
// else on every message.
var exitCommands = map[string]bool{
	"cancel":     true,
	"exit":       true,
	"stop":       true,
	"back":       true,
	"quit":       true,
	"done":       true,
	"no":         true,
	"nevermind":  true,
	"never mind": true,
}

// priceMenuTrigger enters the price-update flow when a vehicle is resolved.
const priceMenuTrigger = "9"

// Engine drives one conversation per user. Messages from the same user
// are serialized; messages from different users run concurrently.
type Engine struct {
	store    store.Store
	sessions session.Store
	updater  *Updater
	log      *slog.Logger
	now      func() time.Time

	// updaters gates the price-update flow. Empty means everyone.
	updaters map[string]bool

	// locks is a fixed pool of mutexes sharded by user ID hash, so
	// per-user serialization never grows with the user population.
	locks [lockShards]sync.Mutex
}

// lockShards is the size of the user lock pool. Distinct users may share
// a shard; that only costs a little contention, never correctness.
const lockShards = 256

// NewEngine creates a conversation engine.
func NewEngine(s store.Store, sessions session.Store, updater *Updater, opts ...EngineOption) *Engine {
	e := &Engine{
		store:    s,
		sessions: sessions,
		updater:  updater,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = log
	}
}

// WithClock overrides the clock, for tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithUpdaterAllowList restricts the price-update flow to the given user
// IDs. An empty list leaves the flow open to everyone.
func WithUpdaterAllowList(ids []string) EngineOption {
	return func(e *Engine) {
		if len(ids) == 0 {
			return
		}
		e.updaters = make(map[string]bool, len(ids))
		for _, id := range ids {
			e.updaters[id] = true
		}
	}
}

// userLock returns the mutex serializing messages for one user. The same
// user always hashes to the same shard.
func (e *Engine) userLock(userID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return &e.locks[h.Sum32()%lockShards]
}

// HandleMessage processes one inbound message and returns the reply text.
// A non-nil error means an internal failure; the returned reply is still
// safe to send.
func (e *Engine) HandleMessage(ctx context.Context, userID, text string) (string, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	started := time.Now()
	defer func() {
		metrics.HandleDuration.Observe(time.Since(started).Seconds())
	}()

	text = strings.TrimSpace(text)
	if text == "" {
		return replyHelp, nil
	}

	sess, err := e.sessions.Get(ctx, userID)
	if errors.Is(err, session.ErrNotFound) {
		sess = domain.NewSession(userID, e.now())
	} else if err != nil {
		metrics.HandleErrorsTotal.Inc()
		return replyLookupFailure, fmt.Errorf("loading session: %w", err)
	}
	metrics.MessagesTotal.WithLabelValues(string(sess.State)).Inc()

	// Exit commands win over everything, including mid-flow prompts.
	if exitCommands[strings.ToLower(text)] {
		if err := e.sessions.Delete(ctx, userID); err != nil {
			e.log.Warn("deleting session", "user_id", userID, "error", err)
		}
		return replyCancelled, nil
	}

	reply, err := e.dispatch(ctx, sess, text)
	if err != nil {
		metrics.HandleErrorsTotal.Inc()
		e.log.Error("message handling failed",
			"user_id", userID,
			"state", sess.State,
			"error", err,
		)
	}

	sess.LastActivity = e.now()
	if putErr := e.sessions.Put(ctx, sess); putErr != nil {
		e.log.Warn("saving session", "user_id", userID, "error", putErr)
	}
	return reply, err
}

func (e *Engine) dispatch(ctx context.Context, sess *domain.Session, text string) (string, error) {
	// The "9" shortcut opens the price menu from any state once a
	// vehicle has been resolved.
	if text == priceMenuTrigger && sess.Vehicle != nil {
		if !e.mayUpdate(sess.UserID) {
			return replyNotAuthorized, nil
		}
		sess.State = domain.StateUpdatingPrice
		return formatPriceMenu(sess.Vehicle), nil
	}

	switch sess.State {
	case domain.StateSelectingModel:
		return e.handleSelectingModel(ctx, sess, text)
	case domain.StateSelectingYear:
		return e.handleSelectingYear(ctx, sess, text)
	case domain.StateSelectingVehicle:
		return e.handleSelectingVehicle(sess, text)
	case domain.StateUpdatingPrice:
		return e.handleUpdatingPrice(ctx, sess, text)
	default:
		return e.handleIdle(ctx, sess, text)
	}
}

func (e *Engine) mayUpdate(userID string) bool {
	return e.updaters == nil || e.updaters[userID]
}

func (e *Engine) handleIdle(ctx context.Context, sess *domain.Session, text string) (string, error) {
	// A bare number here is usually a selection for a session that no
	// longer exists. A bare year is just an incomplete query.
	if _, err := strconv.Atoi(text); err == nil {
		if _, isYear := match.PlausibleYear(text); !isYear {
			return replyStaleNumber, nil
		}
		return replyHelp, nil
	}

	query, ok := match.ParseQuery(text)
	if !ok {
		return replyHelp, nil
	}

	records, err := e.store.ListVehicles(ctx)
	if err != nil {
		return replyLookupFailure, fmt.Errorf("listing vehicles: %w", err)
	}

	switch query.Kind {
	case match.KindMakeOnly:
		mk := match.NormalizeMake(query.Make)
		models := match.Models(records, mk)
		if len(models) == 0 {
			return formatNoModels(mk), nil
		}
		sess.Reset()
		sess.State = domain.StateSelectingModel
		sess.Make = mk
		sess.Models = models
		return formatModelList(mk, models), nil

	case match.KindMakeModel:
		return e.resolveMakeModel(sess, records, query.Make, query.Model)

	default: // match.KindFull
		result, err := match.Match(records, query.Make, query.Model, query.Year)
		if errors.Is(err, match.ErrNotFound) {
			metrics.MatchMissesTotal.Inc()
			mk := match.NormalizeMake(query.Make)
			if ranges := match.YearRanges(records, mk, query.Model); len(ranges) > 0 {
				sess.Reset()
				sess.State = domain.StateSelectingYear
				sess.Make = mk
				sess.Model = query.Model
				sess.YearRanges = ranges
				return formatNotFoundWithRanges(mk, query.Model, ranges), nil
			}
			return ReplyNotFound, nil
		}
		metrics.MatchesTotal.Inc()
		sess.Reset()
		sess.Vehicle = &result.Record
		return FormatVehicle(&result.Record, strconv.Itoa(result.Year)), nil
	}
}

// resolveMakeModel runs the make+model transition: zero ranges reports,
// one range resolves directly, several prompt for a year.
func (e *Engine) resolveMakeModel(
	sess *domain.Session,
	records []domain.VehicleRecord,
	mk, model string,
) (string, error) {
	mk = match.NormalizeMake(mk)
	ranges := match.YearRanges(records, mk, model)

	switch len(ranges) {
	case 0:
		sess.Reset()
		return formatNoYearRanges(mk, model), nil
	case 1:
		return e.showVehiclesForRange(sess, records, mk, model, ranges[0]), nil
	default:
		sess.Reset()
		sess.State = domain.StateSelectingYear
		sess.Make = mk
		sess.Model = model
		sess.YearRanges = ranges
		return formatYearRangeList(mk, model, ranges), nil
	}
}

// showVehiclesForRange displays the records for an exact range string. One
// record resolves directly; several prompt for a variant selection.
func (e *Engine) showVehiclesForRange(
	sess *domain.Session,
	records []domain.VehicleRecord,
	mk, model, rng string,
) string {
	options := match.RecordsForRange(records, mk, model, rng)

	switch len(options) {
	case 0:
		sess.Reset()
		return formatNoRecordsForRange(mk, model, rng)
	case 1:
		metrics.MatchesTotal.Inc()
		sess.Reset()
		sess.Vehicle = &options[0]
		return FormatVehicle(&options[0], rng)
	default:
		sess.Reset()
		sess.State = domain.StateSelectingVehicle
		sess.Make = mk
		sess.Model = model
		sess.VehicleOptions = options
		return formatVehicleOptions(options)
	}
}

func (e *Engine) handleSelectingModel(ctx context.Context, sess *domain.Session, text string) (string, error) {
	model, ok := pickModel(sess.Models, text)
	if !ok {
		return formatReprompt(len(sess.Models)), nil
	}

	records, err := e.store.ListVehicles(ctx)
	if err != nil {
		return replyLookupFailure, fmt.Errorf("listing vehicles: %w", err)
	}
	return e.resolveMakeModel(sess, records, sess.Make, model)
}

// pickModel resolves a selection by 1-based index or exact
// case-insensitive name.
func pickModel(models []string, text string) (string, bool) {
	if n, err := strconv.Atoi(text); err == nil {
		if n >= 1 && n <= len(models) {
			return models[n-1], true
		}
		return "", false
	}
	for _, m := range models {
		if strings.EqualFold(m, text) {
			return m, true
		}
	}
	return "", false
}

func (e *Engine) handleSelectingYear(ctx context.Context, sess *domain.Session, text string) (string, error) {
	records, err := e.store.ListVehicles(ctx)
	if err != nil {
		return replyLookupFailure, fmt.Errorf("listing vehicles: %w", err)
	}

	// A plausible year tries a direct match first; small numbers fall
	// through to the 1-based range selector.
	if year, isYear := match.PlausibleYear(text); isYear {
		result, err := match.Match(records, sess.Make, sess.Model, year)
		if errors.Is(err, match.ErrNotFound) {
			metrics.MatchMissesTotal.Inc()
			return formatNotFoundWithRanges(sess.Make, sess.Model, sess.YearRanges), nil
		}
		metrics.MatchesTotal.Inc()
		sess.Reset()
		sess.Vehicle = &result.Record
		return FormatVehicle(&result.Record, strconv.Itoa(result.Year)), nil
	}

	if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(sess.YearRanges) {
		return e.showVehiclesForRange(sess, records, sess.Make, sess.Model, sess.YearRanges[n-1]), nil
	}

	return formatReprompt(len(sess.YearRanges)), nil
}

func (e *Engine) handleSelectingVehicle(sess *domain.Session, text string) (string, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > len(sess.VehicleOptions) {
		return formatReprompt(len(sess.VehicleOptions)), nil
	}

	chosen := sess.VehicleOptions[n-1]
	metrics.MatchesTotal.Inc()
	sess.Reset()
	sess.Vehicle = &chosen
	return formatVehicleSelected(&chosen), nil
}

func (e *Engine) handleUpdatingPrice(ctx context.Context, sess *domain.Session, text string) (string, error) {
	if sess.Vehicle == nil {
		sess.Reset()
		return replyStaleNumber, nil
	}

	parts := strings.Fields(text)
	if len(parts) != 2 {
		return replyInvalidPrice, nil
	}

	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return replyInvalidPrice, nil
	}
	field, ok := domain.PriceFieldByIndex(n)
	if !ok {
		return replyInvalidPrice, nil
	}

	// Success or failure, the attempt is terminal: the session returns
	// to idle and a retry means re-entering the menu.
	updateErr := e.updater.UpdatePrice(ctx, sess.Vehicle, field, parts[1], sess.UserID)
	switch {
	case errors.Is(updateErr, ErrInvalidPrice):
		return replyInvalidPrice, nil
	case errors.Is(updateErr, ErrUnaudited):
		sess.Reset()
		return replyUnaudited, nil
	case updateErr != nil:
		sess.Reset()
		return replyStoreFailure, fmt.Errorf("price update: %w", updateErr)
	}

	reply := formatUpdateConfirmation(sess.Vehicle, field, parts[1])
	sess.Reset()
	return reply, nil
}
