// Package main implements a mock Telegram Bot API server for local
// development. It replays canned updates from a JSON fixture and accepts
// sendMessage calls, so the bot can be exercised end to end without a real
// bot token. Point the bot at it with tgbotapi.NewBotAPIWithAPIEndpoint.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"
)

type apiResponse struct {
	OK     bool `json:"ok"`
	Result any  `json:"result"`
}

type updatesFixture struct {
	Updates []json.RawMessage `json:"updates"`
}

// indexedUpdate pairs a raw update with its parsed update_id so getUpdates
// can honor the offset parameter.
type indexedUpdate struct {
	raw json.RawMessage
	id  int
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/updates.json", "path to updates fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	updates, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "updates", len(updates))

	mux := newMux(logger, updates)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock telegram server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  90 * time.Second,
		WriteTimeout: 90 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// newMux routes Telegram method calls. Paths look like /bot<token>/<method>;
// the token is not verified.
func newMux(logger *slog.Logger, updates []indexedUpdate) http.Handler {
	getMe := getMeHandler(logger)
	getUpdates := getUpdatesHandler(logger, updates)
	sendMessage := sendMessageHandler(logger)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/bot") {
			http.NotFound(w, r)
			return
		}
		switch path.Base(r.URL.Path) {
		case "getMe":
			getMe(w, r)
		case "getUpdates":
			getUpdates(w, r)
		case "sendMessage":
			sendMessage(w, r)
		default:
			// Anything else gets a generic success so client libraries
			// that call housekeeping methods keep working.
			writeResult(w, true)
		}
	})
}

func loadFixture(path string) ([]indexedUpdate, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fixture updatesFixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	updates := make([]indexedUpdate, 0, len(fixture.Updates))
	for i, raw := range fixture.Updates {
		var partial struct {
			UpdateID int `json:"update_id"`
		}
		if err := json.Unmarshal(raw, &partial); err != nil {
			return nil, fmt.Errorf("parsing update %d: %w", i, err)
		}
		updates = append(updates, indexedUpdate{raw: raw, id: partial.UpdateID})
	}
	return updates, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeResult(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(apiResponse{OK: true, Result: result})
}

func getMeHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeResult(w, map[string]any{
			"id":         1,
			"is_bot":     true,
			"first_name": "KeyPrice Bot (mock)",
			"username":   "keyprice_mock_bot",
		})
		logger.Info("issued mock bot identity")
	}
}

// getUpdatesHandler replays fixture updates. Updates below the requested
// offset are considered confirmed and never replayed again, matching the
// real long-poll contract. Once the fixture is drained, polls block briefly
// and return an empty batch.
func getUpdatesHandler(logger *slog.Logger, updates []indexedUpdate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset := 0
		if v := r.FormValue("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				offset = n
			}
		}

		var batch []json.RawMessage
		for _, u := range updates {
			if u.id >= offset {
				batch = append(batch, u.raw)
			}
		}

		if batch == nil {
			// Emulate a long poll without holding the connection for the
			// full timeout window.
			time.Sleep(500 * time.Millisecond)
			batch = []json.RawMessage{}
		}

		writeResult(w, batch)
		logger.Info("getUpdates", "offset", offset, "returned", len(batch))
	}
}

func sendMessageHandler(logger *slog.Logger) http.HandlerFunc {
	var nextID int64 = 1000
	var mu sync.Mutex

	return func(w http.ResponseWriter, r *http.Request) {
		chatID := r.FormValue("chat_id")
		text := r.FormValue("text")

		mu.Lock()
		nextID++
		id := nextID
		mu.Unlock()

		writeResult(w, map[string]any{
			"message_id": id,
			"date":       time.Now().Unix(),
			"text":       text,
			"chat":       map[string]any{"id": jsonNumber(chatID), "type": "private"},
		})
		logger.Info("sendMessage", "chat_id", chatID, "text", text)
	}
}

// jsonNumber returns the numeric form of a chat ID when it parses, keeping
// the response shape compatible with client libraries.
func jsonNumber(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}
