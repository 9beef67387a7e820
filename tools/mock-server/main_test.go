package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) []indexedUpdate {
	t.Helper()
	updates, err := loadFixture(filepath.Join("testdata", "updates.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return updates
}

func TestLoadFixture(t *testing.T) {
	updates := loadTestFixture(t)
	if len(updates) == 0 {
		t.Fatal("expected updates in fixture")
	}
	for i, u := range updates {
		if u.id == 0 {
			t.Errorf("update %d has no update_id", i)
		}
	}
}

func TestGetMeHandler(t *testing.T) {
	handler := getMeHandler(testLogger())
	req := httptest.NewRequest(http.MethodPost, "/bottest-token/getMe", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		OK     bool `json:"ok"`
		Result struct {
			IsBot    bool   `json:"is_bot"`
			Username string `json:"username"`
		} `json:"result"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.OK {
		t.Error("expected ok=true")
	}
	if !resp.Result.IsBot {
		t.Error("expected is_bot=true")
	}
	if resp.Result.Username == "" {
		t.Error("expected non-empty username")
	}
}

func TestGetUpdatesHandler_AllUpdates(t *testing.T) {
	updates := loadTestFixture(t)
	handler := getUpdatesHandler(testLogger(), updates)
	req := httptest.NewRequest(http.MethodPost, "/bottest-token/getUpdates", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp struct {
		OK     bool              `json:"ok"`
		Result []json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Result) != len(updates) {
		t.Errorf("got %d updates, want %d", len(resp.Result), len(updates))
	}
}

func TestGetUpdatesHandler_OffsetSkipsConfirmed(t *testing.T) {
	updates := loadTestFixture(t)
	handler := getUpdatesHandler(testLogger(), updates)

	form := url.Values{"offset": {"3"}}
	req := httptest.NewRequest(
		http.MethodPost,
		"/bottest-token/getUpdates",
		strings.NewReader(form.Encode()),
	)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler(w, req)

	var resp struct {
		Result []struct {
			UpdateID int `json:"update_id"`
		} `json:"result"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	for _, u := range resp.Result {
		if u.UpdateID < 3 {
			t.Errorf("update_id=%d replayed below offset 3", u.UpdateID)
		}
	}
}

func TestSendMessageHandler(t *testing.T) {
	handler := sendMessageHandler(testLogger())

	form := url.Values{"chat_id": {"501"}, "text": {"hello"}}
	req := httptest.NewRequest(
		http.MethodPost,
		"/bottest-token/sendMessage",
		strings.NewReader(form.Encode()),
	)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler(w, req)

	var resp struct {
		OK     bool `json:"ok"`
		Result struct {
			MessageID int64  `json:"message_id"`
			Text      string `json:"text"`
		} `json:"result"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.OK {
		t.Error("expected ok=true")
	}
	if resp.Result.Text != "hello" {
		t.Errorf("text=%q, want %q", resp.Result.Text, "hello")
	}
	if resp.Result.MessageID == 0 {
		t.Error("expected non-zero message_id")
	}
}

func TestMux_UnknownMethodSucceeds(t *testing.T) {
	mux := newMux(testLogger(), nil)
	req := httptest.NewRequest(http.MethodPost, "/bottest-token/deleteWebhook", http.NoBody)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
}

func TestMux_NonBotPathNotFound(t *testing.T) {
	mux := newMux(testLogger(), nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusNotFound)
	}
}
