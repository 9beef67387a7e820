package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

func testChange(oldValue, newValue string) *PriceChangePayload {
	return &PriceChangePayload{
		VehicleID: "3f6c9a2e",
		Make:      "Honda",
		Model:     "Accord",
		YearRange: "2018-2022",
		Field:     domain.FieldKeyMin,
		OldValue:  oldValue,
		NewValue:  newValue,
		UserID:    "tg:12345",
		ChangedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDiscordNotifier_SendPriceChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		change     *PriceChangePayload
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
	}{
		{
			name:       "lowered price uses green color",
			change:     testChange("150", "120"),
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
		},
		{
			name:       "raised price uses orange color",
			change:     testChange("120", "150.50"),
			statusCode: http.StatusNoContent,
			wantColor:  colorOrange,
		},
		{
			name:       "first price set uses yellow color",
			change:     testChange("", "120"),
			statusCode: http.StatusNoContent,
			wantColor:  colorYellow,
		},
		{
			name:       "discord returns 429 rate limited",
			change:     testChange("120", "150"),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 500",
			change:     testChange("120", "150"),
			statusCode: http.StatusInternalServerError,
			wantErr:    true,
			errMsg:     "discord returned 500",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var captured discordWebhookPayload
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			n := NewDiscordNotifier(srv.URL, WithHTTPClient(srv.Client()))
			err := n.SendPriceChange(context.Background(), tt.change)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, captured.Embeds, 1)
			embed := captured.Embeds[0]
			assert.Equal(t, "Price Update: 2018-2022 Honda Accord", embed.Title)
			assert.Equal(t, tt.wantColor, embed.Color)
			require.Len(t, embed.Fields, 4)
			assert.Equal(t, "Turn Key Min", embed.Fields[0].Value)
			assert.Equal(t, tt.change.NewValue, embed.Fields[2].Value)
		})
	}
}

func TestDiscordNotifier_SendPriceChange_UnsetOldValue(t *testing.T) {
	t.Parallel()

	var captured discordWebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewDiscordNotifier(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, n.SendPriceChange(context.Background(), testChange("", "99.99")))

	require.Len(t, captured.Embeds, 1)
	assert.Equal(t, "(unset)", captured.Embeds[0].Fields[1].Value)
}

// compile-time interface check.
var _ Notifier = (*DiscordNotifier)(nil)
