package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

const (
	colorGreen  = 0x2ECC71 // price lowered
	colorOrange = 0xE67E22 // price raised
	colorYellow = 0xF1C40F // price set or unchanged
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title  string              `json:"title"`
	Color  int                 `json:"color"`
	Fields []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendPriceChange sends a single price change as a Discord embed.
func (d *DiscordNotifier) SendPriceChange(ctx context.Context, change *PriceChangePayload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(change)},
	}
	return d.post(ctx, payload)
}

func buildEmbed(change *PriceChangePayload) discordEmbed {
	oldValue := change.OldValue
	if oldValue == "" {
		oldValue = "(unset)"
	}

	return discordEmbed{
		Title: fmt.Sprintf("Price Update: %s %s %s",
			change.YearRange, change.Make, change.Model),
		Color: changeColor(change.OldValue, change.NewValue),
		Fields: []discordEmbedField{
			{Name: "Field", Value: change.Field.Label(), Inline: true},
			{Name: "Old", Value: oldValue, Inline: true},
			{Name: "New", Value: change.NewValue, Inline: true},
			{Name: "Changed By", Value: change.UserID, Inline: true},
		},
	}
}

func changeColor(oldValue, newValue string) int {
	before, err1 := strconv.ParseFloat(oldValue, 64)
	after, err2 := strconv.ParseFloat(newValue, 64)
	if err1 != nil || err2 != nil {
		return colorYellow
	}

	switch {
	case after < before:
		return colorGreen
	case after > before:
		return colorOrange
	default:
		return colorYellow
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
