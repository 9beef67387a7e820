package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// AuditsResponse wraps an audit list response.
type AuditsResponse struct {
	Audits []domain.PriceAudit `json:"audits"`
}

// ListAudits returns price audit entries, newest first.
func (c *Client) ListAudits(ctx context.Context, vehicleID string, limit int) ([]domain.PriceAudit, error) {
	q := url.Values{}
	if vehicleID != "" {
		q.Set("vehicle_id", vehicleID)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/audits"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp AuditsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Audits, nil
}

// GetSystemState returns aggregate vehicle, make, and audit counts.
func (c *Client) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	var state domain.SystemState
	if err := c.get(ctx, "/api/v1/state", &state); err != nil {
		return nil, err
	}
	return &state, nil
}
