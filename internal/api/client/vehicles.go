package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// VehiclesResponse wraps a paginated vehicle list response.
type VehiclesResponse struct {
	Vehicles []domain.VehicleRecord `json:"vehicles"`
	Total    int                    `json:"total"`
}

// ListVehiclesParams defines query parameters for vehicle queries.
type ListVehiclesParams struct {
	Make   string
	Model  string
	Limit  int
	Offset int
}

// ListVehicles returns vehicle records matching the given parameters.
func (c *Client) ListVehicles(
	ctx context.Context,
	params *ListVehiclesParams,
) (*VehiclesResponse, error) {
	q := url.Values{}
	if params.Make != "" {
		q.Set("make", params.Make)
	}
	if params.Model != "" {
		q.Set("model", params.Model)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/v1/vehicles"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp VehiclesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetVehicle returns a single vehicle record by ID.
func (c *Client) GetVehicle(ctx context.Context, id string) (*domain.VehicleRecord, error) {
	var rec domain.VehicleRecord
	if err := c.get(ctx, fmt.Sprintf("/api/v1/vehicles/%s", id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// MatchResponse is the matcher result for a make/model/year query.
type MatchResponse struct {
	Vehicle domain.VehicleRecord `json:"vehicle"`
	Year    int                  `json:"year"`
}

// MatchVehicle resolves make, model, and year to the most specific record.
func (c *Client) MatchVehicle(
	ctx context.Context,
	mk, model string,
	year int,
) (*MatchResponse, error) {
	q := url.Values{}
	q.Set("make", mk)
	q.Set("model", model)
	q.Set("year", strconv.Itoa(year))

	var resp MatchResponse
	if err := c.get(ctx, "/api/v1/vehicles/match?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetPrice sets one price field on a vehicle record and returns the
// updated record.
func (c *Client) SetPrice(
	ctx context.Context,
	id string,
	field domain.PriceField,
	value, updatedBy string,
) (*domain.VehicleRecord, error) {
	body := map[string]string{
		"value":      value,
		"updated_by": updatedBy,
	}

	var rec domain.VehicleRecord
	path := fmt.Sprintf("/api/v1/vehicles/%s/prices/%s", id, field)
	if err := c.put(ctx, path, body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
