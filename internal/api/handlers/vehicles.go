package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autokeyhq/keyprice-bot/internal/match"
	"github.com/autokeyhq/keyprice-bot/internal/store"
	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// VehiclesHandler handles vehicle record query endpoints.
type VehiclesHandler struct {
	store store.Store
}

// NewVehiclesHandler creates a new VehiclesHandler.
func NewVehiclesHandler(s store.Store) *VehiclesHandler {
	return &VehiclesHandler{store: s}
}

// --- Input/Output types ---

// ListVehiclesInput is the input for listing vehicle records.
type ListVehiclesInput struct {
	Make   string `query:"make"   doc:"Filter by make (case-insensitive)"`
	Model  string `query:"model"  doc:"Filter by model (case-insensitive)"`
	Limit  int    `query:"limit"  doc:"Number of results (default 50)"    minimum:"1" maximum:"500"`
	Offset int    `query:"offset" doc:"Pagination offset"                 minimum:"0"`
}

// ListVehiclesOutput is the response for listing vehicle records.
type ListVehiclesOutput struct {
	Body struct {
		Vehicles []domain.VehicleRecord `json:"vehicles"`
		Total    int                    `json:"total"`
		Limit    int                    `json:"limit"`
		Offset   int                    `json:"offset"`
	}
}

// GetVehicleInput is the input for getting a single vehicle record.
type GetVehicleInput struct {
	ID string `path:"id" doc:"Vehicle UUID"`
}

// GetVehicleOutput is the response for getting a single vehicle record.
type GetVehicleOutput struct {
	Body domain.VehicleRecord
}

// MatchVehicleInput is the input for running the matcher.
type MatchVehicleInput struct {
	Make  string `query:"make"  doc:"Vehicle make (aliases accepted)" required:"true"`
	Model string `query:"model" doc:"Vehicle model"                   required:"true"`
	Year  int    `query:"year"  doc:"Model year"                      required:"true" minimum:"1900" maximum:"2050"`
}

// MatchVehicleOutput is the response for a matcher run.
type MatchVehicleOutput struct {
	Body struct {
		Vehicle domain.VehicleRecord `json:"vehicle"`
		Year    int                  `json:"year"`
	}
}

// --- Handlers ---

// ListVehicles returns vehicle records with optional make/model filters
// and pagination.
func (h *VehiclesHandler) ListVehicles(
	ctx context.Context,
	input *ListVehiclesInput,
) (*ListVehiclesOutput, error) {
	q := &store.VehicleQuery{
		Offset: input.Offset,
	}

	if input.Make != "" {
		q.Make = &input.Make
	}

	if input.Model != "" {
		q.Model = &input.Model
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	vehicles, total, err := h.store.QueryVehicles(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("vehicle query failed: " + err.Error())
	}

	resp := &ListVehiclesOutput{}
	resp.Body.Vehicles = vehicles
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetVehicle returns a single vehicle record by ID.
func (h *VehiclesHandler) GetVehicle(
	ctx context.Context,
	input *GetVehicleInput,
) (*GetVehicleOutput, error) {
	rec, err := h.store.GetVehicle(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("vehicle not found")
	}

	return &GetVehicleOutput{Body: *rec}, nil
}

// MatchVehicle runs the same matcher the bot uses: alias-normalized make,
// case-insensitive model, narrowest containing year range wins.
func (h *VehiclesHandler) MatchVehicle(
	ctx context.Context,
	input *MatchVehicleInput,
) (*MatchVehicleOutput, error) {
	records, err := h.store.ListVehicles(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing vehicles: " + err.Error())
	}

	result, err := match.Match(records, input.Make, input.Model, input.Year)
	if errors.Is(err, match.ErrNotFound) {
		return nil, huma.Error404NotFound("no matching record for that vehicle")
	}

	resp := &MatchVehicleOutput{}
	resp.Body.Vehicle = result.Record
	resp.Body.Year = result.Year

	return resp, nil
}

// RegisterVehicleRoutes registers vehicle endpoints with the Huma API.
func RegisterVehicleRoutes(api huma.API, h *VehiclesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-vehicles",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles",
		Summary:     "List vehicle records",
		Description: "Returns vehicle records with optional make/model filters and pagination.",
		Tags:        []string{"vehicles"},
	}, h.ListVehicles)

	huma.Register(api, huma.Operation{
		OperationID: "match-vehicle",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/match",
		Summary:     "Match a vehicle",
		Description: "Resolves make, model, and year to the most specific record, as the bot would.",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusNotFound},
	}, h.MatchVehicle)

	huma.Register(api, huma.Operation{
		OperationID: "get-vehicle",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/{id}",
		Summary:     "Get a vehicle record by ID",
		Description: "Returns a single vehicle record by its UUID.",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetVehicle)
}
