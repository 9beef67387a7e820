package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autokeyhq/keyprice-bot/internal/bot"
	"github.com/autokeyhq/keyprice-bot/internal/store"
	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// PricesHandler handles price mutation endpoints. Updates run through the
// same orchestrator as the bot, so validation, audit, cache invalidation,
// and notifications behave identically.
type PricesHandler struct {
	store   store.Store
	updater *bot.Updater
}

// NewPricesHandler creates a new PricesHandler.
func NewPricesHandler(s store.Store, u *bot.Updater) *PricesHandler {
	return &PricesHandler{store: s, updater: u}
}

// UpdatePriceInput is the input for setting a price field.
type UpdatePriceInput struct {
	ID    string `path:"id"    doc:"Vehicle UUID"`
	Field string `path:"field" doc:"Price field" enum:"key_min_price,remote_min_price,p2s_min_price,ignition_min_price"`
	Body  struct {
		Value     string `json:"value"      doc:"New price, 0-9999 with up to 2 decimals" example:"195"`
		UpdatedBy string `json:"updated_by" doc:"Audit actor"                             example:"ops"`
	}
}

// UpdatePriceOutput is the response for a price update.
type UpdatePriceOutput struct {
	Body domain.VehicleRecord
}

// UpdatePrice sets one price field on a vehicle record. The change applies
// to the record's entire year range and is audited.
func (h *PricesHandler) UpdatePrice(
	ctx context.Context,
	input *UpdatePriceInput,
) (*UpdatePriceOutput, error) {
	field, ok := domain.ParsePriceField(input.Field)
	if !ok {
		return nil, huma.Error422UnprocessableEntity("unknown price field")
	}

	updatedBy := input.Body.UpdatedBy
	if updatedBy == "" {
		updatedBy = "api"
	}

	rec, err := h.store.GetVehicle(ctx, input.ID)
	if errors.Is(err, store.ErrNoSuchVehicle) {
		return nil, huma.Error404NotFound("vehicle not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("loading vehicle: " + err.Error())
	}

	err = h.updater.UpdatePrice(ctx, rec, field, input.Body.Value, updatedBy)
	switch {
	case errors.Is(err, bot.ErrInvalidPrice):
		return nil, huma.Error422UnprocessableEntity(
			"price must be between 0 and 9999 with up to 2 decimal places")
	case errors.Is(err, bot.ErrUnaudited):
		// The write stood; surface the record but flag the condition.
		return nil, huma.Error500InternalServerError("price updated but audit append failed")
	case err != nil:
		return nil, huma.Error500InternalServerError("updating price: " + err.Error())
	}

	return &UpdatePriceOutput{Body: *rec}, nil
}

// RegisterPriceRoutes registers price mutation endpoints with the Huma API.
func RegisterPriceRoutes(api huma.API, h *PricesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "update-price",
		Method:      http.MethodPut,
		Path:        "/api/v1/vehicles/{id}/prices/{field}",
		Summary:     "Update a price field",
		Description: "Sets one price field on a vehicle record. The change applies to the record's entire year range and is audited.",
		Tags:        []string{"prices"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.UpdatePrice)
}
