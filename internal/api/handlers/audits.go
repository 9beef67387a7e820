package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autokeyhq/keyprice-bot/internal/store"
	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// AuditsHandler handles audit log query endpoints.
type AuditsHandler struct {
	store store.Store
}

// NewAuditsHandler creates a new AuditsHandler.
func NewAuditsHandler(s store.Store) *AuditsHandler {
	return &AuditsHandler{store: s}
}

// ListAuditsInput is the input for listing price audits.
type ListAuditsInput struct {
	VehicleID string `query:"vehicle_id" doc:"Filter by vehicle UUID"`
	Limit     int    `query:"limit"      doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
}

// ListAuditsOutput is the response for listing price audits.
type ListAuditsOutput struct {
	Body struct {
		Audits []domain.PriceAudit `json:"audits"`
	}
}

// ListAudits returns price change audit entries, newest first.
func (h *AuditsHandler) ListAudits(
	ctx context.Context,
	input *ListAuditsInput,
) (*ListAuditsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	audits, err := h.store.ListPriceAudits(ctx, input.VehicleID, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing audits: " + err.Error())
	}
	if audits == nil {
		audits = []domain.PriceAudit{}
	}

	resp := &ListAuditsOutput{}
	resp.Body.Audits = audits

	return resp, nil
}

// RegisterAuditRoutes registers audit endpoints with the Huma API.
func RegisterAuditRoutes(api huma.API, h *AuditsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-audits",
		Method:      http.MethodGet,
		Path:        "/api/v1/audits",
		Summary:     "List price audits",
		Description: "Returns price change audit entries, newest first, optionally filtered by vehicle.",
		Tags:        []string{"audits"},
	}, h.ListAudits)
}
