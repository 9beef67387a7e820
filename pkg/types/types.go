// Package domain defines the core business types for the key price bot.
package domain

import (
	"time"
)

// PriceField identifies one of the four price columns on a vehicle record.
type PriceField string

// Price field constants. The string values double as database column names
// and audit log field identifiers.
const (
	FieldKeyMin      PriceField = "key_min_price"
	FieldRemoteMin   PriceField = "remote_min_price"
	FieldP2SMin      PriceField = "p2s_min_price"
	FieldIgnitionMin PriceField = "ignition_min_price"
)

// priceFieldsByIndex maps the 1-based menu position to its field.
var priceFieldsByIndex = [...]PriceField{
	FieldKeyMin,
	FieldRemoteMin,
	FieldP2SMin,
	FieldIgnitionMin,
}

// priceFieldLabels are the user-facing labels, in menu order.
var priceFieldLabels = map[PriceField]string{
	FieldKeyMin:      "Turn Key Min",
	FieldRemoteMin:   "Remote Min",
	FieldP2SMin:      "Push-to-Start Min",
	FieldIgnitionMin: "Ignition Change/Fix Min",
}

// NumPriceFields is the number of selectable price fields.
const NumPriceFields = len(priceFieldsByIndex)

// PriceFieldByIndex returns the field for a 1-based menu selection.
// The second return value is false when n is out of range.
func PriceFieldByIndex(n int) (PriceField, bool) {
	if n < 1 || n > NumPriceFields {
		return "", false
	}
	return priceFieldsByIndex[n-1], true
}

// ParsePriceField converts a stored field identifier back to a PriceField.
func ParsePriceField(s string) (PriceField, bool) {
	f := PriceField(s)
	_, ok := priceFieldLabels[f]
	return f, ok
}

// Label returns the user-facing label for the field.
func (f PriceField) Label() string {
	return priceFieldLabels[f]
}

// Valid reports whether f is one of the four known price fields.
func (f PriceField) Valid() bool {
	_, ok := priceFieldLabels[f]
	return ok
}

// VehicleRecord represents one make/model/year-range row of the price sheet.
// Price values are kept as strings: the source data is spreadsheet-derived
// and may be empty; numeric validation happens only when a price is updated.
type VehicleRecord struct {
	ID        string `json:"id"         db:"id"`
	YearRange string `json:"year_range" db:"year_range"`
	Make      string `json:"make"       db:"make"`
	Model     string `json:"model"      db:"model"`
	KeyType   string `json:"key_type"   db:"key_type"`

	KeyMinPrice      string `json:"key_min_price"      db:"key_min_price"`
	RemoteMinPrice   string `json:"remote_min_price"   db:"remote_min_price"`
	P2SMinPrice      string `json:"p2s_min_price"      db:"p2s_min_price"`
	IgnitionMinPrice string `json:"ignition_min_price" db:"ignition_min_price"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Price returns the current value of the given field.
func (v *VehicleRecord) Price(f PriceField) string {
	switch f {
	case FieldKeyMin:
		return v.KeyMinPrice
	case FieldRemoteMin:
		return v.RemoteMinPrice
	case FieldP2SMin:
		return v.P2SMinPrice
	case FieldIgnitionMin:
		return v.IgnitionMinPrice
	}
	return ""
}

// SetPrice sets the given field on the record. Unknown fields are ignored.
func (v *VehicleRecord) SetPrice(f PriceField, value string) {
	switch f {
	case FieldKeyMin:
		v.KeyMinPrice = value
	case FieldRemoteMin:
		v.RemoteMinPrice = value
	case FieldP2SMin:
		v.P2SMinPrice = value
	case FieldIgnitionMin:
		v.IgnitionMinPrice = value
	}
}

// SessionState names a step of the conversational flow.
type SessionState string

// Session state constants.
const (
	StateIdle             SessionState = "idle"
	StateSelectingModel   SessionState = "selecting_model"
	StateSelectingYear    SessionState = "selecting_year"
	StateSelectingVehicle SessionState = "selecting_vehicle_for_pricing"
	StateUpdatingPrice    SessionState = "updating_price"
)

// Session holds one user's conversational state. Sessions are ephemeral:
// they are created lazily on the first message and purged after the
// configured idle window.
type Session struct {
	UserID string       `json:"user_id"`
	State  SessionState `json:"state"`

	// Captured mid-flow.
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`

	// Ordered candidate lists for 1-indexed numbered selection.
	Models         []string        `json:"models,omitempty"`
	YearRanges     []string        `json:"year_ranges,omitempty"`
	VehicleOptions []VehicleRecord `json:"vehicle_options,omitempty"`

	// Vehicle is the last successfully resolved record; it is the target
	// of the price-update flow.
	Vehicle *VehicleRecord `json:"vehicle,omitempty"`

	LastActivity time.Time `json:"last_activity"`
}

// NewSession returns a fresh idle session for the given user.
func NewSession(userID string, now time.Time) *Session {
	return &Session{
		UserID:       userID,
		State:        StateIdle,
		LastActivity: now,
	}
}

// Reset clears all flow state but keeps the resolved vehicle so a
// follow-up price update remains possible.
func (s *Session) Reset() {
	s.State = StateIdle
	s.Make = ""
	s.Model = ""
	s.Models = nil
	s.YearRanges = nil
	s.VehicleOptions = nil
}

// PriceAudit is an append-only record of a single price-field mutation.
type PriceAudit struct {
	ID           string     `json:"id"            db:"id"`
	VehicleID    string     `json:"vehicle_id"    db:"vehicle_id"`
	UserID       string     `json:"user_id"       db:"user_id"`
	FieldChanged PriceField `json:"field_changed" db:"field_changed"`
	OldValue     string     `json:"old_value"     db:"old_value"`
	NewValue     string     `json:"new_value"     db:"new_value"`
	ChangedAt    time.Time  `json:"changed_at"    db:"changed_at"`
}

// SystemState holds a snapshot of aggregate counts for the admin API.
type SystemState struct {
	VehiclesTotal int `json:"vehicles_total" db:"vehicles_total"`
	MakesTotal    int `json:"makes_total"    db:"makes_total"`
	AuditsTotal   int `json:"audits_total"   db:"audits_total"`
}
