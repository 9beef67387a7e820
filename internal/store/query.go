package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Vehicle lists are always returned in make, model, year-range order so
// numbered selections are deterministic across calls.
const vehicleOrderBy = "make ASC, model ASC, year_range ASC"

const baseVehiclesSelect = `SELECT id, year_range, make, model, key_type,
	COALESCE(key_min_price, ''), COALESCE(remote_min_price, ''),
	COALESCE(p2s_min_price, ''), COALESCE(ignition_min_price, ''),
	created_at, updated_at
FROM vehicles`

const countVehiclesSelect = "SELECT COUNT(*) FROM vehicles"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a
// vehicle query. It returns two SQL strings (one for the data query, one
// for the count query) and the positional parameters.
func (q *VehicleQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Make != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(make) = LOWER($%d)", paramIdx))
		args = append(args, *q.Make)
		paramIdx++
	}

	if q.Model != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(model) = LOWER($%d)", paramIdx))
		args = append(args, *q.Model)
		paramIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	dataSQL = fmt.Sprintf("%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseVehiclesSelect, where, vehicleOrderBy, limit, offset)
	countSQL = countVehiclesSelect + where

	return dataSQL, countSQL, args
}
