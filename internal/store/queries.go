package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Vehicle queries.
const (
	queryListVehicles = baseVehiclesSelect + `
		ORDER BY ` + vehicleOrderBy

	queryGetVehicle = baseVehiclesSelect + `
		WHERE id = $1`

	queryUpsertVehicle = `
		INSERT INTO vehicles (
			year_range, make, model, key_type,
			key_min_price, remote_min_price, p2s_min_price, ignition_min_price,
			created_at, updated_at
		) VALUES (
			@year_range, @make, @model, @key_type,
			@key_min_price, @remote_min_price, @p2s_min_price, @ignition_min_price,
			now(), now()
		)
		ON CONFLICT (make, model, year_range) DO UPDATE SET
			key_type = EXCLUDED.key_type,
			key_min_price = EXCLUDED.key_min_price,
			remote_min_price = EXCLUDED.remote_min_price,
			p2s_min_price = EXCLUDED.p2s_min_price,
			ignition_min_price = EXCLUDED.ignition_min_price,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	// The price column is interpolated from a validated PriceField, never
	// from user input.
	queryUpdatePriceFieldFmt = `
		UPDATE vehicles SET
			%s = $2,
			updated_at = now()
		WHERE id = $1`
)

// Audit queries.
const (
	queryInsertPriceAudit = `
		INSERT INTO price_audits (
			id, vehicle_id, user_id, field_changed, old_value, new_value, changed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	queryListPriceAudits = `
		SELECT id, vehicle_id, user_id, field_changed, old_value, new_value, changed_at
		FROM price_audits
		ORDER BY changed_at DESC
		LIMIT $1`

	queryListPriceAuditsByVehicle = `
		SELECT id, vehicle_id, user_id, field_changed, old_value, new_value, changed_at
		FROM price_audits
		WHERE vehicle_id = $1
		ORDER BY changed_at DESC
		LIMIT $2`
)

// Aggregate queries.
const (
	querySystemState = `
		SELECT
			(SELECT COUNT(*) FROM vehicles) AS vehicles_total,
			(SELECT COUNT(DISTINCT LOWER(make)) FROM vehicles) AS makes_total,
			(SELECT COUNT(*) FROM price_audits) AS audits_total`
)
