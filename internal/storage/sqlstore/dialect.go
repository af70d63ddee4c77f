package sqlstore

// Dialect captures what differs between the SQL engines a slot can live in.
type Dialect struct {
	Name   string
	Driver string
	upsert string
}

// SQLite is the default local dialect (modernc.org/sqlite, no cgo).
var SQLite = Dialect{
	Name:   "sqlite",
	Driver: "sqlite",
	upsert: `
	INSERT INTO kv_slots (slot_key, slot_value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(slot_key) DO UPDATE SET
		slot_value = excluded.slot_value,
		updated_at = excluded.updated_at`,
}

// MySQL stores the slot in a shared MySQL schema (go-sql-driver/mysql).
var MySQL = Dialect{
	Name:   "mysql",
	Driver: "mysql",
	upsert: `
	INSERT INTO kv_slots (slot_key, slot_value, updated_at)
	VALUES (?, ?, ?)
	ON DUPLICATE KEY UPDATE
		slot_value = VALUES(slot_value),
		updated_at = VALUES(updated_at)`,
}
