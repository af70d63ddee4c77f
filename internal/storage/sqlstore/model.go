package sqlstore

import "time"

// Slot is one row of the kv_slots table.
type Slot struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}
