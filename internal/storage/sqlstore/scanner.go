package sqlstore

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanSlot scans a single slot from a database row
func ScanSlot(scanner Scanner) (*Slot, error) {
	slot := &Slot{}
	var value, updatedAt string

	if err := scanner.Scan(&slot.Key, &value, &updatedAt); err != nil {
		return nil, err
	}

	slot.Value = []byte(value)
	// An unparsable timestamp leaves UpdatedAt zero; the value is still usable.
	if t, err := ParseTimeFromDB(updatedAt); err == nil {
		slot.UpdatedAt = t
	}
	return slot, nil
}
