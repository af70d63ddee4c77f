package sqlstore

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []string
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		*(d.(*string)) = r.values[i]
	}
	return nil
}

func TestScanSlot(t *testing.T) {
	slot, err := ScanSlot(fakeRow{values: []string{"tasks", "[]", "2026-01-02T03:04:05Z"}})
	require.NoError(t, err)
	assert.Equal(t, "tasks", slot.Key)
	assert.Equal(t, []byte("[]"), slot.Value)
	assert.True(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC).Equal(slot.UpdatedAt))
}

func TestScanSlot_BadTimestamp(t *testing.T) {
	slot, err := ScanSlot(fakeRow{values: []string{"tasks", "[]", "yesterday"}})
	require.NoError(t, err)
	assert.True(t, slot.UpdatedAt.IsZero())
}

func TestScanSlot_Error(t *testing.T) {
	_, err := ScanSlot(fakeRow{err: stderrors.New("boom")})
	assert.Error(t, err)
}

func TestFormatTimeForDB_RoundTrip(t *testing.T) {
	local := time.Date(2026, 5, 6, 7, 8, 9, 123, time.FixedZone("X", 3600))
	parsed, err := ParseTimeFromDB(FormatTimeForDB(local))
	require.NoError(t, err)
	assert.True(t, local.Equal(parsed))
}
