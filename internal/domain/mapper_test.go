package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskMapper_ToRecord(t *testing.T) {
	mapper := NewTaskMapper()
	task := Task{ID: "a1", Text: "Buy milk", Completed: true, CreatedAt: created}

	record := mapper.ToRecord(task)

	assert.Equal(t, Record{ID: "a1", Text: "Buy milk", Completed: true, CreatedAt: "2024-03-01T09:30:00Z"}, record)
}

func TestTaskMapper_ToRecordNormalizesToUTC(t *testing.T) {
	mapper := NewTaskMapper()
	zone := time.FixedZone("UTC+2", 2*60*60)
	task := NewTask("a1", "x", time.Date(2024, 3, 1, 11, 30, 0, 0, zone))

	assert.Equal(t, "2024-03-01T09:30:00Z", mapper.ToRecord(task).CreatedAt)
}

func TestTaskMapper_FromRecord(t *testing.T) {
	mapper := NewTaskMapper()

	task, err := mapper.FromRecord(Record{ID: "a1", Text: "Buy milk", CreatedAt: "2024-03-01T09:30:00.123Z"})
	require.NoError(t, err)
	assert.Equal(t, "a1", task.ID)
	assert.Equal(t, 123*time.Millisecond, time.Duration(task.CreatedAt.Nanosecond()))
}

func TestTaskMapper_FromRecordAcceptsOffsets(t *testing.T) {
	mapper := NewTaskMapper()

	task, err := mapper.FromRecord(Record{ID: "a1", Text: "x", CreatedAt: "2024-03-01T11:30:00+02:00"})
	require.NoError(t, err)
	assert.True(t, task.CreatedAt.Equal(created))
}

func TestTaskMapper_FromRecordBadTime(t *testing.T) {
	mapper := NewTaskMapper()

	_, err := mapper.FromRecord(Record{ID: "a1", Text: "x", CreatedAt: "yesterday"})
	assert.Error(t, err)
}

func TestTaskMapper_RoundTripPreservesTask(t *testing.T) {
	mapper := NewTaskMapper()
	task := NewTask("a1", "x", time.Date(2024, 3, 1, 9, 30, 0, 987654321, time.UTC))

	back, err := mapper.FromRecord(mapper.ToRecord(task))
	require.NoError(t, err)
	assert.True(t, back.CreatedAt.Equal(task.CreatedAt))
	assert.Equal(t, task.ID, back.ID)
}

func TestTaskMapper_ToRecordSlice(t *testing.T) {
	mapper := NewTaskMapper()
	tasks := []Task{NewTask("a", "1", created), NewTask("b", "2", created)}

	records := mapper.ToRecordSlice(tasks)
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[1].ID)
}
