package domain

import (
	"fmt"
	"time"
)

// Record is the persisted shape of a Task inside the task slot.
type Record struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// RecordTimeLayout is the layout used for Record.CreatedAt.
const RecordTimeLayout = time.RFC3339Nano

// TaskMapper handles conversion between domain Tasks and persisted Records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to a Record.
func (m *TaskMapper) ToRecord(task Task) Record {
	return Record{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.UTC().Format(RecordTimeLayout),
	}
}

// FromRecord converts a Record to a domain Task.
func (m *TaskMapper) FromRecord(record Record) (Task, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, record.CreatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("task %s: invalid createdAt %q: %w", record.ID, record.CreatedAt, err)
	}
	return Task{
		ID:        record.ID,
		Text:      record.Text,
		Completed: record.Completed,
		CreatedAt: createdAt,
	}, nil
}

// ToRecordSlice converts a slice of domain Tasks to Records.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []Record {
	records := make([]Record, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}
