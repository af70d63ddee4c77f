package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var created = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func TestNewTask(t *testing.T) {
	task := NewTask("abc", "Buy milk", created)

	assert.Equal(t, Task{ID: "abc", Text: "Buy milk", CreatedAt: created}, task)
	assert.False(t, task.Completed)
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{name: "complete task", task: NewTask("a", "text", created), expected: true},
		{name: "missing id", task: NewTask("", "text", created), expected: false},
		{name: "missing text", task: NewTask("a", "", created), expected: false},
		{name: "missing created time", task: NewTask("a", "text", time.Time{}), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_Toggled(t *testing.T) {
	task := NewTask("a", "text", created)

	once := task.Toggled()
	assert.True(t, once.Completed)
	assert.False(t, task.Completed, "original is left alone")
	assert.Equal(t, task, once.Toggled())
}

func TestTask_ShortID(t *testing.T) {
	task := NewTask("0123456789", "text", created)

	assert.Equal(t, "01234567", task.ShortID(8))
	assert.Equal(t, "0123456789", task.ShortID(20))
	assert.Equal(t, "0123456789", task.ShortID(0))
}

func TestTask_Display(t *testing.T) {
	task := NewTask("a", "Buy milk", created)

	assert.Equal(t, "Buy milk", task.String())
	assert.Equal(t, "[ ]", task.Checkbox())
	assert.Equal(t, "[x]", task.Toggled().Checkbox())
}
