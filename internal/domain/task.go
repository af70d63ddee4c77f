package domain

import (
	"time"
)

// Task represents a single to-do item in the domain model.
// This is a pure domain model without persistence-specific concerns.
type Task struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt time.Time
}

// NewTask creates an active Task with the given id, text and creation time.
func NewTask(id, text string, createdAt time.Time) Task {
	return Task{
		ID:        id,
		Text:      text,
		CreatedAt: createdAt,
	}
}

// IsValid checks if the task has the data every stored task must carry.
func (t Task) IsValid() bool {
	return t.ID != "" && t.Text != "" && !t.CreatedAt.IsZero()
}

// Toggled returns a copy of the task with Completed flipped.
func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}

// ShortID returns the first n characters of the id, or the whole id when it
// is shorter.
func (t Task) ShortID(n int) string {
	if n <= 0 || len(t.ID) <= n {
		return t.ID
	}
	return t.ID[:n]
}

// Checkbox renders the completion state as "[x]" or "[ ]".
func (t Task) Checkbox() string {
	if t.Completed {
		return "[x]"
	}
	return "[ ]"
}

// String returns the task text for display purposes.
func (t Task) String() string {
	return t.Text
}
