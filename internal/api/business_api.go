package api

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/store"
	"tasklist/internal/validation"
	"tasklist/internal/view"
)

// TaskView is a projected list plus counters for the whole collection.
type TaskView struct {
	Tasks     []domain.Task `json:"tasks"`
	Summary   view.Summary  `json:"summary"`
	Filter    domain.Filter `json:"filter"`
	Ascending bool          `json:"ascending"`
}

// BusinessAPI is the single entry point shared by the CLI and the terminal UI
type BusinessAPI interface {
	// ========== Task Management Workflows ==========

	// AddTask validates text and adds a new active task
	AddTask(ctx context.Context, text string) (*domain.Task, error)

	// ToggleTask flips the completion state of the task matching ref
	ToggleTask(ctx context.Context, ref string) (*domain.Task, error)

	// RemoveTask deletes the task matching ref and returns it
	RemoveTask(ctx context.Context, ref string) (*domain.Task, error)

	// ========== Query Operations ==========

	// ListTasks projects the collection through filter and sort order
	ListTasks(ctx context.Context, filter domain.Filter, ascending bool) (*TaskView, error)

	// GetSummary counts every task by completion state
	GetSummary(ctx context.Context) view.Summary

	// ResolveID finds the one task id equal to or starting with ref
	ResolveID(ctx context.Context, ref string) (string, error)

	// ========== Notifications ==========

	// Subscribe registers fn for store change events
	Subscribe(fn func(store.Event)) (unsubscribe func())

	// MaxTextLength reports the longest accepted task text
	MaxTextLength() int

	// SaveError reports why the last change did not reach storage, or nil
	SaveError() error
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	store         *store.TaskStore
	taskValidator *validation.TaskValidator
}

// NewBusinessAPI creates a new BusinessAPI instance over a loaded store
func NewBusinessAPI(s *store.TaskStore) BusinessAPI {
	return &businessAPIImpl{
		store:         s,
		taskValidator: validation.NewTaskValidator(),
	}
}

// ========== Task Management Workflows ==========

func (b *businessAPIImpl) AddTask(ctx context.Context, text string) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTimeoutError("add task", err.Error())
	}

	task, err := b.store.Add(ctx, text)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (b *businessAPIImpl) ToggleTask(ctx context.Context, ref string) (*domain.Task, error) {
	id, err := b.ResolveID(ctx, ref)
	if err != nil {
		return nil, err
	}

	task, ok := b.store.Toggle(ctx, id)
	if !ok {
		return nil, errors.NewNotFoundError("task", ref)
	}
	return &task, nil
}

func (b *businessAPIImpl) RemoveTask(ctx context.Context, ref string) (*domain.Task, error) {
	id, err := b.ResolveID(ctx, ref)
	if err != nil {
		return nil, err
	}

	task, _ := b.store.Find(id)
	if !b.store.Remove(ctx, id) {
		return nil, errors.NewNotFoundError("task", ref)
	}
	return &task, nil
}

// ========== Query Operations ==========

func (b *businessAPIImpl) ListTasks(ctx context.Context, filter domain.Filter, ascending bool) (*TaskView, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTimeoutError("list tasks", err.Error())
	}

	tasks := b.store.Tasks()
	return &TaskView{
		Tasks:     view.Project(tasks, filter, ascending),
		Summary:   view.Summarize(tasks),
		Filter:    filter,
		Ascending: ascending,
	}, nil
}

func (b *businessAPIImpl) GetSummary(ctx context.Context) view.Summary {
	return view.Summarize(b.store.Tasks())
}

func (b *businessAPIImpl) ResolveID(ctx context.Context, ref string) (string, error) {
	if err := b.taskValidator.ValidateID(ref); err != nil {
		return "", errors.NewValidationError("task id is required", err)
	}
	return resolveID(b.store.Tasks(), ref)
}

// ========== Notifications ==========

func (b *businessAPIImpl) Subscribe(fn func(store.Event)) (unsubscribe func()) {
	return b.store.Subscribe(fn)
}

func (b *businessAPIImpl) MaxTextLength() int {
	return b.store.MaxTextLength()
}

func (b *businessAPIImpl) SaveError() error {
	return b.store.SaveError()
}
