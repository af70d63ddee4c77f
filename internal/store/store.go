// Package store owns the authoritative task collection and mirrors it to a
// single storage slot after every mutation.
package store

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/storage"
	"tasklist/internal/validation"
)

// DefaultKey is the storage slot tasks are kept under.
const DefaultKey = "tasks"

const maxIDAttempts = 8

// TaskStore is an ordered, newest-first task collection. It is not safe for
// concurrent use.
type TaskStore struct {
	storage   storage.Storage
	key       string
	clock     func() time.Time
	newID     func() string
	logger    *log.Logger
	validator *validation.TaskValidator
	mapper    *domain.TaskMapper

	tasks          []domain.Task
	saveErr        error
	subscribers    []subscriber
	nextSubscriber int
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithKey sets the storage slot key.
func WithKey(key string) Option {
	return func(s *TaskStore) { s.key = key }
}

// WithClock sets the source of creation times.
func WithClock(clock func() time.Time) Option {
	return func(s *TaskStore) { s.clock = clock }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *TaskStore) { s.newID = gen }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *TaskStore) { s.logger = logger }
}

func WithValidator(v *validation.TaskValidator) Option {
	return func(s *TaskStore) { s.validator = v }
}

// New creates an empty TaskStore backed by st. Call LoadAll to read the
// persisted collection.
func New(st storage.Storage, opts ...Option) *TaskStore {
	s := &TaskStore{
		storage:   st,
		key:       DefaultKey,
		clock:     time.Now,
		newID:     uuid.NewString,
		logger:    logging.Discard(),
		validator: validation.NewTaskValidator(),
		mapper:    domain.NewTaskMapper(),
		tasks:     []domain.Task{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tasks returns a copy of the collection in stored order.
func (s *TaskStore) Tasks() []domain.Task {
	return append([]domain.Task{}, s.tasks...)
}

// Find returns the task with the given id.
func (s *TaskStore) Find(id string) (domain.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return domain.Task{}, false
}

// MaxTextLength returns the longest task text Add accepts.
func (s *TaskStore) MaxTextLength() int {
	return s.validator.MaxTextLength()
}

// Add validates rawText and prepends a new active task. Validation failures
// are returned as validation AppErrors wrapping a *validation.ValidationError.
func (s *TaskStore) Add(ctx context.Context, rawText string) (domain.Task, error) {
	text, err := s.validator.GetValidText(rawText)
	if err != nil {
		message := err.Error()
		if ve, ok := validation.AsValidationError(err); ok {
			message = ve.GetUserFriendlyMessage()
		}
		return domain.Task{}, errors.NewValidationError(message, err)
	}

	task := domain.NewTask(s.uniqueID(), text, s.clock())
	s.tasks = append([]domain.Task{task}, s.tasks...)
	s.persist(ctx)

	s.logger.Debug("task added", "id", task.ID)
	s.emit(Event{Kind: EventAdded, Task: task})
	return task, nil
}

// Remove deletes the task with the given id and reports whether one existed.
// Unknown ids are not an error.
func (s *TaskStore) Remove(ctx context.Context, id string) bool {
	i := s.indexOf(id)
	var removed domain.Task
	if i >= 0 {
		removed = s.tasks[i]
		s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	}
	s.persist(ctx)

	if i < 0 {
		s.logger.Debug("remove matched no task", "id", id)
		return false
	}
	s.logger.Debug("task removed", "id", id)
	s.emit(Event{Kind: EventRemoved, Task: removed})
	return true
}

// Toggle flips the completion state of the task with the given id and
// returns the updated task.
func (s *TaskStore) Toggle(ctx context.Context, id string) (domain.Task, bool) {
	i := s.indexOf(id)
	if i >= 0 {
		s.tasks[i] = s.tasks[i].Toggled()
	}
	s.persist(ctx)

	if i < 0 {
		s.logger.Debug("toggle matched no task", "id", id)
		return domain.Task{}, false
	}
	task := s.tasks[i]
	s.logger.Debug("task toggled", "id", id, "completed", task.Completed)
	s.emit(Event{Kind: EventToggled, Task: task})
	return task, true
}

// LoadAll replaces the collection with the persisted one. Missing or
// unreadable payloads load as an empty collection; it never fails.
func (s *TaskStore) LoadAll(ctx context.Context) []domain.Task {
	s.tasks = s.load(ctx)
	return s.Tasks()
}

func (s *TaskStore) load(ctx context.Context) []domain.Task {
	tasks := []domain.Task{}

	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if errors.IsNotFound(err) {
			s.logger.Debug("no persisted tasks", "key", s.key)
		} else {
			s.logger.Warn("failed to read tasks", append([]interface{}{"err", err}, errors.LogFields(err)...)...)
		}
		return tasks
	}

	records, err := decodePayload(data)
	if err != nil {
		s.logger.Warn("discarding unreadable tasks", "key", s.key, "err", err)
		return tasks
	}

	seen := make(map[string]bool, len(records))
	for _, record := range records {
		if seen[record.ID] {
			s.logger.Warn("skipping duplicate task", "id", record.ID)
			continue
		}
		task, err := s.mapper.FromRecord(record)
		if err != nil {
			s.logger.Warn("skipping invalid task", "id", record.ID, "err", err)
			continue
		}
		text, err := s.validator.GetStoredText(task.Text)
		if err != nil {
			s.logger.Warn("skipping invalid task", "id", record.ID, "err", err)
			continue
		}
		task.Text = text
		if !task.IsValid() {
			s.logger.Warn("skipping incomplete task", "id", record.ID)
			continue
		}
		seen[task.ID] = true
		tasks = append(tasks, task)
	}

	s.logger.Debug("tasks loaded", "key", s.key, "count", len(tasks))
	return tasks
}

// SaveError returns the error of the last write, or nil when the last
// mutation reached storage.
func (s *TaskStore) SaveError() error {
	return s.saveErr
}

// persist writes the whole collection. Failures are logged and kept for
// SaveError; the in-memory mutation stands.
func (s *TaskStore) persist(ctx context.Context) {
	s.saveErr = s.write(ctx)
}

func (s *TaskStore) write(ctx context.Context) error {
	data, err := encodePayload(s.mapper.ToRecordSlice(s.tasks))
	if err != nil {
		s.logger.Warn("failed to encode tasks", "err", err)
		return errors.NewStorageError("encode tasks", err)
	}
	if err := s.storage.Put(ctx, s.key, data); err != nil {
		s.logger.Warn("failed to persist tasks", append([]interface{}{"err", err}, errors.LogFields(err)...)...)
		return err
	}
	return nil
}

func (s *TaskStore) indexOf(id string) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

// uniqueID draws ids until one is unused, falling back to a random UUID if
// the generator keeps colliding.
func (s *TaskStore) uniqueID() string {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
	for {
		id := uuid.NewString()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}
