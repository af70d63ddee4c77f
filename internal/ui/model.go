package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/api"
	"tasklist/internal/config"
	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/store"
	"tasklist/internal/view"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Options configures the model.
type Options struct {
	BannerTimeout time.Duration
	Filter        domain.Filter
	Ascending     bool
	RelativeTime  bool
	TimeFormat    string
	IDLength      int
	Now           func() time.Time
}

// OptionsFromConfig builds Options from the display and notice settings.
func OptionsFromConfig(cfg *config.Config) Options {
	filter, err := domain.ParseFilter(cfg.Display.DefaultFilter)
	if err != nil {
		filter = domain.FilterAll
	}
	return Options{
		BannerTimeout: cfg.Notice.BannerTimeout,
		Filter:        filter,
		Ascending:     cfg.Display.OldestFirst,
		RelativeTime:  cfg.Display.RelativeTime,
		TimeFormat:    cfg.Display.TimeFormat,
		IDLength:      cfg.Display.IDLength,
		Now:           time.Now,
	}
}

// Model is the bubbletea model for the interactive task list.
type Model struct {
	ctx  context.Context
	api  api.BusinessAPI
	opts Options

	input  []rune
	focus  focus
	cursor int

	filter    domain.Filter
	ascending bool
	tasks     []domain.Task
	summary   view.Summary

	banner      banner
	unsubscribe func()
	changes     int
}

// NewModel creates a model over the API and subscribes it to task changes.
// Call Close when done.
func NewModel(ctx context.Context, a api.BusinessAPI, opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Filter == "" {
		opts.Filter = domain.FilterAll
	}
	m := &Model{
		ctx:       ctx,
		api:       a,
		opts:      opts,
		filter:    opts.Filter,
		ascending: opts.Ascending,
		banner:    banner{timeout: opts.BannerTimeout},
	}
	m.unsubscribe = a.Subscribe(func(store.Event) {
		m.changes++
		m.refresh()
	})
	m.refresh()
	return m
}

// Close removes the change subscription.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case clearBannerMsg:
		m.banner.clear(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "tab":
		m.filter = m.filter.Next()
		m.refresh()
		return nil
	case "ctrl+o":
		m.toggleSort()
		return nil
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyEsc, tea.KeyDown:
		if len(m.tasks) > 0 {
			m.focus = focusList
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}
	return nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.focus = focusInput
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "i", "a", "esc":
		m.focus = focusInput
	case " ", "space":
		if task, ok := m.selected(); ok {
			if _, err := m.api.ToggleTask(m.ctx, task.ID); err != nil {
				return m.banner.show(errors.GetUserMessage(err))
			}
		}
	case "d", "x":
		if task, ok := m.selected(); ok {
			if _, err := m.api.RemoveTask(m.ctx, task.ID); err != nil {
				return m.banner.show(errors.GetUserMessage(err))
			}
		}
	case "o":
		m.toggleSort()
	}
	return nil
}

// submit adds the typed text as a task. Invalid text keeps the input and
// shows the error banner.
func (m *Model) submit() tea.Cmd {
	if _, err := m.api.AddTask(m.ctx, string(m.input)); err != nil {
		return m.banner.show(errors.GetUserMessage(err))
	}
	m.input = m.input[:0]
	m.banner.dismiss()
	return nil
}

func (m *Model) toggleSort() {
	m.ascending = !m.ascending
	m.refresh()
}

func (m *Model) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// refresh re-projects the task list and keeps the cursor in range.
func (m *Model) refresh() {
	listing, err := m.api.ListTasks(m.ctx, m.filter, m.ascending)
	if err != nil {
		m.banner.text = errors.GetUserMessage(err)
		return
	}
	m.tasks = listing.Tasks
	m.summary = listing.Summary

	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(m.tasks) == 0 && m.focus == focusList {
		m.focus = focusInput
	}
}
