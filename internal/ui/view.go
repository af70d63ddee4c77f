package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tasklist/internal/domain"
	"tasklist/internal/view"
)

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b)
	m.writeInput(&b)
	m.writeBanner(&b)
	m.writeControls(&b)
	m.writeTasks(&b)
	b.WriteString(view.FormatSummary(m.summary) + "\n\n")
	m.writeFooter(&b)
	return b.String()
}

func writeTitle(b *strings.Builder) {
	title := "Task List"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func (m *Model) writeInput(b *strings.Builder) {
	prompt := "  "
	cursor := ""
	if m.focus == focusInput {
		prompt = "> "
		cursor = "_"
	}
	text := string(m.input)
	b.WriteString(fmt.Sprintf("%sNew task: %s%s  (%d/%d)\n", prompt, text, cursor, utf8.RuneCountInString(strings.TrimSpace(text)), m.api.MaxTextLength()))
}

func (m *Model) writeBanner(b *strings.Builder) {
	if m.banner.text == "" {
		b.WriteString("\n")
		return
	}
	b.WriteString("! " + m.banner.text + "\n")
}

func (m *Model) writeControls(b *strings.Builder) {
	labels := make([]string, len(domain.Filters))
	for i, f := range domain.Filters {
		if f == m.filter {
			labels[i] = "[" + f.Label() + "]"
		} else {
			labels[i] = f.Label()
		}
	}
	b.WriteString(fmt.Sprintf("Filter: %s   Sort: %s\n\n", strings.Join(labels, " "), view.SortLabel(m.ascending)))
}

func (m *Model) writeTasks(b *strings.Builder) {
	if len(m.tasks) == 0 {
		if m.summary.Total == 0 {
			b.WriteString("  No tasks yet. Type one above and press enter.\n\n")
		} else {
			b.WriteString(fmt.Sprintf("  No %s tasks.\n\n", strings.ToLower(m.filter.Label())))
		}
		return
	}

	now := m.opts.Now()
	for i, task := range m.tasks {
		pointer := " "
		if m.focus == focusList && i == m.cursor {
			pointer = ">"
		}
		created := view.FormatCreated(task.CreatedAt, now, m.opts.RelativeTime, m.opts.TimeFormat)
		b.WriteString(fmt.Sprintf("%s %s %s  (%s)\n", pointer, task.Checkbox(), task.Text, created))
	}
	b.WriteString("\n")
}

func (m *Model) writeFooter(b *strings.Builder) {
	if m.focus == focusInput {
		b.WriteString("enter add | down/esc select tasks | tab filter | ctrl+o sort | ctrl+c quit\n")
		return
	}
	b.WriteString("space toggle | d delete | o sort | tab filter | i new task | q quit\n")
}
