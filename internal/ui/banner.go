package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearBannerMsg asks the model to clear the banner shown at generation gen.
type clearBannerMsg struct {
	gen int
}

// banner is a transient error line. Each show starts a new generation so a
// timer started for an older message cannot clear a newer one.
type banner struct {
	text    string
	gen     int
	timeout time.Duration
}

func (b *banner) show(text string) tea.Cmd {
	b.text = text
	b.gen++
	gen := b.gen
	return tea.Tick(b.timeout, func(time.Time) tea.Msg {
		return clearBannerMsg{gen: gen}
	})
}

func (b *banner) clear(msg clearBannerMsg) {
	if msg.gen == b.gen {
		b.text = ""
	}
}

func (b *banner) dismiss() {
	b.text = ""
}
