package view

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatCreated renders a creation time either relative to now ("3 minutes
// ago") or with layout in local time.
func FormatCreated(created, now time.Time, relative bool, layout string) string {
	if relative {
		return humanize.RelTime(created, now, "ago", "from now")
	}
	return created.Local().Format(layout)
}

// FormatSummary renders the counters line shown under task lists.
func FormatSummary(s Summary) string {
	return "Total: " + itoa(s.Total) + "  Active: " + itoa(s.Active) + "  Completed: " + itoa(s.Completed)
}

func itoa(n int) string {
	return humanize.Comma(int64(n))
}
