// Package view derives read-only projections of a task collection.
package view

import (
	"sort"

	"tasklist/internal/domain"
)

// Summary holds the counters shown under a task list.
type Summary struct {
	Total     int
	Active    int
	Completed int
}

// Project returns the tasks that pass filter, ordered by creation time.
// Tasks created at the same instant keep their relative order. The input
// slice is never modified.
func Project(tasks []domain.Task, filter domain.Filter, ascending bool) []domain.Task {
	result := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Matches(task) {
			result = append(result, task)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if ascending {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// Summarize counts the tasks by completion state.
func Summarize(tasks []domain.Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			s.Completed++
		}
	}
	s.Active = s.Total - s.Completed
	return s
}

// SortLabel names the order Project uses for ascending.
func SortLabel(ascending bool) string {
	if ascending {
		return "Oldest First"
	}
	return "Newest First"
}
