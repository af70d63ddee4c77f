package api

import (
	"fmt"
	"strings"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// resolveID matches ref against task ids. An exact match wins; otherwise
// ref must be the prefix of exactly one id.
func resolveID(tasks []domain.Task, ref string) (string, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))

	var matches []string
	for _, task := range tasks {
		id := strings.ToLower(task.ID)
		if id == ref {
			return task.ID, nil
		}
		if strings.HasPrefix(id, ref) {
			matches = append(matches, task.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", errors.NewNotFoundError("task", ref)
	case 1:
		return matches[0], nil
	default:
		return "", errors.NewInvalidInputError("id", ref, fmt.Sprintf("prefix matches %d tasks, use more characters", len(matches)))
	}
}
