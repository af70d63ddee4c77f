package store

import (
	"tasklist/internal/domain"
)

// EventKind identifies the mutation behind an Event.
type EventKind int

const (
	EventAdded EventKind = iota + 1
	EventRemoved
	EventToggled
)

func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	case EventToggled:
		return "toggled"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after each successful mutation. Task
// holds the task as it is after the mutation, or as it was before removal.
type Event struct {
	Kind EventKind
	Task domain.Task
}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to receive every Event. Delivery is synchronous and
// in registration order. The returned function removes the subscription.
func (s *TaskStore) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.nextSubscriber++
	id := s.nextSubscriber
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *TaskStore) emit(event Event) {
	subs := append([]subscriber(nil), s.subscribers...)
	for _, sub := range subs {
		sub.fn(event)
	}
}
