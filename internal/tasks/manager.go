package tasks

import (
	"sync"

	"github.com/google/uuid"
)

// Filter selects which tasks List returns.
type Filter int

const (
	FilterAll Filter = iota
	FilterCompleted
	FilterPending
)

// Manager owns an ordered collection of tasks. Insertion order is
// preserved and the collection never shrinks.
type Manager struct {
	mu    sync.Mutex
	tasks []*Task
}

func NewManager() *Manager {
	return &Manager{}
}

// Add creates a task and appends it to the collection. The returned
// pointer is shared with the manager, so marking it complete is visible
// in later Get/List calls. Any strings are accepted, including empty.
func (m *Manager) Add(title, description string) *Task {
	t := newTask(title, description)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = append(m.tasks, t)
	return t
}

// Get returns the task with the given id, or (nil, false) if no task
// with that id was added to this manager.
func (m *Manager) Get(id uuid.UUID) (*Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Linear scan; fine at demo scale.
	for _, t := range m.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// List returns the tasks matching f in insertion order. The slice is a
// fresh copy on every call; the Task pointers are the manager's own.
func (m *Manager) List(f Filter) []*Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		switch f {
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		case FilterPending:
			if t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
