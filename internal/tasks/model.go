package tasks

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item. ID, Title, Description, and CreatedAt are
// fixed at construction; Completed only ever moves from false to true.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// newTask is called only from Manager.Add, so every live Task is
// registered with exactly one manager.
func newTask(title, description string) *Task {
	return &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}
}

// MarkComplete marks the task as completed. Idempotent; there is no
// un-complete operation.
func (t *Task) MarkComplete() {
	t.Completed = true
}

// Representation is the fixed serialization/display shape of a Task,
// with the timestamp rendered as text.
type Representation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

// Representation renders the task with CreatedAt as RFC 3339 text.
func (t *Task) Representation() Representation {
	return Representation{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
	}
}
