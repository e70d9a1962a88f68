package storage

import (
	"context"
	"errors"
	"time"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

var (
	// ErrTaskNotFound is returned when no task with the given ID exists.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateTaskID signals an internal invariant violation: IDs
	// are store-allocated, so inserting an existing ID must never
	// happen in normal operation.
	ErrDuplicateTaskID = errors.New("duplicate task id")
)

// Filter narrows and paginates a List call. Skip and Limit apply
// after ordering and filtering; a zero Limit means no limit.
type Filter struct {
	Completed *bool
	Skip      int
	Limit     int
}

// Store is the owning collection of tasks. It allocates IDs
// monotonically starting at 1 and never reuses them, even after a
// delete. Mutations are atomic per task: Update and Toggle read and
// write in a single serialized step so concurrent callers cannot
// lose each other's writes.
type Store interface {
	// Insert stores the task, allocating and assigning its ID.
	Insert(ctx context.Context, task *models.Task) error

	// Get returns the task with the given ID regardless of owner.
	Get(ctx context.Context, id int64) (*models.Task, error)

	// Update overwrites the provided fields and refreshes UpdatedAt.
	Update(ctx context.Context, id int64, title, description *string, now time.Time) (*models.Task, error)

	// Toggle flips the completed flag and refreshes UpdatedAt.
	Toggle(ctx context.Context, id int64, now time.Time) (*models.Task, error)

	// Delete removes the task and returns it.
	Delete(ctx context.Context, id int64) (*models.Task, error)

	// List returns the owner's tasks ordered by ascending ID.
	List(ctx context.Context, owner models.Owner, filter Filter) ([]*models.Task, error)
}
