package ports

import (
	"context"

	"todoapi/domain/todo"
)

// TodoRepository is the data-access contract against the single-item
// store. Update and Delete mutate only if the record already exists;
// a miss surfaces as a not-found error (errors.IsNotFound), never as a
// silently created record. The existence check is evaluated atomically
// as part of the write, not by a preceding lookup.
type TodoRepository interface {
	// Insert writes a fully-formed record. The caller guarantees a
	// fresh id, so duplicates are not a concern.
	Insert(ctx context.Context, t *todo.Todo) error

	// GetByID returns the record, or a not-found error on a miss.
	GetByID(ctx context.Context, id string) (*todo.Todo, error)

	// Scan returns every record in the store, unordered.
	Scan(ctx context.Context) ([]todo.Todo, error)

	// Update applies the present fields plus updatedAt iff the record
	// exists, and returns the complete post-update record.
	Update(ctx context.Context, id string, fields todo.UpdateFields, updatedAt string) (*todo.Todo, error)

	// Delete removes the record iff it exists.
	Delete(ctx context.Context, id string) error
}

// MetricsRecorder publishes a named counter increment. Callers treat
// failures as best-effort: log and continue.
type MetricsRecorder interface {
	IncrementCounter(ctx context.Context, name string) error
}
