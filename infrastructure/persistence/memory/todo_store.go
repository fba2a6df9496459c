package memory

import (
	"context"
	"sync"

	"todoapi/application/ports"
	"todoapi/domain/todo"
	appErrors "todoapi/pkg/errors"
)

// TodoStore is an in-memory implementation of ports.TodoRepository for
// local development and tests. It preserves the conditional-existence
// semantics of the DynamoDB repository: updates and deletes of a
// missing id fail with a not-found error under the same lock that
// performs the mutation.
type TodoStore struct {
	mu    sync.RWMutex
	items map[string]todo.Todo
}

// NewTodoStore creates an empty store.
func NewTodoStore() *TodoStore {
	return &TodoStore{
		items: make(map[string]todo.Todo),
	}
}

// Insert writes a record unconditionally.
func (s *TodoStore) Insert(ctx context.Context, t *todo.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[t.ID] = *t
	return nil
}

// GetByID returns a copy of the record, or a not-found error.
func (s *TodoStore) GetByID(ctx context.Context, id string) (*todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.items[id]
	if !ok {
		return nil, appErrors.NewNotFoundError("Todo not found")
	}
	return &t, nil
}

// Scan returns copies of every record, unordered.
func (s *TodoStore) Scan(ctx context.Context) ([]todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]todo.Todo, 0, len(s.items))
	for _, t := range s.items {
		todos = append(todos, t)
	}
	return todos, nil
}

// Update applies the present fields iff the record exists.
func (s *TodoStore) Update(ctx context.Context, id string, fields todo.UpdateFields, updatedAt string) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.items[id]
	if !ok {
		return nil, appErrors.NewNotFoundError("Todo not found")
	}

	fields.Apply(&t, updatedAt)
	s.items[id] = t
	return &t, nil
}

// Delete removes the record iff it exists.
func (s *TodoStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return appErrors.NewNotFoundError("Todo not found")
	}
	delete(s.items, id)
	return nil
}

var _ ports.TodoRepository = (*TodoStore)(nil)
