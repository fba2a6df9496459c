package services

import (
	"context"
	"sort"

	"todoapi/application/ports"
	"todoapi/domain/todo"
	"todoapi/pkg/observability"
	"todoapi/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Counter names, one per operation. Each is incremented exactly once
// per successful call and never on an error path.
const (
	MetricTodoCreated   = "TodoCreatedCount"
	MetricTodoRetrieved = "TodoRetrievedCount"
	MetricTodoListed    = "TodoListedCount"
	MetricTodoUpdated   = "TodoUpdatedCount"
	MetricTodoDeleted   = "TodoDeletedCount"
)

// TodoService composes the repository, the metrics recorder, and the
// tracer into the five operations. Metric emission is best-effort: a
// publish failure is logged and discarded, never surfaced to the
// caller.
type TodoService struct {
	repo    ports.TodoRepository
	metrics ports.MetricsRecorder
	tracer  *observability.Tracer
	logger  *zap.Logger
}

// NewTodoService creates a new todo service.
func NewTodoService(
	repo ports.TodoRepository,
	metrics ports.MetricsRecorder,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *TodoService {
	return &TodoService{
		repo:    repo,
		metrics: metrics,
		tracer:  tracer,
		logger:  logger,
	}
}

// ListResult is the payload shape of the list operation.
type ListResult struct {
	Items []todo.Todo `json:"items"`
	Count int         `json:"count"`
}

// Create builds a new record with a generated id, createdAt equal to
// updatedAt, and completed false, then inserts it unconditionally.
func (s *TodoService) Create(ctx context.Context, title, description string) (*todo.Todo, error) {
	t, err := todo.New(uuid.New().String(), title, description, utils.NowUTC())
	if err != nil {
		return nil, err
	}

	if err := s.tracer.Capture(ctx, "store.Insert", func(ctx context.Context) error {
		return s.repo.Insert(ctx, t)
	}); err != nil {
		return nil, err
	}

	s.emitCounter(ctx, MetricTodoCreated)

	s.logger.Info("Todo created",
		zap.String("todoId", t.ID),
		zap.String("title", t.Title),
	)
	return t, nil
}

// Get fetches a record by id.
func (s *TodoService) Get(ctx context.Context, id string) (*todo.Todo, error) {
	var t *todo.Todo
	err := s.tracer.Capture(ctx, "store.GetByID", func(ctx context.Context) error {
		var err error
		t, err = s.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.emitCounter(ctx, MetricTodoRetrieved)
	return t, nil
}

// List scans every record and sorts by createdAt descending, most
// recently created first.
func (s *TodoService) List(ctx context.Context) (*ListResult, error) {
	var todos []todo.Todo
	err := s.tracer.Capture(ctx, "store.Scan", func(ctx context.Context) error {
		var err error
		todos, err = s.repo.Scan(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []todo.Todo{}
	}

	// Timestamps are fixed-width UTC strings, so lexicographic order
	// is chronological order.
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].CreatedAt > todos[j].CreatedAt
	})

	s.emitCounter(ctx, MetricTodoListed)

	return &ListResult{
		Items: todos,
		Count: len(todos),
	}, nil
}

// Update applies an already-validated field set with a fresh updatedAt
// and returns the complete post-update record. The repository's
// conditional write guarantees the record existed at write time.
func (s *TodoService) Update(ctx context.Context, id string, fields todo.UpdateFields) (*todo.Todo, error) {
	var t *todo.Todo
	err := s.tracer.Capture(ctx, "store.Update", func(ctx context.Context) error {
		var err error
		t, err = s.repo.Update(ctx, id, fields, utils.NowUTC())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.emitCounter(ctx, MetricTodoUpdated)

	s.logger.Info("Todo updated", zap.String("todoId", id))
	return t, nil
}

// Delete removes a record. Deletion is physical and irreversible.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	if err := s.tracer.Capture(ctx, "store.Delete", func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	}); err != nil {
		return err
	}

	s.emitCounter(ctx, MetricTodoDeleted)

	s.logger.Info("Todo deleted", zap.String("todoId", id))
	return nil
}

// emitCounter publishes a usage counter, swallowing any failure.
func (s *TodoService) emitCounter(ctx context.Context, name string) {
	if s.metrics == nil {
		return
	}
	if err := s.metrics.IncrementCounter(ctx, name); err != nil {
		s.logger.Warn("Failed to publish metric",
			zap.String("metric", name),
			zap.Error(err),
		)
	}
}
