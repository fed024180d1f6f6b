package repository

import (
	"context"
	"errors"

	"todo_backend/internal/domain"
)

// ErrTodoNotFound is returned by Update and Delete when no record with the
// given id exists.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository abstracts persistence so the service layer stays
// storage-agnostic. GetByID returns (nil, nil) when the id does not exist;
// absence is not an error.
type TodoRepository interface {
	List(ctx context.Context) ([]*domain.Todo, error)
	ListCompleted(ctx context.Context) ([]*domain.Todo, error)
	GetByID(ctx context.Context, id int64) (*domain.Todo, error)
	// Add assigns a fresh unique id, persists t and writes the id back into t.
	Add(ctx context.Context, t *domain.Todo) error
	// Update replaces the stored record matching t.ID in full.
	Update(ctx context.Context, t *domain.Todo) error
	Delete(ctx context.Context, t *domain.Todo) error
}
