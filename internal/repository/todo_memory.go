package repository

import (
	"context"
	"sort"
	"sync"

	"todo_backend/internal/domain"
)

// MemoryTodoRepository keeps todos in a map guarded by a RWMutex. The id
// counter only ever grows, so deleted ids are not reused. Intended for tests
// and for running without a database.
type MemoryTodoRepository struct {
	mu     sync.RWMutex
	todos  map[int64]domain.Todo
	nextID int64
}

func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{
		todos:  make(map[int64]domain.Todo),
		nextID: 1,
	}
}

func (r *MemoryTodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(domain.Todo) bool { return true }), nil
}

func (r *MemoryTodoRepository) ListCompleted(ctx context.Context) ([]*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(t domain.Todo) bool { return t.IsComplete }), nil
}

// snapshot copies matching records under the caller's lock, ordered by id.
func (r *MemoryTodoRepository) snapshot(keep func(domain.Todo) bool) []*domain.Todo {
	var res []*domain.Todo
	for _, t := range r.todos {
		if keep(t) {
			c := t
			res = append(res, &c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (r *MemoryTodoRepository) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.todos[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *MemoryTodoRepository) Add(ctx context.Context, t *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.nextID
	r.nextID++
	r.todos[t.ID] = *t
	return nil
}

func (r *MemoryTodoRepository) Update(ctx context.Context, t *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[t.ID]; !ok {
		return ErrTodoNotFound
	}
	r.todos[t.ID] = *t
	return nil
}

func (r *MemoryTodoRepository) Delete(ctx context.Context, t *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[t.ID]; !ok {
		return ErrTodoNotFound
	}
	delete(r.todos, t.ID)
	return nil
}
