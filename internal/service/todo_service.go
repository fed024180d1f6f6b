package service

import (
	"context"
	"errors"

	"todo_backend/internal/domain"
	"todo_backend/internal/repository"
)

// CreateTodoRequest carries the only field a client may set on creation.
// The id is store-assigned and new todos always start incomplete.
type CreateTodoRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateTodoRequest replaces both mutable fields in full. The target id is
// taken from the URL, never from the body.
type UpdateTodoRequest struct {
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
}

// TodoResponse is the wire shape returned for every read.
type TodoResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
}

// TodoService is the only entry point for the HTTP layer. It owns the
// DTO/entity mapping; persistence goes through the injected repository.
type TodoService struct {
	repo repository.TodoRepository
}

func NewTodoService(repo repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) GetAll(ctx context.Context) ([]TodoResponse, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(todos), nil
}

func (s *TodoService) GetCompleted(ctx context.Context) ([]TodoResponse, error) {
	todos, err := s.repo.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(todos), nil
}

// GetByID returns (nil, nil) when the id does not exist; the caller turns
// that into a not-found response.
func (s *TodoService) GetByID(ctx context.Context, id int64) (*TodoResponse, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	resp := toResponse(t)
	return &resp, nil
}

// Create persists a new todo from the request name. Any id or completion
// flag a client might smuggle in is ignored: new todos start incomplete and
// the store assigns the id.
func (s *TodoService) Create(ctx context.Context, req CreateTodoRequest) (TodoResponse, error) {
	t := &domain.Todo{
		Name:       req.Name,
		IsComplete: false,
	}
	if err := s.repo.Add(ctx, t); err != nil {
		return TodoResponse{}, err
	}
	return toResponse(t), nil
}

// Update overwrites name and isComplete on the stored todo. Returns false
// when the id does not exist; the store is left untouched in that case.
func (s *TodoService) Update(ctx context.Context, id int64, req UpdateTodoRequest) (bool, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, nil
	}

	t.Name = req.Name
	t.IsComplete = req.IsComplete

	if err := s.repo.Update(ctx, t); err != nil {
		// the record can disappear between the read and the write
		if errors.Is(err, repository.ErrTodoNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes the todo with the given id. Returns false when it does not
// exist, including when a concurrent delete got there first.
func (s *TodoService) Delete(ctx context.Context, id int64) (bool, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, nil
	}

	if err := s.repo.Delete(ctx, t); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toResponse(t *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:         t.ID,
		Name:       t.Name,
		IsComplete: t.IsComplete,
	}
}

func toResponses(todos []*domain.Todo) []TodoResponse {
	res := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		res = append(res, toResponse(t))
	}
	return res
}
