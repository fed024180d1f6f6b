package service

import (
	"context"
	"testing"

	"todo_backend/internal/repository"
)

func newTestService() *TodoService {
	return NewTodoService(repository.NewMemoryTodoRepository())
}

func TestCreate_AssignsIDAndStartsIncomplete(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Create(context.Background(), CreateTodoRequest{Name: "Buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if resp.ID != 1 {
		t.Errorf("expected id 1, got %d", resp.ID)
	}
	if resp.Name != "Buy milk" {
		t.Errorf("expected name %q, got %q", "Buy milk", resp.Name)
	}
	if resp.IsComplete {
		t.Error("new todo must start incomplete")
	}
}

func TestCreate_IDsUniqueAcrossDeletes(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateTodoRequest{Name: "a"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ok, err := svc.Delete(ctx, first.ID); err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}

	second, err := svc.Create(ctx, CreateTodoRequest{Name: "b"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("id %d reused after delete", first.ID)
	}
}

func TestGetByID_AbsentIsNotAnError(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("expected no error for absent id, got %v", err)
	}
	if resp != nil {
		t.Fatalf("expected nil for absent id, got %+v", resp)
	}
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTodoRequest{Name: "a"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := svc.Update(ctx, created.ID, UpdateTodoRequest{Name: "b", IsComplete: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ok {
		t.Fatal("expected update to succeed")
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "b" || !got.IsComplete {
		t.Fatalf("expected {b true}, got {%s %v}", got.Name, got.IsComplete)
	}
}

func TestUpdate_EmptyNameOverwrites(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTodoRequest{Name: "keep me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := svc.Update(ctx, created.ID, UpdateTodoRequest{Name: "", IsComplete: false})
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}

	got, _ := svc.GetByID(ctx, created.ID)
	if got.Name != "" {
		t.Fatalf("update is a full replace, expected empty name, got %q", got.Name)
	}
}

func TestUpdate_MissingIDReturnsFalse(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ok, err := svc.Update(ctx, 999, UpdateTodoRequest{Name: "x", IsComplete: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ok {
		t.Fatal("update of a missing id must return false")
	}

	all, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("update of a missing id must not create a record, got %d", len(all))
	}
}

func TestDelete_MissingIDReturnsFalse(t *testing.T) {
	svc := newTestService()

	ok, err := svc.Delete(context.Background(), 999)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok {
		t.Fatal("delete of a missing id must return false")
	}
}

func TestGetCompleted_FiltersGetAll(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, CreateTodoRequest{Name: "a"})
	b, _ := svc.Create(ctx, CreateTodoRequest{Name: "b"})
	if _, err := svc.Create(ctx, CreateTodoRequest{Name: "c"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc.Update(ctx, a.ID, UpdateTodoRequest{Name: "a", IsComplete: true})
	svc.Update(ctx, b.ID, UpdateTodoRequest{Name: "b", IsComplete: true})

	completed, err := svc.GetCompleted(ctx)
	if err != nil {
		t.Fatalf("get completed: %v", err)
	}
	if len(completed) != 2 {
		t.Fatalf("expected 2 completed, got %d", len(completed))
	}
	for _, todo := range completed {
		if !todo.IsComplete {
			t.Fatalf("todo %d in completed list but not complete", todo.ID)
		}
	}
}

// Walks the whole lifecycle: create, complete, list, delete, gone.
func TestTodoLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTodoRequest{Name: "Buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 || created.Name != "Buy milk" || created.IsComplete {
		t.Fatalf("unexpected created todo: %+v", created)
	}

	ok, err := svc.Update(ctx, 1, UpdateTodoRequest{Name: "Buy milk", IsComplete: true})
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}

	got, err := svc.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "Buy milk" || !got.IsComplete {
		t.Fatalf("unexpected todo after update: %+v", got)
	}

	completed, err := svc.GetCompleted(ctx)
	if err != nil {
		t.Fatalf("get completed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != 1 {
		t.Fatalf("expected completed list with id 1, got %+v", completed)
	}

	all, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one todo, got %d", len(all))
	}

	ok, err = svc.Delete(ctx, 1)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}

	got, err = svc.GetByID(ctx, 1)
	if err != nil || got != nil {
		t.Fatalf("expected absent after delete, got %+v err=%v", got, err)
	}

	all, err = svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(all))
	}

	ok, err = svc.Delete(ctx, 1)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if ok {
		t.Fatal("second delete of the same id must return false")
	}
}
