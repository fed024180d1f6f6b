package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"todo_backend/internal/domain"
	"todo_backend/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func connect(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)
	applyMigrations(t, db)
	if _, err := db.Exec(context.Background(), `TRUNCATE todos`); err != nil {
		t.Fatalf("truncate todos: %v", err)
	}
	return db
}

func TestPostgresTodoRepository_CRUD(t *testing.T) {
	db := connect(t)
	repo := repository.NewPostgresTodoRepository(db)
	ctx := context.Background()

	todo := &domain.Todo{Name: "integration item"}
	if err := repo.Add(ctx, todo); err != nil {
		t.Fatalf("add: %v", err)
	}
	if todo.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := repo.GetByID(ctx, todo.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "integration item" || got.IsComplete {
		t.Fatalf("unexpected stored todo: %+v", got)
	}

	todo.Name = "renamed"
	todo.IsComplete = true
	if err := repo.Update(ctx, todo); err != nil {
		t.Fatalf("update: %v", err)
	}

	completed, err := repo.ListCompleted(ctx)
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != todo.ID || completed[0].Name != "renamed" {
		t.Fatalf("unexpected completed list: %+v", completed)
	}

	if err := repo.Delete(ctx, todo); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = repo.GetByID(ctx, todo.ID)
	if err != nil || got != nil {
		t.Fatalf("expected absent after delete, got %+v err=%v", got, err)
	}
}

func TestPostgresTodoRepository_NotFound(t *testing.T) {
	db := connect(t)
	repo := repository.NewPostgresTodoRepository(db)
	ctx := context.Background()

	missing := &domain.Todo{ID: 999999, Name: "ghost"}

	if err := repo.Update(ctx, missing); err != repository.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound on update, got %v", err)
	}
	if err := repo.Delete(ctx, missing); err != repository.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound on delete, got %v", err)
	}
}

func TestPostgresTodoRepository_IDsNotReused(t *testing.T) {
	db := connect(t)
	repo := repository.NewPostgresTodoRepository(db)
	ctx := context.Background()

	first := &domain.Todo{Name: "first"}
	if err := repo.Add(ctx, first); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Delete(ctx, first); err != nil {
		t.Fatalf("delete: %v", err)
	}

	second := &domain.Todo{Name: "second"}
	if err := repo.Add(ctx, second); err != nil {
		t.Fatalf("add: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("id %d was reused after delete", first.ID)
	}
}
