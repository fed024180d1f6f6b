package repository

import (
	"context"
	"errors"
	"fmt"

	"todo_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTodoRepository stores todos in a Postgres table. Ids come from a
// BIGSERIAL sequence, so a deleted id is never handed out again.
type PostgresTodoRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTodoRepository(db *pgxpool.Pool) *PostgresTodoRepository {
	return &PostgresTodoRepository{db: db}
}

func (r *PostgresTodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	return r.query(ctx, `SELECT id, name, is_complete FROM todos ORDER BY id`)
}

func (r *PostgresTodoRepository) ListCompleted(ctx context.Context) ([]*domain.Todo, error) {
	return r.query(ctx, `SELECT id, name, is_complete FROM todos WHERE is_complete ORDER BY id`)
}

func (r *PostgresTodoRepository) query(ctx context.Context, sql string) ([]*domain.Todo, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	var res []*domain.Todo
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Name, &t.IsComplete); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *PostgresTodoRepository) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	var t domain.Todo
	err := r.db.QueryRow(ctx,
		`SELECT id, name, is_complete FROM todos WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.IsComplete)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get todo %d: %w", id, err)
	}
	return &t, nil
}

func (r *PostgresTodoRepository) Add(ctx context.Context, t *domain.Todo) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO todos (name, is_complete) VALUES ($1, $2) RETURNING id`,
		t.Name, t.IsComplete,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

func (r *PostgresTodoRepository) Update(ctx context.Context, t *domain.Todo) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE todos SET name = $1, is_complete = $2 WHERE id = $3`,
		t.Name, t.IsComplete, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update todo %d: %w", t.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTodoNotFound
	}
	return nil
}

func (r *PostgresTodoRepository) Delete(ctx context.Context, t *domain.Todo) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, t.ID)
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", t.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTodoNotFound
	}
	return nil
}
