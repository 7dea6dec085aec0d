package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/task"
)

type taskRepo struct {
	db *pgxpool.Pool
}

const taskColumns = `id, title, category, duration_minutes, points, spiritual_reward`

func scanTask(row pgx.Row) (*task.Task, error) {
	t := &task.Task{}
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Category,
		&t.DurationMinutes,
		&t.Points,
		&t.SpiritualReward,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *taskRepo) Get(ctx context.Context, id int) (*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	t, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("task with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

func (r *taskRepo) List(ctx context.Context) ([]*task.Task, error) {
	return r.listWhere(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
}

func (r *taskRepo) ListByCategory(ctx context.Context, category task.Category) ([]*task.Task, error) {
	return r.listWhere(ctx, `SELECT `+taskColumns+` FROM tasks WHERE category = $1 ORDER BY id`, category)
}

func (r *taskRepo) listWhere(ctx context.Context, query string, args ...any) ([]*task.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepo) Complete(ctx context.Context, userID, taskID int, at time.Time) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tasks WHERE id = $1)`, taskID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return apperr.NotFoundf("task with id %d not found", taskID)
	}

	tag, err := r.db.Exec(ctx, `
	INSERT INTO completed_tasks (user_id, task_id, completed_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id, task_id) DO NOTHING
	`, userID, taskID, at)
	if err != nil {
		return fmt.Errorf("failed to record completion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.Conflictf("task %d already completed by user %d", taskID, userID)
	}
	return nil
}

func (r *taskRepo) IsCompleted(ctx context.Context, userID, taskID int) (bool, error) {
	var done bool
	err := r.db.QueryRow(ctx, `
	SELECT EXISTS(SELECT 1 FROM completed_tasks WHERE user_id = $1 AND task_id = $2)
	`, userID, taskID).Scan(&done)
	if err != nil {
		return false, fmt.Errorf("failed to check completion: %w", err)
	}
	return done, nil
}
