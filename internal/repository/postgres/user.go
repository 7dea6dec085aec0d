package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/user"
)

type userRepo struct {
	db *pgxpool.Pool
}

const userColumns = `id, display_name, current_streak, best_streak, total_clean_days, points, level, badges, spiritual_score, triggers, vulnerabilities, last_clean_day, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(
		&u.ID,
		&u.DisplayName,
		&u.CurrentStreak,
		&u.BestStreak,
		&u.TotalCleanDays,
		&u.Points,
		&u.Level,
		&u.Badges,
		&u.SpiritualScore,
		&u.Triggers,
		&u.Vulnerabilities,
		&u.LastCleanDay,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepo) Get(ctx context.Context, id int) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("user with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *userRepo) List(ctx context.Context) ([]*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
	INSERT INTO users (display_name, current_streak, best_streak, total_clean_days, points, level, badges, spiritual_score, triggers, vulnerabilities, last_clean_day, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING ` + userColumns

	now := time.Now()
	created, err := scanUser(r.db.QueryRow(
		ctx,
		query,
		u.DisplayName,
		u.CurrentStreak,
		u.BestStreak,
		u.TotalCleanDays,
		u.Points,
		u.Level,
		u.Badges,
		u.SpiritualScore,
		u.Triggers,
		u.Vulnerabilities,
		u.LastCleanDay,
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (r *userRepo) Update(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
	UPDATE users
	SET display_name = $2, current_streak = $3, best_streak = $4, total_clean_days = $5, points = $6, level = $7, badges = $8, spiritual_score = $9, triggers = $10, vulnerabilities = $11, last_clean_day = $12, updated_at = $13
	WHERE id = $1
	RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRow(
		ctx,
		query,
		u.ID,
		u.DisplayName,
		u.CurrentStreak,
		u.BestStreak,
		u.TotalCleanDays,
		u.Points,
		u.Level,
		u.Badges,
		u.SpiritualScore,
		u.Triggers,
		u.Vulnerabilities,
		u.LastCleanDay,
		time.Now(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("user with id %d not found", u.ID)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return updated, nil
}
