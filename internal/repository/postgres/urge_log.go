package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/urgelog"
)

type urgeLogRepo struct {
	db *pgxpool.Pool
}

const urgeLogColumns = `id, user_id, intensity, trigger_category, emotional_state, coping_strategy, notes, logged_at, transformation_points, spiritual_growth`

func scanUrgeLog(row pgx.Row) (*urgelog.UrgeLog, error) {
	l := &urgelog.UrgeLog{}
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.Intensity,
		&l.Trigger,
		&l.EmotionalState,
		&l.CopingStrategy,
		&l.Notes,
		&l.Timestamp,
		&l.TransformationPoints,
		&l.SpiritualGrowth,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *urgeLogRepo) Get(ctx context.Context, id int) (*urgelog.UrgeLog, error) {
	query := `SELECT ` + urgeLogColumns + ` FROM urge_logs WHERE id = $1`

	l, err := scanUrgeLog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("urge log with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get urge log: %w", err)
	}
	return l, nil
}

func (r *urgeLogRepo) ListByUser(ctx context.Context, userID int) ([]*urgelog.UrgeLog, error) {
	query := `SELECT ` + urgeLogColumns + ` FROM urge_logs WHERE user_id = $1 ORDER BY logged_at, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list urge logs: %w", err)
	}
	defer rows.Close()

	logs := []*urgelog.UrgeLog{}
	for rows.Next() {
		l, err := scanUrgeLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan urge log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *urgeLogRepo) Create(ctx context.Context, l *urgelog.UrgeLog) (*urgelog.UrgeLog, error) {
	query := `
	INSERT INTO urge_logs (user_id, intensity, trigger_category, emotional_state, coping_strategy, notes, logged_at, transformation_points, spiritual_growth)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + urgeLogColumns

	ts := l.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	created, err := scanUrgeLog(r.db.QueryRow(
		ctx,
		query,
		l.UserID,
		l.Intensity,
		l.Trigger,
		l.EmotionalState,
		l.CopingStrategy,
		l.Notes,
		ts,
		l.TransformationPoints,
		l.SpiritualGrowth,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create urge log: %w", err)
	}
	return created, nil
}
