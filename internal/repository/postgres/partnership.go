package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/partnership"
)

type partnershipRepo struct {
	db *pgxpool.Pool
}

const partnershipColumns = `id, user1_id, user2_id, status, shared_streak, created_at, accepted_at, last_check_in, ended_at`

func scanPartnership(row pgx.Row) (*partnership.Partnership, error) {
	p := &partnership.Partnership{}
	err := row.Scan(
		&p.ID,
		&p.User1ID,
		&p.User2ID,
		&p.Status,
		&p.SharedStreak,
		&p.CreatedAt,
		&p.AcceptedAt,
		&p.LastCheckIn,
		&p.EndedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *partnershipRepo) Get(ctx context.Context, id int) (*partnership.Partnership, error) {
	query := `SELECT ` + partnershipColumns + ` FROM partnerships WHERE id = $1`

	p, err := scanPartnership(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("partnership with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get partnership: %w", err)
	}
	return p, nil
}

func (r *partnershipRepo) Create(ctx context.Context, p *partnership.Partnership) (*partnership.Partnership, error) {
	query := `
	INSERT INTO partnerships (user1_id, user2_id, status, shared_streak, created_at, accepted_at, last_check_in, ended_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + partnershipColumns

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	created, err := scanPartnership(r.db.QueryRow(
		ctx,
		query,
		p.User1ID,
		p.User2ID,
		p.Status,
		p.SharedStreak,
		createdAt,
		p.AcceptedAt,
		p.LastCheckIn,
		p.EndedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create partnership: %w", err)
	}
	return created, nil
}

func (r *partnershipRepo) Update(ctx context.Context, p *partnership.Partnership) (*partnership.Partnership, error) {
	query := `
	UPDATE partnerships
	SET status = $2, shared_streak = $3, accepted_at = $4, last_check_in = $5, ended_at = $6
	WHERE id = $1
	RETURNING ` + partnershipColumns

	updated, err := scanPartnership(r.db.QueryRow(
		ctx,
		query,
		p.ID,
		p.Status,
		p.SharedStreak,
		p.AcceptedAt,
		p.LastCheckIn,
		p.EndedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("partnership with id %d not found", p.ID)
		}
		return nil, fmt.Errorf("failed to update partnership: %w", err)
	}
	return updated, nil
}

func (r *partnershipRepo) CurrentForUser(ctx context.Context, userID int) (*partnership.Partnership, error) {
	query := `
	SELECT ` + partnershipColumns + `
	FROM partnerships
	WHERE (user1_id = $1 OR user2_id = $1) AND status <> 'ended'
	ORDER BY created_at DESC
	LIMIT 1
	`

	p, err := scanPartnership(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current partnership: %w", err)
	}
	return p, nil
}

func (r *partnershipRepo) AddMessage(ctx context.Context, m *partnership.Message) (*partnership.Message, error) {
	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	sentAt := m.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	query := `
	INSERT INTO partner_messages (id, from_user_id, to_user_id, body, sent_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, from_user_id, to_user_id, body, sent_at
	`

	stored := &partnership.Message{}
	err := r.db.QueryRow(ctx, query, id, m.FromUserID, m.ToUserID, m.Body, sentAt).Scan(
		&stored.ID,
		&stored.FromUserID,
		&stored.ToUserID,
		&stored.Body,
		&stored.SentAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add message: %w", err)
	}
	return stored, nil
}

func (r *partnershipRepo) MessagesBetween(ctx context.Context, userA, userB int) ([]*partnership.Message, error) {
	query := `
	SELECT id, from_user_id, to_user_id, body, sent_at
	FROM partner_messages
	WHERE (from_user_id = $1 AND to_user_id = $2) OR (from_user_id = $2 AND to_user_id = $1)
	ORDER BY sent_at
	`

	rows, err := r.db.Query(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []*partnership.Message{}
	for rows.Next() {
		m := &partnership.Message{}
		if err := rows.Scan(&m.ID, &m.FromUserID, &m.ToUserID, &m.Body, &m.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
