// Package postgres implements the record-store interfaces on a pgx pool.
// Queries are plain SQL; the schema is applied idempotently at startup.
package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"pureHeartAPI/internal/repository"
)

//go:embed schema.sql
var schemaSQL string

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates missing tables. Safe to run on every boot.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *Store) Users() repository.UserRepository               { return &userRepo{db: s.db} }
func (s *Store) UrgeLogs() repository.UrgeLogRepository         { return &urgeLogRepo{db: s.db} }
func (s *Store) Tasks() repository.TaskRepository               { return &taskRepo{db: s.db} }
func (s *Store) Partnerships() repository.PartnershipRepository { return &partnershipRepo{db: s.db} }
func (s *Store) DailyContent() repository.DailyContentRepository {
	return &dailyContentRepo{db: s.db}
}
