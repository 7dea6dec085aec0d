package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/dailycontent"
)

type dailyContentRepo struct {
	db *pgxpool.Pool
}

const contentColumns = `id, content_type, content_date, title, body, source`

func scanContent(row pgx.Row) (*dailycontent.Content, error) {
	c := &dailycontent.Content{}
	err := row.Scan(&c.ID, &c.Type, &c.Date, &c.Title, &c.Body, &c.Source)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *dailyContentRepo) Get(ctx context.Context, id int) (*dailycontent.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM daily_content WHERE id = $1`

	c, err := scanContent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("daily content with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get daily content: %w", err)
	}
	return c, nil
}

func (r *dailyContentRepo) List(ctx context.Context) ([]*dailycontent.Content, error) {
	return r.listWhere(ctx, `SELECT `+contentColumns+` FROM daily_content ORDER BY id`)
}

func (r *dailyContentRepo) ListByType(ctx context.Context, t dailycontent.ContentType) ([]*dailycontent.Content, error) {
	return r.listWhere(ctx, `SELECT `+contentColumns+` FROM daily_content WHERE content_type = $1 ORDER BY id`, t)
}

func (r *dailyContentRepo) listWhere(ctx context.Context, query string, args ...any) ([]*dailycontent.Content, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily content: %w", err)
	}
	defer rows.Close()

	content := []*dailycontent.Content{}
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily content: %w", err)
		}
		content = append(content, c)
	}
	return content, rows.Err()
}

func (r *dailyContentRepo) ByDate(ctx context.Context, date string) (*dailycontent.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM daily_content WHERE content_date = $1 LIMIT 1`

	c, err := scanContent(r.db.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("no daily content for %s", date)
		}
		return nil, fmt.Errorf("failed to get daily content: %w", err)
	}
	return c, nil
}
