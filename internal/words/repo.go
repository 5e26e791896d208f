package words

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gematria/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Insert stores a new word row. When another row already holds the
// same normalized form the insert is a no-op and inserted is false;
// the store stays append-only and unique on normalized either way.
//
// Placeholders are $1..$n in occurrence order, which both lib/pq and
// go-sqlite3 bind positionally.
func (r *Repo) Insert(ctx context.Context, text, normalized string, gematria int) (id int64, inserted bool, err error) {
	err = r.DB.QueryRowContext(ctx, `
		INSERT INTO gematria_words (text, normalized, gematria, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (normalized) DO NOTHING
		RETURNING id
	`, text, normalized, gematria, time.Now().UTC()).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("insert word: %w", err)
	}
	return id, true, nil
}

// GetByNormalized returns the stored row for a normalized form, or
// nil when none exists.
func (r *Repo) GetByNormalized(ctx context.Context, normalized string) (*models.Word, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, text, normalized, gematria, created_at
		FROM gematria_words
		WHERE normalized = $1
	`, normalized)

	var w models.Word
	if err := row.Scan(&w.ID, &w.Text, &w.Normalized, &w.Gematria, &w.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan word: %w", err)
	}
	return &w, nil
}

func (r *Repo) CountByValue(ctx context.Context, value int) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM gematria_words WHERE gematria = $1
	`, value).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count scan: %w", err)
	}
	return total, nil
}

// TopByValue lists up to limit words with the given gematria value,
// most recently created first. Same-timestamp rows fall back to id
// order so the newest insert still wins.
func (r *Repo) TopByValue(ctx context.Context, value, limit int) ([]models.Word, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, text, normalized, gematria, created_at
		FROM gematria_words
		WHERE gematria = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, value, limit)
	if err != nil {
		return nil, fmt.Errorf("top query: %w", err)
	}
	defer rows.Close()

	out := make([]models.Word, 0, limit)
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(&w.ID, &w.Text, &w.Normalized, &w.Gematria, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("top scan: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// All streams every stored word, newest first. Used by the CSV export.
func (r *Repo) All(ctx context.Context) ([]models.Word, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, text, normalized, gematria, created_at
		FROM gematria_words
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("all query: %w", err)
	}
	defer rows.Close()

	var out []models.Word
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(&w.ID, &w.Text, &w.Normalized, &w.Gematria, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("all scan: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
