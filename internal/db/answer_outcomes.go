package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"helphood/internal/models"
)

// IncrementAnswerOutcome upserts the served-answer count for a category and source.
func (d *DB) IncrementAnswerOutcome(ctx context.Context, category, source string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO answer_outcomes (category, source, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (category, source) DO UPDATE
		SET count = answer_outcomes.count + 1, last_seen_at = NOW()
	`, category, source)
	return err
}

// GetAnswerOutcome returns the counter row for a category and source.
func (d *DB) GetAnswerOutcome(ctx context.Context, category, source string) (*models.AnswerOutcome, error) {
	var o models.AnswerOutcome
	err := d.Pool.QueryRow(ctx, `
		SELECT category, source, count, last_seen_at
		FROM answer_outcomes
		WHERE category = $1 AND source = $2
	`, category, source).Scan(&o.Category, &o.Source, &o.Count, &o.LastSeenAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOutcomeNotFound
		}
		return nil, err
	}
	return &o, nil
}

// GetAllAnswerOutcomes returns all counter rows for metrics export.
func (d *DB) GetAllAnswerOutcomes(ctx context.Context) ([]models.AnswerOutcome, error) {
	rows, err := d.Pool.Query(ctx, `SELECT category, source, count, last_seen_at FROM answer_outcomes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []models.AnswerOutcome
	for rows.Next() {
		var o models.AnswerOutcome
		if err := rows.Scan(&o.Category, &o.Source, &o.Count, &o.LastSeenAt); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}
