package postgresql

import (
	"context"

	"github.com/techdigi/hr-backoffice/internal/pkg/database"
	"github.com/techdigi/hr-backoffice/internal/pkg/docnumber"
)

type counterRepositoryImpl struct {
	db database.Pool
}

// NewCounterRepository hands out gap-free yearly sequences backed by a single
// upserted row per (prefix, year).
func NewCounterRepository(db database.Pool) docnumber.Sequencer {
	return &counterRepositoryImpl{db: db}
}

func (r *counterRepositoryImpl) Next(ctx context.Context, prefix string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO document_counters (prefix, year, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, year)
		DO UPDATE SET last_value = document_counters.last_value + 1
		RETURNING last_value
	`

	var next int
	if err := q.QueryRow(ctx, query, prefix, year).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}
