package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/Masterminds/squirrel"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// sequenceCounter hands out the global event sequence. It lives outside
// ent because ent has no atomic counter; RETURNING makes the increment
// atomic in the database and the mutex serializes callers in-process.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	query, args, err := sqlBuilder.
		Insert("global_sequence").
		Options("OR IGNORE").
		Columns("id", "next_val").
		Values(1, 1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sequence seed: %w", err)
	}
	if _, err := db.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number and advances the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	query, args, err := sqlBuilder.
		Update("global_sequence").
		Set("next_val", squirrel.Expr("next_val + 1")).
		Where(squirrel.Eq{"id": 1}).
		Suffix("RETURNING next_val - 1").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sequence update: %w", err)
	}

	var seq int64
	if err := sc.db.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
