package leaderboard

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresBackend stores records in a shared PostgreSQL database.
type PostgresBackend struct {
	db *sql.DB
}

// OpenPostgres connects to dsn and creates the schema if needed.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresBackend, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("leaderboard: cannot connect to database: %w", err)
	}

	b := &PostgresBackend{db: db}
	if err := b.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("leaderboard: cannot initialize schema: %w", err)
	}
	return b, nil
}

func (b *PostgresBackend) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS leaderboard (
		id SERIAL PRIMARY KEY,
		game_id TEXT NOT NULL,
		name TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_leaderboard_top ON leaderboard(game_id, score DESC);
	`
	_, err := b.db.ExecContext(ctx, schema)
	return err
}

// Submit implements Backend.
func (b *PostgresBackend) Submit(ctx context.Context, rec Record) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO leaderboard (game_id, name, score, created_at) VALUES ($1, $2, $3, $4)`,
		rec.Table, rec.Name, rec.Score, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("leaderboard: cannot submit score: %w", err)
	}
	return nil
}

// Top implements Backend.
func (b *PostgresBackend) Top(ctx context.Context, table string, n int) ([]Record, error) {
	if n <= 0 {
		n = TopN
	}

	rows, err := b.db.QueryContext(ctx,
		`SELECT name, score, created_at
		 FROM leaderboard
		 WHERE game_id = $1
		 ORDER BY score DESC, created_at ASC
		 LIMIT $2`,
		table, n,
	)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot query scores: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		rec := Record{Table: table}
		if err := rows.Scan(&rec.Name, &rec.Score, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("leaderboard: cannot scan row: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard: row iteration error: %w", err)
	}
	return recs, nil
}

// Rank implements Backend.
func (b *PostgresBackend) Rank(ctx context.Context, table string, score int) (int, error) {
	var above int
	err := b.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leaderboard WHERE game_id = $1 AND score > $2`,
		table, score,
	).Scan(&above)
	if err != nil {
		return 0, fmt.Errorf("leaderboard: cannot rank score: %w", err)
	}
	return above + 1, nil
}

// Close closes the database connection.
func (b *PostgresBackend) Close() error {
	return b.db.Close()
}
