package keywords

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// SetupSchema creates the catalog table if it does not already exist.
// It is safe to call on every start.
func SetupSchema(db *sql.DB) error {
	const schemaTerms = `
CREATE TABLE IF NOT EXISTS keyword_terms (
    term_id INTEGER PRIMARY KEY,
    category TEXT NOT NULL,
    term TEXT NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    UNIQUE (category, term)
);
`
	const indexCategory = `CREATE INDEX IF NOT EXISTS idx_keyword_terms_category ON keyword_terms (category, position);`

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaTerms); err != nil {
		return fmt.Errorf("failed to create keyword_terms table: %w", err)
	}
	if _, err = tx.Exec(indexCategory); err != nil {
		return fmt.Errorf("failed to create keyword_terms index: %w", err)
	}
	return tx.Commit()
}

// Store reads and seeds keyword pools in a SQLite catalog.
// The catalog schema must be set up with SetupSchema beforehand.
type Store struct {
	db         *sql.DB
	logger     *slog.Logger
	stmtLoad   *sql.Stmt
	stmtCounts *sql.Stmt
}

// NewStore prepares the catalog statements against db.
func NewStore(db *sql.DB, logger *slog.Logger) (*Store, error) {
	stmtLoad, err := db.Prepare(`SELECT category, term FROM keyword_terms ORDER BY category, position, term_id;`)
	if err != nil {
		return nil, err
	}
	stmtCounts, err := db.Prepare(`SELECT category, COUNT(*) FROM keyword_terms GROUP BY category;`)
	if err != nil {
		_ = stmtLoad.Close()
		return nil, err
	}
	return &Store{
		db:         db,
		logger:     logger,
		stmtLoad:   stmtLoad,
		stmtCounts: stmtCounts,
	}, nil
}

// Close releases the prepared statements. The database itself is left open.
func (s *Store) Close() {
	_ = s.stmtLoad.Close()
	_ = s.stmtCounts.Close()
}

// Load reads every pool from the catalog. Terms in unknown categories are
// skipped with a warning.
func (s *Store) Load(ctx context.Context) (Pools, error) {
	rows, err := s.stmtLoad.QueryContext(ctx)
	if err != nil {
		return Pools{}, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var pools Pools
	for rows.Next() {
		var category, term string
		if err = rows.Scan(&category, &term); err != nil {
			return Pools{}, err
		}
		switch Category(category) {
		case CategoryJobs:
			pools.Jobs = append(pools.Jobs, term)
		case CategoryEducation:
			pools.Education = append(pools.Education, term)
		case CategoryMisc:
			pools.Misc = append(pools.Misc, term)
		default:
			s.logger.WarnContext(ctx, "Skipping term with unknown category", "category", category, "term", term)
		}
	}
	if err = rows.Err(); err != nil {
		return Pools{}, err
	}
	return pools, nil
}

// Counts returns the number of stored terms per category.
func (s *Store) Counts(ctx context.Context) (map[Category]int, error) {
	rows, err := s.stmtCounts.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	counts := make(map[Category]int)
	for rows.Next() {
		var category string
		var n int
		if err = rows.Scan(&category, &n); err != nil {
			return nil, err
		}
		counts[Category(category)] = n
	}
	return counts, rows.Err()
}

// Replace swaps the whole catalog for pools inside a single transaction.
// Pool order is kept through the position column.
func (s *Store) Replace(ctx context.Context, pools Pools) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.ExecContext(ctx, "DELETE FROM keyword_terms"); err != nil {
		return fmt.Errorf("failed to clear keyword catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO keyword_terms (category, term, position) VALUES (?, ?, ?);`)
	if err != nil {
		return err
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmt)

	total := 0
	for _, c := range Categories {
		for i, term := range pools.Get(c) {
			if _, err = stmt.ExecContext(ctx, string(c), term, i); err != nil {
				return fmt.Errorf("failed to insert %q into %q: %w", term, c, err)
			}
			total++
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Keyword catalog replaced", slog.Int("terms", total))
	return nil
}
