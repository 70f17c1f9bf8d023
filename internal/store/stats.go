package store

import (
	"context"
	"fmt"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath         string      `json:"db_path"`
	DBSizeBytes    int64       `json:"db_size_bytes"`
	TotalPackages  int         `json:"total_packages"`
	ActivePackages int         `json:"active_packages"`
	Types          []TypeStats `json:"types"`
}

// TypeStats holds per-workout-type counts of live packages.
type TypeStats struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM packages`).Scan(&st.TotalPackages); err != nil {
		return st, fmt.Errorf("count packages: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM packages WHERE deleted_at IS NULL`).Scan(&st.ActivePackages); err != nil {
		return st, fmt.Errorf("count active packages: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT type, COUNT(*) AS cnt
		FROM packages WHERE deleted_at IS NULL
		GROUP BY type ORDER BY cnt DESC, type`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ts TypeStats
		if err := rows.Scan(&ts.Type, &ts.Count); err != nil {
			return st, fmt.Errorf("scan type stats: %w", err)
		}
		st.Types = append(st.Types, ts)
	}

	return st, rows.Err()
}
