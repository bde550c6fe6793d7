package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
)

// StatsRow is one cat's totals as returned by QueryStats.
type StatsRow struct {
	Variant string  `json:"variant"`
	Games   int64   `json:"games"`
	Won     int64   `json:"won"`
	Lost    int64   `json:"lost"`
	Turns   int64   `json:"turns"`
	WinRate float64 `json:"win_rate"`
}

// QueryStats aggregates every finished batch in dir with DuckDB, one row per
// variant ordered by id. An empty or missing dir yields no rows.
func QueryStats(ctx context.Context, dir string) ([]StatsRow, error) {
	glob := filepath.Join(dir, "*.parquet")
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	q := `SELECT
			variant,
			count(*)::BIGINT,
			(count(*) FILTER (WHERE status = 'won'))::BIGINT,
			(count(*) FILTER (WHERE status = 'lost'))::BIGINT,
			coalesce(sum(turns), 0)::BIGINT
		FROM read_parquet('` + escapeSQLString(glob) + `')
		GROUP BY variant
		ORDER BY variant`

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var out []StatsRow
	for rows.Next() {
		var s StatsRow
		if err := rows.Scan(&s.Variant, &s.Games, &s.Won, &s.Lost, &s.Turns); err != nil {
			return nil, err
		}
		if s.Games > 0 {
			s.WinRate = float64(s.Won) / float64(s.Games)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
