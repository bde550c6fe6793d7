package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

const outcomeSchema = "outcome_v1"

// OutcomeRow is one finished (or abandoned) self-play game.
//
// Status is "won", "lost" or "playing" when the game hit its turn cap.
// Obstacles holds the final board as parallel axial coordinate columns.
type OutcomeRow struct {
	GameID     string  `parquet:"game_id"`
	Variant    string  `parquet:"variant,dict"`
	Player     string  `parquet:"player,dict"`
	Depth      int32   `parquet:"depth"`
	Turns      int32   `parquet:"turns"`
	Status     string  `parquet:"status,dict"`
	Rejected   int32   `parquet:"rejected"`
	DurationMs int64   `parquet:"duration_ms"`
	ObstacleQ  []int32 `parquet:"obstacle_q"`
	ObstacleR  []int32 `parquet:"obstacle_r"`
	CatQ       int32   `parquet:"cat_q"`
	CatR       int32   `parquet:"cat_r"`
}

// WriteBatchParquetAtomic writes rows into outDir/tmp and then renames the
// file into outDir, so readers never see a partial batch.
func WriteBatchParquetAtomic(outDir string, rows []OutcomeRow) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	tmpDir := filepath.Join(outDir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return "", fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("batch_%d.parquet", time.Now().UnixNano())
	finalPath := filepath.Join(outDir, name)
	tmpPath := filepath.Join(tmpDir, name+".tmp")
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", outcomeSchema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("rename parquet: %w", err)
	}

	return finalPath, nil
}

// ReadOutcomes loads every row of one batch file.
func ReadOutcomes(path string) ([]OutcomeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}

	reader := parquet.NewGenericReader[OutcomeRow](pf)
	defer reader.Close()

	rows := make([]OutcomeRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	return rows[:n], nil
}

// ReadOutcomeDir loads every finished batch in dir, oldest first. The tmp
// subdirectory is skipped.
func ReadOutcomeDir(dir string) ([]OutcomeRow, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".parquet") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var out []OutcomeRow
	for _, name := range names {
		rows, err := ReadOutcomes(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	return out, nil
}

// VariantStats aggregates outcomes for one cat.
type VariantStats struct {
	Games int
	Won   int
	Lost  int
	Turns int
}

// WinRate is the share of games the player won.
func (s VariantStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Games)
}

// Add folds one outcome into the totals.
func (s *VariantStats) Add(r OutcomeRow) {
	s.Games++
	s.Turns += int(r.Turns)
	switch r.Status {
	case "won":
		s.Won++
	case "lost":
		s.Lost++
	}
}

// Summarize groups rows by variant.
func Summarize(rows []OutcomeRow) map[string]VariantStats {
	out := make(map[string]VariantStats)
	for _, r := range rows {
		s := out[r.Variant]
		s.Add(r)
		out[r.Variant] = s
	}
	return out
}
