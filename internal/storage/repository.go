package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kaganyildiz/laprop/internal/catalog"
)

// DedupeKey derives the stable identity of a listing. Listings with a
// URL are identified by it; the rest fall back to their normalized
// attribute tuple, so the same laptop scraped twice without a URL
// still collapses into one row.
func DedupeKey(c *catalog.Candidate) string {
	if c.URL != "" {
		return fmt.Sprintf("%s||url||%s", c.Source, c.URL)
	}
	cpu := ""
	if c.CPU != nil {
		cpu = strings.ToLower(*c.CPU)
	}
	return fmt.Sprintf("%s||fb||%s|%d|%s|%s|%d|%d|%.1f",
		c.Source,
		strings.ToLower(strings.TrimSpace(c.Name)),
		c.PriceValue(),
		cpu,
		strings.ToLower(c.GPU),
		intValue(c.RAMGB),
		intValue(c.StorageGB),
		floatValue(c.ScreenIn),
	)
}

// SaveCandidates inserts candidates that are not already stored and
// returns how many rows were new. Existing dedupe keys are left
// untouched, so the first scrape of a listing wins.
func (db *DB) SaveCandidates(ctx context.Context, cands []*catalog.Candidate, scrapedAt time.Time) (int, error) {
	inserted := 0
	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT OR IGNORE INTO laptops (
				id, dedupe_key, name, brand, price, ram_gb, storage_gb,
				screen_in, cpu, gpu, cpu_score, gpu_score, os, source,
				url, warnings, scraped_at, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		now := time.Now()
		for _, c := range cands {
			id := c.ID
			if id == "" {
				id = uuid.New().String()
			}
			res, err := stmt.ExecContext(ctx,
				id, DedupeKey(c), c.Name, c.Brand,
				nullInt(c.Price), nullInt(c.RAMGB), nullInt(c.StorageGB),
				nullFloat(c.ScreenIn), nullString(c.CPU), c.GPU,
				c.CPUScore, c.GPUScore, c.OS.String(), c.Source,
				nullStr(c.URL), nullStr(strings.Join(c.Warnings, "\n")),
				scrapedAt, now,
			)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			inserted += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save candidates: %w", err)
	}
	return inserted, nil
}

// ListCandidates returns every stored candidate in insertion order.
func (db *DB) ListCandidates(ctx context.Context) ([]*catalog.Candidate, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, brand, price, ram_gb, storage_gb, screen_in,
		       cpu, gpu, cpu_score, gpu_score, os, source, url, warnings
		FROM laptops ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var cands []*catalog.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		cands = append(cands, c)
	}
	return cands, rows.Err()
}

// CountBySource returns per-retailer row counts.
func (db *DB) CountBySource(ctx context.Context) (map[string]int, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT source, COUNT(*) FROM laptops GROUP BY source
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var source string
		var n int
		if err := rows.Scan(&source, &n); err != nil {
			return nil, err
		}
		counts[source] = n
	}
	return counts, rows.Err()
}

// DeleteSource removes every row ingested from one retailer feed and
// returns how many were deleted.
func (db *DB) DeleteSource(ctx context.Context, source string) (int, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM laptops WHERE source = ?`, source)
	if err != nil {
		return 0, fmt.Errorf("failed to delete source %q: %w", source, err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func scanCandidate(rows *sql.Rows) (*catalog.Candidate, error) {
	c := &catalog.Candidate{}
	var price, ram, ssd sql.NullInt64
	var screen sql.NullFloat64
	var cpu, url, warnings sql.NullString
	var osName string

	err := rows.Scan(
		&c.ID, &c.Name, &c.Brand, &price, &ram, &ssd, &screen,
		&cpu, &c.GPU, &c.CPUScore, &c.GPUScore, &osName, &c.Source,
		&url, &warnings,
	)
	if err != nil {
		return nil, err
	}

	c.Price = intPtr(price)
	c.RAMGB = intPtr(ram)
	c.StorageGB = intPtr(ssd)
	if screen.Valid {
		c.ScreenIn = &screen.Float64
	}
	if cpu.Valid {
		c.CPU = &cpu.String
	}
	c.URL = url.String
	if warnings.Valid && warnings.String != "" {
		c.Warnings = strings.Split(warnings.String, "\n")
	}

	hint, err := catalog.ParseOSHint(osName)
	if err != nil {
		return nil, fmt.Errorf("row %s: %w", c.ID, err)
	}
	c.OS = hint
	return c, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func intValue(v *int) int {
	if v == nil {
		return -1
	}
	return *v
}

func floatValue(v *float64) float64 {
	if v == nil {
		return -1
	}
	return *v
}
