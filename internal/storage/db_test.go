package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/kaganyildiz/laprop/internal/catalog"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func ptrInt(v int) *int           { return &v }
func ptrFloat(v float64) *float64 { return &v }
func ptrString(v string) *string  { return &v }

func testCandidate(name, url string) *catalog.Candidate {
	return &catalog.Candidate{
		Name:      name,
		Brand:     "lenovo",
		Price:     ptrInt(42000),
		RAMGB:     ptrInt(16),
		StorageGB: ptrInt(512),
		ScreenIn:  ptrFloat(14.0),
		CPU:       ptrString("i7-1355U"),
		GPU:       "Integrated (generic)",
		CPUScore:  7.5,
		GPUScore:  3.0,
		OS:        catalog.OSWindows,
		Source:    "amazon",
		URL:       url,
		Warnings:  []string{"ram_over_128"},
	}
}

func TestOpenCreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='laptops'").Scan(&count)
	if err != nil {
		t.Fatalf("failed to query tables: %v", err)
	}
	if count != 1 {
		t.Errorf("expected laptops table to exist")
	}

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("health check failed: %v", err)
	}
}

func TestSaveAndListRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	c := testCandidate("Lenovo ThinkPad E14", "https://example.com/e14")
	inserted, err := db.SaveCandidates(ctx, []*catalog.Candidate{c}, time.Now())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if inserted != 1 {
		t.Fatalf("expected 1 insert, got %d", inserted)
	}

	got, err := db.ListCandidates(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}

	stored := got[0]
	if stored.Name != c.Name || stored.Brand != c.Brand {
		t.Errorf("name/brand mismatch: %q/%q", stored.Name, stored.Brand)
	}
	if stored.Price == nil || *stored.Price != 42000 {
		t.Errorf("price mismatch: %v", stored.Price)
	}
	if stored.CPU == nil || *stored.CPU != "i7-1355U" {
		t.Errorf("cpu mismatch: %v", stored.CPU)
	}
	if stored.OS != catalog.OSWindows {
		t.Errorf("os mismatch: %v", stored.OS)
	}
	if len(stored.Warnings) != 1 || stored.Warnings[0] != "ram_over_128" {
		t.Errorf("warnings mismatch: %v", stored.Warnings)
	}
	if stored.ID == "" {
		t.Error("expected generated id")
	}
}

func TestSaveNilAttributesStayNil(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	c := &catalog.Candidate{
		Name:     "Mystery Laptop",
		Brand:    "other",
		GPU:      "GPU (Unlabeled)",
		CPUScore: 5.0,
		GPUScore: 2.0,
		Source:   "vatan",
	}
	if _, err := db.SaveCandidates(ctx, []*catalog.Candidate{c}, time.Now()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := db.ListCandidates(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	stored := got[0]
	if stored.Price != nil || stored.RAMGB != nil || stored.StorageGB != nil ||
		stored.ScreenIn != nil || stored.CPU != nil {
		t.Errorf("expected nil attributes, got %+v", stored)
	}
	if stored.OS != catalog.OSFreeDOS {
		t.Errorf("expected freedos default, got %v", stored.OS)
	}
}

func TestSaveDeduplicatesByURL(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first := testCandidate("Lenovo ThinkPad E14", "https://example.com/e14")
	again := testCandidate("Lenovo ThinkPad E14 Gen 2", "https://example.com/e14")

	inserted, err := db.SaveCandidates(ctx, []*catalog.Candidate{first, again}, time.Now())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if inserted != 1 {
		t.Errorf("expected url dedupe to keep 1 row, got %d", inserted)
	}

	got, _ := db.ListCandidates(ctx)
	if len(got) != 1 || got[0].Name != "Lenovo ThinkPad E14" {
		t.Errorf("expected first scrape to win, got %v", got)
	}
}

func TestSaveDeduplicatesByAttributes(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first := testCandidate("Lenovo ThinkPad E14", "")
	same := testCandidate("  lenovo thinkpad e14 ", "")
	different := testCandidate("Lenovo ThinkPad E14", "")
	different.Price = ptrInt(45000)

	inserted, err := db.SaveCandidates(ctx, []*catalog.Candidate{first, same, different}, time.Now())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if inserted != 2 {
		t.Errorf("expected 2 rows after attribute dedupe, got %d", inserted)
	}
}

func TestDedupeKeyDistinguishesSources(t *testing.T) {
	a := testCandidate("Laptop", "https://example.com/x")
	b := testCandidate("Laptop", "https://example.com/x")
	b.Source = "vatan"

	if DedupeKey(a) == DedupeKey(b) {
		t.Error("expected different sources to produce different keys")
	}
}

func TestCountBySourceAndDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	amazon := testCandidate("Laptop A", "https://example.com/a")
	vatan := testCandidate("Laptop B", "https://example.com/b")
	vatan.Source = "vatan"

	if _, err := db.SaveCandidates(ctx, []*catalog.Candidate{amazon, vatan}, time.Now()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	counts, err := db.CountBySource(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if counts["amazon"] != 1 || counts["vatan"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}

	deleted, err := db.DeleteSource(ctx, "vatan")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deleted, got %d", deleted)
	}

	counts, _ = db.CountBySource(ctx)
	if counts["vatan"] != 0 {
		t.Errorf("expected vatan rows gone, got %v", counts)
	}
}
