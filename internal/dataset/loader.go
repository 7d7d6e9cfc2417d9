// Package dataset reads scraped retailer CSV exports into raw
// listings. The exports are messy: mixed encodings, a BOM on some
// headers, semicolon delimiters on others, and the occasional
// malformed row. The loader absorbs all of that and hands clean rows
// to the catalog cleaner.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/kaganyildiz/laprop/internal/catalog"
	"github.com/kaganyildiz/laprop/internal/logging"
)

// Column aliases seen across the retailer exports, keyed by the
// canonical field they map to.
var columnAliases = map[string][]string{
	"name":   {"name", "title", "product_name"},
	"price":  {"price", "price_try", "fiyat"},
	"ram":    {"ram", "ram_gb", "memory"},
	"ssd":    {"storage", "ssd", "ssd_gb", "disk"},
	"screen": {"screen_size", "screen", "display"},
	"os":     {"os", "operating_system"},
	"url":    {"url", "link"},
}

// Loader reads and merges retailer CSV exports.
type Loader struct {
	log *logging.Logger
}

// NewLoader builds a CSV loader.
func NewLoader(log *logging.Logger) *Loader {
	return &Loader{log: log}
}

// LoadAll reads every existing file in paths and merges their rows.
// Missing or unreadable files are skipped with a warning; it is an
// error only when no file yields any rows.
func (l *Loader) LoadAll(paths []string) ([]catalog.RawListing, error) {
	var all []catalog.RawListing
	loaded := 0
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			l.log.Warn("%s: not found, skipping", filepath.Base(path))
			continue
		}
		rows, err := l.LoadFile(path)
		if err != nil {
			l.log.Warn("%s: %v", filepath.Base(path), err)
			continue
		}
		l.log.Info("%s: %d listings loaded", filepath.Base(path), len(rows))
		all = append(all, rows...)
		loaded++
	}
	if loaded == 0 {
		return nil, errors.New("no data files could be loaded; run the scrapers first")
	}
	return all, nil
}

// LoadFile reads one CSV export. The delimiter is sniffed from the
// header line and malformed rows are skipped rather than failing the
// whole file.
func (l *Loader) LoadFile(path string) ([]catalog.RawListing, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := decode(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := mapColumns(header)
	if _, ok := cols.primary["name"]; !ok {
		return nil, fmt.Errorf("no name column (columns: %s)", strings.Join(header, ", "))
	}
	if _, ok := cols.primary["price"]; !ok {
		return nil, fmt.Errorf("no price column (columns: %s)", strings.Join(header, ", "))
	}

	source := sourceName(path)
	var rows []catalog.RawListing
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(record) < len(header) {
			skipped++
			continue
		}
		rows = append(rows, catalog.RawListing{
			Name:       field(record, cols, "name"),
			Price:      field(record, cols, "price"),
			RAM:        field(record, cols, "ram"),
			Storage:    field(record, cols, "ssd"),
			ScreenSize: field(record, cols, "screen"),
			OS:         field(record, cols, "os"),
			URL:        field(record, cols, "url"),
			Source:     source,
		})
	}
	if skipped > 0 {
		l.log.Warn("%s: %d malformed rows skipped", filepath.Base(path), skipped)
	}
	return rows, nil
}

// decode strips a UTF-8 BOM and falls back to Windows-1254 for files
// the Turkish retailers exported in a legacy encoding.
func decode(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.Windows1254.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode file: %w", err)
	}
	return string(decoded), nil
}

// sniffDelimiter picks semicolon when the header line carries more of
// them than commas.
func sniffDelimiter(text string) rune {
	line, _, _ := strings.Cut(text, "\n")
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

// columnIndex maps canonical fields to header positions. A field can
// appear twice in an export (a clean header plus a BOM'd duplicate);
// the duplicate becomes a per-row fallback used when the primary cell
// is empty.
type columnIndex struct {
	primary  map[string]int
	fallback map[string]int
}

// mapColumns resolves header names to canonical field indices. Headers
// are matched case-insensitively with BOM and surrounding space
// stripped. When a field matches twice, the BOM-free header wins the
// primary slot and the other becomes the fallback.
func mapColumns(header []string) columnIndex {
	cols := columnIndex{
		primary:  make(map[string]int),
		fallback: make(map[string]int),
	}
	for i, h := range header {
		hadBOM := strings.Contains(h, "\uFEFF")
		cleaned := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(h, "\uFEFF", "")))
		for field, aliases := range columnAliases {
			if !matchesAlias(cleaned, aliases) {
				continue
			}
			prev, taken := cols.primary[field]
			switch {
			case !taken:
				cols.primary[field] = i
			case hadBOM:
				cols.fallback[field] = i
			default:
				// Earlier match was the BOM'd duplicate; demote it.
				cols.primary[field] = i
				cols.fallback[field] = prev
			}
		}
	}
	return cols
}

func matchesAlias(cleaned string, aliases []string) bool {
	for _, alias := range aliases {
		if cleaned == alias {
			return true
		}
	}
	return false
}

func field(record []string, cols columnIndex, name string) string {
	v := cell(record, cols.primary, name)
	if v == "" {
		v = cell(record, cols.fallback, name)
	}
	return v
}

func cell(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// sourceName derives the retailer name from the export file name:
// "amazon_laptops.csv" becomes "amazon".
func sourceName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if head, _, ok := strings.Cut(base, "_"); ok {
		return head
	}
	return base
}
