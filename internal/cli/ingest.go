package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kaganyildiz/laprop/internal/catalog"
	"github.com/kaganyildiz/laprop/internal/config"
	"github.com/kaganyildiz/laprop/internal/dataset"
	"github.com/kaganyildiz/laprop/internal/output"
	"github.com/kaganyildiz/laprop/internal/storage"
)

var (
	ingestFiles   []string
	ingestReplace bool
)

// ingestCmd loads scraped CSV exports into the catalog
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load scraped CSV exports into the catalog",
	Long: `Reads scraper CSV exports, cleans and enriches each listing with
extracted hardware attributes, and stores the results. Listings
already in the catalog are skipped, so repeat ingests are safe.

Examples:
  laprop ingest
  laprop ingest --files data/amazon_laptops.csv --replace`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringSliceVar(&ingestFiles, "files", nil,
		"CSV files to ingest (default: the configured data files)")
	ingestCmd.Flags().BoolVar(&ingestReplace, "replace", false,
		"delete stored listings from the same sources before inserting")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	files := ingestFiles
	if len(files) == 0 {
		files = cfg.Data.Files
	}

	loader := dataset.NewLoader(log)
	rows, err := loader.LoadAll(files)
	if err != nil {
		return err
	}
	log.Info("Loaded %d raw listings from %d file(s)", len(rows), len(files))

	cleaner := catalog.NewCleaner(&cfg.Tables, catalog.DefaultExtractorParams(), log)
	cleaned := cleaner.CleanAll(rows)
	if len(cleaned) == 0 {
		return fmt.Errorf("no usable listings after cleaning %d rows", len(rows))
	}

	cands := make([]*catalog.Candidate, len(cleaned))
	for i := range cleaned {
		cands[i] = &cleaned[i]
	}

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if ingestReplace {
		for _, source := range distinctSources(cands) {
			deleted, err := db.DeleteSource(ctx, source)
			if err != nil {
				return fmt.Errorf("clearing source %s: %w", source, err)
			}
			if deleted > 0 {
				log.Info("Removed %d stored listings from %s", deleted, source)
			}
		}
	}

	inserted, err := db.SaveCandidates(ctx, cands, time.Now())
	if err != nil {
		return fmt.Errorf("saving candidates: %w", err)
	}
	log.Info("Stored %d new listings (%d already known)", inserted, len(cands)-inserted)

	counts, err := db.CountBySource(ctx)
	if err != nil {
		return fmt.Errorf("counting sources: %w", err)
	}
	return output.Output(outputFmt, counts)
}

func distinctSources(cands []*catalog.Candidate) []string {
	seen := make(map[string]bool)
	var sources []string
	for _, c := range cands {
		if c.Source == "" || seen[c.Source] {
			continue
		}
		seen[c.Source] = true
		sources = append(sources, c.Source)
	}
	return sources
}
