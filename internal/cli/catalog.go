package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaganyildiz/laprop/internal/catalog"
	"github.com/kaganyildiz/laprop/internal/config"
	"github.com/kaganyildiz/laprop/internal/output"
	"github.com/kaganyildiz/laprop/internal/storage"
)

var (
	listSource string
	listBrand  string
	listLimit  int
)

// catalogCmd groups catalog inspection commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the stored catalog",
}

// catalogListCmd lists stored candidates
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored laptop listings",
	Long: `Lists the cleaned listings currently stored in the catalog.

Examples:
  laprop catalog list
  laprop catalog list --source amazon --limit 20
  laprop catalog list --brand lenovo -o json`,
	RunE: runCatalogList,
}

// catalogStatsCmd shows per-source listing counts
var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show listing counts per source",
	RunE:  runCatalogStats,
}

func init() {
	catalogListCmd.Flags().StringVar(&listSource, "source", "", "filter by source")
	catalogListCmd.Flags().StringVar(&listBrand, "brand", "", "filter by brand")
	catalogListCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of listings to show")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	cands, err := db.ListCandidates(context.Background())
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	cands = filterCandidates(cands)
	if listLimit > 0 && len(cands) > listLimit {
		cands = cands[:listLimit]
	}
	return output.Output(outputFmt, cands)
}

func runCatalogStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	counts, err := db.CountBySource(context.Background())
	if err != nil {
		return fmt.Errorf("counting sources: %w", err)
	}
	return output.Output(outputFmt, counts)
}

func filterCandidates(cands []*catalog.Candidate) []*catalog.Candidate {
	if listSource == "" && listBrand == "" {
		return cands
	}
	var kept []*catalog.Candidate
	for _, c := range cands {
		if listSource != "" && !strings.EqualFold(c.Source, listSource) {
			continue
		}
		if listBrand != "" && !strings.EqualFold(c.Brand, listBrand) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
