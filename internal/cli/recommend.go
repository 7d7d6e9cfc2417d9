package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaganyildiz/laprop/internal/config"
	"github.com/kaganyildiz/laprop/internal/output"
	"github.com/kaganyildiz/laprop/internal/recommend"
	"github.com/kaganyildiz/laprop/internal/storage"
)

var (
	recMinBudget   int
	recMaxBudget   int
	recUsage       string
	recDevMode     string
	recGames       []string
	recMinGPUScore float64
	recDesignGPU   string
	recDesignRAM   int
	recMultitask   bool
	recScreenMax   float64
)

// recommendCmd ranks the stored catalog for a budget and usage profile
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend laptops for a budget and usage profile",
	Long: `Filters and scores the stored catalog against a budget range and a
usage profile, then prints the top recommendations with per-item
score breakdowns.

Examples:
  laprop recommend --min-budget 30000 --max-budget 60000 --usage gaming --games cyberpunk2077
  laprop recommend --min-budget 25000 --max-budget 45000 --usage dev --dev-mode web
  laprop recommend --min-budget 20000 --max-budget 40000 --usage portability --screen-max 14`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVar(&recMinBudget, "min-budget", 0, "minimum budget (required)")
	recommendCmd.Flags().IntVar(&recMaxBudget, "max-budget", 0, "maximum budget (required)")
	recommendCmd.Flags().StringVar(&recUsage, "usage", "productivity",
		"usage profile (gaming, portability, productivity, design, dev)")
	recommendCmd.Flags().StringVar(&recDevMode, "dev-mode", "general",
		"dev discipline (general, web, ml, mobile, gamedev)")
	recommendCmd.Flags().StringSliceVar(&recGames, "games", nil,
		"game titles that raise the gaming GPU threshold")
	recommendCmd.Flags().Float64Var(&recMinGPUScore, "min-gpu-score", 0,
		"override the gaming GPU threshold")
	recommendCmd.Flags().StringVar(&recDesignGPU, "design-gpu", "",
		"design GPU demand hint (high, mid, low)")
	recommendCmd.Flags().IntVar(&recDesignRAM, "design-ram", 0,
		"minimum RAM in GB for the design profile")
	recommendCmd.Flags().BoolVar(&recMultitask, "multitask", false,
		"weight CPU performance higher for heavy multitasking")
	recommendCmd.Flags().Float64Var(&recScreenMax, "screen-max", 0,
		"drop candidates with screens larger than this many inches")

	recommendCmd.MarkFlagRequired("min-budget")
	recommendCmd.MarkFlagRequired("max-budget")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	prefs, err := buildPreferences()
	if err != nil {
		return err
	}

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	cands, err := db.ListCandidates(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	if len(cands) == 0 {
		return errors.New("the catalog is empty; run 'laprop ingest' first")
	}
	log.Debug("Loaded %d candidates from the catalog", len(cands))

	engine := recommend.NewEngine(cfg, log)
	res, err := engine.Recommend(cands, prefs)
	if err != nil {
		var empty *recommend.EmptyResultError
		if errors.As(err, &empty) {
			fmt.Println(empty.Error())
			return nil
		}
		return err
	}

	return output.Output(outputFmt, res)
}

func buildPreferences() (*recommend.Preferences, error) {
	usage, err := recommend.ParseUsageKey(recUsage)
	if err != nil {
		return nil, err
	}
	devMode, err := recommend.ParseDevMode(recDevMode)
	if err != nil {
		return nil, err
	}

	prefs := &recommend.Preferences{
		MinBudget:      recMinBudget,
		MaxBudget:      recMaxBudget,
		Usage:          usage,
		DevMode:        devMode,
		GamingTitles:   recGames,
		MinGPUScore:    recMinGPUScore,
		DesignGPUHint:  recDesignGPU,
		DesignMinRAMGB: recDesignRAM,
		Multitask:      recMultitask,
	}
	if recScreenMax > 0 {
		prefs.ScreenMax = &recScreenMax
	}
	return prefs, nil
}
