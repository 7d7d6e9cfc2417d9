package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kaganyildiz/laprop/internal/config"
	"github.com/kaganyildiz/laprop/internal/storage"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and database access",
	RunE:  runConfigCheck,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCheckCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "laprop")
	dataDir := filepath.Join(home, ".local", "share", "laprop")

	// Create directories
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'laprop config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Point [data].files at your scraper CSV exports")
	fmt.Println("  2. Run 'laprop ingest' to build the catalog")
	fmt.Println("  3. Run 'laprop recommend --min-budget ... --max-budget ...'")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'laprop config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	fmt.Printf("Config: OK (%s)\n", configPath)

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.Health(context.Background()); err != nil {
		return fmt.Errorf("database health check: %w", err)
	}
	fmt.Printf("Database: OK (%s)\n", cfg.Database.Path)
	return nil
}

const defaultConfig = `# laprop configuration
#
# Scoring and filter tables have built-in defaults and can be
# overridden under [tables]; see the README for the full list.

[database]
path = "~/.local/share/laprop/catalog.db"

[data]
# Scraper CSV exports merged into the catalog on ingest.
files = [
    "amazon_laptops.csv",
    "vatan_laptops.csv",
    "incehesap_laptops.csv",
]

[recommend]
top_n = 5
# Score gap within which two candidates count as interchangeable
# when diversifying brands in the top slots.
diversity_tolerance = 5.0
`
