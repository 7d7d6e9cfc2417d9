package config

// Config represents the application configuration.
type Config struct {
	Database  DatabaseConfig  `toml:"database"`
	Data      DataConfig      `toml:"data"`
	Recommend RecommendConfig `toml:"recommend"`
	Tables    Tables          `toml:"tables"`
}

// DatabaseConfig contains catalog database settings.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// DataConfig lists the scraped CSV files merged into the catalog.
type DataConfig struct {
	Files []string `toml:"files"`
}

// RecommendConfig contains recommendation output settings.
type RecommendConfig struct {
	TopN int `toml:"top_n"`
	// DiversityTolerance is the score gap (in points) within which two
	// candidates count as interchangeable for brand diversity.
	DiversityTolerance float64 `toml:"diversity_tolerance"`
}

// Default returns a Config with sensible defaults and the built-in
// scoring tables.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/laprop/catalog.db",
		},
		Data: DataConfig{
			Files: []string{
				"amazon_laptops.csv",
				"vatan_laptops.csv",
				"incehesap_laptops.csv",
			},
		},
		Recommend: RecommendConfig{
			TopN:               5,
			DiversityTolerance: 5.0,
		},
		Tables: DefaultTables(),
	}
}
