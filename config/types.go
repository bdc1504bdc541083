package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds TMDB API connection details. The API key and bearer
// token are also read from the TMDB_API_KEY and TMDB_BEARER_TOKEN
// environment variables (an .env file in the working directory is honored).
type TMDBConfig struct {
	URL         string `mapstructure:"url"`
	APIKey      string `mapstructure:"api_key"`
	BearerToken string `mapstructure:"bearer_token"`
	Language    string `mapstructure:"language"`
}

// CatalogConfig contains pagination and refresh tuning
type CatalogConfig struct {
	MaxPage         int           `mapstructure:"max_page"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
