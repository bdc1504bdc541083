package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/marquee-app/marquee/catalog"
	"github.com/marquee-app/marquee/config"
	"github.com/marquee-app/marquee/tmdb"
)

var (
	cfgFile      string
	cfg          *config.Config
	logger       zerolog.Logger
	tmdbClient   *tmdb.Client
	movieStore   *catalog.Store
	orchestrator *catalog.Orchestrator

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Browse popular, upcoming and now playing movies from TMDB",
	Long: `marquee is a CLI for browsing the TMDB movie catalog. It keeps a
paged, in-memory cache of three independently paginated streams (popular,
upcoming, now playing), supports searching and filtering across them, and
shows a detail view per title.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information for the application
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration, logger and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create TMDB client
	tmdbClient, err = tmdb.NewClient(cfg.TMDB.URL, cfg.TMDB.APIKey, cfg.TMDB.BearerToken, cfg.TMDB.Language, logger)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	movieStore = catalog.NewStore()
	orchestrator = catalog.NewOrchestrator(tmdbClient, movieStore, logger)
	orchestrator.SetMaxPage(cfg.Catalog.MaxPage)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only on a real terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to TMDB",
	Long:  `Test the connection to TMDB and display basic catalog information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to TMDB at %s...\n", cfg.TMDB.URL)

	// Connection is already tested during client creation
	fmt.Println("✓ Connection successful!")

	// Get some basic stats
	ctx := context.Background()
	popular, err := tmdbClient.GetPopular(ctx, 1)
	if err != nil {
		return fmt.Errorf("failed to get popular movies: %w", err)
	}

	fmt.Printf("\nCatalog statistics:\n")
	fmt.Printf("- Popular titles: %d across %d pages\n", popular.TotalResults, popular.TotalPages)
	fmt.Printf("- Page size: %d\n", len(popular.Results))
	fmt.Printf("- Pagination cap: %d pages\n", cfg.Catalog.MaxPage)

	return nil
}
