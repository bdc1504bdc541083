package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marquee-app/marquee/catalog"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the catalog cache warm with periodic refreshes",
	Long: `Fetch the first pages of every stream, then keep loading further pages
on the configured interval until interrupted. A tick is skipped while a
fetch is still in flight, so concurrent requests stay bounded.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := orchestrator.RefreshAll(ctx); err != nil {
		return fmt.Errorf("initial fetch failed: %w", err)
	}

	for _, stream := range catalog.AllStreams() {
		logger.Info().
			Str("stream", string(stream)).
			Int("titles", movieStore.Len(stream)).
			Msg("Stream primed")
	}

	refresher := catalog.NewRefresher(orchestrator, cfg.Catalog.RefreshInterval, logger)
	if err := refresher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
