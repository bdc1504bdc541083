package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// detailCmd represents the detail command
var detailCmd = &cobra.Command{
	Use:   "detail <id>",
	Short: "Show the detail view for a single title",
	Long:  `Fetch and display the detail record for one title by its catalog id.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDetail,
}

func init() {
	rootCmd.AddCommand(detailCmd)
}

func runDetail(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := orchestrator.FetchDetail(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to fetch title %s: %w", args[0], err)
	}

	d, ok := movieStore.Detail()
	if !ok {
		return fmt.Errorf("no detail available for title %s", args[0])
	}

	fmt.Printf("\n%s (%s)\n", d.Title, d.Year)
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Rating:  %s\n", d.Rating)
	fmt.Printf("Genres:  %s\n", strings.Join(d.Genres, ", "))
	fmt.Printf("Poster:  %s\n", d.Image)
	fmt.Printf("\n%s\n", d.Description)

	return nil
}
