package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marquee-app/marquee/catalog"
)

var (
	browsePages    int
	browseCategory string
	browseSort     string
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the popular, upcoming and now playing streams",
	Long: `Fetch the first pages of all three catalog streams and print them as
sections. Use --pages to paginate deeper into every stream.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().IntVar(&browsePages, "pages", 1, "number of pages to load per stream")
	browseCmd.Flags().StringVarP(&browseCategory, "category", "c", "", "only show titles in this category")
	browseCmd.Flags().StringVarP(&browseSort, "sort", "s", "default", "sort order (default/alphabetical)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := orchestrator.RefreshAll(ctx); err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}
	for i := 1; i < browsePages; i++ {
		if err := orchestrator.LoadMoreAll(ctx); err != nil {
			return fmt.Errorf("failed to load page %d: %w", i+1, err)
		}
	}

	order := catalog.Order(browseSort)
	for _, stream := range catalog.AllStreams() {
		movies := orchestrator.Project(stream, "", browseCategory, order)

		fmt.Printf("\n%s (%d):\n", sectionTitle(stream), len(movies))
		fmt.Println(strings.Repeat("-", 80))
		for _, m := range movies {
			fmt.Printf("• %s [%s]\n", m.Title, m.Category)
		}
	}

	return nil
}

func sectionTitle(stream catalog.Stream) string {
	switch stream {
	case catalog.StreamPopular:
		return "Popular"
	case catalog.StreamUpcoming:
		return "Upcoming"
	case catalog.StreamNowPlaying:
		return "Now Playing"
	default:
		return string(stream)
	}
}
