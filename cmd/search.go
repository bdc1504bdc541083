package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marquee-app/marquee/catalog"
	"github.com/marquee-app/marquee/filter"
)

var (
	searchPages    int
	searchCategory string
	searchSort     string
	searchFilter   string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for titles across all three streams",
	Long: `Search all three catalog streams with a case-insensitive title match,
merge and deduplicate the results. An optional expr filter narrows the
merged sequence further, e.g.:

  marquee search dark --filter 'Category == "Movies"'
  marquee search --filter 'hasPrefix(ID, "upcoming_")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchPages, "pages", 1, "number of pages to load per stream")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "only show titles in this category")
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", "alphabetical", "sort order (default/alphabetical)")
	searchCmd.Flags().StringVarP(&searchFilter, "filter", "f", "", "expr filter expression")
}

func runSearch(cmd *cobra.Command, args []string) error {
	var query string
	if len(args) > 0 {
		query = args[0]
	}

	// Compile the filter up front so a bad expression fails before any fetch
	var f *filter.Filter
	if searchFilter != "" {
		var err error
		f, err = filter.Compile(searchFilter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	ctx := context.Background()
	if err := orchestrator.RefreshAll(ctx); err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}
	for i := 1; i < searchPages; i++ {
		if err := orchestrator.LoadMoreAll(ctx); err != nil {
			return fmt.Errorf("failed to load page %d: %w", i+1, err)
		}
	}

	results := orchestrator.Search(query, searchCategory, catalog.Order(searchSort))
	if f != nil {
		results = filter.Apply(f, results)
	}

	if len(results) == 0 {
		fmt.Println("No titles found matching the search criteria.")
		return nil
	}

	fmt.Printf("\nFound %d titles:\n", len(results))
	fmt.Println(strings.Repeat("-", 80))
	for _, m := range results {
		fmt.Printf("• %s [%s] (%s)\n", m.Title, m.Category, m.ID)
	}

	return nil
}
