package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/api"
	"github.com/spf13/cobra"
)

func init() {
	searchCmd.Flags().StringVar(&searchCollection, "collection", "", "Search only this collection")
	searchCmd.Flags().IntVar(&searchTopK, "top-k", 0, "Maximum results (0 = server default)")
	searchCmd.Flags().Float64Var(&searchMinScore, "min-score", 0, "Similarity floor, 0-1 or a percentage up to 100")
	searchCmd.Flags().StringVar(&searchFilters, "filters", "", "JSON filter on document fields")
	rootCmd.AddCommand(searchCmd)
}

var (
	searchCollection string
	searchTopK       int
	searchMinScore   float64
	searchFilters    string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Semantic search across stored data",
	Long: `Semantic search across stored data.

Results are ranked by vector similarity, best first. Scores run from
0 to 1; --min-score also accepts a percentage (70 means 0.7).

Example:
  shov search "coffee orders from last week"
  shov search espresso --collection products --top-k 5 --min-score 70`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	params := api.SearchParams{Collection: searchCollection, TopK: searchTopK}
	if cmd.Flags().Changed("min-score") {
		normalized, err := api.NormalizeMinScore(searchMinScore)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		params.MinScore = normalized
	}
	if searchFilters != "" {
		params.Filters = mustParseJSON("--filters", searchFilters)
	}
	client := mustClient()

	stop := startSpinner("Searching...")
	resp, err := client.Search(cmd.Context(), args[0], params)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	if len(resp.Results) == 0 {
		fmt.Println("No results.")
		return nil
	}
	for i, r := range resp.Results {
		name := r.ID
		if r.Key != "" {
			name = r.Key
		}
		fmt.Printf("%d. [%.2f] %s\n", i+1, r.Score, color.CyanString(name))
		fmt.Printf("   %s\n", valueSnippet(r.Value))
	}
	return nil
}
