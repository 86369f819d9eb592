package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/search"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/store"
)

var (
	searchLimit     int
	searchCategory  string
	searchFuzzy     int
	searchHighlight bool
	searchJSON      bool
)

// searchCmd runs a full-text query over the bundle.
var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search the bundle documents",
	Long: `Search the bundle with full-text ranking.

Examples:
  agentskill search post prompt summary
  agentskill search --category troubleshooting "basic auth"
  agentskill search --fuzzy 1 swiag
  agentskill search --json transfer | jq '.hits'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", search.DefaultLimit, "Maximum number of results")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "Filter by category")
	searchCmd.Flags().IntVarP(&searchFuzzy, "fuzzy", "f", 0, "Fuzzy matching level (0-2)")
	searchCmd.Flags().BoolVar(&searchHighlight, "highlight", false, "Include highlighted fragments")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output results as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	tk, err := loadToolkit()
	if err != nil {
		return err
	}

	index, err := openSearchIndex(cmd.Context(), tk)
	if err != nil {
		return err
	}
	defer index.Close()

	result, err := index.Search(cmd.Context(), &search.Request{
		Query:             strings.Join(args, " "),
		Limit:             searchLimit,
		Category:          store.Category(searchCategory),
		FuzzyLevel:        searchFuzzy,
		IncludeHighlights: searchHighlight,
	})
	if err != nil {
		return err
	}

	if searchJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	if len(result.Hits) == 0 {
		fmt.Println("no results")
		return nil
	}

	for _, hit := range result.Hits {
		fmt.Printf("%6.3f  %-16s %s\n", hit.Score, hit.Category, hit.Name)
		for _, fragment := range hit.Fragments {
			fmt.Printf("        %s\n", fragment)
		}
	}
	fmt.Printf("\n%d of %d hits in %s\n", len(result.Hits), result.TotalHits, result.Took)
	return nil
}

// openSearchIndex builds the index from the current store, on disk when the
// config names a path and in memory otherwise.
func openSearchIndex(ctx context.Context, tk *toolkit) (*search.Index, error) {
	var (
		index *search.Index
		err   error
	)
	if path := tk.config.Index.Path; path != "" {
		index, err = search.OpenIndex(path)
	} else {
		index, err = search.NewMemoryIndex()
	}
	if err != nil {
		return nil, err
	}

	if err := index.IndexStore(ctx, tk.store); err != nil {
		index.Close()
		return nil, err
	}
	return index, nil
}
