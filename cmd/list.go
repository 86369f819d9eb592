package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/store"
)

var listJSON bool

// listCmd lists the documents in the bundle, optionally for one category.
var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List bundle documents",
	Long: `List document names in the bundle, grouped by category.

Categories: skill_root, reference, pattern, example, troubleshooting.

Examples:
  agentskill list
  agentskill list reference
  agentskill list --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	tk, err := loadToolkit()
	if err != nil {
		return err
	}

	categories := store.AllCategories()
	if len(args) == 1 {
		categories = []store.Category{store.Category(args[0])}
	}

	listing := make(map[string][]string, len(categories))
	for _, category := range categories {
		names, err := tk.store.List(category)
		if err != nil {
			return err
		}
		listing[category.String()] = names
	}

	if listJSON {
		return json.NewEncoder(os.Stdout).Encode(listing)
	}

	for _, category := range categories {
		names := listing[category.String()]
		if len(names) == 0 {
			continue
		}
		fmt.Printf("%s:\n", category)
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}
