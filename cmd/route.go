package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/cache"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/router"
)

var (
	routeJSON bool
	routeFull bool
)

// routeCmd runs the full activation-then-retrieval path for an input.
var routeCmd = &cobra.Command{
	Use:   "route <input>...",
	Short: "Route a request through activation and retrieval",
	Long: `Evaluate the activation matcher and, when the skill activates, print
the documents that would be surfaced to the assistant, ranked by relevance.

Examples:
  agentskill route "my SWAIG function returns a dict and the call fails"
  agentskill route --full "AgentBase prompt sections"
  agentskill route --json "how do I bake bread"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)
	routeCmd.Flags().BoolVar(&routeJSON, "json", false, "Output the activation as JSON")
	routeCmd.Flags().BoolVar(&routeFull, "full", false, "Print full document bodies instead of names")
}

func runRoute(cmd *cobra.Command, args []string) error {
	tk, err := loadToolkit()
	if err != nil {
		return err
	}

	index, err := openSearchIndex(cmd.Context(), tk)
	if err != nil {
		return err
	}
	defer index.Close()

	docCache, err := cache.NewDocumentCache(&cache.Config{
		MaxCost: tk.config.Cache.MaxCost,
		TTL:     tk.config.Cache.TTL,
	})
	if err != nil {
		return err
	}
	defer docCache.Close()

	r, err := router.New(tk.matcher, tk.store, router.Options{
		Index:        index,
		Cache:        docCache,
		MaxDocuments: tk.config.Router.MaxDocuments,
	})
	if err != nil {
		return err
	}

	result, err := r.Route(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	if routeJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	if !result.Decision.Activated {
		fmt.Println("not activated")
		return nil
	}

	fmt.Printf("activated (confidence %.2f, triggers: %s)\n",
		result.Decision.Confidence,
		strings.Join(result.Decision.MatchedTriggers, ", "))

	for _, doc := range result.Documents {
		if routeFull {
			fmt.Printf("\n--- %s ---\n%s\n", doc.Name, doc.Body)
			continue
		}
		fmt.Printf("  %-16s %s\n", doc.Category, doc.Name)
	}
	return nil
}
