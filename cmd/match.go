package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var matchJSON bool

// matchCmd evaluates the activation matcher against free-text input.
var matchCmd = &cobra.Command{
	Use:   "match <input>...",
	Short: "Check whether input activates the skill",
	Long: `Evaluate the activation triggers against a request string and report
the decision and confidence.

Examples:
  agentskill match "how do I add a SWAIG function to my AgentBase class"
  agentskill match --json "how do I bake bread"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Output the decision as JSON")
}

func runMatch(cmd *cobra.Command, args []string) error {
	tk, err := loadToolkit()
	if err != nil {
		return err
	}

	decision := tk.matcher.Match(strings.Join(args, " "))

	if matchJSON {
		return json.NewEncoder(os.Stdout).Encode(decision)
	}

	if !decision.Activated {
		fmt.Println("no match")
		return nil
	}

	fmt.Printf("activated (confidence %.2f)\n", decision.Confidence)
	for _, trigger := range decision.MatchedTriggers {
		fmt.Printf("  trigger: %s\n", trigger)
	}
	return nil
}
