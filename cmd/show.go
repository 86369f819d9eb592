package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showJSON bool

// showCmd prints a single document by name.
var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a bundle document",
	Long: `Print the body of one document by its bundle-relative name.

Examples:
  agentskill show SKILL.md
  agentskill show reference/swaig-functions.md
  agentskill show --json patterns/prompt-structure.md`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output document metadata and body as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	tk, err := loadToolkit()
	if err != nil {
		return err
	}

	doc, err := tk.store.Get(args[0])
	if err != nil {
		return err
	}

	if showJSON {
		return json.NewEncoder(os.Stdout).Encode(doc)
	}

	fmt.Println(doc.Body)
	return nil
}
