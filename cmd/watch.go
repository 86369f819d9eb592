package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/store"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/watcher"
)

// watchCmd watches an on-disk bundle and reloads the store on changes.
// Intended for skill authors iterating on content.
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a bundle directory and reload on changes",
	Long: `Watch a bundle directory for markdown changes, reloading the content
store after each debounced event and reporting load failures as they happen.

Example:
  agentskill watch ./my-skill`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	tk, err := loadToolkit()
	if err != nil {
		return err
	}

	dir := args[0]
	docStore, err := store.LoadDir(dir)
	if err != nil {
		return err
	}
	fmt.Printf("loaded %d documents from %s\n", docStore.Len(), dir)

	w, err := watcher.New(watcher.Config{
		Path:            dir,
		ExcludePatterns: tk.config.Watcher.ExcludePatterns,
		Debounce:        tk.config.Watcher.Debounce,
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	events, err := w.Start(cmd.Context())
	if err != nil {
		return err
	}

	for event := range events {
		fmt.Printf("%s %s\n", event.Operation, event.Path)

		docs, err := store.ReadDocuments(os.DirFS(dir))
		if err != nil {
			fmt.Printf("  reload failed: %v\n", err)
			continue
		}
		if err := docStore.Reload(docs); err != nil {
			fmt.Printf("  reload failed: %v\n", err)
			continue
		}
		fmt.Printf("  reloaded %d documents\n", docStore.Len())
	}
	return nil
}
