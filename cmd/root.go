// Package cmd provides the CLI for inspecting and serving the skill bundle.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/content"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/activation"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/config"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/store"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/skills"
)

var (
	flagConfig  string
	flagContent string
)

var rootCmd = &cobra.Command{
	Use:   "agentskill",
	Short: "SignalWire Agents SDK skill bundle toolkit",
	Long: `agentskill inspects and serves the SignalWire Agents SDK documentation
skill: the SKILL.md metadata, the reference/pattern/example/troubleshooting
documents, and the activation triggers that decide when an assistant should
surface them.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "Bundle directory (default: the embedded bundle)")
}

// toolkit bundles the loaded pieces most commands need.
type toolkit struct {
	config  *config.Config
	skill   skills.Skill
	store   *store.Store
	matcher *activation.Matcher
}

// loadToolkit loads config, bundle content, skill metadata, and the matcher.
// The --content flag (or config content.root) selects an on-disk bundle;
// otherwise the embedded bundle is used.
func loadToolkit() (*toolkit, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	root := flagContent
	if root == "" {
		root = cfg.Content.Root
	}

	var (
		docStore *store.Store
		skill    skills.Skill
	)
	if root == "" {
		docStore, err = store.LoadFS(content.FS)
		if err != nil {
			return nil, fmt.Errorf("load embedded bundle: %w", err)
		}
		skill, _, err = skills.ReadFS(content.FS)
	} else {
		docStore, err = store.LoadDir(root)
		if err != nil {
			return nil, fmt.Errorf("load bundle %s: %w", root, err)
		}
		skill, _, err = skills.ReadFull(root)
	}
	if err != nil {
		return nil, err
	}

	matcher, err := activation.NewMatcher(activation.Config{
		Terms:    append(append([]string{}, skill.Triggers...), cfg.Match.ExtraTerms...),
		Patterns: cfg.Match.ExtraPatterns,
	})
	if err != nil {
		return nil, err
	}

	return &toolkit{
		config:  cfg,
		skill:   skill,
		store:   docStore,
		matcher: matcher,
	}, nil
}
