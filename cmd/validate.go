package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/content"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/skills"
)

// validateCmd checks a skill bundle for spec compliance.
var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a skill bundle",
	Long: `Validate SKILL.md frontmatter: required fields, name format and
length limits, and the presence of activation triggers. With no argument
the embedded bundle is validated.

Examples:
  agentskill validate
  agentskill validate ./my-skill`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var (
		skill skills.Skill
		err   error
	)

	if len(args) == 1 {
		if err = skills.Validate(args[0]); err != nil {
			return err
		}
		skill, err = skills.ReadProperties(args[0])
	} else {
		skill, _, err = skills.ReadFS(content.FS)
		if err == nil {
			// The embedded bundle has no directory; the name stands alone.
			err = skills.ValidateSkill(skill, skill.Name)
		}
	}
	if err != nil {
		return err
	}

	fmt.Printf("ok: %s\n", skill.Name)
	fmt.Printf("  description: %s\n", skill.Description)
	fmt.Printf("  triggers: %d\n", len(skill.Triggers))
	return nil
}
