// Package skills reads and validates skill bundle metadata. A skill is a
// directory of documentation with a SKILL.md at its root; the YAML
// frontmatter atop SKILL.md names the skill, describes when an assistant
// should activate it, and lists its activation triggers.
package skills

// Skill represents properties parsed from a SKILL.md frontmatter.
type Skill struct {
	Name          string            `yaml:"name"`
	Description   string            `yaml:"description"`
	Triggers      []string          `yaml:"triggers,omitempty"`
	License       string            `yaml:"license,omitempty"`
	Compatibility string            `yaml:"compatibility,omitempty"`
	AllowedTools  string            `yaml:"allowed-tools,omitempty"`
	Metadata      map[string]string `yaml:"metadata,omitempty"`
	Path          string            `yaml:"-"`
}
