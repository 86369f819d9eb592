// Package content embeds the skill bundle: the root SKILL.md instructions
// and the reference, pattern, example, and troubleshooting documents that
// teach an assistant the SignalWire Agents SDK conventions.
package content

import "embed"

// FS is the embedded skill bundle, laid out per the store convention:
// SKILL.md at the root with category subdirectories beneath it.
//
//go:embed SKILL.md reference patterns examples troubleshooting
var FS embed.FS
