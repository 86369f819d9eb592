// Package activation decides whether the skill's documentation is relevant
// to a free-text input. Matching is a fixed trigger vocabulary of literal
// terms and glob patterns; there is no state and no failure mode beyond
// "no match".
package activation

import (
	"errors"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrNoTriggers indicates the matcher was built with an empty vocabulary.
	ErrNoTriggers = errors.New("no triggers configured")

	// ErrInvalidPattern indicates a glob trigger could not be compiled.
	ErrInvalidPattern = errors.New("invalid trigger pattern")
)

// =============================================================================
// Decision
// =============================================================================

// Decision is the result of evaluating an input against the vocabulary.
type Decision struct {
	// Activated is true when at least one trigger matched.
	Activated bool `json:"activated"`

	// Confidence grows with the number of distinct triggers hit,
	// asymptotically approaching 1.0. Zero when not activated.
	Confidence float64 `json:"confidence"`

	// MatchedTriggers lists the distinct triggers that hit, sorted.
	MatchedTriggers []string `json:"matched_triggers,omitempty"`
}

// =============================================================================
// Matcher
// =============================================================================

// Matcher evaluates inputs against a fixed trigger vocabulary.
// Safe for concurrent use; the vocabulary is immutable after construction.
type Matcher struct {
	terms    []string
	patterns []compiledPattern
}

type compiledPattern struct {
	source string
	glob   glob.Glob
}

// Config holds the trigger vocabulary for a matcher.
type Config struct {
	// Terms are literal triggers matched case-insensitively as substrings
	// (e.g. "AgentBase", "SWAIG", "SWML").
	Terms []string

	// Patterns are glob triggers matched against the lowercased input
	// (e.g. "*signalwire*agent*").
	Patterns []string
}

// NewMatcher compiles the vocabulary into a matcher.
// Returns ErrNoTriggers when both terms and patterns are empty.
func NewMatcher(config Config) (*Matcher, error) {
	terms := normalizeTerms(config.Terms)
	patterns, err := compilePatterns(config.Patterns)
	if err != nil {
		return nil, err
	}

	if len(terms) == 0 && len(patterns) == 0 {
		return nil, ErrNoTriggers
	}

	return &Matcher{terms: terms, patterns: patterns}, nil
}

func normalizeTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	result := make([]string, 0, len(terms))
	for _, term := range terms {
		normalized := strings.ToLower(strings.TrimSpace(term))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result
}

func compilePatterns(patterns []string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		trimmed := strings.TrimSpace(pattern)
		if trimmed == "" {
			continue
		}
		g, err := glob.Compile(strings.ToLower(trimmed))
		if err != nil {
			return nil, errors.Join(ErrInvalidPattern, err)
		}
		compiled = append(compiled, compiledPattern{source: trimmed, glob: g})
	}
	return compiled, nil
}

// Match evaluates input and returns the relevance decision.
// Empty or whitespace-only input never activates.
func (m *Matcher) Match(input string) Decision {
	inputLower := strings.ToLower(strings.TrimSpace(input))
	if inputLower == "" {
		return Decision{}
	}

	hits := m.collectHits(inputLower)
	if len(hits) == 0 {
		return Decision{}
	}

	sort.Strings(hits)
	return Decision{
		Activated:       true,
		Confidence:      confidenceFor(len(hits)),
		MatchedTriggers: hits,
	}
}

func (m *Matcher) collectHits(inputLower string) []string {
	var hits []string
	for _, term := range m.terms {
		if strings.Contains(inputLower, term) {
			hits = append(hits, term)
		}
	}
	for _, p := range m.patterns {
		if p.glob.Match(inputLower) {
			hits = append(hits, p.source)
		}
	}
	return hits
}

// confidenceFor maps the distinct hit count to a score in (0, 1):
// 1 hit = 0.50, 2 hits = 0.67, 3 hits = 0.75, approaching 1.0.
func confidenceFor(hits int) float64 {
	return float64(hits) / float64(hits+1)
}

// Triggers returns the normalized literal terms in the vocabulary.
func (m *Matcher) Triggers() []string {
	result := make([]string, len(m.terms))
	copy(result, m.terms)
	return result
}
