// Package store provides the read-only content store for the skill bundle.
// Documents are markdown files loaded once from a directory tree or fs.FS
// and served by name or category thereafter.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

// =============================================================================
// Category Enum
// =============================================================================

// Category represents the topic area a document belongs to.
type Category string

const (
	// CategoryReference represents SDK reference pages (reference/).
	CategoryReference Category = "reference"

	// CategoryPattern represents implementation pattern guides (patterns/).
	CategoryPattern Category = "pattern"

	// CategoryExample represents complete code examples (examples/).
	CategoryExample Category = "example"

	// CategoryTroubleshooting represents troubleshooting guides (troubleshooting/).
	CategoryTroubleshooting Category = "troubleshooting"

	// CategorySkillRoot represents the root skill instruction document (SKILL.md).
	CategorySkillRoot Category = "skill_root"
)

// validCategories contains all valid categories for validation.
var validCategories = map[Category]struct{}{
	CategoryReference:       {},
	CategoryPattern:         {},
	CategoryExample:         {},
	CategoryTroubleshooting: {},
	CategorySkillRoot:       {},
}

// IsValid returns true if the category is a recognized category.
func (c Category) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// AllCategories returns every recognized category in listing order.
func AllCategories() []Category {
	return []Category{
		CategorySkillRoot,
		CategoryReference,
		CategoryPattern,
		CategoryExample,
		CategoryTroubleshooting,
	}
}

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrDocumentNotFound indicates the requested document name is not registered.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidCategory indicates an unrecognized category was requested.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrEmptyName indicates an empty document name was provided.
	ErrEmptyName = errors.New("document name cannot be empty")

	// ErrEmptyBody indicates a document with no content was rejected at load time.
	ErrEmptyBody = errors.New("document body cannot be empty")

	// ErrDuplicateName indicates two documents resolved to the same name.
	ErrDuplicateName = errors.New("duplicate document name")
)

// =============================================================================
// Document
// =============================================================================

// Document is a single immutable content file in the skill bundle.
type Document struct {
	// Name is the unique identifier, the slash-separated path relative to
	// the bundle root (e.g. "reference/swaig-functions.md").
	Name string `json:"name"`

	// Category is the topic area derived from the top-level directory.
	Category Category `json:"category"`

	// Title is the first markdown heading, or the base name when absent.
	Title string `json:"title"`

	// Body is the full document text.
	Body string `json:"body"`

	// Checksum is the SHA-256 hex digest of the body.
	Checksum string `json:"checksum"`

	// Size is the body length in bytes.
	Size int64 `json:"size"`

	// ModifiedAt is the source file modification time, when known.
	ModifiedAt time.Time `json:"modified_at,omitempty"`
}

// NewDocument constructs a document, computing title and checksum from the body.
func NewDocument(name string, category Category, body string) (*Document, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}

	return &Document{
		Name:     name,
		Category: category,
		Title:    extractTitle(name, body),
		Body:     body,
		Checksum: computeChecksum(body),
		Size:     int64(len(body)),
	}, nil
}

// computeChecksum returns the SHA-256 hex digest of content.
func computeChecksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// extractTitle returns the first ATX heading in body, falling back to the
// document's base name without extension.
func extractTitle(name, body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			return strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		}
	}
	base := name
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	return strings.TrimSuffix(base, ".md")
}
