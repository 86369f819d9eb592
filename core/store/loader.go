package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// =============================================================================
// Directory Convention
// =============================================================================

// categoryDirs maps bundle subdirectories to their document category.
var categoryDirs = map[string]Category{
	"reference":       CategoryReference,
	"patterns":        CategoryPattern,
	"examples":        CategoryExample,
	"troubleshooting": CategoryTroubleshooting,
}

// rootSkillFiles are accepted names for the root instruction document.
var rootSkillFiles = []string{"SKILL.md", "skill.md"}

// ErrNoDocuments indicates the bundle contained no loadable documents.
var ErrNoDocuments = errors.New("no documents found in bundle")

// =============================================================================
// Loading
// =============================================================================

// LoadDir loads a skill bundle from a directory on disk.
func LoadDir(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat bundle dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("bundle path is not a directory: %s", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS loads a skill bundle from an fs.FS rooted at the bundle directory.
// Works with os.DirFS for on-disk bundles and embed.FS for compiled-in ones.
func LoadFS(fsys fs.FS) (*Store, error) {
	docs, err := ReadDocuments(fsys)
	if err != nil {
		return nil, err
	}
	return New(docs)
}

// ReadDocuments walks fsys and returns all documents it contains.
// Markdown files outside the known category directories are skipped.
func ReadDocuments(fsys fs.FS) ([]*Document, error) {
	var docs []*Document

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		category, ok := classifyPath(p)
		if !ok {
			return nil
		}

		doc, err := readDocument(fsys, p, category)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk bundle: %w", err)
	}

	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	return docs, nil
}

// classifyPath maps a bundle-relative path to its category.
// Returns false for files that are not part of the bundle convention.
func classifyPath(p string) (Category, bool) {
	if isRootSkillFile(p) {
		return CategorySkillRoot, true
	}
	if !strings.HasSuffix(p, ".md") {
		return "", false
	}

	dir := topLevelDir(p)
	category, ok := categoryDirs[dir]
	return category, ok
}

func isRootSkillFile(p string) bool {
	for _, name := range rootSkillFiles {
		if p == name {
			return true
		}
	}
	return false
}

func topLevelDir(p string) string {
	dir := path.Dir(p)
	if dir == "." {
		return ""
	}
	if idx := strings.Index(dir, "/"); idx >= 0 {
		return dir[:idx]
	}
	return dir
}

func readDocument(fsys fs.FS, p string, category Category) (*Document, error) {
	content, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}

	doc, err := NewDocument(p, category, string(content))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", p, err)
	}

	if info, err := fs.Stat(fsys, p); err == nil {
		doc.ModifiedAt = info.ModTime()
	}
	return doc, nil
}
