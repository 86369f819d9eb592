package store

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundleFS() fstest.MapFS {
	return fstest.MapFS{
		"SKILL.md":                      {Data: []byte("---\nname: x\n---\n# Skill")},
		"reference/agent-base.md":       {Data: []byte("# AgentBase")},
		"patterns/prompts.md":           {Data: []byte("# Prompts")},
		"examples/basic.md":             {Data: []byte("# Basic")},
		"troubleshooting/errors.md":     {Data: []byte("# Errors")},
		"reference/deep/nested.md":      {Data: []byte("# Nested")},
		"notes.txt":                     {Data: []byte("not markdown")},
		"unrelated/readme.md":           {Data: []byte("# Outside convention")},
		"reference/diagram.png":         {Data: []byte{0x89, 0x50}},
	}
}

func TestLoadFS(t *testing.T) {
	s, err := LoadFS(bundleFS())
	require.NoError(t, err)

	// Root skill file plus the five markdown files under known categories.
	assert.Equal(t, 6, s.Len())

	doc, err := s.Get("SKILL.md")
	require.NoError(t, err)
	assert.Equal(t, CategorySkillRoot, doc.Category)

	doc, err = s.Get("reference/deep/nested.md")
	require.NoError(t, err)
	assert.Equal(t, CategoryReference, doc.Category)

	// Files outside the convention are not loaded.
	_, err = s.Get("unrelated/readme.md")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	_, err = s.Get("notes.txt")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestLoadFSEmpty(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{
		"notes.txt": {Data: []byte("nothing loadable")},
	})
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "reference"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "SKILL.md"),
		[]byte("---\nname: x\n---\n# Skill"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "reference", "swml.md"),
		[]byte("# SWML"), 0o644))

	s, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	doc, err := s.Get("reference/swml.md")
	require.NoError(t, err)
	assert.False(t, doc.ModifiedAt.IsZero())
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadDirFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.md")
	require.NoError(t, os.WriteFile(path, []byte("# x"), 0o644))

	_, err := LoadDir(path)
	assert.Error(t, err)
}

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		path     string
		category Category
		ok       bool
	}{
		{"SKILL.md", CategorySkillRoot, true},
		{"skill.md", CategorySkillRoot, true},
		{"reference/a.md", CategoryReference, true},
		{"patterns/a.md", CategoryPattern, true},
		{"examples/a.md", CategoryExample, true},
		{"troubleshooting/a.md", CategoryTroubleshooting, true},
		{"reference/sub/a.md", CategoryReference, true},
		{"README.md", "", false},
		{"reference/a.txt", "", false},
		{"other/a.md", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			category, ok := classifyPath(tt.path)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.category, category)
			}
		})
	}
}
