package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocuments(t *testing.T) []*Document {
	t.Helper()

	specs := []struct {
		name     string
		category Category
		body     string
	}{
		{"SKILL.md", CategorySkillRoot, "# Skill\nRoot instructions."},
		{"reference/agent-base.md", CategoryReference, "# AgentBase\nThe base class."},
		{"reference/swml.md", CategoryReference, "# SWML\nMarkup language."},
		{"patterns/prompts.md", CategoryPattern, "# Prompts\nSection ordering."},
		{"examples/basic.md", CategoryExample, "# Basic\nA minimal agent."},
	}

	docs := make([]*Document, 0, len(specs))
	for _, spec := range specs {
		doc, err := NewDocument(spec.name, spec.category, spec.body)
		require.NoError(t, err)
		docs = append(docs, doc)
	}
	return docs
}

func TestNewDocument(t *testing.T) {
	doc, err := NewDocument("reference/a.md", CategoryReference, "# Title A\nbody")
	require.NoError(t, err)

	assert.Equal(t, "reference/a.md", doc.Name)
	assert.Equal(t, CategoryReference, doc.Category)
	assert.Equal(t, "Title A", doc.Title)
	assert.NotEmpty(t, doc.Checksum)
	assert.Equal(t, int64(len("# Title A\nbody")), doc.Size)
}

func TestNewDocumentValidation(t *testing.T) {
	tests := []struct {
		name     string
		docName  string
		category Category
		body     string
		wantErr  error
	}{
		{"empty name", "", CategoryReference, "body", ErrEmptyName},
		{"blank name", "   ", CategoryReference, "body", ErrEmptyName},
		{"bad category", "a.md", Category("bogus"), "body", ErrInvalidCategory},
		{"empty body", "a.md", CategoryReference, "", ErrEmptyBody},
		{"blank body", "a.md", CategoryReference, "  \n ", ErrEmptyBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDocument(tt.docName, tt.category, tt.body)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDocumentTitleFallback(t *testing.T) {
	doc, err := NewDocument("reference/no-heading.md", CategoryReference, "plain text only")
	require.NoError(t, err)
	assert.Equal(t, "no-heading", doc.Title)
}

func TestStoreGet(t *testing.T) {
	s, err := New(testDocuments(t))
	require.NoError(t, err)

	doc, err := s.Get("reference/agent-base.md")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Body)
	assert.Equal(t, CategoryReference, doc.Category)
}

func TestStoreGetNotFound(t *testing.T) {
	s, err := New(testDocuments(t))
	require.NoError(t, err)

	doc, err := s.Get("reference/missing.md")
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestStoreGetEmptyName(t *testing.T) {
	s, err := New(testDocuments(t))
	require.NoError(t, err)

	_, err = s.Get("")
	assert.ErrorIs(t, err, ErrEmptyName)
}

// Every registered name must return non-empty text.
func TestStoreGetAllNonEmpty(t *testing.T) {
	s, err := New(testDocuments(t))
	require.NoError(t, err)

	for _, name := range s.ListAll() {
		doc, err := s.Get(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, doc.Body, name)
	}
}

func TestStoreList(t *testing.T) {
	s, err := New(testDocuments(t))
	require.NoError(t, err)

	names, err := s.List(CategoryReference)
	require.NoError(t, err)
	assert.Equal(t, []string{"reference/agent-base.md", "reference/swml.md"}, names)

	// Only documents tagged with the category.
	for _, name := range names {
		doc, err := s.Get(name)
		require.NoError(t, err)
		assert.Equal(t, CategoryReference, doc.Category)
	}
}

func TestStoreListInvalidCategory(t *testing.T) {
	s, err := New(testDocuments(t))
	require.NoError(t, err)

	_, err = s.List(Category("bogus"))
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestStoreListEmptyCategory(t *testing.T) {
	s, err := New(testDocuments(t))
	require.NoError(t, err)

	names, err := s.List(CategoryTroubleshooting)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStoreDuplicateName(t *testing.T) {
	docs := testDocuments(t)
	docs = append(docs, docs[1])

	_, err := New(docs)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestStoreReload(t *testing.T) {
	s, err := New(testDocuments(t))
	require.NoError(t, err)
	require.Equal(t, 5, s.Len())

	replacement, err := NewDocument("SKILL.md", CategorySkillRoot, "# Skill\nUpdated.")
	require.NoError(t, err)

	require.NoError(t, s.Reload([]*Document{replacement}))
	assert.Equal(t, 1, s.Len())

	doc, err := s.Get("SKILL.md")
	require.NoError(t, err)
	assert.Contains(t, doc.Body, "Updated")

	_, err = s.Get("reference/agent-base.md")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestStoreReloadKeepsSnapshotOnError(t *testing.T) {
	s, err := New(testDocuments(t))
	require.NoError(t, err)

	dup, err := NewDocument("a.md", CategoryReference, "body")
	require.NoError(t, err)

	err = s.Reload([]*Document{dup, dup})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 5, s.Len())
}

func TestCategoryIsValid(t *testing.T) {
	for _, category := range AllCategories() {
		assert.True(t, category.IsValid(), category)
	}
	assert.False(t, Category("nope").IsValid())
}
