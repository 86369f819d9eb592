package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/store"
)

func indexedStore(t *testing.T) (*Index, *store.Store) {
	t.Helper()

	specs := []struct {
		name     string
		category store.Category
		body     string
	}{
		{"SKILL.md", store.CategorySkillRoot,
			"# Skill\nConventions for the SignalWire Agents SDK."},
		{"reference/swaig-functions.md", store.CategoryReference,
			"# SWAIG functions\nDeclaring tools with AgentBase.tool and SwaigFunctionResult."},
		{"reference/swml.md", store.CategoryReference,
			"# SWML\nThe document format with sections and the ai verb."},
		{"troubleshooting/common-errors.md", store.CategoryTroubleshooting,
			"# Troubleshooting\nBasic auth failures and post prompt delivery."},
	}

	docs := make([]*store.Document, 0, len(specs))
	for _, spec := range specs {
		doc, err := store.NewDocument(spec.name, spec.category, spec.body)
		require.NoError(t, err)
		docs = append(docs, doc)
	}

	s, err := store.New(docs)
	require.NoError(t, err)

	idx, err := NewMemoryIndex()
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })

	require.NoError(t, idx.IndexStore(context.Background(), s))
	return idx, s
}

func TestIndexStoreAndCount(t *testing.T) {
	idx, s := indexedStore(t)

	count, err := idx.DocCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(s.Len()), count)
}

func TestSearchFindsDocument(t *testing.T) {
	idx, _ := indexedStore(t)

	result, err := idx.Search(context.Background(), &Request{Query: "SwaigFunctionResult"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "reference/swaig-functions.md", result.Hits[0].Name)
	assert.Equal(t, store.CategoryReference, result.Hits[0].Category)
	assert.Greater(t, result.Hits[0].Score, 0.0)
}

func TestSearchCategoryFilter(t *testing.T) {
	idx, _ := indexedStore(t)

	result, err := idx.Search(context.Background(), &Request{
		Query:    "prompt",
		Category: store.CategoryTroubleshooting,
	})
	require.NoError(t, err)

	for _, hit := range result.Hits {
		assert.Equal(t, store.CategoryTroubleshooting, hit.Category)
	}
}

func TestSearchFuzzy(t *testing.T) {
	idx, _ := indexedStore(t)

	// One edit away from "swml".
	exact, err := idx.Search(context.Background(), &Request{Query: "swm"})
	require.NoError(t, err)

	fuzzy, err := idx.Search(context.Background(), &Request{Query: "swm", FuzzyLevel: 1})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(fuzzy.Hits), len(exact.Hits))
}

func TestSearchHighlights(t *testing.T) {
	idx, _ := indexedStore(t)

	result, err := idx.Search(context.Background(), &Request{
		Query:             "troubleshooting",
		IncludeHighlights: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.NotEmpty(t, result.Hits[0].Fragments)
}

func TestSearchValidation(t *testing.T) {
	idx, _ := indexedStore(t)
	ctx := context.Background()

	_, err := idx.Search(ctx, &Request{Query: ""})
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = idx.Search(ctx, &Request{Query: "x", FuzzyLevel: 3})
	assert.ErrorIs(t, err, ErrInvalidFuzzyLevel)

	_, err = idx.Search(ctx, &Request{Query: "x", Category: store.Category("bogus")})
	assert.ErrorIs(t, err, store.ErrInvalidCategory)
}

func TestSearchLimitClamping(t *testing.T) {
	req := &Request{Query: "x"}
	require.NoError(t, req.validate())
	assert.Equal(t, DefaultLimit, req.Limit)

	req = &Request{Query: "x", Limit: MaxLimit + 50}
	require.NoError(t, req.validate())
	assert.Equal(t, MaxLimit, req.Limit)
}

func TestIndexClosed(t *testing.T) {
	idx, err := NewMemoryIndex()
	require.NoError(t, err)
	require.NoError(t, idx.Close())
	require.NoError(t, idx.Close()) // idempotent

	_, err = idx.Search(context.Background(), &Request{Query: "x"})
	assert.ErrorIs(t, err, ErrIndexClosed)

	_, err = idx.DocCount()
	assert.ErrorIs(t, err, ErrIndexClosed)
}

func TestOpenIndexPersistent(t *testing.T) {
	path := t.TempDir() + "/documents.bleve"

	idx, err := OpenIndex(path)
	require.NoError(t, err)
	require.NoError(t, idx.Close())

	// Reopening an existing index must succeed.
	idx, err = OpenIndex(path)
	require.NoError(t, err)
	assert.NoError(t, idx.Close())
}
