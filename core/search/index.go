// Package search provides Bleve-backed full-text search over the skill
// bundle's documents. It implements thread-safe indexing and ranked
// retrieval with optional category filtering, fuzzy matching, and
// highlighting.
package search

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// DefaultLimit is the default number of search results.
	DefaultLimit = 10

	// MaxLimit is the maximum number of search results.
	MaxLimit = 100

	// MaxFuzzyLevel caps the allowed edit distance for fuzzy matching.
	MaxFuzzyLevel = 2
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrIndexClosed indicates an operation on a closed index.
	ErrIndexClosed = errors.New("index is closed")

	// ErrEmptyQuery indicates an empty search query was provided.
	ErrEmptyQuery = errors.New("search query cannot be empty")

	// ErrInvalidFuzzyLevel indicates a fuzzy level outside 0..2.
	ErrInvalidFuzzyLevel = errors.New("fuzzy level must be between 0 and 2")
)

// =============================================================================
// Index
// =============================================================================

// Index is a full-text index over skill documents.
type Index struct {
	mu     sync.RWMutex
	index  bleve.Index
	closed bool
}

// NewMemoryIndex creates an in-memory index. Suitable for embedded bundles
// where the document set is small and rebuilt at startup.
func NewMemoryIndex() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("create memory index: %w", err)
	}
	return &Index{index: idx}, nil
}

// OpenIndex opens a persistent index at path, creating it if absent.
func OpenIndex(path string) (*Index, error) {
	idx, err := bleve.Open(path)
	if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) || os.IsNotExist(err) {
		idx, err = bleve.New(path, buildMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return &Index{index: idx}, nil
}

// buildMapping defines the index schema: exact-match name and category,
// analyzed title and body.
func buildMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()

	keywordField := bleve.NewTextFieldMapping()
	keywordField.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("name", keywordField)
	docMapping.AddFieldMappingsAt("category", keywordField)

	textField := bleve.NewTextFieldMapping()
	docMapping.AddFieldMappingsAt("title", textField)
	docMapping.AddFieldMappingsAt("body", textField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// IndexStore indexes every document in the store, replacing prior entries
// with the same name.
func (i *Index) IndexStore(ctx context.Context, s *store.Store) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return ErrIndexClosed
	}

	batch := i.index.NewBatch()
	for _, doc := range s.Documents() {
		if err := ctx.Err(); err != nil {
			return err
		}
		entry := map[string]any{
			"name":     doc.Name,
			"category": doc.Category.String(),
			"title":    doc.Title,
			"body":     doc.Body,
		}
		if err := batch.Index(doc.Name, entry); err != nil {
			return fmt.Errorf("index %s: %w", doc.Name, err)
		}
	}

	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// Search executes a ranked query against the index.
func (i *Index) Search(ctx context.Context, req *Request) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.closed {
		return nil, ErrIndexClosed
	}

	searchReq := buildSearchRequest(req)
	res, err := i.index.SearchInContext(ctx, searchReq)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	return convertResult(req, res), nil
}

// buildSearchRequest translates a Request into a bleve search request.
func buildSearchRequest(req *Request) *bleve.SearchRequest {
	var q query.Query

	match := bleve.NewMatchQuery(req.Query)
	if req.FuzzyLevel > 0 {
		match.SetFuzziness(req.FuzzyLevel)
	}
	q = match

	if req.Category != "" {
		categoryQuery := bleve.NewTermQuery(req.Category.String())
		categoryQuery.SetField("category")
		q = bleve.NewConjunctionQuery(match, categoryQuery)
	}

	searchReq := bleve.NewSearchRequestOptions(q, req.Limit, 0, false)
	searchReq.Fields = []string{"name", "category", "title"}
	if req.IncludeHighlights {
		searchReq.Highlight = bleve.NewHighlightWithStyle("html")
		searchReq.Highlight.AddField("body")
	}
	return searchReq
}

// Close releases the index. Safe to call multiple times.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return nil
	}
	i.closed = true
	return i.index.Close()
}

// DocCount returns the number of indexed documents.
func (i *Index) DocCount() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.closed {
		return 0, ErrIndexClosed
	}
	return i.index.DocCount()
}
