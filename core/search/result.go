package search

import (
	"time"

	"github.com/blevesearch/bleve/v2"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/store"
)

// =============================================================================
// Request
// =============================================================================

// Request describes a single search over the document index.
type Request struct {
	// Query is the search query string.
	Query string `json:"query"`

	// Limit caps the number of results (default DefaultLimit, max MaxLimit).
	Limit int `json:"limit,omitempty"`

	// Category restricts results to one category (optional).
	Category store.Category `json:"category,omitempty"`

	// FuzzyLevel sets the fuzzy-match edit distance (0-2, default 0).
	FuzzyLevel int `json:"fuzzy_level,omitempty"`

	// IncludeHighlights enables highlighted body fragments in results.
	IncludeHighlights bool `json:"include_highlights,omitempty"`
}

// validate checks the request and applies limit defaults in place.
func (r *Request) validate() error {
	if r.Query == "" {
		return ErrEmptyQuery
	}
	if r.FuzzyLevel < 0 || r.FuzzyLevel > MaxFuzzyLevel {
		return ErrInvalidFuzzyLevel
	}
	if r.Category != "" && !r.Category.IsValid() {
		return store.ErrInvalidCategory
	}
	if r.Limit <= 0 {
		r.Limit = DefaultLimit
	}
	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Hit is a single scored document reference.
type Hit struct {
	// Name is the document name, usable with store.Get.
	Name string `json:"name"`

	// Category is the document's category.
	Category store.Category `json:"category"`

	// Title is the document title.
	Title string `json:"title"`

	// Score is the bleve relevance score.
	Score float64 `json:"score"`

	// Fragments contains highlighted body excerpts when requested.
	Fragments []string `json:"fragments,omitempty"`
}

// Result is the outcome of a search request.
type Result struct {
	// Query is the original query string.
	Query string `json:"query"`

	// Hits are the scored matches, best first.
	Hits []Hit `json:"hits"`

	// TotalHits is the total number of matching documents before limiting.
	TotalHits uint64 `json:"total_hits"`

	// Took is the index-reported search duration.
	Took time.Duration `json:"took"`
}

// convertResult maps a bleve search result onto the package result type.
func convertResult(req *Request, res *bleve.SearchResult) *Result {
	result := &Result{
		Query:     req.Query,
		Hits:      make([]Hit, 0, len(res.Hits)),
		TotalHits: res.Total,
		Took:      res.Took,
	}

	for _, match := range res.Hits {
		hit := Hit{
			Name:  match.ID,
			Score: match.Score,
		}
		if v, ok := match.Fields["category"].(string); ok {
			hit.Category = store.Category(v)
		}
		if v, ok := match.Fields["title"].(string); ok {
			hit.Title = v
		}
		for _, fragments := range match.Fragments {
			hit.Fragments = append(hit.Fragments, fragments...)
		}
		result.Hits = append(result.Hits, hit)
	}

	return result
}
