// Package router serves skill documentation to a consuming assistant.
// Given a free-text request it evaluates the activation matcher and, when
// the skill is relevant, assembles the root instructions plus the most
// relevant supporting documents.
package router

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/activation"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/cache"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/search"
	"github.com/signalwire/signalwire-agents-sdk-claude-skill/core/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// DefaultMaxDocuments is the default cap on documents per activation.
	DefaultMaxDocuments = 5

	// maxHistory bounds the routing history kept for debugging.
	maxHistory = 100
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrNilMatcher indicates the router was built without a matcher.
	ErrNilMatcher = errors.New("activation matcher is required")

	// ErrNilStore indicates the router was built without a content store.
	ErrNilStore = errors.New("content store is required")
)

// =============================================================================
// Activation
// =============================================================================

// Activation is the outcome of routing one request.
type Activation struct {
	// RequestID uniquely identifies this routing decision.
	RequestID string `json:"request_id"`

	// Decision is the matcher's relevance verdict.
	Decision activation.Decision `json:"decision"`

	// Documents are the surfaced documents, root instructions first.
	// Empty when the skill did not activate.
	Documents []*store.Document `json:"documents,omitempty"`
}

// RouteEvent records one routing decision for debugging.
type RouteEvent struct {
	RequestID string    `json:"request_id"`
	Activated bool      `json:"activated"`
	Documents int       `json:"documents"`
	Time      time.Time `json:"time"`
}

// =============================================================================
// Router
// =============================================================================

// Router routes requests to skill documentation.
type Router struct {
	matcher *activation.Matcher
	store   *store.Store
	index   *search.Index
	cache   *cache.DocumentCache
	maxDocs int

	mu      sync.Mutex
	history []RouteEvent
}

// Options configures optional router behavior.
type Options struct {
	// Index enables ranked retrieval of supporting documents. When nil,
	// documents are served in category listing order.
	Index *search.Index

	// Cache fronts document lookups. Optional.
	Cache *cache.DocumentCache

	// MaxDocuments caps documents per activation (default DefaultMaxDocuments).
	MaxDocuments int
}

// New creates a router over the given matcher and store.
func New(matcher *activation.Matcher, s *store.Store, opts Options) (*Router, error) {
	if matcher == nil {
		return nil, ErrNilMatcher
	}
	if s == nil {
		return nil, ErrNilStore
	}

	maxDocs := opts.MaxDocuments
	if maxDocs <= 0 {
		maxDocs = DefaultMaxDocuments
	}

	return &Router{
		matcher: matcher,
		store:   s,
		index:   opts.Index,
		cache:   opts.Cache,
		maxDocs: maxDocs,
	}, nil
}

// Route evaluates input and returns the documents to surface.
// A non-activating input yields an Activation with no documents and no error.
func (r *Router) Route(ctx context.Context, input string) (*Activation, error) {
	result := &Activation{
		RequestID: uuid.NewString(),
		Decision:  r.matcher.Match(input),
	}

	if !result.Decision.Activated {
		r.record(result)
		return result, nil
	}

	docs, err := r.collectDocuments(ctx, input)
	if err != nil {
		return nil, err
	}
	result.Documents = docs

	r.record(result)
	return result, nil
}

// collectDocuments assembles root instructions plus supporting documents.
func (r *Router) collectDocuments(ctx context.Context, input string) ([]*store.Document, error) {
	var docs []*store.Document
	seen := make(map[string]struct{})

	rootNames, err := r.store.List(store.CategorySkillRoot)
	if err != nil {
		return nil, err
	}
	for _, name := range rootNames {
		doc, err := r.getDocument(name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		seen[name] = struct{}{}
	}

	supporting, err := r.supportingNames(ctx, input)
	if err != nil {
		return nil, err
	}

	for _, name := range supporting {
		if len(docs) >= len(rootNames)+r.maxDocs {
			break
		}
		if _, dup := seen[name]; dup {
			continue
		}
		doc, err := r.getDocument(name)
		if err != nil {
			// The index can lag the store after a reload; a stale
			// ranking hit must not sink the activation.
			if errors.Is(err, store.ErrDocumentNotFound) {
				seen[name] = struct{}{}
				continue
			}
			return nil, err
		}
		docs = append(docs, doc)
		seen[name] = struct{}{}
	}

	return docs, nil
}

// supportingNames ranks supporting documents for input. With an index the
// ranking is full-text relevance; without one, category listing order.
func (r *Router) supportingNames(ctx context.Context, input string) ([]string, error) {
	if r.index == nil {
		return r.store.ListAll(), nil
	}

	result, err := r.index.Search(ctx, &search.Request{
		Query: input,
		Limit: r.maxDocs,
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		names = append(names, hit.Name)
	}

	// Thin result sets fall back to listing order so an activation is
	// never served without supporting content.
	if len(names) < r.maxDocs {
		names = append(names, r.store.ListAll()...)
	}
	return names, nil
}

// getDocument fetches a document, consulting the cache when configured.
func (r *Router) getDocument(name string) (*store.Document, error) {
	if r.cache != nil {
		if doc, ok := r.cache.Get(name); ok {
			return doc, nil
		}
	}

	doc, err := r.store.Get(name)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Set(doc)
	}
	return doc, nil
}

// record appends a bounded history entry.
func (r *Router) record(result *Activation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = append(r.history, RouteEvent{
		RequestID: result.RequestID,
		Activated: result.Decision.Activated,
		Documents: len(result.Documents),
		Time:      time.Now(),
	})

	if len(r.history) > maxHistory {
		r.history = r.history[len(r.history)-maxHistory/2:]
	}
}

// History returns recent routing decisions.
func (r *Router) History() []RouteEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]RouteEvent, len(r.history))
	copy(result, r.history)
	return result
}
