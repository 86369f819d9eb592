// Package watcher monitors a skill bundle directory for content changes.
// It wraps fsnotify with debouncing and glob-based exclusion so a
// long-running host can reload the content store when authors edit
// markdown files.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// DefaultDebounce is the default debounce interval for file events.
const DefaultDebounce = 200 * time.Millisecond

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrNoPathConfigured indicates no bundle path was specified.
	ErrNoPathConfigured = errors.New("no bundle path configured for watching")

	// ErrPathNotExist indicates the bundle path does not exist.
	ErrPathNotExist = errors.New("bundle path does not exist")

	// ErrPathNotDirectory indicates the bundle path is not a directory.
	ErrPathNotDirectory = errors.New("bundle path is not a directory")

	// ErrInvalidPattern indicates an exclude pattern could not be compiled.
	ErrInvalidPattern = errors.New("invalid exclude pattern")
)

// =============================================================================
// Events
// =============================================================================

// Operation is the kind of change observed on a bundle file.
type Operation string

const (
	OpCreate Operation = "create"
	OpModify Operation = "modify"
	OpDelete Operation = "delete"
	OpRename Operation = "rename"
)

// Event is a debounced change notification for a bundle file.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Operation is the type of change.
	Operation Operation

	// Time is when the change was detected.
	Time time.Time
}

// =============================================================================
// Config
// =============================================================================

// Config configures the bundle watcher.
type Config struct {
	// Path is the bundle directory to watch recursively.
	Path string

	// ExcludePatterns are glob patterns for paths to ignore
	// (editor swap files, VCS directories and the like).
	ExcludePatterns []string

	// Debounce is the quiet interval before emitting an event for a path.
	Debounce time.Duration
}

// DefaultConfig returns a configuration with sensible defaults for a bundle.
func DefaultConfig(bundlePath string) Config {
	return Config{
		Path:            bundlePath,
		ExcludePatterns: []string{".git", "*.swp", "*~", ".DS_Store"},
		Debounce:        DefaultDebounce,
	}
}

// =============================================================================
// BundleWatcher
// =============================================================================

type pendingEvent struct {
	event *Event
	timer *time.Timer
}

// BundleWatcher emits debounced change events for markdown files in a bundle.
type BundleWatcher struct {
	config   Config
	watcher  *fsnotify.Watcher
	excludes []glob.Glob

	mu       sync.Mutex
	pending  map[string]*pendingEvent
	eventCh  chan *Event
	stopOnce sync.Once
	stopped  bool
}

// New creates a bundle watcher.
// Returns an error if the path is invalid or a pattern cannot be compiled.
func New(config Config) (*BundleWatcher, error) {
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	excludes, err := compileExcludes(config.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &BundleWatcher{
		config:   config,
		watcher:  fsWatcher,
		excludes: excludes,
		pending:  make(map[string]*pendingEvent),
	}, nil
}

func validateConfig(config *Config) error {
	if config.Path == "" {
		return ErrNoPathConfigured
	}

	info, err := os.Stat(config.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}
	if !info.IsDir() {
		return ErrPathNotDirectory
	}

	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	return nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	excludes := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Join(ErrInvalidPattern, err)
		}
		excludes = append(excludes, g)
	}
	return excludes, nil
}

// Start begins watching for changes. Returns a channel that is closed when
// the context is cancelled or Stop is called.
func (w *BundleWatcher) Start(ctx context.Context) (<-chan *Event, error) {
	w.eventCh = make(chan *Event)

	if err := w.addDirectoryRecursive(w.config.Path); err != nil {
		close(w.eventCh)
		return nil, err
	}

	go w.processEvents(ctx)

	return w.eventCh, nil
}

// addDirectoryRecursive registers a directory and its subdirectories.
func (w *BundleWatcher) addDirectoryRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable paths
		}
		if !d.IsDir() {
			return nil
		}
		if w.isExcluded(path) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *BundleWatcher) processEvents(ctx context.Context) {
	defer w.cleanup()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *BundleWatcher) handleFSEvent(event fsnotify.Event) {
	if w.isExcluded(event.Name) {
		return
	}

	// New directories must be added for recursive watching.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.addDirectoryRecursive(event.Name)
			return
		}
	}

	if !isBundleFile(event.Name) {
		return
	}

	w.scheduleEvent(event.Name, mapOperation(event.Op))
}

// isBundleFile reports whether a path is content the store would load.
func isBundleFile(path string) bool {
	return strings.HasSuffix(path, ".md")
}

func mapOperation(op fsnotify.Op) Operation {
	switch {
	case op.Has(fsnotify.Create):
		return OpCreate
	case op.Has(fsnotify.Remove):
		return OpDelete
	case op.Has(fsnotify.Rename):
		return OpRename
	default:
		return OpModify
	}
}

// scheduleEvent schedules an event emission after the debounce interval.
func (w *BundleWatcher) scheduleEvent(path string, op Operation) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}

	event := &Event{Path: path, Operation: op, Time: time.Now()}

	if existing, ok := w.pending[path]; ok {
		existing.timer.Stop()
		existing.event = event
		existing.timer = w.newDebounceTimer(path, event)
		return
	}

	w.pending[path] = &pendingEvent{
		event: event,
		timer: w.newDebounceTimer(path, event),
	}
}

func (w *BundleWatcher) newDebounceTimer(path string, event *Event) *time.Timer {
	return time.AfterFunc(w.config.Debounce, func() {
		w.emitEvent(path, event)
	})
}

func (w *BundleWatcher) emitEvent(path string, event *Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}

	delete(w.pending, path)

	select {
	case w.eventCh <- event:
	default:
		// Receiver is behind; drop rather than block the timer goroutine.
	}
}

func (w *BundleWatcher) isExcluded(path string) bool {
	for _, pattern := range w.excludes {
		if pattern.Match(path) || pattern.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

// Stop stops the watcher. Safe to call multiple times.
func (w *BundleWatcher) Stop() error {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.stopped = true
		for _, p := range w.pending {
			p.timer.Stop()
		}
		w.pending = make(map[string]*pendingEvent)
		w.mu.Unlock()

		w.watcher.Close()
	})
	return nil
}

func (w *BundleWatcher) cleanup() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.stopped {
		w.stopped = true
		for _, p := range w.pending {
			p.timer.Stop()
		}
		w.pending = make(map[string]*pendingEvent)
	}

	close(w.eventCh)
}
