// Package config holds runtime configuration for the skill toolkit:
// where the bundle lives, how the index is built, extra activation
// triggers, cache sizing, and watcher behavior. Configuration is loaded
// once at startup from YAML over defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full toolkit configuration.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Index   IndexConfig   `yaml:"index"`
	Match   MatchConfig   `yaml:"match"`
	Cache   CacheConfig   `yaml:"cache"`
	Watcher WatcherConfig `yaml:"watcher"`
	Router  RouterConfig  `yaml:"router"`
}

// ContentConfig locates the skill bundle.
type ContentConfig struct {
	// Root is the bundle directory. Empty means the embedded bundle.
	Root string `yaml:"root"`
}

// IndexConfig controls the search index.
type IndexConfig struct {
	// Path is the on-disk index location. Empty means in-memory.
	Path string `yaml:"path"`
}

// MatchConfig supplies activation triggers beyond the SKILL.md frontmatter.
type MatchConfig struct {
	ExtraTerms    []string `yaml:"extra_terms"`
	ExtraPatterns []string `yaml:"extra_patterns"`
}

// CacheConfig sizes the document cache.
type CacheConfig struct {
	MaxCost int64         `yaml:"max_cost"`
	TTL     time.Duration `yaml:"ttl"`
}

// WatcherConfig controls content reload watching.
type WatcherConfig struct {
	Enabled         bool          `yaml:"enabled"`
	ExcludePatterns []string      `yaml:"exclude_patterns"`
	Debounce        time.Duration `yaml:"debounce"`
}

// RouterConfig bounds served activations.
type RouterConfig struct {
	// MaxDocuments caps the documents returned per activation.
	MaxDocuments int `yaml:"max_documents"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			MaxCost: 10 << 20,
			TTL:     10 * time.Minute,
		},
		Watcher: WatcherConfig{
			Enabled:         false,
			ExcludePatterns: []string{".git", "*.swp", "*~", ".DS_Store"},
			Debounce:        200 * time.Millisecond,
		},
		Router: RouterConfig{
			MaxDocuments: 5,
		},
	}
}

// Load reads a YAML file over the defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
