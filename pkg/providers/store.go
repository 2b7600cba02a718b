// Package providers loads and serves the declarative chat-provider catalog
// from a Raycast-style providers.yaml file.
package providers

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store holds the provider configuration loaded from a providers.yaml file.
// It is populated once by Load and read-only afterwards. A failed Load always
// leaves the store empty, never partially populated.
type Store struct {
	logger *slog.Logger

	path      string
	order     []string
	providers map[string]Provider
}

// document is the top-level shape of a providers.yaml file. The pointer
// distinguishes a missing providers key from an explicitly empty list.
type document struct {
	Providers *[]Provider `yaml:"providers"`
}

// NewStore creates an empty Store. The logger receives load-time warnings
// (missing providers key, dropped records).
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		logger:    logger,
		providers: make(map[string]Provider),
	}
}

// DefaultSearchPaths returns the ordered list of default locations probed
// when Load is called without an explicit path.
func DefaultSearchPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	return []string{
		filepath.Join(home, ".config", "raycast", "ai", "providers.yaml"),
		filepath.Join(home, ".config", "raycast", "ai", "providers.yml"),
	}
}

// Load reads and parses the providers file at path. If path is empty, the
// default search paths are probed in order and the first existing file wins.
// A record lacking an id is dropped silently; a missing top-level providers
// key loads zero providers and logs a warning. On any I/O or parse error the
// store stays empty.
func (s *Store) Load(path string) error {
	s.reset()

	if path == "" {
		path = firstExisting(DefaultSearchPaths())
		if path == "" {
			return fmt.Errorf("no providers configuration found in default locations")
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading providers config: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing providers config %s: %w", path, err)
	}

	s.path = path

	if doc.Providers == nil {
		s.logger.Warn("no providers key found in config", "path", path)
		return nil
	}

	for _, p := range *doc.Providers {
		if p.ID == "" {
			continue
		}
		if _, dup := s.providers[p.ID]; !dup {
			s.order = append(s.order, p.ID)
		}
		s.providers[p.ID] = p
	}

	return nil
}

// Path returns the path of the loaded providers file, empty before Load.
func (s *Store) Path() string {
	return s.path
}

// ProviderIDs returns all provider ids in file order.
func (s *Store) ProviderIDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Provider returns the provider with the given id.
func (s *Store) Provider(id string) (Provider, bool) {
	p, ok := s.providers[id]
	return p, ok
}

// Models returns the model list for a provider in file order. The second
// value reports whether the provider exists; a present provider may still
// declare no models.
func (s *Store) Models(id string) ([]Model, bool) {
	p, ok := s.providers[id]
	if !ok {
		return nil, false
	}
	return p.Models, true
}

// AllModels returns every provider's model list keyed by provider id.
func (s *Store) AllModels() map[string][]Model {
	all := make(map[string][]Model, len(s.order))
	for _, id := range s.order {
		all[id] = s.providers[id].Models
	}
	return all
}

func (s *Store) reset() {
	s.path = ""
	s.order = nil
	s.providers = make(map[string]Provider)
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
