package allowlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ytget/safe-browser/internal/model"
)

// StorageKey is the fixed identifier of the durable allow-list record
const StorageKey = "allowed_urls"

// ImportResult summarizes an import for user feedback
type ImportResult struct {
	Accepted int
	Added    int
	URLs     []model.AllowedURL
}

// Store owns the allow-list and writes every change through to the backend
type Store struct {
	backend Backend
	urls    []model.AllowedURL
	mu      sync.RWMutex

	onRemoved func(removed string, remaining []model.AllowedURL)
}

// NewStore creates a store holding the default list until Load is called
func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		urls:    model.CloneURLs(model.DefaultAllowedURLs),
	}
}

// SetRemovedCallback registers the listener notified after an entry is removed
func (s *Store) SetRemovedCallback(callback func(removed string, remaining []model.AllowedURL)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRemoved = callback
}

// Load restores the list from the backend. Missing or unreadable records fall
// back to the defaults; the failure is logged, never returned.
func (s *Store) Load() []model.AllowedURL {
	urls, err := s.read()
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) && errors.Is(le.Err, errRecordMissing) {
			log.Printf("No stored allow-list, using %d default URLs", len(model.DefaultAllowedURLs))
		} else {
			log.Printf("Error loading URLs, using defaults: %v", err)
		}
		urls = model.CloneURLs(model.DefaultAllowedURLs)
	}

	s.mu.Lock()
	s.urls = urls
	s.mu.Unlock()

	return model.CloneURLs(urls)
}

// Reload re-reads the backend, e.g. after the record was changed externally
func (s *Store) Reload() []model.AllowedURL {
	return s.Load()
}

var errRecordMissing = errors.New("record not found")

func (s *Store) read() ([]model.AllowedURL, error) {
	raw, found, err := s.backend.Get(StorageKey)
	if err != nil {
		return nil, &LoadError{Source: StorageKey, Err: err}
	}
	if !found || raw == "" {
		return nil, &LoadError{Source: StorageKey, Err: errRecordMissing}
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, &LoadError{Source: StorageKey, Err: fmt.Errorf("malformed record: %w", err)}
	}

	urls := make([]model.AllowedURL, 0, len(stored))
	for _, entry := range stored {
		url, err := model.NewAllowedURL(entry)
		if err != nil {
			return nil, &LoadError{Source: StorageKey, Err: fmt.Errorf("invalid entry %q: %w", entry, err)}
		}
		if Contains(urls, url) {
			continue
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// Save replaces the whole list. The in-memory list is updated first, so a
// PersistError still leaves the new list visible for this session.
func (s *Store) Save(list []model.AllowedURL) error {
	urls := model.CloneURLs(list)

	s.mu.Lock()
	s.urls = urls
	s.mu.Unlock()

	data, err := json.Marshal(model.Strings(urls))
	if err != nil {
		return &PersistError{Err: fmt.Errorf("encoding list: %w", err)}
	}
	if err := s.backend.Set(StorageKey, string(data)); err != nil {
		log.Printf("Error saving URLs: %v", err)
		return &PersistError{Err: err}
	}
	return nil
}

// List returns a copy of the current list
func (s *Store) List() []model.AllowedURL {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneURLs(s.urls)
}

// Len returns the number of allowed URLs
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.urls)
}

// IsAllowed checks candidate against the current list
func (s *Store) IsAllowed(candidate string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return IsAllowed(candidate, s.urls)
}

// Add normalizes raw and appends it. Empty or malformed input and duplicates
// return a ValidationError with the list unchanged. A PersistError comes back together
// with the updated list.
func (s *Store) Add(raw string) ([]model.AllowedURL, error) {
	url, err := model.NewAllowedURL(raw)
	if err != nil {
		return s.List(), &ValidationError{Input: raw, Err: err}
	}

	current := s.List()
	if Contains(current, url) {
		return current, &ValidationError{Input: url.String(), Err: ErrDuplicateURL}
	}

	updated := append(current, url)
	err = s.Save(updated)
	return model.CloneURLs(updated), err
}

// Remove drops the exact match of url. Removing an unknown URL is a no-op.
func (s *Store) Remove(url string) ([]model.AllowedURL, error) {
	current := s.List()

	remaining := make([]model.AllowedURL, 0, len(current))
	for _, u := range current {
		if u.String() != url {
			remaining = append(remaining, u)
		}
	}
	if len(remaining) == len(current) {
		return current, nil
	}

	err := s.Save(remaining)

	s.mu.RLock()
	callback := s.onRemoved
	s.mu.RUnlock()
	if callback != nil {
		callback(url, model.CloneURLs(remaining))
	}

	return remaining, err
}

// Import merges the http(s) lines of content into the list and saves the union
func (s *Store) Import(content string) (ImportResult, error) {
	current := s.List()

	merged, accepted, err := ImportText(content, current)
	if err != nil {
		return ImportResult{URLs: current}, err
	}

	result := ImportResult{
		Accepted: accepted,
		Added:    len(merged) - len(current),
		URLs:     merged,
	}
	if err := s.Save(merged); err != nil {
		return result, err
	}
	return result, nil
}

// Export renders the current list in the import/export text format
func (s *Store) Export() string {
	return ExportText(s.List())
}
