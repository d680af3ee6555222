package models

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// AdConfigStore supplies read-only snapshots of ad configurations to the
// pipeline. The store owning the configs lives outside this service; this
// interface only covers what one pipeline invocation needs.
type AdConfigStore interface {
	// All returns every config in the current snapshot, in load order.
	All() []AdConfig
	// Active returns the configs with IsActive set, in load order.
	Active() []AdConfig
	// Get returns the config with the given id.
	Get(id string) (AdConfig, error)
}

// InMemoryAdConfigStore holds a snapshot of ad configs loaded from a JSON
// file. ReloadFile swaps the whole snapshot atomically so concurrent readers
// always see a consistent set.
type InMemoryAdConfigStore struct {
	mu      sync.RWMutex
	configs []AdConfig
	byID    map[string]int
}

// NewInMemoryAdConfigStore returns an empty store.
func NewInMemoryAdConfigStore() *InMemoryAdConfigStore {
	return &InMemoryAdConfigStore{byID: make(map[string]int)}
}

// Replace swaps the snapshot for the given configs. Every config must pass
// validation; on error the previous snapshot is kept.
func (s *InMemoryAdConfigStore) Replace(configs []AdConfig) error {
	byID := make(map[string]int, len(configs))
	for i, c := range configs {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("config %d: %w", i, err)
		}
		if _, dup := byID[c.ID]; dup {
			return fmt.Errorf("duplicate config id %q", c.ID)
		}
		byID[c.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs = append([]AdConfig(nil), configs...)
	s.byID = byID
	return nil
}

// ReloadFile reads a JSON array of ad configs from path and replaces the
// snapshot.
func (s *InMemoryAdConfigStore) ReloadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read ad config file: %w", err)
	}
	var configs []AdConfig
	if err := json.Unmarshal(data, &configs); err != nil {
		return fmt.Errorf("parse ad config file: %w", err)
	}
	if err := s.Replace(configs); err != nil {
		return fmt.Errorf("load ad configs: %w", err)
	}
	return nil
}

// All returns a copy of the current snapshot.
func (s *InMemoryAdConfigStore) All() []AdConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]AdConfig(nil), s.configs...)
}

// Active returns copies of the configs with IsActive set.
func (s *InMemoryAdConfigStore) Active() []AdConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []AdConfig
	for _, c := range s.configs {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

// Get returns the config with the given id or ErrNotFound.
func (s *InMemoryAdConfigStore) Get(id string) (AdConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return AdConfig{}, ErrNotFound
	}
	return s.configs[i], nil
}

// Len returns the number of configs in the snapshot.
func (s *InMemoryAdConfigStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.configs)
}
