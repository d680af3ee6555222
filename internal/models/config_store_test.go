package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func storeConfig(id string, active bool) AdConfig {
	return AdConfig{
		ID:        id,
		Name:      "広告 " + id,
		Type:      AdTypeDisplay,
		Placement: PlacementHeader,
		AdCode:    "<script></script>",
		IsActive:  active,
	}
}

func TestStoreReplaceAndGet(t *testing.T) {
	s := NewInMemoryAdConfigStore()
	if err := s.Replace([]AdConfig{storeConfig("a", true), storeConfig("b", false)}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if got := s.Len(); got != 2 {
		t.Fatalf("expected 2 configs, got %d", got)
	}

	cfg, err := s.Get("b")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cfg.ID != "b" {
		t.Fatalf("expected config b, got %q", cfg.ID)
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreActiveFiltersInactive(t *testing.T) {
	s := NewInMemoryAdConfigStore()
	if err := s.Replace([]AdConfig{storeConfig("a", true), storeConfig("b", false), storeConfig("c", true)}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	active := s.Active()
	if len(active) != 2 {
		t.Fatalf("expected 2 active configs, got %d", len(active))
	}
	if active[0].ID != "a" || active[1].ID != "c" {
		t.Fatalf("expected load order a,c, got %q,%q", active[0].ID, active[1].ID)
	}
}

func TestStoreReplaceRejectsInvalid(t *testing.T) {
	s := NewInMemoryAdConfigStore()
	if err := s.Replace([]AdConfig{storeConfig("a", true)}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	bad := storeConfig("b", true)
	bad.Placement = "popup"
	if err := s.Replace([]AdConfig{bad}); err == nil {
		t.Fatal("expected validation error")
	}

	// previous snapshot must survive a failed replace
	if _, err := s.Get("a"); err != nil {
		t.Fatalf("previous snapshot lost: %v", err)
	}
}

func TestStoreReplaceRejectsDuplicateIDs(t *testing.T) {
	s := NewInMemoryAdConfigStore()
	if err := s.Replace([]AdConfig{storeConfig("a", true), storeConfig("a", false)}); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestStoreReloadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ads.json")
	payload := `[
		{"id":"file-1","name":"ヘッダー広告","type":"display","placement":"header","adCode":"<script></script>","isActive":true},
		{"id":"file-2","name":"フッター広告","type":"text","placement":"footer","adCode":"<span>ad</span>","isActive":false}
	]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewInMemoryAdConfigStore()
	if err := s.ReloadFile(path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 configs, got %d", s.Len())
	}
	if len(s.Active()) != 1 {
		t.Fatalf("expected 1 active config, got %d", len(s.Active()))
	}
}

func TestStoreReloadFileErrors(t *testing.T) {
	s := NewInMemoryAdConfigStore()

	if err := s.ReloadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.ReloadFile(path); err == nil {
		t.Fatal("expected error for malformed json")
	}
}

func TestAdConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AdConfig)
		wantErr bool
	}{
		{"valid", func(c *AdConfig) {}, false},
		{"empty id", func(c *AdConfig) { c.ID = "" }, true},
		{"unknown type", func(c *AdConfig) { c.Type = "hologram" }, true},
		{"empty type allowed", func(c *AdConfig) { c.Type = "" }, false},
		{"unknown placement", func(c *AdConfig) { c.Placement = "popup" }, true},
		{"negative width", func(c *AdConfig) { c.Size.Width = -1 }, true},
		{"negative min word count", func(c *AdConfig) { c.DisplayConditions.MinWordCount = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := storeConfig("x", true)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
