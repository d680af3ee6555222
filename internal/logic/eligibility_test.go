package logic

import (
	"testing"

	"github.com/patrickwarner/adweave/internal/models"
)

func activeConfig() models.AdConfig {
	return models.AdConfig{
		ID:        "ad-1",
		Name:      "テスト広告",
		Type:      models.AdTypeDisplay,
		Placement: models.PlacementInContent,
		IsActive:  true,
	}
}

func TestIsEligibleInactiveAlwaysFails(t *testing.T) {
	// isActive=false loses regardless of every other field.
	cfg := activeConfig()
	cfg.IsActive = false
	metas := []models.ArticleMeta{
		{},
		{WordCount: 100000},
		{Category: "tech", Keywords: []string{"go"}, WordCount: 5000},
	}
	for _, meta := range metas {
		if IsEligible(cfg, meta) {
			t.Errorf("inactive config must never be eligible (meta %+v)", meta)
		}
	}
}

func TestIsEligibleChain(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*models.AdConfig)
		meta models.ArticleMeta
		want bool
	}{
		{
			name: "no conditions",
			mod:  func(c *models.AdConfig) {},
			meta: models.ArticleMeta{WordCount: 1},
			want: true,
		},
		{
			name: "min word count not reached",
			mod: func(c *models.AdConfig) {
				c.DisplayConditions.MinWordCount = 500
			},
			meta: models.ArticleMeta{WordCount: 499},
			want: false,
		},
		{
			name: "min word count met exactly",
			mod: func(c *models.AdConfig) {
				c.DisplayConditions.MinWordCount = 500
			},
			meta: models.ArticleMeta{WordCount: 500},
			want: true,
		},
		{
			name: "category in restriction",
			mod: func(c *models.AdConfig) {
				c.DisplayConditions.CategoryRestriction = []string{"tech", "news"}
			},
			meta: models.ArticleMeta{Category: "news"},
			want: true,
		},
		{
			name: "category outside restriction",
			mod: func(c *models.AdConfig) {
				c.DisplayConditions.CategoryRestriction = []string{"tech"}
			},
			meta: models.ArticleMeta{Category: "cooking"},
			want: false,
		},
		{
			name: "restriction set but article has no category",
			mod: func(c *models.AdConfig) {
				c.DisplayConditions.CategoryRestriction = []string{"tech"}
			},
			meta: models.ArticleMeta{},
			want: true,
		},
		{
			name: "excluded keyword present",
			mod: func(c *models.AdConfig) {
				c.DisplayConditions.ExcludeKeywords = []string{"ギャンブル"}
			},
			meta: models.ArticleMeta{Keywords: []string{"投資", "ギャンブル"}},
			want: false,
		},
		{
			name: "excluded keyword is exact match only",
			mod: func(c *models.AdConfig) {
				c.DisplayConditions.ExcludeKeywords = []string{"ギャンブル"}
			},
			meta: models.ArticleMeta{Keywords: []string{"ギャンブル依存症対策"}},
			want: true,
		},
		{
			name: "exclusions set but article has no keywords",
			mod: func(c *models.AdConfig) {
				c.DisplayConditions.ExcludeKeywords = []string{"ng"}
			},
			meta: models.ArticleMeta{},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := activeConfig()
			tc.mod(&cfg)
			if got := IsEligible(cfg, tc.meta); got != tc.want {
				t.Errorf("IsEligible = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsEligibleForDevice(t *testing.T) {
	cfg := activeConfig()
	cfg.DisplayConditions.DeviceRestriction = "mobile"
	meta := models.ArticleMeta{WordCount: 100}

	if !IsEligibleForDevice(cfg, meta, "mobile") {
		t.Error("matching device must pass")
	}
	if !IsEligibleForDevice(cfg, meta, "Mobile") {
		t.Error("device match is case-insensitive")
	}
	if IsEligibleForDevice(cfg, meta, "desktop") {
		t.Error("mismatched device must fail")
	}
	// no device context disables the restriction entirely
	if !IsEligibleForDevice(cfg, meta, "") {
		t.Error("empty device context must fall back to the base chain")
	}
}

func TestResolveDeviceType(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want string
	}{
		{"desktop chrome", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4896.75 Safari/537.36", "desktop"},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 15_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.0 Mobile/15E148 Safari/605.1.15", "mobile"},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 15_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.0 Mobile/15E148 Safari/605.1.15", "tablet"},
		{"empty", "", ""},
		{"bogus", "completely-bogus-ua-string-12345", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveDeviceType(tc.ua); got != tc.want {
				t.Errorf("ResolveDeviceType(%q) = %q, want %q", tc.ua, got, tc.want)
			}
		})
	}
}
