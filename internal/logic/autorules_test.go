package logic

import (
	"testing"

	"github.com/patrickwarner/adweave/internal/models"
)

func TestGenerateAutoConfigsFirstRuleWins(t *testing.T) {
	rules := []models.AutoPlacementRule{
		{MinWords: 0, MaxWords: 999, RecommendedAdCount: 1},
		{MinWords: 500, MaxWords: 2000, RecommendedAdCount: 3},
	}
	// 800 falls in both brackets; only the first rule applies.
	configs := GenerateAutoConfigs(models.ArticleMeta{WordCount: 800}, rules)
	if len(configs) != 1 {
		t.Fatalf("expected 1 config from the first matching rule, got %d", len(configs))
	}
}

func TestGenerateAutoConfigsPlacementSequence(t *testing.T) {
	rules := []models.AutoPlacementRule{
		{MinWords: 1000, MaxWords: 5000, RecommendedAdCount: 3, RecommendedAdTypes: []models.AdType{models.AdTypeResponsive}},
	}
	configs := GenerateAutoConfigs(models.ArticleMeta{WordCount: 2500}, rules)
	if len(configs) != 3 {
		t.Fatalf("expected 3 configs, got %d", len(configs))
	}
	if configs[0].Placement != models.PlacementInContent {
		t.Errorf("first config must be in-content, got %s", configs[0].Placement)
	}
	for i, cfg := range configs[1:] {
		if cfg.Placement != models.PlacementBetweenParagraphs {
			t.Errorf("config %d must be between-paragraphs, got %s", i+1, cfg.Placement)
		}
	}
	for _, cfg := range configs {
		if cfg.Type != models.AdTypeResponsive {
			t.Errorf("type must come from the rule, got %s", cfg.Type)
		}
		if !cfg.IsActive {
			t.Errorf("synthetic configs must be active")
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("synthetic config invalid: %v", err)
		}
	}
}

func TestGenerateAutoConfigsDefaults(t *testing.T) {
	rules := []models.AutoPlacementRule{{MinWords: 0, MaxWords: 100, RecommendedAdCount: 1}}
	configs := GenerateAutoConfigs(models.ArticleMeta{WordCount: 50}, rules)
	if len(configs) != 1 || configs[0].Type != models.AdTypeDisplay {
		t.Fatalf("missing recommended types must default to display: %+v", configs)
	}
}

func TestGenerateAutoConfigsNoMatch(t *testing.T) {
	rules := []models.AutoPlacementRule{{MinWords: 1000, MaxWords: 2000, RecommendedAdCount: 2}}
	if configs := GenerateAutoConfigs(models.ArticleMeta{WordCount: 10}, rules); configs != nil {
		t.Errorf("expected nil, got %+v", configs)
	}
}
