package logic

import (
	"fmt"

	"github.com/patrickwarner/adweave/internal/models"
)

// autoAdCode marks synthetic slots; the publishing layer swaps it for a real
// snippet when the placeholder is filled.
const autoAdCode = "<!-- auto-placement slot -->"

// GenerateAutoConfigs synthesizes placeholder ad configs from word-count
// bracket rules. Only the first rule whose inclusive range contains the
// article word count applies; rules are not cumulative. The first synthetic
// config uses in-content placement, all subsequent ones between-paragraphs.
// IDs are deterministic so repeated runs over the same inputs produce
// identical configs.
func GenerateAutoConfigs(meta models.ArticleMeta, rules []models.AutoPlacementRule) []models.AdConfig {
	for _, rule := range rules {
		if meta.WordCount < rule.MinWords || meta.WordCount > rule.MaxWords {
			continue
		}

		adType := models.AdTypeDisplay
		if len(rule.RecommendedAdTypes) > 0 {
			adType = rule.RecommendedAdTypes[0]
		}

		configs := make([]models.AdConfig, 0, rule.RecommendedAdCount)
		for i := 0; i < rule.RecommendedAdCount; i++ {
			pl := models.PlacementInContent
			if i > 0 {
				pl = models.PlacementBetweenParagraphs
			}
			configs = append(configs, models.AdConfig{
				ID:        fmt.Sprintf("auto-%s-%d", pl, i+1),
				Name:      fmt.Sprintf("自動配置広告 %d", i+1),
				Type:      adType,
				Placement: pl,
				AdCode:    autoAdCode,
				Size:      models.AdSize{Name: "responsive"},
				IsActive:  true,
			})
		}
		return configs
	}
	return nil
}
