package logic

import (
	"github.com/patrickwarner/adweave/internal/logic/placement"
	"github.com/patrickwarner/adweave/internal/logic/render"
	"github.com/patrickwarner/adweave/internal/models"
)

// Illustrative per-placement revenue estimates. These are static lookup
// values for reporting, not bidding data.
var placementRevenue = map[models.Placement]float64{
	models.PlacementHeader:            0.50,
	models.PlacementFooter:            0.20,
	models.PlacementInContent:         0.80,
	models.PlacementBetweenParagraphs: 0.60,
	models.PlacementSidebar:           0.30,
	models.PlacementAfterTitle:        0.40,
	models.PlacementBeforeConclusion:  0.35,
	models.PlacementFloating:          0.70,
}

const defaultRevenue = 0.25

// EstimatedRevenue returns the static revenue estimate for a placement.
func EstimatedRevenue(p models.Placement) float64 {
	if rev, ok := placementRevenue[p]; ok {
		return rev
	}
	return defaultRevenue
}

// InsertOptions adjusts one orchestrator run. The zero value renders real ad
// code and applies no device filtering.
type InsertOptions struct {
	// Preview renders placeholder boxes instead of real ad code.
	Preview bool
	// Device, when non-empty, additionally enforces each config's device
	// restriction.
	Device string
}

// InsertAds runs the insertion pipeline: for each config in input order it
// checks eligibility, renders markup, and resolves a placement against the
// current working content. Ineligible configs and placement failures are
// skipped without aborting the run. The function is pure; identical inputs
// always yield identical outputs.
//
// Re-invoking on already-enhanced content duplicates header, footer,
// after-title and before-conclusion insertions, since no duplicate markers
// are tracked. Callers must invoke exactly once per raw draft.
func InsertAds(configs []models.AdConfig, content string, meta models.ArticleMeta, opts InsertOptions) models.InsertionResult {
	working := content
	inserted := make([]models.InsertedAd, 0, len(configs))
	var totalRevenue float64

	for _, cfg := range configs {
		if !IsEligibleForDevice(cfg, meta, opts.Device) {
			continue
		}

		markup := render.Render(cfg, opts.Preview)
		res := placement.Resolve(cfg.Placement, cfg.ID, working, markup)
		if !res.Success {
			continue
		}

		working = res.Content
		revenue := EstimatedRevenue(cfg.Placement)
		inserted = append(inserted, models.InsertedAd{
			AdID:             cfg.ID,
			Placement:        cfg.Placement,
			Position:         res.Position,
			EstimatedRevenue: revenue,
		})
		totalRevenue += revenue
	}

	density := 0.0
	if meta.WordCount > 0 {
		density = float64(len(inserted)) / float64(meta.WordCount) * 1000
	}

	return models.InsertionResult{
		EnhancedContent: working,
		InsertedAds:     inserted,
		Summary: models.InsertionSummary{
			TotalAdsInserted:      len(inserted),
			EstimatedTotalRevenue: totalRevenue,
			AdDensity:             density,
		},
	}
}
