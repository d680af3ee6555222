package logic

import (
	"strings"

	"github.com/patrickwarner/adweave/internal/models"
)

// IsEligible decides whether an ad configuration may display for an article.
// Checks run as an ordered short-circuit chain; the first failing check
// decides. An unset condition always passes, as does a restriction whose
// counterpart is absent from the article metadata. Side-effect-free and safe
// to call concurrently.
func IsEligible(cfg models.AdConfig, meta models.ArticleMeta) bool {
	if !cfg.IsActive {
		return false
	}

	dc := cfg.DisplayConditions

	if dc.MinWordCount > 0 && meta.WordCount < dc.MinWordCount {
		return false
	}

	if len(dc.CategoryRestriction) > 0 && meta.Category != "" {
		allowed := false
		for _, cat := range dc.CategoryRestriction {
			if cat == meta.Category {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	if len(dc.ExcludeKeywords) > 0 && len(meta.Keywords) > 0 {
		for _, excluded := range dc.ExcludeKeywords {
			for _, kw := range meta.Keywords {
				if kw == excluded {
					return false
				}
			}
		}
	}

	return true
}

// IsEligibleForDevice runs the standard eligibility chain, then applies the
// config's device restriction against the resolved device class. An empty
// device context or an unset restriction passes, so callers without a
// User-Agent see exactly the IsEligible behavior.
func IsEligibleForDevice(cfg models.AdConfig, meta models.ArticleMeta, device string) bool {
	if !IsEligible(cfg, meta) {
		return false
	}
	restriction := cfg.DisplayConditions.DeviceRestriction
	if device == "" || restriction == "" {
		return true
	}
	return strings.EqualFold(restriction, device)
}
