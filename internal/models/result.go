package models

// InsertedAd records one successful insertion. Position is a character
// (rune) offset into the content string as it existed at the moment of that
// insertion; offsets from earlier insertions are not adjusted as the string
// grows.
type InsertedAd struct {
	AdID             string    `json:"adId"`
	Placement        Placement `json:"placement"`
	Position         int       `json:"position"`
	EstimatedRevenue float64   `json:"estimatedRevenue"`
}

// InsertionSummary aggregates one orchestrator run. AdDensity is inserted
// ads per 1000 characters and is zero when the article word count is zero.
type InsertionSummary struct {
	TotalAdsInserted      int     `json:"totalAdsInserted"`
	EstimatedTotalRevenue float64 `json:"estimatedTotalRevenue"`
	AdDensity             float64 `json:"adDensity"`
}

// InsertionResult is the full output of one orchestrator run.
type InsertionResult struct {
	EnhancedContent string           `json:"enhancedContent"`
	InsertedAds     []InsertedAd     `json:"insertedAds"`
	Summary         InsertionSummary `json:"summary"`
}

// SeoReport is a deterministic quality score in [0,100] with itemized
// issues. Issues and Recommendations correspond pairwise, in deduction
// order.
type SeoReport struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// OptimizationStats counts the accessibility micro-optimizations applied to
// article content.
type OptimizationStats struct {
	ImagesOptimized int `json:"imagesOptimized"`
	LinksOptimized  int `json:"linksOptimized"`
}
