package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/patrickwarner/adweave/internal/logic"
	"github.com/patrickwarner/adweave/internal/logic/extract"
	"github.com/patrickwarner/adweave/internal/middleware"
	"github.com/patrickwarner/adweave/internal/models"
	"github.com/patrickwarner/adweave/internal/seo"
)

type enhanceRequest struct {
	Content       string                      `json:"content"`
	Meta          *models.ArticleMeta         `json:"meta"`
	Configs       []models.AdConfig           `json:"configs"`
	AutoPlacement *models.AutoPlacementConfig `json:"autoPlacement"`
	Preview       bool                        `json:"preview"`
	Optimize      bool                        `json:"optimize"`
}

type enhanceResponse struct {
	EnhancedContent string                    `json:"enhancedContent"`
	InsertedAds     []models.InsertedAd       `json:"insertedAds"`
	Summary         models.InsertionSummary   `json:"summary"`
	SeoReport       models.SeoReport          `json:"seoReport"`
	Optimization    *models.OptimizationStats `json:"optimization,omitempty"`
}

// EnhanceHandler runs the full enhancement pipeline on one article: ad
// insertion, optional micro-optimizations, and quality scoring.
func (s *Server) EnhanceHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const endpoint = "enhance"
	const method = "POST"

	logger := middleware.LoggerFromRequest(r, s.Logger)

	// The pipeline itself is total, but ad code and rule sets come from
	// callers; a panic must not take the process down.
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("enhance panic", zap.Any("panic", rec))
			s.Metrics.IncrementRequests(endpoint, method, "500")
			s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
			s.writeError(w, r, http.StatusInternalServerError, CodeInternalError, "internal error")
		}
	}()

	var req enhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid json body")
		return
	}

	if req.Content == "" || req.Meta == nil || req.Meta.Title == "" {
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.writeError(w, r, http.StatusBadRequest, CodeMissingParameters, "content and meta.title are required")
		return
	}
	if len(req.Content) > s.Config.MaxContentBytes {
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.writeError(w, r, http.StatusBadRequest, CodeValidationError, "content exceeds size limit")
		return
	}
	for i := range req.Configs {
		if err := req.Configs[i].Validate(); err != nil {
			s.Metrics.IncrementRequests(endpoint, method, "400")
			s.writeError(w, r, http.StatusBadRequest, CodeValidationError, err.Error())
			return
		}
	}

	meta := *req.Meta
	if meta.WordCount <= 0 {
		meta.WordCount = extract.CountWords(req.Content)
	}

	configs := req.Configs
	if configs == nil {
		configs = s.Store.Active()
	}
	if req.AutoPlacement != nil && req.AutoPlacement.Enabled {
		configs = append(configs, logic.GenerateAutoConfigs(meta, req.AutoPlacement.Rules)...)
	}

	opts := logic.InsertOptions{
		Preview: req.Preview,
		Device:  logic.ResolveDeviceType(r.UserAgent()),
	}
	result := logic.InsertAds(configs, req.Content, meta, opts)

	resp := enhanceResponse{
		EnhancedContent: result.EnhancedContent,
		InsertedAds:     result.InsertedAds,
		Summary:         result.Summary,
	}

	if req.Optimize {
		optimized, stats := logic.OptimizeContent(resp.EnhancedContent, meta.Title)
		resp.EnhancedContent = optimized
		resp.Optimization = &stats
	}

	resp.SeoReport = seo.Score(extract.Structured(resp.EnhancedContent, s.Config.BaseURL))

	for _, ad := range result.InsertedAds {
		s.Metrics.IncrementAdsInserted(string(ad.Placement))
	}
	if skipped := len(configs) - len(result.InsertedAds); skipped > 0 {
		for i := 0; i < skipped; i++ {
			s.Metrics.IncrementPlacementSkips(endpoint)
		}
	}
	s.Metrics.ObserveSeoScore(resp.SeoReport.Score)

	logger.Info("article enhanced",
		zap.Int("configs", len(configs)),
		zap.Int("inserted", len(result.InsertedAds)),
		zap.Int("seo_score", resp.SeoReport.Score),
		zap.Bool("preview", req.Preview))

	s.Metrics.IncrementRequests(endpoint, method, "200")
	s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
	s.writeData(w, r, http.StatusOK, resp)
}
