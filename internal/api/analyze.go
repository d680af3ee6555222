package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/patrickwarner/adweave/internal/logic/extract"
	"github.com/patrickwarner/adweave/internal/models"
	"github.com/patrickwarner/adweave/internal/seo"
)

type analyzeRequest struct {
	Content string `json:"content"`
	BaseURL string `json:"baseUrl"`
}

type analyzeResponse struct {
	Structured models.StructuredContent `json:"structured"`
	SeoReport  models.SeoReport         `json:"seoReport"`
}

// AnalyzeHandler extracts structured content and scores it without touching
// the article.
func (s *Server) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const endpoint = "analyze"
	const method = "POST"

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid json body")
		return
	}
	if req.Content == "" {
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.writeError(w, r, http.StatusBadRequest, CodeMissingParameters, "content is required")
		return
	}
	if len(req.Content) > s.Config.MaxContentBytes {
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.writeError(w, r, http.StatusBadRequest, CodeValidationError, "content exceeds size limit")
		return
	}

	baseURL := req.BaseURL
	if baseURL == "" {
		baseURL = s.Config.BaseURL
	}

	structured := extract.Structured(req.Content, baseURL)
	report := seo.Score(structured)

	s.Metrics.ObserveSeoScore(report.Score)
	s.Metrics.IncrementRequests(endpoint, method, "200")
	s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
	s.writeData(w, r, http.StatusOK, analyzeResponse{Structured: structured, SeoReport: report})
}
