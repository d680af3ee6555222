package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/patrickwarner/adweave/internal/logic/render"
	"github.com/patrickwarner/adweave/internal/models"
)

type previewRequest struct {
	AdID   string           `json:"adId"`
	Config *models.AdConfig `json:"config"`
	// Mode selects the rendering: "preview" (default) produces the
	// placeholder box, "render" the real ad markup.
	Mode string `json:"mode"`
}

type previewResponse struct {
	AdID   string `json:"adId"`
	Markup string `json:"markup"`
}

// PreviewHandler renders markup for a single ad config, looked up by id or
// supplied inline.
func (s *Server) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const endpoint = "preview"
	const method = "POST"

	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid json body")
		return
	}

	var preview bool
	switch req.Mode {
	case "", "preview":
		preview = true
	case "render":
		preview = false
	default:
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.writeError(w, r, http.StatusBadRequest, CodeInvalidAction, "mode must be \"preview\" or \"render\"")
		return
	}

	var cfg models.AdConfig
	switch {
	case req.Config != nil:
		cfg = *req.Config
		if err := cfg.Validate(); err != nil {
			s.Metrics.IncrementRequests(endpoint, method, "400")
			s.writeError(w, r, http.StatusBadRequest, CodeValidationError, err.Error())
			return
		}
	case req.AdID != "":
		var err error
		cfg, err = s.Store.Get(req.AdID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				s.Metrics.IncrementRequests(endpoint, method, "404")
				s.writeError(w, r, http.StatusNotFound, CodeAdNotFound, "ad config not found")
				return
			}
			s.Metrics.IncrementRequests(endpoint, method, "500")
			s.writeError(w, r, http.StatusInternalServerError, CodeInternalError, "internal error")
			return
		}
	default:
		s.Metrics.IncrementRequests(endpoint, method, "400")
		s.writeError(w, r, http.StatusBadRequest, CodeMissingParameters, "adId or config is required")
		return
	}

	markup := render.Render(cfg, preview)

	s.Metrics.IncrementRequests(endpoint, method, "200")
	s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
	s.writeData(w, r, http.StatusOK, previewResponse{AdID: cfg.ID, Markup: markup})
}
