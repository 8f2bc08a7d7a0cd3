package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/documents"
	"github.com/venturelens/venture-engine/pkg/services"
)

// DocumentHandler serves project bundles and rendered documents.
type DocumentHandler struct {
	bundles services.BundleService
	logger  *zap.Logger
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(bundles services.BundleService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{bundles: bundles, logger: logger}
}

// RegisterRoutes registers the document handler's routes on the given mux.
func (h *DocumentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/generate/business-plan/{projectId}", h.BusinessPlanBundle)
	mux.HandleFunc("GET /api/generate/pitch-deck/{projectId}", h.PitchDeckBundle)
	mux.HandleFunc("GET /api/documents/business-plan/{projectId}", h.BusinessPlanDocument)
	mux.HandleFunc("GET /api/documents/pitch-deck/{projectId}", h.PitchDeckDocument)
}

// BusinessPlanBundle handles GET /api/generate/business-plan/{projectId}.
// Returns the raw data a business plan is built from, with null satellites
// for steps not yet completed.
func (h *DocumentHandler) BusinessPlanBundle(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathID(w, r, "projectId", h.logger)
	if !ok {
		return
	}

	bundle, err := h.bundles.Get(r.Context(), projectID, false)
	if err != nil {
		h.writeBundleError(w, projectID, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, bundle); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// PitchDeckBundle handles GET /api/generate/pitch-deck/{projectId}.
// Like BusinessPlanBundle but includes evaluation results when present.
func (h *DocumentHandler) PitchDeckBundle(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathID(w, r, "projectId", h.logger)
	if !ok {
		return
	}

	bundle, err := h.bundles.Get(r.Context(), projectID, true)
	if err != nil {
		h.writeBundleError(w, projectID, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, bundle); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// BusinessPlanDocument handles GET /api/documents/business-plan/{projectId}.
// Returns the rendered Markdown plan.
func (h *DocumentHandler) BusinessPlanDocument(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathID(w, r, "projectId", h.logger)
	if !ok {
		return
	}

	bundle, err := h.bundles.Get(r.Context(), projectID, true)
	if err != nil {
		h.writeBundleError(w, projectID, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if _, err := w.Write([]byte(documents.RenderBusinessPlan(bundle, time.Now()))); err != nil {
		h.logger.Error("Failed to write business plan", zap.Error(err))
	}
}

// PitchDeckDocument handles GET /api/documents/pitch-deck/{projectId}.
// Returns the rendered HTML slide deck.
func (h *DocumentHandler) PitchDeckDocument(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathID(w, r, "projectId", h.logger)
	if !ok {
		return
	}

	bundle, err := h.bundles.Get(r.Context(), projectID, true)
	if err != nil {
		h.writeBundleError(w, projectID, err)
		return
	}

	deck, err := documents.RenderPitchDeck(bundle)
	if err != nil {
		h.logger.Error("Failed to render pitch deck",
			zap.Int64("project_id", projectID), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "render_failed", "Failed to generate pitch deck"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(deck)); err != nil {
		h.logger.Error("Failed to write pitch deck", zap.Error(err))
	}
}

func (h *DocumentHandler) writeBundleError(w http.ResponseWriter, projectID int64, err error) {
	h.logger.Error("Failed to load project bundle",
		zap.Int64("project_id", projectID), zap.Error(err))
	if err := WriteAppError(w, err, "Project not found"); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
