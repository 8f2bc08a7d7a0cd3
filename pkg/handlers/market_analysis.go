package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/repositories"
)

// MarketAnalysisHandler handles market analysis HTTP requests.
type MarketAnalysisHandler struct {
	market repositories.MarketAnalysisRepository
	logger *zap.Logger
}

// NewMarketAnalysisHandler creates a new market analysis handler.
func NewMarketAnalysisHandler(market repositories.MarketAnalysisRepository, logger *zap.Logger) *MarketAnalysisHandler {
	return &MarketAnalysisHandler{market: market, logger: logger}
}

// RegisterRoutes registers the market analysis handler's routes on the
// given mux.
func (h *MarketAnalysisHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/market-analysis", h.Create)
	mux.HandleFunc("GET /api/market-analysis/project/{projectId}", h.GetByProject)
}

// Create handles POST /api/market-analysis.
func (h *MarketAnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var analysis models.MarketAnalysis
	if err := json.NewDecoder(r.Body).Decode(&analysis); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if analysis.ProjectID <= 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_failed", "Valid projectId is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := h.market.Create(r.Context(), &analysis); err != nil {
		h.logger.Error("Failed to create market analysis",
			zap.Int64("project_id", analysis.ProjectID), zap.Error(err))
		if err := WriteAppError(w, err, "Project not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, &analysis); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetByProject handles GET /api/market-analysis/project/{projectId}.
func (h *MarketAnalysisHandler) GetByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathID(w, r, "projectId", h.logger)
	if !ok {
		return
	}

	analysis, err := h.market.GetByProject(r.Context(), projectID)
	if err != nil {
		if err := WriteAppError(w, err, "Market analysis not found for this project"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, analysis); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
