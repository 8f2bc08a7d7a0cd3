package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/services"
)

// EnhancePlanResponse for POST /api/ai/enhance-plan/{projectId}.
type EnhancePlanResponse struct {
	EnhancedPlan string `json:"enhancedPlan"`
}

// AIHandler exposes the AI collaborator endpoints.
type AIHandler struct {
	recommendations services.RecommendationService
	logger          *zap.Logger
}

// NewAIHandler creates a new AI handler.
func NewAIHandler(recommendations services.RecommendationService, logger *zap.Logger) *AIHandler {
	return &AIHandler{recommendations: recommendations, logger: logger}
}

// RegisterRoutes registers the AI handler's routes on the given mux.
func (h *AIHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/ai/recommendations/{projectId}", h.Recommendations)
	mux.HandleFunc("POST /api/ai/enhance-plan/{projectId}", h.EnhancePlan)
}

// Recommendations handles POST /api/ai/recommendations/{projectId}.
func (h *AIHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathID(w, r, "projectId", h.logger)
	if !ok {
		return
	}

	recommendations, err := h.recommendations.Generate(r.Context(), projectID)
	if err != nil {
		if err := WriteAppError(w, err, "Project not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, recommendations); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// EnhancePlan handles POST /api/ai/enhance-plan/{projectId}.
func (h *AIHandler) EnhancePlan(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathID(w, r, "projectId", h.logger)
	if !ok {
		return
	}

	plan, err := h.recommendations.EnhancePlan(r.Context(), projectID)
	if err != nil {
		if err := WriteAppError(w, err, "Project not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, EnhancePlanResponse{EnhancedPlan: plan}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
