package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/repositories"
)

// FinancialProjectionsHandler handles financial projections HTTP requests.
type FinancialProjectionsHandler struct {
	financial repositories.FinancialProjectionsRepository
	logger    *zap.Logger
}

// NewFinancialProjectionsHandler creates a new financial projections
// handler.
func NewFinancialProjectionsHandler(financial repositories.FinancialProjectionsRepository, logger *zap.Logger) *FinancialProjectionsHandler {
	return &FinancialProjectionsHandler{financial: financial, logger: logger}
}

// RegisterRoutes registers the financial projections handler's routes on
// the given mux.
func (h *FinancialProjectionsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/financial-projections", h.Create)
	mux.HandleFunc("GET /api/financial-projections/project/{projectId}", h.GetByProject)
}

// Create handles POST /api/financial-projections.
func (h *FinancialProjectionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var projections models.FinancialProjections
	if err := json.NewDecoder(r.Body).Decode(&projections); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if msg, ok := validateProjections(&projections); !ok {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_failed", msg); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := h.financial.Create(r.Context(), &projections); err != nil {
		h.logger.Error("Failed to create financial projections",
			zap.Int64("project_id", projections.ProjectID), zap.Error(err))
		if err := WriteAppError(w, err, "Project not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, &projections); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetByProject handles GET /api/financial-projections/project/{projectId}.
func (h *FinancialProjectionsHandler) GetByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathID(w, r, "projectId", h.logger)
	if !ok {
		return
	}

	projections, err := h.financial.GetByProject(r.Context(), projectID)
	if err != nil {
		if err := WriteAppError(w, err, "Financial projections not found for this project"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, projections); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func validateProjections(p *models.FinancialProjections) (string, bool) {
	if p.ProjectID <= 0 {
		return "Valid projectId is required", false
	}
	if len(p.ProjectedRevenue) != models.ProjectedRevenueYears {
		return fmt.Sprintf("projectedRevenue must contain exactly %d yearly amounts", models.ProjectedRevenueYears), false
	}
	for category, share := range p.OperatingCosts {
		if share < 0 {
			return fmt.Sprintf("operating cost %q must not be negative", category), false
		}
	}
	return "", true
}
