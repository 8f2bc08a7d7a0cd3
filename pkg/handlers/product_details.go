package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/repositories"
)

// ProductDetailsHandler handles product details HTTP requests.
type ProductDetailsHandler struct {
	product repositories.ProductDetailsRepository
	logger  *zap.Logger
}

// NewProductDetailsHandler creates a new product details handler.
func NewProductDetailsHandler(product repositories.ProductDetailsRepository, logger *zap.Logger) *ProductDetailsHandler {
	return &ProductDetailsHandler{product: product, logger: logger}
}

// RegisterRoutes registers the product details handler's routes on the
// given mux.
func (h *ProductDetailsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/product-details", h.Create)
	mux.HandleFunc("GET /api/product-details/project/{projectId}", h.GetByProject)
}

// Create handles POST /api/product-details.
func (h *ProductDetailsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var details models.ProductDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if details.ProjectID <= 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_failed", "Valid projectId is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := h.product.Create(r.Context(), &details); err != nil {
		h.logger.Error("Failed to create product details",
			zap.Int64("project_id", details.ProjectID), zap.Error(err))
		if err := WriteAppError(w, err, "Project not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, &details); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetByProject handles GET /api/product-details/project/{projectId}.
func (h *ProductDetailsHandler) GetByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathID(w, r, "projectId", h.logger)
	if !ok {
		return
	}

	details, err := h.product.GetByProject(r.Context(), projectID)
	if err != nil {
		if err := WriteAppError(w, err, "Product details not found for this project"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, details); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
