package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/repositories"
)

// CreateProjectRequest for POST /api/projects.
type CreateProjectRequest struct {
	UserID        int64    `json:"userId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Industry      string   `json:"industry"`
	Stage         string   `json:"stage"`
	TargetMarkets []string `json:"targetMarkets"`
	TeamSize      string   `json:"teamSize"`
}

// PutProgressRequest for PUT /api/projects/{id}/progress.
type PutProgressRequest struct {
	CurrentStep    string   `json:"currentStep"`
	CompletedSteps []string `json:"completedSteps"`
}

// ProjectHandler handles project HTTP requests, including the wizard
// progress sub-resource.
type ProjectHandler struct {
	projects repositories.ProjectRepository
	progress repositories.WizardProgressRepository
	logger   *zap.Logger
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projects repositories.ProjectRepository, progress repositories.WizardProgressRepository, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, progress: progress, logger: logger}
}

// RegisterRoutes registers the project handler's routes on the given mux.
func (h *ProjectHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/projects", h.Create)
	mux.HandleFunc("GET /api/projects", h.List)
	mux.HandleFunc("GET /api/projects/{id}", h.Get)
	mux.HandleFunc("PATCH /api/projects/{id}", h.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", h.Delete)
	mux.HandleFunc("GET /api/projects/{id}/progress", h.GetProgress)
	mux.HandleFunc("PUT /api/projects/{id}/progress", h.PutProgress)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if req.Name == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_failed", "name is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	project := &models.Project{
		UserID:        req.UserID,
		Name:          req.Name,
		Description:   req.Description,
		Industry:      req.Industry,
		Stage:         req.Stage,
		TargetMarkets: req.TargetMarkets,
		TeamSize:      req.TeamSize,
	}

	if err := h.projects.Create(r.Context(), project); err != nil {
		h.logger.Error("Failed to create project", zap.Error(err))
		if err := WriteAppError(w, err, "User not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, project); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// List handles GET /api/projects?userId=N.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil || userID <= 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Valid userId is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	projects, err := h.projects.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list projects", zap.Int64("user_id", userID), zap.Error(err))
		if err := WriteAppError(w, err, "Projects not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, projects); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	project, err := h.projects.Get(r.Context(), id)
	if err != nil {
		if err := WriteAppError(w, err, "Project not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, project); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Update handles PATCH /api/projects/{id}. Only the supplied fields change.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var update models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	project, err := h.projects.Get(r.Context(), id)
	if err != nil {
		if err := WriteAppError(w, err, "Project not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	update.Apply(project)

	if err := h.projects.Update(r.Context(), project); err != nil {
		h.logger.Error("Failed to update project", zap.Int64("project_id", id), zap.Error(err))
		if err := WriteAppError(w, err, "Project not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, project); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /api/projects/{id}. Satellite records go with the
// project via cascading deletes.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.projects.Delete(r.Context(), id); err != nil {
		if err := WriteAppError(w, err, "Project not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetProgress handles GET /api/projects/{id}/progress.
func (h *ProjectHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	progress, err := h.progress.Get(r.Context(), id)
	if err != nil {
		if err := WriteAppError(w, err, "Wizard progress not found for this project"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, progress); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// PutProgress handles PUT /api/projects/{id}/progress.
func (h *ProjectHandler) PutProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req PutProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if !models.IsWizardStep(req.CurrentStep) {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_failed", "currentStep must be a known wizard step"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	for _, step := range req.CompletedSteps {
		if !models.IsWizardStep(step) {
			if err := ErrorResponse(w, http.StatusBadRequest, "validation_failed", "completedSteps contains an unknown wizard step"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
	}

	progress := &models.WizardProgress{
		ProjectID:      id,
		CurrentStep:    req.CurrentStep,
		CompletedSteps: req.CompletedSteps,
	}

	if err := h.progress.Put(r.Context(), progress); err != nil {
		if err := WriteAppError(w, err, "Project not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, progress); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
