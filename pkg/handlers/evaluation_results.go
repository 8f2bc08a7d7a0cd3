package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/scoring"
	"github.com/venturelens/venture-engine/pkg/services"
)

// AnswerSubmission is one questionnaire answer in a scoring request.
type AnswerSubmission struct {
	QuestionID string `json:"questionId"`
	Answer     int    `json:"answer"`
}

// CreateEvaluationRequest for POST /api/evaluation-results. A request
// carries either the five wizard answers, which the server scores, or
// pre-computed scores.
type CreateEvaluationRequest struct {
	ProjectID int64              `json:"projectId"`
	Answers   []AnswerSubmission `json:"answers"`

	MarketScore     int      `json:"marketScore"`
	ProductScore    int      `json:"productScore"`
	FinancialScore  int      `json:"financialScore"`
	OverallScore    int      `json:"overallScore"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// EvaluationHandler handles evaluation results and the question catalog.
type EvaluationHandler struct {
	evaluations services.EvaluationService
	logger      *zap.Logger
}

// NewEvaluationHandler creates a new evaluation handler.
func NewEvaluationHandler(evaluations services.EvaluationService, logger *zap.Logger) *EvaluationHandler {
	return &EvaluationHandler{evaluations: evaluations, logger: logger}
}

// RegisterRoutes registers the evaluation handler's routes on the given
// mux.
func (h *EvaluationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/evaluation-results", h.Create)
	mux.HandleFunc("GET /api/evaluation-results/project/{projectId}", h.GetByProject)
	mux.HandleFunc("GET /api/evaluation-questions", h.Questions)
}

// Create handles POST /api/evaluation-results.
func (h *EvaluationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if req.ProjectID <= 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_failed", "Valid projectId is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	var (
		results *models.EvaluationResults
		err     error
	)

	if len(req.Answers) > 0 {
		answers := make(scoring.Answers, len(req.Answers))
		for _, a := range req.Answers {
			answers[scoring.QuestionID(a.QuestionID)] = a.Answer
		}
		results, err = h.evaluations.CreateFromAnswers(r.Context(), req.ProjectID, answers)
	} else {
		results = &models.EvaluationResults{
			ProjectID:       req.ProjectID,
			MarketScore:     req.MarketScore,
			ProductScore:    req.ProductScore,
			FinancialScore:  req.FinancialScore,
			OverallScore:    req.OverallScore,
			Strengths:       req.Strengths,
			Weaknesses:      req.Weaknesses,
			Recommendations: req.Recommendations,
		}
		err = h.evaluations.CreateFromScores(r.Context(), results)
	}
	if err != nil {
		if err := WriteAppError(w, err, "Project not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, results); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetByProject handles GET /api/evaluation-results/project/{projectId}.
func (h *EvaluationHandler) GetByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathID(w, r, "projectId", h.logger)
	if !ok {
		return
	}

	results, err := h.evaluations.GetByProject(r.Context(), projectID)
	if err != nil {
		if err := WriteAppError(w, err, "Evaluation results not found for this project"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, results); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Questions handles GET /api/evaluation-questions. The catalog is static.
func (h *EvaluationHandler) Questions(w http.ResponseWriter, r *http.Request) {
	catalog, err := scoring.Questions()
	if err != nil {
		h.logger.Error("Failed to load question catalog", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Internal Server Error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, catalog); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
