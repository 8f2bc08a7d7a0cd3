package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/repositories"
	"github.com/venturelens/venture-engine/pkg/scoring"
)

// EvaluationService scores projects and stores the results.
type EvaluationService interface {
	// CreateFromAnswers computes scores from the five wizard answers and
	// stores them. Returns ErrValidation for missing or out-of-range
	// answers, ErrConflict if the project was already evaluated, and
	// ErrNotFound if the project does not exist.
	CreateFromAnswers(ctx context.Context, projectID int64, answers scoring.Answers) (*models.EvaluationResults, error)

	// CreateFromScores stores caller-supplied scores. A zero OverallScore is
	// derived from the three sub-scores; a supplied one is kept as-is.
	CreateFromScores(ctx context.Context, results *models.EvaluationResults) error

	// GetByProject returns the stored evaluation for a project.
	GetByProject(ctx context.Context, projectID int64) (*models.EvaluationResults, error)
}

type evaluationService struct {
	evaluations repositories.EvaluationResultsRepository
	logger      *zap.Logger
}

// NewEvaluationService creates an evaluation service.
func NewEvaluationService(evaluations repositories.EvaluationResultsRepository, logger *zap.Logger) EvaluationService {
	return &evaluationService{evaluations: evaluations, logger: logger}
}

func (s *evaluationService) CreateFromAnswers(ctx context.Context, projectID int64, answers scoring.Answers) (*models.EvaluationResults, error) {
	computed, err := scoring.Compute(answers)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	results := &models.EvaluationResults{
		ProjectID:       projectID,
		MarketScore:     computed.MarketScore,
		ProductScore:    computed.ProductScore,
		FinancialScore:  computed.FinancialScore,
		OverallScore:    computed.OverallScore,
		Strengths:       computed.Strengths,
		Weaknesses:      computed.Weaknesses,
		Recommendations: computed.Recommendations,
	}

	if err := s.evaluations.Create(ctx, results); err != nil {
		return nil, err
	}

	s.logger.Info("evaluation computed from answers",
		zap.Int64("project_id", projectID),
		zap.Int("overall_score", results.OverallScore))

	return results, nil
}

func (s *evaluationService) CreateFromScores(ctx context.Context, results *models.EvaluationResults) error {
	for name, score := range map[string]int{
		"marketScore":    results.MarketScore,
		"productScore":   results.ProductScore,
		"financialScore": results.FinancialScore,
	} {
		if score < 0 || score > 100 {
			return fmt.Errorf("%w: %s %d is outside the range 0-100", apperrors.ErrValidation, name, score)
		}
	}
	if results.OverallScore < 0 || results.OverallScore > 100 {
		return fmt.Errorf("%w: overallScore %d is outside the range 0-100", apperrors.ErrValidation, results.OverallScore)
	}

	if results.OverallScore == 0 {
		results.OverallScore = scoring.OverallFromSubScores(
			results.MarketScore, results.ProductScore, results.FinancialScore)
	}

	if err := s.evaluations.Create(ctx, results); err != nil {
		return err
	}

	s.logger.Info("evaluation stored from supplied scores",
		zap.Int64("project_id", results.ProjectID),
		zap.Int("overall_score", results.OverallScore))

	return nil
}

func (s *evaluationService) GetByProject(ctx context.Context, projectID int64) (*models.EvaluationResults, error) {
	return s.evaluations.GetByProject(ctx, projectID)
}

var _ EvaluationService = (*evaluationService)(nil)
