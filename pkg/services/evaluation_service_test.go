package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/scoring"
)

func TestEvaluationService_CreateFromAnswers(t *testing.T) {
	repo := &mockEvaluationResultsRepository{}
	svc := NewEvaluationService(repo, zap.NewNop())

	results, err := svc.CreateFromAnswers(context.Background(), 42, scoring.Answers{
		scoring.MarketPotential:        5,
		scoring.CompetitionIntensity:   1,
		scoring.ProductDifferentiation: 5,
		scoring.ScalabilityPotential:   5,
		scoring.TeamExperience:         5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), results.ProjectID)
	assert.Equal(t, 90, results.MarketScore)
	assert.Equal(t, 100, results.ProductScore)
	assert.Equal(t, 100, results.FinancialScore)
	assert.Equal(t, 97, results.OverallScore)
	require.NotNil(t, repo.created)
	assert.Equal(t, results, repo.created)
}

func TestEvaluationService_CreateFromAnswers_InvalidAnswers(t *testing.T) {
	repo := &mockEvaluationResultsRepository{}
	svc := NewEvaluationService(repo, zap.NewNop())

	results, err := svc.CreateFromAnswers(context.Background(), 42, scoring.Answers{
		scoring.MarketPotential: 3,
	})

	assert.Nil(t, results)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, repo.created, "nothing should be persisted on validation failure")
}

func TestEvaluationService_CreateFromAnswers_AlreadyEvaluated(t *testing.T) {
	repo := &mockEvaluationResultsRepository{createErr: apperrors.ErrConflict}
	svc := NewEvaluationService(repo, zap.NewNop())

	_, err := svc.CreateFromAnswers(context.Background(), 42, scoring.Answers{
		scoring.MarketPotential:        3,
		scoring.CompetitionIntensity:   3,
		scoring.ProductDifferentiation: 3,
		scoring.ScalabilityPotential:   3,
		scoring.TeamExperience:         3,
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestEvaluationService_CreateFromScores_DerivesOverall(t *testing.T) {
	repo := &mockEvaluationResultsRepository{}
	svc := NewEvaluationService(repo, zap.NewNop())

	results := &models.EvaluationResults{
		ProjectID:      42,
		MarketScore:    50,
		ProductScore:   60,
		FinancialScore: 60,
	}
	require.NoError(t, svc.CreateFromScores(context.Background(), results))

	assert.Equal(t, 57, results.OverallScore)
}

func TestEvaluationService_CreateFromScores_KeepsSuppliedOverall(t *testing.T) {
	repo := &mockEvaluationResultsRepository{}
	svc := NewEvaluationService(repo, zap.NewNop())

	// A supplied overall score may diverge from the derived average.
	results := &models.EvaluationResults{
		ProjectID:      42,
		MarketScore:    50,
		ProductScore:   60,
		FinancialScore: 60,
		OverallScore:   99,
	}
	require.NoError(t, svc.CreateFromScores(context.Background(), results))

	assert.Equal(t, 99, results.OverallScore)
}

func TestEvaluationService_CreateFromScores_RejectsOutOfRange(t *testing.T) {
	repo := &mockEvaluationResultsRepository{}
	svc := NewEvaluationService(repo, zap.NewNop())

	err := svc.CreateFromScores(context.Background(), &models.EvaluationResults{
		ProjectID:   42,
		MarketScore: 120,
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, repo.created)
}

func TestEvaluationService_GetByProject(t *testing.T) {
	stored := &models.EvaluationResults{ID: 1, ProjectID: 42, OverallScore: 70}
	svc := NewEvaluationService(&mockEvaluationResultsRepository{results: stored}, zap.NewNop())

	results, err := svc.GetByProject(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, stored, results)

	empty := NewEvaluationService(&mockEvaluationResultsRepository{}, zap.NewNop())
	_, err = empty.GetByProject(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
