package services

import (
	"context"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/models"
)

// Mock repositories for testing. Each returns its configured record or
// error; Create fills in a fake id.

type mockProjectRepository struct {
	project *models.Project
	err     error
}

func (m *mockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	project.ID = 1
	return m.err
}

func (m *mockProjectRepository) Get(ctx context.Context, id int64) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.project == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.project, nil
}

func (m *mockProjectRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Project, error) {
	if m.project == nil {
		return nil, m.err
	}
	return []*models.Project{m.project}, m.err
}

func (m *mockProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return m.err
}

func (m *mockProjectRepository) Delete(ctx context.Context, id int64) error {
	return m.err
}

type mockMarketAnalysisRepository struct {
	analysis *models.MarketAnalysis
	err      error
}

func (m *mockMarketAnalysisRepository) Create(ctx context.Context, analysis *models.MarketAnalysis) error {
	analysis.ID = 1
	return m.err
}

func (m *mockMarketAnalysisRepository) GetByProject(ctx context.Context, projectID int64) (*models.MarketAnalysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.analysis == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.analysis, nil
}

func (m *mockMarketAnalysisRepository) Update(ctx context.Context, analysis *models.MarketAnalysis) error {
	return m.err
}

type mockProductDetailsRepository struct {
	details *models.ProductDetails
	err     error
}

func (m *mockProductDetailsRepository) Create(ctx context.Context, details *models.ProductDetails) error {
	details.ID = 1
	return m.err
}

func (m *mockProductDetailsRepository) GetByProject(ctx context.Context, projectID int64) (*models.ProductDetails, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.details == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.details, nil
}

func (m *mockProductDetailsRepository) Update(ctx context.Context, details *models.ProductDetails) error {
	return m.err
}

type mockFinancialProjectionsRepository struct {
	projections *models.FinancialProjections
	err         error
}

func (m *mockFinancialProjectionsRepository) Create(ctx context.Context, projections *models.FinancialProjections) error {
	projections.ID = 1
	return m.err
}

func (m *mockFinancialProjectionsRepository) GetByProject(ctx context.Context, projectID int64) (*models.FinancialProjections, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.projections == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.projections, nil
}

func (m *mockFinancialProjectionsRepository) Update(ctx context.Context, projections *models.FinancialProjections) error {
	return m.err
}

type mockEvaluationResultsRepository struct {
	results   *models.EvaluationResults
	createErr error
	getErr    error
	created   *models.EvaluationResults
}

func (m *mockEvaluationResultsRepository) Create(ctx context.Context, results *models.EvaluationResults) error {
	if m.createErr != nil {
		return m.createErr
	}
	results.ID = 1
	m.created = results
	return nil
}

func (m *mockEvaluationResultsRepository) GetByProject(ctx context.Context, projectID int64) (*models.EvaluationResults, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.results == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.results, nil
}
