package handlers

import (
	"context"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/scoring"
)

// Mock repositories and services for handler tests.

type mockUserRepo struct {
	user *models.User
	err  error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepo) Get(ctx context.Context, id int64) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.user, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.user == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.user, m.err
}

type mockProjectRepo struct {
	project  *models.Project
	projects []*models.Project
	err      error
	deleted  []int64
}

func (m *mockProjectRepo) Create(ctx context.Context, project *models.Project) error {
	if m.err != nil {
		return m.err
	}
	project.ID = 1
	return nil
}

func (m *mockProjectRepo) Get(ctx context.Context, id int64) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.project == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.project, nil
}

func (m *mockProjectRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Project, error) {
	return m.projects, m.err
}

func (m *mockProjectRepo) Update(ctx context.Context, project *models.Project) error {
	return m.err
}

func (m *mockProjectRepo) Delete(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	if m.project == nil {
		return apperrors.ErrNotFound
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockProgressRepo struct {
	progress *models.WizardProgress
	putErr   error
	saved    *models.WizardProgress
}

func (m *mockProgressRepo) Get(ctx context.Context, projectID int64) (*models.WizardProgress, error) {
	if m.progress == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.progress, nil
}

func (m *mockProgressRepo) Put(ctx context.Context, progress *models.WizardProgress) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.saved = progress
	return nil
}

type mockMarketRepo struct {
	analysis *models.MarketAnalysis
	err      error
}

func (m *mockMarketRepo) Create(ctx context.Context, analysis *models.MarketAnalysis) error {
	if m.err != nil {
		return m.err
	}
	analysis.ID = 1
	return nil
}

func (m *mockMarketRepo) GetByProject(ctx context.Context, projectID int64) (*models.MarketAnalysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.analysis == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.analysis, nil
}

func (m *mockMarketRepo) Update(ctx context.Context, analysis *models.MarketAnalysis) error {
	return m.err
}

type mockProductRepo struct {
	details *models.ProductDetails
	err     error
}

func (m *mockProductRepo) Create(ctx context.Context, details *models.ProductDetails) error {
	if m.err != nil {
		return m.err
	}
	details.ID = 1
	return nil
}

func (m *mockProductRepo) GetByProject(ctx context.Context, projectID int64) (*models.ProductDetails, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.details == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.details, nil
}

func (m *mockProductRepo) Update(ctx context.Context, details *models.ProductDetails) error {
	return m.err
}

type mockFinancialRepo struct {
	projections *models.FinancialProjections
	err         error
}

func (m *mockFinancialRepo) Create(ctx context.Context, projections *models.FinancialProjections) error {
	if m.err != nil {
		return m.err
	}
	projections.ID = 1
	return nil
}

func (m *mockFinancialRepo) GetByProject(ctx context.Context, projectID int64) (*models.FinancialProjections, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.projections == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.projections, nil
}

func (m *mockFinancialRepo) Update(ctx context.Context, projections *models.FinancialProjections) error {
	return m.err
}

type mockEvaluationService struct {
	results       *models.EvaluationResults
	answersErr    error
	scoresErr     error
	getErr        error
	gotAnswers    scoring.Answers
	storedResults *models.EvaluationResults
}

func (m *mockEvaluationService) CreateFromAnswers(ctx context.Context, projectID int64, answers scoring.Answers) (*models.EvaluationResults, error) {
	m.gotAnswers = answers
	if m.answersErr != nil {
		return nil, m.answersErr
	}
	return m.results, nil
}

func (m *mockEvaluationService) CreateFromScores(ctx context.Context, results *models.EvaluationResults) error {
	if m.scoresErr != nil {
		return m.scoresErr
	}
	results.ID = 1
	m.storedResults = results
	return nil
}

func (m *mockEvaluationService) GetByProject(ctx context.Context, projectID int64) (*models.EvaluationResults, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.results == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.results, nil
}

type mockBundleService struct {
	bundle *models.ProjectBundle
	err    error

	lastIncludeEvaluation bool
}

func (m *mockBundleService) Get(ctx context.Context, projectID int64, includeEvaluation bool) (*models.ProjectBundle, error) {
	m.lastIncludeEvaluation = includeEvaluation
	if m.err != nil {
		return nil, m.err
	}
	return m.bundle, nil
}

type mockRecommendationService struct {
	recommendations *models.BusinessRecommendations
	plan            string
	err             error
}

func (m *mockRecommendationService) Generate(ctx context.Context, projectID int64) (*models.BusinessRecommendations, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.recommendations, nil
}

func (m *mockRecommendationService) EnhancePlan(ctx context.Context, projectID int64) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.plan, nil
}
