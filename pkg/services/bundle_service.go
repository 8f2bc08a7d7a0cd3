// Package services holds the business logic between handlers and repositories.
package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/repositories"
)

// BundleService assembles a project together with its satellite records.
type BundleService interface {
	// Get returns the project and whichever satellites exist. Missing
	// satellites are nil, not errors. Returns ErrNotFound only when the
	// project itself does not exist.
	Get(ctx context.Context, projectID int64, includeEvaluation bool) (*models.ProjectBundle, error)
}

type bundleService struct {
	projects    repositories.ProjectRepository
	market      repositories.MarketAnalysisRepository
	product     repositories.ProductDetailsRepository
	financial   repositories.FinancialProjectionsRepository
	evaluations repositories.EvaluationResultsRepository
	logger      *zap.Logger
}

// NewBundleService creates a bundle service over the given repositories.
func NewBundleService(
	projects repositories.ProjectRepository,
	market repositories.MarketAnalysisRepository,
	product repositories.ProductDetailsRepository,
	financial repositories.FinancialProjectionsRepository,
	evaluations repositories.EvaluationResultsRepository,
	logger *zap.Logger,
) BundleService {
	return &bundleService{
		projects:    projects,
		market:      market,
		product:     product,
		financial:   financial,
		evaluations: evaluations,
		logger:      logger,
	}
}

func (s *bundleService) Get(ctx context.Context, projectID int64, includeEvaluation bool) (*models.ProjectBundle, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	bundle := &models.ProjectBundle{Project: project}

	bundle.MarketAnalysis, err = optional(s.market.GetByProject(ctx, projectID))
	if err != nil {
		return nil, fmt.Errorf("failed to load market analysis: %w", err)
	}

	bundle.ProductDetails, err = optional(s.product.GetByProject(ctx, projectID))
	if err != nil {
		return nil, fmt.Errorf("failed to load product details: %w", err)
	}

	bundle.FinancialProjections, err = optional(s.financial.GetByProject(ctx, projectID))
	if err != nil {
		return nil, fmt.Errorf("failed to load financial projections: %w", err)
	}

	if includeEvaluation {
		bundle.EvaluationResults, err = optional(s.evaluations.GetByProject(ctx, projectID))
		if err != nil {
			return nil, fmt.Errorf("failed to load evaluation results: %w", err)
		}
	}

	return bundle, nil
}

// optional maps ErrNotFound to a nil record so absent satellites do not
// fail the whole bundle.
func optional[T any](record *T, err error) (*T, error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return record, err
}

var _ BundleService = (*bundleService)(nil)
