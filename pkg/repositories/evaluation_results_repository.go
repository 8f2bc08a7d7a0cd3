package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/database"
	"github.com/venturelens/venture-engine/pkg/models"
)

// EvaluationResultsRepository defines the interface for evaluation results
// data access.
type EvaluationResultsRepository interface {
	Create(ctx context.Context, results *models.EvaluationResults) error
	GetByProject(ctx context.Context, projectID int64) (*models.EvaluationResults, error)
}

type evaluationResultsRepository struct {
	db *database.DB
}

// NewEvaluationResultsRepository creates a new evaluation results
// repository.
func NewEvaluationResultsRepository(db *database.DB) EvaluationResultsRepository {
	return &evaluationResultsRepository{db: db}
}

// Create inserts the evaluation results for a project and fills in the
// generated id. Returns ErrConflict if the project was already evaluated
// and ErrNotFound if the project does not exist.
func (r *evaluationResultsRepository) Create(ctx context.Context, results *models.EvaluationResults) error {
	if results.Strengths == nil {
		results.Strengths = []string{}
	}
	if results.Weaknesses == nil {
		results.Weaknesses = []string{}
	}
	if results.Recommendations == nil {
		results.Recommendations = []string{}
	}

	query := `
		INSERT INTO evaluation_results (project_id, market_score, product_score, financial_score, overall_score, strengths, weaknesses, recommendations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		results.ProjectID,
		results.MarketScore,
		results.ProductScore,
		results.FinancialScore,
		results.OverallScore,
		results.Strengths,
		results.Weaknesses,
		results.Recommendations,
	).Scan(&results.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to create evaluation results: %w", err)
	}

	return nil
}

// GetByProject retrieves the evaluation results for a project.
func (r *evaluationResultsRepository) GetByProject(ctx context.Context, projectID int64) (*models.EvaluationResults, error) {
	query := `
		SELECT id, project_id, market_score, product_score, financial_score, overall_score, strengths, weaknesses, recommendations
		FROM evaluation_results
		WHERE project_id = $1`

	var results models.EvaluationResults
	err := r.db.QueryRow(ctx, query, projectID).Scan(
		&results.ID,
		&results.ProjectID,
		&results.MarketScore,
		&results.ProductScore,
		&results.FinancialScore,
		&results.OverallScore,
		&results.Strengths,
		&results.Weaknesses,
		&results.Recommendations,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get evaluation results: %w", err)
	}

	return &results, nil
}

var _ EvaluationResultsRepository = (*evaluationResultsRepository)(nil)
