package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/database"
	"github.com/venturelens/venture-engine/pkg/models"
)

// MarketAnalysisRepository defines the interface for market analysis data
// access. Lookups are by project id since the record is 1:1 with a project.
type MarketAnalysisRepository interface {
	Create(ctx context.Context, analysis *models.MarketAnalysis) error
	GetByProject(ctx context.Context, projectID int64) (*models.MarketAnalysis, error)
	Update(ctx context.Context, analysis *models.MarketAnalysis) error
}

type marketAnalysisRepository struct {
	db *database.DB
}

// NewMarketAnalysisRepository creates a new market analysis repository.
func NewMarketAnalysisRepository(db *database.DB) MarketAnalysisRepository {
	return &marketAnalysisRepository{db: db}
}

// Create inserts the market analysis for a project and fills in the
// generated id. Returns ErrConflict if the project already has one and
// ErrNotFound if the project does not exist.
func (r *marketAnalysisRepository) Create(ctx context.Context, analysis *models.MarketAnalysis) error {
	if analysis.Competitors == nil {
		analysis.Competitors = []models.Competitor{}
	}
	competitors, err := json.Marshal(analysis.Competitors)
	if err != nil {
		return fmt.Errorf("failed to marshal competitors: %w", err)
	}

	query := `
		INSERT INTO market_analysis (project_id, target_customers, market_size, growth_rate, competitors, competitive_advantage)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err = r.db.QueryRow(ctx, query,
		analysis.ProjectID,
		analysis.TargetCustomers,
		analysis.MarketSize,
		analysis.GrowthRate,
		competitors,
		analysis.CompetitiveAdvantage,
	).Scan(&analysis.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to create market analysis: %w", err)
	}

	return nil
}

// GetByProject retrieves the market analysis for a project.
func (r *marketAnalysisRepository) GetByProject(ctx context.Context, projectID int64) (*models.MarketAnalysis, error) {
	query := `
		SELECT id, project_id, target_customers, market_size, growth_rate, competitors, competitive_advantage
		FROM market_analysis
		WHERE project_id = $1`

	var analysis models.MarketAnalysis
	var competitors []byte

	err := r.db.QueryRow(ctx, query, projectID).Scan(
		&analysis.ID,
		&analysis.ProjectID,
		&analysis.TargetCustomers,
		&analysis.MarketSize,
		&analysis.GrowthRate,
		&competitors,
		&analysis.CompetitiveAdvantage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get market analysis: %w", err)
	}

	if err := json.Unmarshal(competitors, &analysis.Competitors); err != nil {
		return nil, fmt.Errorf("failed to unmarshal competitors: %w", err)
	}

	return &analysis, nil
}

// Update persists the record's mutable fields.
func (r *marketAnalysisRepository) Update(ctx context.Context, analysis *models.MarketAnalysis) error {
	competitors, err := json.Marshal(analysis.Competitors)
	if err != nil {
		return fmt.Errorf("failed to marshal competitors: %w", err)
	}

	query := `
		UPDATE market_analysis
		SET target_customers = $2, market_size = $3, growth_rate = $4, competitors = $5, competitive_advantage = $6
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		analysis.ID,
		analysis.TargetCustomers,
		analysis.MarketSize,
		analysis.GrowthRate,
		competitors,
		analysis.CompetitiveAdvantage,
	)
	if err != nil {
		return fmt.Errorf("failed to update market analysis: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

var _ MarketAnalysisRepository = (*marketAnalysisRepository)(nil)
