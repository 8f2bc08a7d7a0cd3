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

// FinancialProjectionsRepository defines the interface for financial
// projections data access.
type FinancialProjectionsRepository interface {
	Create(ctx context.Context, projections *models.FinancialProjections) error
	GetByProject(ctx context.Context, projectID int64) (*models.FinancialProjections, error)
	Update(ctx context.Context, projections *models.FinancialProjections) error
}

type financialProjectionsRepository struct {
	db *database.DB
}

// NewFinancialProjectionsRepository creates a new financial projections
// repository.
func NewFinancialProjectionsRepository(db *database.DB) FinancialProjectionsRepository {
	return &financialProjectionsRepository{db: db}
}

// Create inserts the financial projections for a project and fills in the
// generated id. Returns ErrConflict if the project already has projections
// and ErrNotFound if the project does not exist.
func (r *financialProjectionsRepository) Create(ctx context.Context, projections *models.FinancialProjections) error {
	costsJSON, revenueJSON, err := marshalFinancials(projections)
	if err != nil {
		return err
	}

	if projections.RevenueStreams == nil {
		projections.RevenueStreams = []string{}
	}

	query := `
		INSERT INTO financial_projections (project_id, business_model, revenue_streams, initial_investment, operating_costs, break_even_point, projected_revenue)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err = r.db.QueryRow(ctx, query,
		projections.ProjectID,
		projections.BusinessModel,
		projections.RevenueStreams,
		projections.InitialInvestment,
		costsJSON,
		projections.BreakEvenPoint,
		revenueJSON,
	).Scan(&projections.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to create financial projections: %w", err)
	}

	return nil
}

// GetByProject retrieves the financial projections for a project.
func (r *financialProjectionsRepository) GetByProject(ctx context.Context, projectID int64) (*models.FinancialProjections, error) {
	query := `
		SELECT id, project_id, business_model, revenue_streams, initial_investment, operating_costs, break_even_point, projected_revenue
		FROM financial_projections
		WHERE project_id = $1`

	var (
		projections models.FinancialProjections
		costsJSON   []byte
		revenueJSON []byte
	)
	err := r.db.QueryRow(ctx, query, projectID).Scan(
		&projections.ID,
		&projections.ProjectID,
		&projections.BusinessModel,
		&projections.RevenueStreams,
		&projections.InitialInvestment,
		&costsJSON,
		&projections.BreakEvenPoint,
		&revenueJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get financial projections: %w", err)
	}

	if err := json.Unmarshal(costsJSON, &projections.OperatingCosts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal operating costs: %w", err)
	}
	if err := json.Unmarshal(revenueJSON, &projections.ProjectedRevenue); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projected revenue: %w", err)
	}

	return &projections, nil
}

// Update persists the record's mutable fields.
func (r *financialProjectionsRepository) Update(ctx context.Context, projections *models.FinancialProjections) error {
	costsJSON, revenueJSON, err := marshalFinancials(projections)
	if err != nil {
		return err
	}

	if projections.RevenueStreams == nil {
		projections.RevenueStreams = []string{}
	}

	query := `
		UPDATE financial_projections
		SET business_model = $2, revenue_streams = $3, initial_investment = $4, operating_costs = $5, break_even_point = $6, projected_revenue = $7
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		projections.ID,
		projections.BusinessModel,
		projections.RevenueStreams,
		projections.InitialInvestment,
		costsJSON,
		projections.BreakEvenPoint,
		revenueJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to update financial projections: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func marshalFinancials(projections *models.FinancialProjections) (costs, revenue []byte, err error) {
	operatingCosts := projections.OperatingCosts
	if operatingCosts == nil {
		operatingCosts = map[string]float64{}
	}
	costs, err = json.Marshal(operatingCosts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal operating costs: %w", err)
	}

	projectedRevenue := projections.ProjectedRevenue
	if projectedRevenue == nil {
		projectedRevenue = []float64{}
	}
	revenue, err = json.Marshal(projectedRevenue)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal projected revenue: %w", err)
	}

	return costs, revenue, nil
}

var _ FinancialProjectionsRepository = (*financialProjectionsRepository)(nil)
