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

// ProductDetailsRepository defines the interface for product details data
// access.
type ProductDetailsRepository interface {
	Create(ctx context.Context, details *models.ProductDetails) error
	GetByProject(ctx context.Context, projectID int64) (*models.ProductDetails, error)
	Update(ctx context.Context, details *models.ProductDetails) error
}

type productDetailsRepository struct {
	db *database.DB
}

// NewProductDetailsRepository creates a new product details repository.
func NewProductDetailsRepository(db *database.DB) ProductDetailsRepository {
	return &productDetailsRepository{db: db}
}

// Create inserts the product details for a project and fills in the
// generated id. Returns ErrConflict if the project already has details and
// ErrNotFound if the project does not exist.
func (r *productDetailsRepository) Create(ctx context.Context, details *models.ProductDetails) error {
	query := `
		INSERT INTO product_details (project_id, product_description, unique_value, development_stage, intellectual_property, scalability)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		details.ProjectID,
		details.ProductDescription,
		details.UniqueValue,
		details.DevelopmentStage,
		details.IntellectualProperty,
		details.Scalability,
	).Scan(&details.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to create product details: %w", err)
	}

	return nil
}

// GetByProject retrieves the product details for a project.
func (r *productDetailsRepository) GetByProject(ctx context.Context, projectID int64) (*models.ProductDetails, error) {
	query := `
		SELECT id, project_id, product_description, unique_value, development_stage, intellectual_property, scalability
		FROM product_details
		WHERE project_id = $1`

	var details models.ProductDetails
	err := r.db.QueryRow(ctx, query, projectID).Scan(
		&details.ID,
		&details.ProjectID,
		&details.ProductDescription,
		&details.UniqueValue,
		&details.DevelopmentStage,
		&details.IntellectualProperty,
		&details.Scalability,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product details: %w", err)
	}

	return &details, nil
}

// Update persists the record's mutable fields.
func (r *productDetailsRepository) Update(ctx context.Context, details *models.ProductDetails) error {
	query := `
		UPDATE product_details
		SET product_description = $2, unique_value = $3, development_stage = $4, intellectual_property = $5, scalability = $6
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		details.ID,
		details.ProductDescription,
		details.UniqueValue,
		details.DevelopmentStage,
		details.IntellectualProperty,
		details.Scalability,
	)
	if err != nil {
		return fmt.Errorf("failed to update product details: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

var _ ProductDetailsRepository = (*productDetailsRepository)(nil)
