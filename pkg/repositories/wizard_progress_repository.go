package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/database"
	"github.com/venturelens/venture-engine/pkg/models"
)

// WizardProgressRepository defines the interface for wizard progress data
// access.
type WizardProgressRepository interface {
	Get(ctx context.Context, projectID int64) (*models.WizardProgress, error)
	Put(ctx context.Context, progress *models.WizardProgress) error
}

type wizardProgressRepository struct {
	db *database.DB
}

// NewWizardProgressRepository creates a new wizard progress repository.
func NewWizardProgressRepository(db *database.DB) WizardProgressRepository {
	return &wizardProgressRepository{db: db}
}

// Get retrieves the wizard progress for a project.
func (r *wizardProgressRepository) Get(ctx context.Context, projectID int64) (*models.WizardProgress, error) {
	query := `
		SELECT project_id, current_step, completed_steps, updated_at
		FROM wizard_progress
		WHERE project_id = $1`

	var progress models.WizardProgress
	err := r.db.QueryRow(ctx, query, projectID).Scan(
		&progress.ProjectID,
		&progress.CurrentStep,
		&progress.CompletedSteps,
		&progress.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wizard progress: %w", err)
	}

	return &progress, nil
}

// Put inserts or replaces the wizard progress for a project. Returns
// ErrNotFound if the project does not exist.
func (r *wizardProgressRepository) Put(ctx context.Context, progress *models.WizardProgress) error {
	if progress.CompletedSteps == nil {
		progress.CompletedSteps = []string{}
	}
	progress.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO wizard_progress (project_id, current_step, completed_steps, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (project_id) DO UPDATE
		SET current_step = EXCLUDED.current_step,
		    completed_steps = EXCLUDED.completed_steps,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		progress.ProjectID,
		progress.CurrentStep,
		progress.CompletedSteps,
		progress.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to save wizard progress: %w", err)
	}

	return nil
}

var _ WizardProgressRepository = (*wizardProgressRepository)(nil)
