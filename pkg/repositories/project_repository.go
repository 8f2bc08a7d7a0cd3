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

// ProjectRepository defines the interface for project data access.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	Get(ctx context.Context, id int64) (*models.Project, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
}

type projectRepository struct {
	db *database.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *database.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create inserts a new project and fills in the generated id and creation
// time.
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	project.CreatedAt = time.Now().UTC()
	if project.TargetMarkets == nil {
		project.TargetMarkets = []string{}
	}

	query := `
		INSERT INTO projects (user_id, name, description, industry, stage, target_markets, team_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		project.UserID,
		project.Name,
		project.Description,
		project.Industry,
		project.Stage,
		project.TargetMarkets,
		project.TeamSize,
		project.CreatedAt,
	).Scan(&project.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by id.
func (r *projectRepository) Get(ctx context.Context, id int64) (*models.Project, error) {
	query := `
		SELECT id, COALESCE(user_id, 0), name, description, industry, stage, target_markets, team_size, created_at
		FROM projects
		WHERE id = $1`

	var project models.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.UserID,
		&project.Name,
		&project.Description,
		&project.Industry,
		&project.Stage,
		&project.TargetMarkets,
		&project.TeamSize,
		&project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

// ListByUser retrieves all projects owned by a user, newest first.
func (r *projectRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Project, error) {
	query := `
		SELECT id, COALESCE(user_id, 0), name, description, industry, stage, target_markets, team_size, created_at
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(
			&project.ID,
			&project.UserID,
			&project.Name,
			&project.Description,
			&project.Industry,
			&project.Stage,
			&project.TargetMarkets,
			&project.TeamSize,
			&project.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, nil
}

// Update persists the project's mutable fields.
func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, industry = $4, stage = $5, target_markets = $6, team_size = $7
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.Industry,
		project.Stage,
		project.TargetMarkets,
		project.TeamSize,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes a project. Satellite records go with it via CASCADE.
func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

var _ ProjectRepository = (*projectRepository)(nil)
