package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/testhelpers"
)

func TestWizardProgressRepository_PutAndGet(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewWizardProgressRepository(db.DB)
	ctx := context.Background()

	project := seedProject(t, db)
	progress := &models.WizardProgress{
		ProjectID:      project.ID,
		CurrentStep:    models.StepMarket,
		CompletedSteps: []string{models.StepBasics},
	}

	if err := repo.Put(ctx, progress); err != nil {
		t.Fatalf("failed to put progress: %v", err)
	}
	if progress.UpdatedAt.IsZero() {
		t.Error("expected updated_at to be set")
	}

	got, err := repo.Get(ctx, project.ID)
	if err != nil {
		t.Fatalf("failed to get progress: %v", err)
	}
	if got.CurrentStep != models.StepMarket {
		t.Errorf("expected current step 'market', got %q", got.CurrentStep)
	}
	if len(got.CompletedSteps) != 1 || got.CompletedSteps[0] != models.StepBasics {
		t.Errorf("expected completed steps to round-trip, got %v", got.CompletedSteps)
	}
}

func TestWizardProgressRepository_PutOverwrites(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewWizardProgressRepository(db.DB)
	ctx := context.Background()

	project := seedProject(t, db)
	first := &models.WizardProgress{ProjectID: project.ID, CurrentStep: models.StepBasics}
	if err := repo.Put(ctx, first); err != nil {
		t.Fatalf("failed to put progress: %v", err)
	}

	second := &models.WizardProgress{
		ProjectID:      project.ID,
		CurrentStep:    models.StepFinancial,
		CompletedSteps: []string{models.StepBasics, models.StepMarket, models.StepProduct},
	}
	if err := repo.Put(ctx, second); err != nil {
		t.Fatalf("failed to overwrite progress: %v", err)
	}

	got, err := repo.Get(ctx, project.ID)
	if err != nil {
		t.Fatalf("failed to get progress: %v", err)
	}
	if got.CurrentStep != models.StepFinancial {
		t.Errorf("expected overwritten step 'financial', got %q", got.CurrentStep)
	}
	if len(got.CompletedSteps) != 3 {
		t.Errorf("expected 3 completed steps, got %d", len(got.CompletedSteps))
	}
}

func TestWizardProgressRepository_UnknownProject(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewWizardProgressRepository(db.DB)

	progress := &models.WizardProgress{ProjectID: 999999, CurrentStep: models.StepBasics}
	err := repo.Put(context.Background(), progress)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown project, got %v", err)
	}
}

func TestWizardProgressRepository_GetNotFound(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewWizardProgressRepository(db.DB)

	project := seedProject(t, db)
	_, err := repo.Get(context.Background(), project.ID)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound before any progress, got %v", err)
	}
}
