package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/testhelpers"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewUserRepository(db.DB)
	ctx := context.Background()

	user := &models.User{Username: "user-repo-create", Password: "secret"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected generated user id")
	}

	got, err := repo.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to get user: %v", err)
	}
	if got.Username != "user-repo-create" {
		t.Errorf("expected username 'user-repo-create', got %q", got.Username)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewUserRepository(db.DB)
	ctx := context.Background()

	first := &models.User{Username: "user-repo-dup", Password: "secret"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	second := &models.User{Username: "user-repo-dup", Password: "other"}
	err := repo.Create(ctx, second)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewUserRepository(db.DB)
	ctx := context.Background()

	user := &models.User{Username: "user-repo-byname", Password: "secret"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	got, err := repo.GetByUsername(ctx, "user-repo-byname")
	if err != nil {
		t.Fatalf("failed to get user by username: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected id %d, got %d", user.ID, got.ID)
	}
}

func TestUserRepository_GetNotFound(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewUserRepository(db.DB)

	_, err := repo.Get(context.Background(), 999999)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
