package repositories

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/testhelpers"
)

var userSeq atomic.Int64

// seedUser creates a user with a unique username. The shared container is
// reused across tests, so fixed usernames would collide.
func seedUser(t *testing.T, db *testhelpers.TestDB) *models.User {
	t.Helper()

	user := &models.User{
		Username: fmt.Sprintf("founder-%d", userSeq.Add(1)),
		Password: "test-password",
	}
	if err := NewUserRepository(db.DB).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// seedProject creates a project owned by a fresh user.
func seedProject(t *testing.T, db *testhelpers.TestDB) *models.Project {
	t.Helper()

	user := seedUser(t, db)
	project := &models.Project{
		UserID:        user.ID,
		Name:          "GreenCharge",
		Description:   "EV charging for apartment buildings",
		Industry:      "Energy",
		Stage:         "idea",
		TargetMarkets: []string{"Urban renters", "Property managers"},
		TeamSize:      "2-5",
	}
	if err := NewProjectRepository(db.DB).Create(context.Background(), project); err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return project
}
