package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/models"
)

func TestUserHandler_Create_Success(t *testing.T) {
	handler := NewUserHandler(&mockUserRepo{}, zap.NewNop())

	body := `{"username":"founder","password":"hunter2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var user models.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected assigned user id")
	}
	if user.Username != "founder" {
		t.Errorf("expected username 'founder', got %q", user.Username)
	}
	if strings.Contains(rec.Body.String(), "hunter2") {
		t.Error("password must not appear in the response")
	}
}

func TestUserHandler_Create_MissingFields(t *testing.T) {
	handler := NewUserHandler(&mockUserRepo{}, zap.NewNop())

	for _, body := range []string{`{"username":"founder"}`, `{"password":"hunter2"}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected status 400, got %d", body, rec.Code)
		}
	}
}

func TestUserHandler_Create_DuplicateUsername(t *testing.T) {
	handler := NewUserHandler(&mockUserRepo{err: apperrors.ErrConflict}, zap.NewNop())

	body := `{"username":"founder","password":"hunter2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", rec.Code)
	}
}

func TestUserHandler_Get_Success(t *testing.T) {
	handler := NewUserHandler(&mockUserRepo{user: &models.User{ID: 7, Username: "founder"}}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/users/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var user models.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("expected user id 7, got %d", user.ID)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	handler := NewUserHandler(&mockUserRepo{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/users/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
