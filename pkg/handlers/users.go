package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/repositories"
)

// CreateUserRequest for POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserHandler handles user account HTTP requests.
type UserHandler struct {
	users  repositories.UserRepository
	logger *zap.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users repositories.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// RegisterRoutes registers the user handler's routes on the given mux.
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/users", h.Create)
	mux.HandleFunc("GET /api/users/{id}", h.Get)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if req.Username == "" || req.Password == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_failed", "username and password are required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	user := &models.User{Username: req.Username, Password: req.Password}
	if err := h.users.Create(r.Context(), user); err != nil {
		h.logger.Error("Failed to create user", zap.String("username", req.Username), zap.Error(err))
		if err := WriteAppError(w, err, "User not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, user); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := PathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		if err := WriteAppError(w, err, "User not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, user); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
