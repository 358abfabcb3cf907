package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhnc2843/FinVault/pkg/middleware"
	"github.com/minhnc2843/FinVault/pkg/response"
)

// Handler handles HTTP requests for user operations
type Handler struct {
	service *Service
}

// NewHandler creates a new user handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for user endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Put("/profile", h.UpdateProfile)
	r.Get("/search", h.Search)

	return r
}

// UpdateProfile handles PUT /users/profile
// @Summary      Update profile settings
// @Description  Update the caller's name, avatar, currency preference or exchange rate
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateProfileRequest true "Fields to update"
// @Success      200 {object} response.APIResponse{data=UserResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /users/profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	u, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update profile")
		return
	}

	response.JSON(w, http.StatusOK, u.ToResponse())
}

// Search handles GET /users/search
// @Summary      Search users
// @Description  Find users by email or name fragment, excluding the caller
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q query string true "Search query"
// @Success      200 {object} response.APIResponse{data=[]UserResponse}
// @Router       /users/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	q := r.URL.Query().Get("q")
	if q == "" {
		response.BadRequest(w, "Query parameter q is required")
		return
	}

	users, err := h.service.Search(r.Context(), userID, q)
	if err != nil {
		response.InternalError(w, "Failed to search users")
		return
	}

	results := make([]*UserResponse, len(users))
	for i, u := range users {
		results[i] = u.ToResponse()
	}

	response.JSON(w, http.StatusOK, results)
}
