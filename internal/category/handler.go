package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhnc2843/FinVault/pkg/middleware"
	"github.com/minhnc2843/FinVault/pkg/response"
)

// Handler handles HTTP requests for category operations
type Handler struct {
	service *Service
}

// NewHandler creates a new category handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for category endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)

	return r
}

// List handles GET /categories
// @Summary      List categories
// @Description  Get all categories owned by the caller
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]Category}
// @Router       /categories [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	categories, err := h.service.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list categories")
		return
	}

	if categories == nil {
		categories = []*Category{}
	}
	response.JSON(w, http.StatusOK, categories)
}

// Create handles POST /categories
// @Summary      Create a category
// @Description  Add a custom category for the caller
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCategoryRequest true "Category to create"
// @Success      201 {object} response.APIResponse{data=Category}
// @Failure      400 {object} response.APIResponse
// @Router       /categories [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	cat, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidType) {
			response.ValidationError(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create category")
		return
	}

	response.Created(w, cat)
}

// Delete handles DELETE /categories/{id}
// @Summary      Delete a category
// @Description  Remove a custom category; default categories cannot be removed
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /categories/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, ErrCategoryNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrDefaultCategory):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to delete category")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}
