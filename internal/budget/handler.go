package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhnc2843/FinVault/internal/money"
	"github.com/minhnc2843/FinVault/pkg/middleware"
	"github.com/minhnc2843/FinVault/pkg/response"
)

// Handler handles HTTP requests for budget operations
type Handler struct {
	service *Service
}

// NewHandler creates a new budget handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for budget endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)

	return r
}

// List handles GET /budgets
// @Summary      List budgets
// @Description  List the authenticated user's budgets, newest first
// @Tags         budgets
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]BudgetResponse}
// @Security     BearerAuth
// @Router       /budgets [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	budgets, err := h.service.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list budgets")
		return
	}

	out := make([]*BudgetResponse, len(budgets))
	for i, b := range budgets {
		out[i] = b.ToResponse()
	}
	response.JSONWithMeta(w, http.StatusOK, out, &response.Meta{Total: len(out)})
}

// Create handles POST /budgets
// @Summary      Create a budget
// @Description  Create a per-category budget for the authenticated user
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        request body CreateBudgetRequest true "Budget to create"
// @Success      201 {object} response.APIResponse{data=BudgetResponse}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /budgets [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.CategoryID == "" {
		response.ValidationError(w, "category_id is required")
		return
	}

	b, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, money.ErrInvalidAmount) {
			response.ValidationError(w, "Amount must be a positive number")
			return
		}
		response.InternalError(w, "Failed to create budget")
		return
	}

	response.Created(w, b.ToResponse())
}

// Delete handles DELETE /budgets/{id}
// @Summary      Delete a budget
// @Description  Delete one of the authenticated user's budgets
// @Tags         budgets
// @Produce      json
// @Param        id path string true "Budget ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /budgets/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			response.NotFound(w, "Budget not found")
			return
		}
		response.InternalError(w, "Failed to delete budget")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Budget deleted"})
}
