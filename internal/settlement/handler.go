package settlement

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhnc2843/FinVault/pkg/middleware"
	"github.com/minhnc2843/FinVault/pkg/response"
)

// Handler handles HTTP requests for settlement views
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/suggestions", h.Suggestions)

	return r
}

// ExpenseReport handles GET /shared-expenses/{id}/settlements
// @Summary      Settlement report for an expense
// @Description  Per-participant owed, paid, balance, and status for one shared expense
// @Tags         settlements
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.APIResponse{data=[]LineResponse}
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /shared-expenses/{id}/settlements [get]
func (h *Handler) ExpenseReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ForExpense(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, "Shared expense not found")
			return
		}
		response.InternalError(w, "Failed to compute settlements")
		return
	}

	out := make([]*LineResponse, len(report.Lines))
	for i := range report.Lines {
		out[i] = report.Lines[i].ToResponse(report.Currency)
	}
	response.JSON(w, http.StatusOK, out)
}

// Suggestions handles GET /settlements/suggestions
// @Summary      Minimal transfer suggestions
// @Description  Suggested payments that settle the caller's expense graph with the fewest transfers, grouped by currency
// @Tags         settlements
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]CurrencyPlanResponse}
// @Security     BearerAuth
// @Router       /settlements/suggestions [get]
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	plans, err := h.service.Suggestions(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to compute suggestions")
		return
	}

	out := make([]*CurrencyPlanResponse, len(plans))
	for i, plan := range plans {
		out[i] = plan.ToResponse()
	}
	response.JSON(w, http.StatusOK, out)
}
