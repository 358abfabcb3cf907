package statistics

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhnc2843/FinVault/pkg/middleware"
	"github.com/minhnc2843/FinVault/pkg/response"
)

// Handler handles HTTP requests for statistics operations
type Handler struct {
	service *Service
}

// NewHandler creates a new statistics handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for statistics endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/overview", h.Overview)
	r.Get("/by-category", h.ByCategory)

	return r
}

// Overview handles GET /statistics/overview
// @Summary      Spending overview
// @Description  Totals for the authenticated user inside the reporting window, plus outstanding shared expense debt
// @Tags         statistics
// @Produce      json
// @Param        period query string false "Reporting window: month, year, or trailing 30 days when omitted"
// @Success      200 {object} response.APIResponse{data=OverviewResponse}
// @Security     BearerAuth
// @Router       /statistics/overview [get]
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	overview, err := h.service.Overview(r.Context(), userID, r.URL.Query().Get("period"))
	if err != nil {
		response.InternalError(w, "Failed to compute overview")
		return
	}

	response.JSON(w, http.StatusOK, overview)
}

// ByCategory handles GET /statistics/by-category
// @Summary      Expenses by category
// @Description  Expense totals per category inside the reporting window, largest first
// @Tags         statistics
// @Produce      json
// @Param        period query string false "Reporting window: month, year, or trailing 30 days when omitted"
// @Success      200 {object} response.APIResponse{data=[]CategoryTotalResponse}
// @Security     BearerAuth
// @Router       /statistics/by-category [get]
func (h *Handler) ByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	totals, err := h.service.ByCategory(r.Context(), userID, r.URL.Query().Get("period"))
	if err != nil {
		response.InternalError(w, "Failed to compute category totals")
		return
	}
	if totals == nil {
		totals = []*CategoryTotalResponse{}
	}

	response.JSON(w, http.StatusOK, totals)
}
