package transaction

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhnc2843/FinVault/internal/money"
	"github.com/minhnc2843/FinVault/pkg/middleware"
	"github.com/minhnc2843/FinVault/pkg/response"
)

// Handler handles HTTP requests for transaction operations
type Handler struct {
	service *Service
}

// NewHandler creates a new transaction handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for transaction endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)

	return r
}

// List handles GET /transactions
// @Summary      List transactions
// @Description  List the authenticated user's transactions, newest first, with optional category and date filters
// @Tags         transactions
// @Produce      json
// @Param        category_id query string false "Filter by category"
// @Param        from_date query string false "Inclusive lower bound (RFC 3339 or YYYY-MM-DD)"
// @Param        to_date query string false "Inclusive upper bound (RFC 3339 or YYYY-MM-DD)"
// @Success      200 {object} response.APIResponse{data=[]TransactionResponse}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /transactions [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	q := ListTransactionsQuery{
		CategoryID: r.URL.Query().Get("category_id"),
		FromDate:   r.URL.Query().Get("from_date"),
		ToDate:     r.URL.Query().Get("to_date"),
	}

	transactions, err := h.service.List(r.Context(), userID, q)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.ValidationError(w, "Invalid date filter, expected RFC 3339 or YYYY-MM-DD")
			return
		}
		response.InternalError(w, "Failed to list transactions")
		return
	}

	out := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = t.ToResponse()
	}
	response.JSONWithMeta(w, http.StatusOK, out, &response.Meta{Total: len(out)})
}

// Create handles POST /transactions
// @Summary      Record a transaction
// @Description  Record a personal transaction for the authenticated user
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request body CreateTransactionRequest true "Transaction to record"
// @Success      201 {object} response.APIResponse{data=TransactionResponse}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /transactions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.CategoryID == "" {
		response.ValidationError(w, "category_id is required")
		return
	}

	t, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, money.ErrInvalidAmount):
			response.ValidationError(w, "Amount must be a positive number")
		case errors.Is(err, ErrInvalidDate):
			response.ValidationError(w, "Invalid date, expected RFC 3339")
		default:
			response.InternalError(w, "Failed to record transaction")
		}
		return
	}

	response.Created(w, t.ToResponse())
}

// Delete handles DELETE /transactions/{id}
// @Summary      Delete a transaction
// @Description  Delete one of the authenticated user's transactions
// @Tags         transactions
// @Produce      json
// @Param        id path string true "Transaction ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /transactions/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			response.NotFound(w, "Transaction not found")
			return
		}
		response.InternalError(w, "Failed to delete transaction")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted"})
}
