package expense

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhnc2843/FinVault/internal/expense/split"
	"github.com/minhnc2843/FinVault/internal/money"
	"github.com/minhnc2843/FinVault/pkg/middleware"
	"github.com/minhnc2843/FinVault/pkg/response"
)

// Handler handles HTTP requests for shared expense operations
type Handler struct {
	service *Service

	// settlementReport serves the per-expense settlement view; it is
	// injected so the settlement feature can stay a separate package.
	settlementReport http.HandlerFunc
}

// NewHandler creates a new expense handler
func NewHandler(service *Service, settlementReport http.HandlerFunc) *Handler {
	return &Handler{service: service, settlementReport: settlementReport}
}

// Routes returns the router for shared expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/confirm", h.Confirm)
	r.Get("/{id}/settlements", h.settlementReport)

	return r
}

// List handles GET /shared-expenses
// @Summary      List shared expenses
// @Description  List every shared expense the authenticated user created or participates in, newest first
// @Tags         shared-expenses
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Security     BearerAuth
// @Router       /shared-expenses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	expenses, err := h.service.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list shared expenses")
		return
	}

	out := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = e.ToResponse()
	}
	response.JSONWithMeta(w, http.StatusOK, out, &response.Meta{Total: len(out)})
}

// Create handles POST /shared-expenses
// @Summary      Create a shared expense
// @Description  Create an expense split among participants resolved by email; every participant email must belong to a registered account
// @Tags         shared-expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense creation request"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /shared-expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Title == "" {
		response.ValidationError(w, "title is required")
		return
	}

	e, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	response.Created(w, e.ToResponse())
}

// writeCreateError maps creation failures onto the response envelope
func (h *Handler) writeCreateError(w http.ResponseWriter, err error) {
	var unresolved *UnresolvedParticipantError
	switch {
	case errors.As(err, &unresolved):
		response.UnresolvedEmail(w, "Participant email is not registered: "+unresolved.Email)
	case errors.Is(err, split.ErrAmountMismatch):
		response.ValidationError(w, "Custom amounts must cover listed participants and sum to the total")
	case errors.Is(err, split.ErrNonPositiveAmount), errors.Is(err, money.ErrInvalidAmount):
		response.ValidationError(w, "Total amount must be a positive number")
	case errors.Is(err, split.ErrDuplicateParticipant):
		response.ValidationError(w, "Participant emails contain duplicates")
	case errors.Is(err, split.ErrEmptyParticipants):
		response.ValidationError(w, "At least one participant is required")
	case errors.Is(err, split.ErrUnknownSplitType):
		response.ValidationError(w, "Split type must be equal or custom")
	case errors.Is(err, ErrInvalidDate):
		response.ValidationError(w, "Invalid date, expected RFC 3339")
	default:
		response.InternalError(w, "Failed to create shared expense")
	}
}

// GetByID handles GET /shared-expenses/{id}
// @Summary      Get a shared expense
// @Description  Get one shared expense with its participant shares; participants only
// @Tags         shared-expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /shared-expenses/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	e, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrExpenseNotFound):
			response.NotFound(w, "Shared expense not found")
		case errors.Is(err, ErrNotParticipant):
			response.Forbidden(w, "You are not a participant of this expense")
		default:
			response.InternalError(w, "Failed to get shared expense")
		}
		return
	}

	response.JSON(w, http.StatusOK, e.ToResponse())
}

// Confirm handles POST /shared-expenses/{id}/confirm
// @Summary      Confirm own share
// @Description  Confirm and settle the authenticated user's share of the expense; repeating the call is a no-op
// @Tags         shared-expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /shared-expenses/{id}/confirm [post]
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	_, err := h.service.ConfirmShare(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrExpenseNotFound):
			response.NotFound(w, "Shared expense not found")
		case errors.Is(err, ErrNotParticipant):
			response.Forbidden(w, "You are not a participant of this expense")
		default:
			response.InternalError(w, "Failed to confirm share")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Confirmed"})
}
