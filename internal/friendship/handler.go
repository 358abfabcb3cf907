package friendship

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhnc2843/FinVault/pkg/middleware"
	"github.com/minhnc2843/FinVault/pkg/response"
)

// Handler handles HTTP requests for friendship operations
type Handler struct {
	service *Service
}

// NewHandler creates a new friendship handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for friendship endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/request", h.Request)
	r.Post("/{id}/accept", h.Accept)

	return r
}

// List handles GET /friends
// @Summary      List friendships
// @Description  List the authenticated user's friendships in both directions, any status
// @Tags         friends
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]FriendshipResponse}
// @Security     BearerAuth
// @Router       /friends [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	friendships, err := h.service.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list friends")
		return
	}

	out := make([]*FriendshipResponse, len(friendships))
	for i, f := range friendships {
		out[i] = f.ToResponse()
	}
	response.JSONWithMeta(w, http.StatusOK, out, &response.Meta{Total: len(out)})
}

// Request handles POST /friends/request
// @Summary      Send a friend request
// @Description  Send a friend request to a registered email and notify the addressee
// @Tags         friends
// @Accept       json
// @Produce      json
// @Param        request body FriendRequest true "Friend request"
// @Success      201 {object} response.APIResponse{data=FriendshipResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /friends/request [post]
func (h *Handler) Request(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req FriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.FriendEmail == "" {
		response.ValidationError(w, "friend_email is required")
		return
	}

	f, err := h.service.Request(r.Context(), userID, req.FriendEmail)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(w, "User not found")
		case errors.Is(err, ErrSelfFriendship):
			response.BadRequest(w, "Cannot add yourself")
		case errors.Is(err, ErrAlreadyExists):
			response.Conflict(w, "Friend request already exists")
		default:
			response.InternalError(w, "Failed to send friend request")
		}
		return
	}

	response.Created(w, f.ToResponse())
}

// Accept handles POST /friends/{id}/accept
// @Summary      Accept a friend request
// @Description  Accept a pending friend request addressed to the authenticated user
// @Tags         friends
// @Produce      json
// @Param        id path string true "Friendship ID"
// @Success      200 {object} response.APIResponse{data=FriendshipResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /friends/{id}/accept [post]
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	f, err := h.service.Accept(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrFriendshipNotFound):
			response.NotFound(w, "Friend request not found")
		case errors.Is(err, ErrNotAddressee):
			response.Forbidden(w, "Not authorized to accept this friend request")
		default:
			response.InternalError(w, "Failed to accept friend request")
		}
		return
	}

	response.JSON(w, http.StatusOK, f.ToResponse())
}
