package friend

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvkap/splitit/pkg/response"
)

// Handler handles HTTP requests for roster operations
type Handler struct {
	service *Service
}

// NewHandler creates a new friend handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for friend endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /friends
// @Summary      Add a friend to the roster
// @Description  Add a friend with display name, color and attendance
// @Tags         friends
// @Accept       json
// @Produce      json
// @Param        request body CreateFriendRequest true "Friend creation request"
// @Success      201 {object} response.Envelope{data=FriendResponse}
// @Failure      400 {object} response.Envelope
// @Router       /friends [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	friend, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNameRequired) || errors.Is(err, ErrNegativeDays) || errors.Is(err, ErrDepartureBeforeArr) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to add friend")
		return
	}

	response.JSON(w, http.StatusCreated, friend.ToResponse())
}

// List handles GET /friends
// @Summary      List the roster
// @Description  Get every friend on the trip, oldest first
// @Tags         friends
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]FriendResponse}
// @Router       /friends [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	friends, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list friends")
		return
	}

	responses := make([]*FriendResponse, len(friends))
	for i, friend := range friends {
		responses[i] = friend.ToResponse()
	}

	response.JSON(w, http.StatusOK, responses)
}

// GetByID handles GET /friends/{id}
// @Summary      Get friend by ID
// @Tags         friends
// @Produce      json
// @Param        id path string true "Friend ID"
// @Success      200 {object} response.Envelope{data=FriendResponse}
// @Failure      404 {object} response.Envelope
// @Router       /friends/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	friend, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrFriendNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get friend")
		return
	}

	response.JSON(w, http.StatusOK, friend.ToResponse())
}

// Update handles PUT /friends/{id}
// @Summary      Edit a friend
// @Tags         friends
// @Accept       json
// @Produce      json
// @Param        id path string true "Friend ID"
// @Param        request body UpdateFriendRequest true "Friend update request"
// @Success      200 {object} response.Envelope{data=FriendResponse}
// @Failure      400 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /friends/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	friend, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrFriendNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrNegativeDays), errors.Is(err, ErrDepartureBeforeArr):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update friend")
		}
		return
	}

	response.JSON(w, http.StatusOK, friend.ToResponse())
}

// Delete handles DELETE /friends/{id}
// @Summary      Remove a friend
// @Description  Remove a friend without any expenses or payments
// @Tags         friends
// @Produce      json
// @Param        id path string true "Friend ID"
// @Success      200 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Failure      409 {object} response.Envelope
// @Router       /friends/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrFriendNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrFriendHasActivity):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to remove friend")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "friend removed"})
}
