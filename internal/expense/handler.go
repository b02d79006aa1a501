package expense

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvkap/splitit/internal/ledger/split"
	"github.com/dhruvkap/splitit/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /expenses
// @Summary      Log a new expense
// @Description  Log an expense with a split policy and participant list
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense creation request"
// @Success      201 {object} response.Envelope{data=ExpenseResponse}
// @Failure      400 {object} response.Envelope
// @Failure      422 {object} response.Envelope
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	exp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	shares, err := h.service.ResolveShares(r.Context(), exp)
	if err != nil {
		response.InternalError(w, "Failed to resolve shares")
		return
	}

	response.JSON(w, http.StatusCreated, exp.ToResponse(shares))
}

// List handles GET /expenses
// @Summary      List expenses
// @Description  Get every expense, newest first
// @Tags         expenses
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]ExpenseResponse}
// @Router       /expenses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	responses := make([]*ExpenseResponse, len(expenses))
	for i, exp := range expenses {
		responses[i] = exp.ToResponse(nil)
	}

	response.JSON(w, http.StatusOK, responses)
}

// GetByID handles GET /expenses/{id}
// @Summary      Get expense by ID
// @Description  Get a single expense with its resolved per-friend shares
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.Envelope{data=ExpenseResponse}
// @Failure      404 {object} response.Envelope
// @Router       /expenses/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	exp, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get expense")
		return
	}

	shares, err := h.service.ResolveShares(r.Context(), exp)
	if err != nil {
		response.InternalError(w, "Failed to resolve shares")
		return
	}

	response.JSON(w, http.StatusOK, exp.ToResponse(shares))
}

// Update handles PUT /expenses/{id}
// @Summary      Edit an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id path string true "Expense ID"
// @Param        request body UpdateExpenseRequest true "Expense update request"
// @Success      200 {object} response.Envelope{data=ExpenseResponse}
// @Failure      400 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /expenses/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	exp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	shares, err := h.service.ResolveShares(r.Context(), exp)
	if err != nil {
		response.InternalError(w, "Failed to resolve shares")
		return
	}

	response.JSON(w, http.StatusOK, exp.ToResponse(shares))
}

// Delete handles DELETE /expenses/{id}
// @Summary      Delete an expense
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /expenses/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete expense")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "expense deleted"})
}

// writeExpenseError maps service errors onto HTTP responses
func writeExpenseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrExpenseNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrUnknownCategory),
		errors.Is(err, ErrUnknownPayer),
		errors.Is(err, ErrUnknownParticipant):
		response.BadRequest(w, err.Error())
	case errors.Is(err, split.ErrNoMembers),
		errors.Is(err, split.ErrNonPositiveAmount):
		response.UnprocessableEntity(w, err.Error())
	default:
		response.InternalError(w, "Failed to save expense")
	}
}
