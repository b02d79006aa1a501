package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvkap/splitit/pkg/middleware"
	"github.com/dhruvkap/splitit/pkg/response"
)

// Handler handles HTTP requests for the derived report views
type Handler struct {
	service *Service
}

// NewHandler creates a new report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for report endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/balances", h.Balances)
	r.Get("/settle-up", h.SettleUp)
	r.Get("/dashboard", h.Dashboard)

	return r
}

// Balances handles GET /reports/balances
// @Summary      Net balances
// @Description  Get every friend's net balance; positive means owed money
// @Tags         reports
// @Produce      json
// @Param        X-Viewer-ID header string false "Friend browsing the app"
// @Success      200 {object} response.Envelope{data=[]BalanceResponse}
// @Router       /reports/balances [get]
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := middleware.ViewerID(r.Context())

	balances, err := h.service.Balances(r.Context(), viewerID)
	if err != nil {
		response.InternalError(w, "Failed to compute balances")
		return
	}

	response.JSON(w, http.StatusOK, balances)
}

// SettleUp handles GET /reports/settle-up
// @Summary      Settle-up plan
// @Description  Get the minimized list of transfers that clears all debts
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.Envelope{data=SettleUpResponse}
// @Router       /reports/settle-up [get]
func (h *Handler) SettleUp(w http.ResponseWriter, r *http.Request) {
	plan, err := h.service.SettleUp(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to compute settle-up plan")
		return
	}

	response.JSON(w, http.StatusOK, plan)
}

// Dashboard handles GET /reports/dashboard
// @Summary      Trip dashboard
// @Description  Get totals, per-category and per-payer spending
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.Envelope{data=DashboardResponse}
// @Router       /reports/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to compute dashboard")
		return
	}

	response.JSON(w, http.StatusOK, dashboard)
}
