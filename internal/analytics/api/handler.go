package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"studio-backoffice/internal/analytics"
	"studio-backoffice/internal/utils"
)

type Handler struct {
	Service       *analytics.Service
	GrowthMonths  int
	TopCategories int
}

// NewHandler builds the dashboard handler. growthMonths and topCategories are
// the defaults applied when the query string leaves them out.
func NewHandler(service *analytics.Service, growthMonths, topCategories int) *Handler {
	if growthMonths <= 0 {
		growthMonths = analytics.DefaultGrowthMonths
	}
	if topCategories <= 0 {
		topCategories = analytics.DefaultTopCategories
	}
	return &Handler{Service: service, GrowthMonths: growthMonths, TopCategories: topCategories}
}

func writeJSON(w http.ResponseWriter, status int, body utils.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// GetGrowth serves month-bucketed creation counts.
// Optional query parameter: ?months=N (default 6)
func (h *Handler) GetGrowth(w http.ResponseWriter, r *http.Request) {
	months := queryInt(r, "months", h.GrowthMonths)
	report, err := h.Service.GrowthByMonth(r.Context(), months)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Failed to compute growth", "internal_error"))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Growth by month", report))
}

// GetCategories serves per-city counts, top K plus overflow.
// Optional query parameter: ?top=K (default 6)
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	top := queryInt(r, "top", h.TopCategories)
	report, err := h.Service.GrowthByCity(r.Context(), top)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Failed to compute categories", "internal_error"))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Growth by city", report))
}
