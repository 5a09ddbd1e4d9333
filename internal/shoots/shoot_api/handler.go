package shoot_api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"studio-backoffice/internal/analytics"
	"studio-backoffice/internal/identifier"
	"studio-backoffice/internal/models"
	shoots "studio-backoffice/internal/shoots/service"
	"studio-backoffice/internal/shoots/template"
	"studio-backoffice/internal/utils"
)

type Handler struct {
	ShootService *shoots.ShootService
	Confirmation *template.ConfirmationGenerator
}

func NewHandler(service *shoots.ShootService, confirmation *template.ConfirmationGenerator) *Handler {
	return &Handler{ShootService: service, Confirmation: confirmation}
}

func writeJSON(w http.ResponseWriter, status int, body utils.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusForCodeError maps identifier failures onto HTTP statuses: blank
// manual codes are a local validation problem, duplicates are a conflict the
// user can resolve, exhaustion is transient and worth a retry later.
func statusForCodeError(err error) (int, string) {
	var exhausted *identifier.ExhaustedError
	switch {
	case errors.Is(err, identifier.ErrEmptyCode):
		return http.StatusUnprocessableEntity, "empty_identifier"
	case errors.Is(err, identifier.ErrDuplicateCode):
		return http.StatusConflict, "duplicate_identifier"
	case errors.As(err, &exhausted):
		return http.StatusServiceUnavailable, "generation_exhausted"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func (h *Handler) CreateShoot(w http.ResponseWriter, r *http.Request) {
	var req models.ShootRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse("Invalid request body", err.Error()))
		return
	}

	shoot, err := h.ShootService.CreateShoot(r.Context(), req)
	if err != nil {
		status, reason := statusForCodeError(err)
		if status == http.StatusInternalServerError {
			writeJSON(w, status, utils.ErrorResponse("Failed to create shoot", reason))
			return
		}
		writeJSON(w, status, utils.ErrorResponse(err.Error(), reason))
		return
	}

	writeJSON(w, http.StatusCreated, utils.SuccessResponse("Shoot created", toResponse(*shoot)))
}

func (h *Handler) GetShoot(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	shoot, err := h.ShootService.GetShoot(r.Context(), code)
	if err != nil {
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("Shoot not found", code))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Shoot found", toResponse(*shoot)))
}

func (h *Handler) ListShoots(w http.ResponseWriter, r *http.Request) {
	list, err := h.ShootService.ListShoots(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Failed to list shoots", "internal_error"))
		return
	}
	responses := make([]models.ShootResponse, 0, len(list))
	for _, s := range list {
		responses = append(responses, toResponse(s))
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Shoots listed", responses))
}

// CheckAvailability validates a user-typed code before form submission.
// Expected query parameter: ?code=RE-123456-007
func (h *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	code, err := h.ShootService.CheckAvailability(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		status, reason := statusForCodeError(err)
		writeJSON(w, status, utils.ErrorResponse("Code unavailable", reason))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Code available", map[string]string{"code": code}))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse("Invalid request body", err.Error()))
		return
	}

	if err := h.ShootService.UpdateStatus(r.Context(), code, req.Status); err != nil {
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse(err.Error(), "update_failed"))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Status updated", map[string]string{"code": code, "status": req.Status}))
}

// GetConfirmation renders the booking confirmation PDF with the shoot code
// embedded as a QR.
func (h *Handler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	shoot, err := h.ShootService.GetShoot(r.Context(), code)
	if err != nil {
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("Shoot not found", code))
		return
	}

	pdf, err := h.Confirmation.Generate(*shoot)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Failed to render confirmation", "internal_error"))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=confirmation-"+shoot.Code+".pdf")
	_, _ = w.Write(pdf)
}

func toResponse(s models.Shoot) models.ShootResponse {
	return models.ShootResponse{
		Shoot:     s,
		TotalCost: analytics.DeriveTotal(nil, s.PhotographyCost, s.TravelCost, s.EditingCost),
	}
}
