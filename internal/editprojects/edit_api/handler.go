package edit_api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"studio-backoffice/internal/analytics"
	editprojects "studio-backoffice/internal/editprojects/service"
	"studio-backoffice/internal/identifier"
	"studio-backoffice/internal/models"
	"studio-backoffice/internal/utils"
)

type Handler struct {
	EditService *editprojects.EditService
}

func NewHandler(service *editprojects.EditService) *Handler {
	return &Handler{EditService: service}
}

func writeJSON(w http.ResponseWriter, status int, body utils.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) CreateEditProject(w http.ResponseWriter, r *http.Request) {
	var req models.EditProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse("Invalid request body", err.Error()))
		return
	}

	project, err := h.EditService.CreateEditProject(r.Context(), req)
	if err != nil {
		var exhausted *identifier.ExhaustedError
		switch {
		case errors.Is(err, identifier.ErrEmptyCode):
			writeJSON(w, http.StatusUnprocessableEntity, utils.ErrorResponse(err.Error(), "empty_identifier"))
		case errors.Is(err, identifier.ErrDuplicateCode):
			writeJSON(w, http.StatusConflict, utils.ErrorResponse(err.Error(), "duplicate_identifier"))
		case errors.As(err, &exhausted):
			writeJSON(w, http.StatusServiceUnavailable, utils.ErrorResponse(err.Error(), "generation_exhausted"))
		default:
			writeJSON(w, http.StatusBadRequest, utils.ErrorResponse(err.Error(), "create_failed"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, utils.SuccessResponse("Edit project created", toResponse(*project)))
}

func (h *Handler) GetEditProject(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	project, err := h.EditService.GetEditProject(r.Context(), code)
	if err != nil {
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("Edit project not found", code))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Edit project found", toResponse(*project)))
}

func (h *Handler) ListEditProjects(w http.ResponseWriter, r *http.Request) {
	list, err := h.EditService.ListEditProjects(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Failed to list edit projects", "internal_error"))
		return
	}
	responses := make([]models.EditProjectResponse, 0, len(list))
	for _, p := range list {
		responses = append(responses, toResponse(p))
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Edit projects listed", responses))
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

	if err := h.EditService.UpdateStatus(r.Context(), code, req.Status); err != nil {
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse(err.Error(), "update_failed"))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Status updated", map[string]string{"code": code, "status": req.Status}))
}

func toResponse(p models.EditProject) models.EditProjectResponse {
	return models.EditProjectResponse{
		EditProject: p,
		TotalCost:   analytics.DeriveTotal(nil, p.EditingCost, p.RetouchingCost),
	}
}
