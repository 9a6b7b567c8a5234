package handler

import (
	"encoding/json"
	"net/http"

	"suraksha-api/internal/model"
	"suraksha-api/internal/service"
	"suraksha-api/pkg/apierror"
)

// UserHandler exposes the admin-only user-lifecycle endpoints. Role
// gating happens in the router; these handlers assume an ADMIN caller.
type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.ActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "Invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if payload.IsActive == nil {
		writeError(w, apierror.New("BAD_REQUEST", "userId and isActive (boolean) are required", "", http.StatusBadRequest))
		return
	}

	user, err := h.service.SetActive(r.Context(), payload.UserID, *payload.IsActive)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) AssignNGO(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.AssignNGORequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "Invalid JSON body", "", http.StatusBadRequest))
		return
	}

	user, err := h.service.AssignNGO(r.Context(), payload.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
