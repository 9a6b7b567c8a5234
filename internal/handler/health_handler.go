package handler

import (
	"context"
	"net/http"

	"suraksha-api/internal/model"
)

type pinger interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db pinger
}

func NewHealthHandler(db pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Health(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, model.ErrorResponse{
				Error:   http.StatusText(http.StatusServiceUnavailable),
				Message: "Database unreachable",
			})
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
