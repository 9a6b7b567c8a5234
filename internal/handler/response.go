package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"suraksha-api/internal/model"
	"suraksha-api/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError normalizes every failure into the uniform wire shape
// {error, message}. Unclassified errors become a generic 500 and are
// logged server-side; their details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Unexpected server error"

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		message = apiErr.Message
	} else if errors.Is(err, model.ErrUserNotFound) {
		status = http.StatusNotFound
		message = "User not found"
	} else if errors.Is(err, model.ErrEmailTaken) {
		status = http.StatusForbidden
		message = "Email already registered"
	} else if errors.Is(err, model.ErrInvalidCredentials) {
		status = http.StatusUnauthorized
		message = "Invalid credentials"
	} else if errors.Is(err, model.ErrTokenNotFound) || errors.Is(err, model.ErrTokenExpired) {
		status = http.StatusUnauthorized
		message = "Invalid or expired refresh token"
	} else if errors.Is(err, model.ErrInvalidInput) {
		status = http.StatusBadRequest
		message = "Invalid input"
	} else {
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
