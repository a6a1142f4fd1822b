package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/logger"
)

type errorResponse struct {
	Error string           `json:"error"`
	Kind  domain.ErrorKind `json:"kind"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the service error taxonomy onto HTTP status codes. Business
// rule violations and malformed input both surface as 400 so the SPA shows
// the message verbatim.
func writeError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)

	var status int
	switch kind {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict, domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindForbidden:
		status = http.StatusForbidden
	default:
		status = http.StatusInternalServerError
	}

	var msg string
	var de *domain.Error
	if errors.As(err, &de) {
		msg = de.Message
	} else {
		logger.Error("Unexpected error reached the API boundary", "error", err)
		msg = "internal server error"
	}

	writeJSON(w, status, errorResponse{Error: msg, Kind: kind})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, domain.Validation("malformed request body"))
		return false
	}
	return true
}
