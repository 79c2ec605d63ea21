package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/logger"
)

type errorBody struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP statuses: validation failures are
// 400 with the per-field list, missing referents 404, illegal status
// transitions 409, everything else 500.
func writeError(w http.ResponseWriter, err error) {
	if verrs, ok := domain.AsValidationErrors(err); ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: verrs})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}
	if errors.Is(err, domain.ErrInvalidTransition) {
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
		return
	}

	logger.Error("Request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: message})
}

// dateRange validates the from/to query pair; both are required.
func dateRange(w http.ResponseWriter, from, to string) (string, string, bool) {
	if !domain.ValidDate(from) || !domain.ValidDate(to) {
		writeBadRequest(w, "from and to must be calendar dates in YYYY-MM-DD format")
		return "", "", false
	}
	return from, to, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
