package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"
)

// HeaderSharerUserID carries the caller's identity. It is the trust
// boundary: there is no session or token auth in front of it.
const HeaderSharerUserID = "X-Sharer-User-Id"

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError converts a service error into the uniform JSON error body.
// Validation maps to 400, NotFound to 404, everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsValidation(err):
		status = http.StatusBadRequest
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// callerID extracts the numeric X-Sharer-User-Id header.
func callerID(r *http.Request) (int64, error) {
	raw := r.Header.Get(HeaderSharerUserID)
	if raw == "" {
		return 0, domain.NewValidationError("missing " + HeaderSharerUserID + " header")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("malformed " + HeaderSharerUserID + " header")
	}
	return id, nil
}

func pathID(r *http.Request, vars map[string]string, name string) (int64, error) {
	id, err := strconv.ParseInt(vars[name], 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("malformed " + name)
	}
	return id, nil
}

// pageParams reads from/size with their 0/20 defaults. Range checks stay in
// the service layer.
func pageParams(r *http.Request) (int, int, error) {
	from, size := 0, 20
	if raw := r.URL.Query().Get("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domain.NewValidationError("malformed from parameter")
		}
		from = v
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domain.NewValidationError("malformed size parameter")
		}
		size = v
	}
	return from, size, nil
}
