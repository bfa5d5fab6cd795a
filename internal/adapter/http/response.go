package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"vecare-backend/internal/core/domain"
	"vecare-backend/internal/core/port"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeJSON writes v with the given status. Encoding failures are only
// logged; headers are already gone by then.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the error taxonomy onto HTTP statuses: client errors
// pass their message through with a 400, missing records become 404, and
// everything else is a generic 500 with the detail kept in the log.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var clientErr *domain.ClientError
	switch {
	case errors.As(err, &clientErr):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: clientErr.Message})
	case errors.Is(err, port.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Message: "not found"})
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}
