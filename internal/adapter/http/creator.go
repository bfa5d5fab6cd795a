package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vecare-backend/internal/core/domain"
)

type creatorProfileResponse struct {
	Success bool                   `json:"success"`
	Data    *domain.CreatorProfile `json:"data"`
}

// handleGetCreatorProfile returns the registry's reputation aggregate
// for a creator account. An account the registry has never seen is a
// 404.
func (h *Handler) handleGetCreatorProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetCreatorProfile(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, creatorProfileResponse{Success: true, Data: profile})
}
