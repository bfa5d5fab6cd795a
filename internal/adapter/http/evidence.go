package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vecare-backend/internal/core/domain"
)

type storeEvidenceResponse struct {
	Success bool `json:"success"`
	Data    struct {
		IpfsHash string `json:"ipfsHash"`
	} `json:"data"`
}

// handleStoreEvidence pins a caller-assembled evidence bundle. Used by
// the frontend's client-driven creation flow.
func (h *Handler) handleStoreEvidence(w http.ResponseWriter, r *http.Request) {
	var bundle domain.EvidenceBundle
	if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	cid, err := h.svc.StoreEvidence(r.Context(), bundle)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var resp storeEvidenceResponse
	resp.Success = true
	resp.Data.IpfsHash = cid
	h.writeJSON(w, http.StatusOK, resp)
}

type evidenceResponse struct {
	Success bool                  `json:"success"`
	Data    domain.EvidenceBundle `json:"data"`
}

// handleGetEvidence fetches a pinned bundle by content identifier.
func (h *Handler) handleGetEvidence(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.svc.GetEvidence(r.Context(), chi.URLParam(r, "cid"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, evidenceResponse{Success: true, Data: bundle})
}

type unpinResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// handleUnpinEvidence removes a pinned bundle. Admin action.
func (h *Handler) handleUnpinEvidence(w http.ResponseWriter, r *http.Request) {
	cid := chi.URLParam(r, "cid")
	if err := h.svc.UnpinEvidence(r.Context(), cid); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, unpinResponse{Success: true, Message: "unpinned " + cid})
}
