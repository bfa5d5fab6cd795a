package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"vecare-backend/internal/core/domain"
)

type verifyDocumentsRequest struct {
	MedicalDocuments []string `json:"medicalDocuments"`
}

type verificationResponse struct {
	Success bool                      `json:"success"`
	Data    domain.VerificationResult `json:"data"`
}

// handleVerifyDocuments runs the AI verification alone, as a preview:
// nothing is pinned and no registry transaction is submitted.
func (h *Handler) handleVerifyDocuments(w http.ResponseWriter, r *http.Request) {
	var req verifyDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	result, err := h.svc.VerifyDocuments(r.Context(), req.MedicalDocuments)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, verificationResponse{Success: true, Data: result})
}

type adminVerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		CampaignID int64 `json:"campaignId"`
		IsVerified bool  `json:"isVerified"`
	} `json:"data"`
}

// handleAdminVerifyCampaign marks a campaign verified on the registry
// without an AI gate. Admin action.
func (h *Handler) handleAdminVerifyCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.svc.AdminVerifyCampaign(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	var resp adminVerifyResponse
	resp.Success = true
	resp.Message = fmt.Sprintf("Campaign %d has been verified on-chain", id)
	resp.Data.CampaignID = id
	resp.Data.IsVerified = true
	h.writeJSON(w, http.StatusOK, resp)
}
