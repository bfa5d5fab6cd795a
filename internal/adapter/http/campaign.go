package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vecare-backend/internal/core/domain"
	"vecare-backend/internal/core/port"
)

type createCampaignResponse struct {
	Success bool                         `json:"success"`
	Data    *port.CampaignCreationResult `json:"data"`
	TxID    string                       `json:"txId,omitempty"`
}

// handleCreateCampaign runs the full creation workflow. The request body
// is decoded into a port.CreateCampaignRequest; parsing errors produce
// HTTP 400 and workflow errors are mapped by writeError.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	result, err := h.svc.CreateCampaign(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, createCampaignResponse{
		Success: true,
		Data:    result,
		TxID:    result.TxID,
	})
}

type campaignResponse struct {
	Success bool             `json:"success"`
	Data    *domain.Campaign `json:"data"`
}

// handleGetCampaign returns a single campaign by its path id.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	campaign, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignResponse{Success: true, Data: campaign})
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Count int `json:"count"`
}

type campaignListResponse struct {
	Success    bool              `json:"success"`
	Data       []domain.Campaign `json:"data"`
	Pagination *pagination       `json:"pagination,omitempty"`
	Count      *int              `json:"count,omitempty"`
}

// handleListCampaigns returns a page of campaigns. Page defaults to 1,
// limit to 20.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)

	campaigns, err := h.svc.ListCampaigns(r.Context(), page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, campaignListResponse{
		Success:    true,
		Data:       campaigns,
		Pagination: &pagination{Page: page, Limit: limit, Count: len(campaigns)},
	})
}

// handleActiveVerifiedCampaigns returns every campaign that is active,
// verified and not past its deadline.
func (h *Handler) handleActiveVerifiedCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ActiveVerifiedCampaigns(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	count := len(campaigns)
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, campaignListResponse{Success: true, Data: campaigns, Count: &count})
}

type goalReachedResponse struct {
	Success bool `json:"success"`
	Data    struct {
		CampaignID  int64 `json:"campaignId"`
		GoalReached bool  `json:"goalReached"`
	} `json:"data"`
}

// handleGoalReached reports whether a campaign's goal has been met.
func (h *Handler) handleGoalReached(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	reached, err := h.svc.IsGoalReached(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var resp goalReachedResponse
	resp.Success = true
	resp.Data.CampaignID = id
	resp.Data.GoalReached = reached
	h.writeJSON(w, http.StatusOK, resp)
}

type updateCountResponse struct {
	Success bool `json:"success"`
	Data    struct {
		CampaignID  int64 `json:"campaignId"`
		UpdateCount int64 `json:"updateCount"`
	} `json:"data"`
}

// handleUpdateCount returns the number of updates posted to a campaign.
func (h *Handler) handleUpdateCount(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	count, err := h.svc.CampaignUpdateCount(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var resp updateCountResponse
	resp.Success = true
	resp.Data.CampaignID = id
	resp.Data.UpdateCount = count
	h.writeJSON(w, http.StatusOK, resp)
}

type donationResponse struct {
	Success bool             `json:"success"`
	Data    *domain.Donation `json:"data"`
}

// handleGetDonation returns a donor's contribution to a campaign.
func (h *Handler) handleGetDonation(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	donation, err := h.svc.GetDonation(r.Context(), id, chi.URLParam(r, "donorAddress"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, donationResponse{Success: true, Data: donation})
}

func campaignID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, domain.NewClientError("invalid campaign id")
	}
	return id, nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
