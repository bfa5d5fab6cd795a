package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"vecare-backend/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign usecase to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router
// for convenient method handling.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// CampaignUseCase implementation and a logger. The returned Handler
// registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/campaigns", func(r chi.Router) {
		r.Post("/", h.handleCreateCampaign)
		r.Get("/", h.handleListCampaigns)
		r.Get("/active/verified", h.handleActiveVerifiedCampaigns)
		r.Post("/ipfs", h.handleStoreEvidence)
		r.Get("/ipfs/{cid}", h.handleGetEvidence)
		r.Delete("/ipfs/{cid}", h.handleUnpinEvidence)
		r.Get("/{id}", h.handleGetCampaign)
		r.Get("/{id}/goal-reached", h.handleGoalReached)
		r.Get("/{id}/updates", h.handleUpdateCount)
		r.Post("/{id}/verify", h.handleAdminVerifyCampaign)
		r.Get("/{id}/donations/{donorAddress}", h.handleGetDonation)
	})
	r.Get("/creators/{address}", h.handleGetCreatorProfile)
	r.Post("/verify-documents", h.handleVerifyDocuments)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
