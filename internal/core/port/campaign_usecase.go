package port

import (
	"context"

	"vecare-backend/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the campaign
// workflow. This is the primary port into the application: the HTTP layer
// depends on it and nothing else.
type CampaignUseCase interface {
	// CreateCampaign runs the full creation workflow: parameter
	// validation, AI document verification, evidence pinning, registry
	// transaction and the conditional on-chain auto-verify.
	CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*CampaignCreationResult, error)

	// VerifyDocuments runs the AI check alone, without persisting
	// anything. Used by the frontend as a pre-submission preview.
	VerifyDocuments(ctx context.Context, documents []string) (domain.VerificationResult, error)

	// StoreEvidence pins an evidence bundle and returns its content
	// identifier.
	StoreEvidence(ctx context.Context, bundle domain.EvidenceBundle) (string, error)
	// GetEvidence fetches a pinned bundle by content identifier.
	GetEvidence(ctx context.Context, cid string) (domain.EvidenceBundle, error)
	// UnpinEvidence removes a pinned bundle.
	UnpinEvidence(ctx context.Context, cid string) error

	// AdminVerifyCampaign marks a campaign verified on the registry
	// without an AI gate.
	AdminVerifyCampaign(ctx context.Context, campaignID int64) error

	GetCampaign(ctx context.Context, campaignID int64) (*domain.Campaign, error)
	// ListCampaigns pages through the registry by id. Ids that resolve to
	// no record are skipped.
	ListCampaigns(ctx context.Context, page, limit int) ([]domain.Campaign, error)
	// ActiveVerifiedCampaigns returns every campaign that is active,
	// verified and not past its deadline.
	ActiveVerifiedCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCreatorProfile(ctx context.Context, address string) (*domain.CreatorProfile, error)
	GetDonation(ctx context.Context, campaignID int64, donorAddress string) (*domain.Donation, error)
	IsGoalReached(ctx context.Context, campaignID int64) (bool, error)
	CampaignUpdateCount(ctx context.Context, campaignID int64) (int64, error)
}

// CreateCampaignRequest is the inbound DTO for campaign creation.
type CreateCampaignRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	MedicalDocuments []string `json:"medicalDocuments"`
	GoalAmount       string   `json:"goalAmount"`
	DurationDays     int      `json:"durationDays"`
	CreatorAddress   string   `json:"creatorAddress"`
}

// CampaignCreationResult is returned to the caller once the workflow
// completes. IsVerified applies the report threshold; OnChainVerified
// records whether the auto-verify transaction actually succeeded.
type CampaignCreationResult struct {
	CampaignID          int64                     `json:"campaignId"`
	IsVerified          bool                      `json:"isVerified"`
	OnChainVerified     bool                      `json:"onChainVerified"`
	VerificationDetails domain.VerificationResult `json:"verificationDetails"`
	TxID                string                    `json:"txId,omitempty"`
}
