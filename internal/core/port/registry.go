package port

import (
	"context"

	"vecare-backend/internal/core/domain"
)

// CreateCampaignResult carries the identifiers recovered from a settled
// campaign creation transaction.
type CreateCampaignResult struct {
	CampaignID int64
	TxID       string
}

// CampaignRegistry wraps the ledger-backed registry holding canonical
// campaign and creator-profile state. It is an outbound port: the
// registry owns and mutates all records, this side only reads and
// requests transitions.
//
// Read methods distinguish "no such record" (ErrNotFound) from transport
// failure (any other error). Write methods return ErrTransactionReverted
// when the transaction settled but reverted.
type CampaignRegistry interface {
	// CreateCampaign submits a campaign creation transaction and recovers
	// the assigned campaign id from the emitted creation event.
	CreateCampaign(ctx context.Context, title, description, evidenceHash, goalAmount string, durationDays int) (*CreateCampaignResult, error)
	// VerifyCampaign marks a campaign verified (or unverified) on the
	// registry.
	VerifyCampaign(ctx context.Context, campaignID int64, verified bool) error

	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, campaignID int64) (*domain.Campaign, error)
	// CampaignCount returns the registry's monotonic campaign counter.
	CampaignCount(ctx context.Context) (int64, error)
	// GetCreatorProfile returns the reputation aggregate for a creator
	// account. A profile with exists=false is reported as ErrNotFound.
	GetCreatorProfile(ctx context.Context, address string) (*domain.CreatorProfile, error)
	// GetDonation returns a donor's contribution as a decimal string.
	GetDonation(ctx context.Context, campaignID int64, donorAddress string) (string, error)
	// IsGoalReached reports whether the campaign goal has been met.
	IsGoalReached(ctx context.Context, campaignID int64) (bool, error)
	// CampaignUpdateCount returns the number of updates posted to a
	// campaign.
	CampaignUpdateCount(ctx context.Context, campaignID int64) (int64, error)
}
