package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"vecare-backend/internal/config/configs"
	"vecare-backend/internal/core/domain"
	"vecare-backend/internal/core/port"
)

// CampaignUseCase orchestrates the campaign creation workflow across the
// document verifier, the evidence store and the campaign registry. One
// linear pass per request, no retries, no shared mutable state between
// invocations.
type CampaignUseCase struct {
	verifier port.DocumentVerifier
	store    port.EvidenceStore
	registry port.CampaignRegistry
	logger   *slog.Logger

	// autoVerifyThreshold gates the on-chain auto-verify side effect;
	// reportVerifiedThreshold gates what is reported as fully verified to
	// the caller. The two are intentionally distinct.
	autoVerifyThreshold     float64
	reportVerifiedThreshold float64

	now func() time.Time
}

// NewCampaignUseCase wires the workflow with its three collaborators and
// the configured confidence thresholds.
func NewCampaignUseCase(verifier port.DocumentVerifier, store port.EvidenceStore, registry port.CampaignRegistry, cfg configs.Verification, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		verifier:                verifier,
		store:                   store,
		registry:                registry,
		logger:                  logger,
		autoVerifyThreshold:     cfg.AutoVerifyThreshold,
		reportVerifiedThreshold: cfg.ReportVerifiedThreshold,
		now:                     time.Now,
	}
}

// CreateCampaign runs the creation workflow: validate, AI-verify, pin the
// evidence bundle, submit the registry transaction, then conditionally
// auto-verify on-chain. Evidence is pinned before the registry write
// because the transaction references its content identifier; a registry
// failure after a successful pin leaves the bundle orphaned, which is an
// accepted trade-off rather than a compensation trigger.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignRequest) (*port.CampaignCreationResult, error) {
	log := u.logger.With(slog.String("workflow_id", uuid.NewString()))

	if err := domain.ValidateCampaignParams(req.Title, req.Description, req.GoalAmount, req.DurationDays); err != nil {
		return nil, err
	}
	if !domain.IsHexAddress(req.CreatorAddress) {
		return nil, domain.NewClientError("invalid creator address")
	}

	verdict, err := u.verifier.Verify(ctx, req.MedicalDocuments)
	if err != nil {
		return nil, err
	}
	log.Info("documents verified",
		slog.Bool("verified", verdict.IsVerified),
		slog.Float64("confidence", verdict.ConfidenceScore),
		slog.String("document_type", verdict.DocumentType))

	bundle := domain.EvidenceBundle{
		Documents:          req.MedicalDocuments,
		VerificationResult: verdict,
		CampaignTitle:      req.Title,
		Creator:            req.CreatorAddress,
		Timestamp:          u.now().UnixMilli(),
	}
	cid, err := u.store.Store(ctx, bundle, evidenceMetadata(req.Title, req.CreatorAddress, verdict))
	if err != nil {
		return nil, fmt.Errorf("store evidence: %w", err)
	}
	log.Info("evidence pinned", slog.String("cid", cid))

	created, err := u.registry.CreateCampaign(ctx, req.Title, req.Description, cid, req.GoalAmount, req.DurationDays)
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	onChainVerified := false
	if verdict.IsVerified && verdict.ConfidenceScore >= u.autoVerifyThreshold {
		// A failure here is non-fatal: the campaign exists either way.
		if err := u.registry.VerifyCampaign(ctx, created.CampaignID, true); err != nil {
			log.Error("on-chain auto-verification failed",
				slog.Int64("campaign_id", created.CampaignID),
				slog.Any("error", err))
		} else {
			onChainVerified = true
		}
	}

	return &port.CampaignCreationResult{
		CampaignID:          created.CampaignID,
		IsVerified:          verdict.IsVerified && verdict.ConfidenceScore >= u.reportVerifiedThreshold,
		OnChainVerified:     onChainVerified,
		VerificationDetails: verdict,
		TxID:                created.TxID,
	}, nil
}

// VerifyDocuments runs the AI check without persisting anything.
func (u *CampaignUseCase) VerifyDocuments(ctx context.Context, documents []string) (domain.VerificationResult, error) {
	return u.verifier.Verify(ctx, documents)
}

// StoreEvidence pins a caller-assembled bundle, filling in the timestamp
// when absent.
func (u *CampaignUseCase) StoreEvidence(ctx context.Context, bundle domain.EvidenceBundle) (string, error) {
	if len(bundle.Documents) == 0 {
		return "", domain.NewClientError("documents are required")
	}
	if bundle.Timestamp == 0 {
		bundle.Timestamp = u.now().UnixMilli()
	}
	return u.store.Store(ctx, bundle, evidenceMetadata(bundle.CampaignTitle, bundle.Creator, bundle.VerificationResult))
}

// GetEvidence fetches a pinned bundle by content identifier.
func (u *CampaignUseCase) GetEvidence(ctx context.Context, cid string) (domain.EvidenceBundle, error) {
	if cid == "" {
		return domain.EvidenceBundle{}, domain.NewClientError("content identifier is required")
	}
	return u.store.Retrieve(ctx, cid)
}

// UnpinEvidence removes a pinned bundle.
func (u *CampaignUseCase) UnpinEvidence(ctx context.Context, cid string) error {
	if cid == "" {
		return domain.NewClientError("content identifier is required")
	}
	return u.store.Unpin(ctx, cid)
}

// AdminVerifyCampaign marks a campaign verified without an AI gate.
func (u *CampaignUseCase) AdminVerifyCampaign(ctx context.Context, campaignID int64) error {
	if campaignID <= 0 {
		return domain.NewClientError("invalid campaign id")
	}
	return u.registry.VerifyCampaign(ctx, campaignID, true)
}

// GetCampaign returns a campaign by id.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	if campaignID <= 0 {
		return nil, domain.NewClientError("invalid campaign id")
	}
	return u.registry.GetCampaign(ctx, campaignID)
}

// ListCampaigns pages through the registry by id. The registry has no
// bulk-read primitive, so this issues one read per id within the page,
// bounded by the campaign counter, skipping ids with no record.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, page, limit int) ([]domain.Campaign, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	counter, err := u.registry.CampaignCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("campaign counter: %w", err)
	}

	startID := int64(page-1)*int64(limit) + 1
	endID := min(startID+int64(limit)-1, counter)

	campaigns := make([]domain.Campaign, 0, limit)
	for id := startID; id <= endID; id++ {
		campaign, err := u.registry.GetCampaign(ctx, id)
		if err != nil {
			if errors.Is(err, port.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("campaign %d: %w", id, err)
		}
		campaigns = append(campaigns, *campaign)
	}
	return campaigns, nil
}

// ActiveVerifiedCampaigns walks the whole registry counter and filters
// for campaigns that are active, verified and not past deadline. No
// fixed scan ceiling: the cursor is the counter itself.
func (u *CampaignUseCase) ActiveVerifiedCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	counter, err := u.registry.CampaignCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("campaign counter: %w", err)
	}

	now := u.now().Unix()
	var campaigns []domain.Campaign
	for id := int64(1); id <= counter; id++ {
		campaign, err := u.registry.GetCampaign(ctx, id)
		if err != nil {
			if errors.Is(err, port.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("campaign %d: %w", id, err)
		}
		if campaign.IsActive && campaign.IsVerified && campaign.Deadline > now {
			campaigns = append(campaigns, *campaign)
		}
	}
	return campaigns, nil
}

// GetCreatorProfile returns the reputation aggregate for address.
func (u *CampaignUseCase) GetCreatorProfile(ctx context.Context, address string) (*domain.CreatorProfile, error) {
	if !domain.IsHexAddress(address) {
		return nil, domain.NewClientError("invalid creator address")
	}
	return u.registry.GetCreatorProfile(ctx, address)
}

// GetDonation returns a donor's contribution to a campaign.
func (u *CampaignUseCase) GetDonation(ctx context.Context, campaignID int64, donorAddress string) (*domain.Donation, error) {
	if campaignID <= 0 {
		return nil, domain.NewClientError("invalid campaign id")
	}
	if !domain.IsHexAddress(donorAddress) {
		return nil, domain.NewClientError("invalid donor address")
	}

	amount, err := u.registry.GetDonation(ctx, campaignID, donorAddress)
	if err != nil {
		return nil, err
	}
	return &domain.Donation{CampaignID: campaignID, DonorAddress: donorAddress, Amount: amount}, nil
}

// IsGoalReached reports whether the campaign goal has been met.
func (u *CampaignUseCase) IsGoalReached(ctx context.Context, campaignID int64) (bool, error) {
	if campaignID <= 0 {
		return false, domain.NewClientError("invalid campaign id")
	}
	return u.registry.IsGoalReached(ctx, campaignID)
}

// CampaignUpdateCount returns the number of updates posted to a campaign.
func (u *CampaignUseCase) CampaignUpdateCount(ctx context.Context, campaignID int64) (int64, error) {
	if campaignID <= 0 {
		return 0, domain.NewClientError("invalid campaign id")
	}
	return u.registry.CampaignUpdateCount(ctx, campaignID)
}

// evidenceMetadata derives the pin name and tags attached to a bundle.
// All tag values are coerced to strings; the name is capped at 30 title
// characters.
func evidenceMetadata(title, creator string, verdict domain.VerificationResult) port.PinMetadata {
	return port.PinMetadata{
		Name: "vecare-campaign-" + truncate(title, 30),
		KeyValues: map[string]string{
			"type":            "medical-campaign",
			"creator":         creator,
			"verified":        strconv.FormatBool(verdict.IsVerified),
			"confidenceScore": strconv.FormatFloat(verdict.ConfidenceScore, 'f', -1, 64),
		},
	}
}

// truncate shortens s to at most n runes, never splitting a multi-byte
// sequence.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
