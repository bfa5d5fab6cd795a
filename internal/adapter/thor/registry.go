package thor

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"vecare-backend/internal/config/configs"
	"vecare-backend/internal/core/domain"
	"vecare-backend/internal/core/port"
)

// Registry implements port.CampaignRegistry against the VeCare contract
// on a Thor node. Reads are clause inspections; writes are signed with
// the admin key and awaited until a receipt settles.
type Registry struct {
	client         *Client
	contract       common.Address
	abi            abi.ABI
	key            *ecdsa.PrivateKey
	origin         common.Address
	gas            uint64
	gasPriceCoef   byte
	expiration     uint32
	receiptTimeout time.Duration
	logger         *slog.Logger
}

// NewRegistry builds a Registry from configuration. The contract address
// and admin key are required; everything else has defaults.
func NewRegistry(client *Client, cfg configs.Thor, logger *slog.Logger) (*Registry, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid registry contract address %q", cfg.ContractAddress)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.AdminPrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse admin private key: %w", err)
	}

	parsed, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, fmt.Errorf("parse registry ABI: %w", err)
	}

	return &Registry{
		client:         client,
		contract:       common.HexToAddress(cfg.ContractAddress),
		abi:            parsed,
		key:            key,
		origin:         crypto.PubkeyToAddress(key.PublicKey),
		gas:            cfg.Gas,
		gasPriceCoef:   cfg.GasPriceCoef,
		expiration:     cfg.Expiration,
		receiptTimeout: time.Duration(cfg.ReceiptTimeoutSeconds) * time.Second,
		logger:         logger,
	}, nil
}

// CreateCampaign submits the creation transaction and recovers the
// assigned campaign id from the CampaignCreated event, matched by its
// selector rather than by position among the emitted events.
func (r *Registry) CreateCampaign(ctx context.Context, title, description, evidenceHash, goalAmount string, durationDays int) (*port.CreateCampaignResult, error) {
	goalWei, err := ParseVET(goalAmount)
	if err != nil {
		return nil, fmt.Errorf("goal amount: %w", err)
	}

	data, err := r.abi.Pack("createCampaign", title, description, evidenceHash, goalWei, big.NewInt(int64(durationDays)))
	if err != nil {
		return nil, fmt.Errorf("encode createCampaign: %w", err)
	}

	receipt, txID, err := r.transact(ctx, data)
	if err != nil {
		return nil, err
	}
	if receipt.Reverted {
		return nil, port.ErrTransactionReverted
	}

	campaignID, err := r.campaignIDFromReceipt(receipt)
	if err != nil {
		return nil, err
	}

	r.logger.Info("campaign created on registry",
		slog.Int64("campaign_id", campaignID),
		slog.String("tx_id", txID))
	return &port.CreateCampaignResult{CampaignID: campaignID, TxID: txID}, nil
}

// VerifyCampaign flips a campaign's verified flag on the registry.
func (r *Registry) VerifyCampaign(ctx context.Context, campaignID int64, verified bool) error {
	data, err := r.abi.Pack("verifyCampaign", big.NewInt(campaignID), verified)
	if err != nil {
		return fmt.Errorf("encode verifyCampaign: %w", err)
	}

	receipt, txID, err := r.transact(ctx, data)
	if err != nil {
		return err
	}
	if receipt.Reverted {
		return port.ErrTransactionReverted
	}

	r.logger.Info("campaign verification settled",
		slog.Int64("campaign_id", campaignID),
		slog.Bool("verified", verified),
		slog.String("tx_id", txID))
	return nil
}

// rawCampaign matches the getCampaign tuple layout.
type rawCampaign struct {
	Id                  *big.Int
	Creator             common.Address
	Title               string
	Description         string
	MedicalDocumentHash string
	GoalAmount          *big.Int
	RaisedAmount        *big.Int
	Deadline            *big.Int
	IsActive            bool
	IsVerified          bool
	FundsWithdrawn      bool
	CreatedAt           *big.Int
	DonorCount          *big.Int
}

// GetCampaign returns the campaign with the given id, or ErrNotFound when
// the registry has no such record. Transport failures are returned as-is
// so callers can tell the two apart.
func (r *Registry) GetCampaign(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	out, err := r.call(ctx, "getCampaign", big.NewInt(campaignID))
	if err != nil {
		if errors.Is(err, ErrCallReverted) {
			return nil, port.ErrNotFound
		}
		return nil, err
	}

	rc := *abi.ConvertType(out[0], new(rawCampaign)).(*rawCampaign)
	if rc.Id.Sign() == 0 {
		return nil, port.ErrNotFound
	}

	return &domain.Campaign{
		ID:                  rc.Id.Int64(),
		Creator:             rc.Creator.Hex(),
		Title:               rc.Title,
		Description:         rc.Description,
		MedicalDocumentHash: rc.MedicalDocumentHash,
		GoalAmount:          FormatVET(rc.GoalAmount),
		RaisedAmount:        FormatVET(rc.RaisedAmount),
		Deadline:            rc.Deadline.Int64(),
		IsActive:            rc.IsActive,
		IsVerified:          rc.IsVerified,
		FundsWithdrawn:      rc.FundsWithdrawn,
		CreatedAt:           rc.CreatedAt.Int64(),
		DonorCount:          rc.DonorCount.Int64(),
	}, nil
}

// CampaignCount returns the registry's monotonic campaign counter.
func (r *Registry) CampaignCount(ctx context.Context) (int64, error) {
	out, err := r.call(ctx, "campaignCounter")
	if err != nil {
		return 0, err
	}
	counter := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return counter.Int64(), nil
}

// rawProfile matches the getCreatorProfile tuple layout.
type rawProfile struct {
	TotalCampaigns      *big.Int
	SuccessfulCampaigns *big.Int
	TotalRaised         *big.Int
	TrustScore          *big.Int
	LastUpdateTimestamp *big.Int
	Exists              bool
}

// GetCreatorProfile returns the reputation aggregate for address. A
// profile the registry reports as not existing maps to ErrNotFound.
func (r *Registry) GetCreatorProfile(ctx context.Context, address string) (*domain.CreatorProfile, error) {
	out, err := r.call(ctx, "getCreatorProfile", common.HexToAddress(address))
	if err != nil {
		if errors.Is(err, ErrCallReverted) {
			return nil, port.ErrNotFound
		}
		return nil, err
	}

	rp := *abi.ConvertType(out[0], new(rawProfile)).(*rawProfile)
	if !rp.Exists {
		return nil, port.ErrNotFound
	}

	return &domain.CreatorProfile{
		TotalCampaigns:      rp.TotalCampaigns.Int64(),
		SuccessfulCampaigns: rp.SuccessfulCampaigns.Int64(),
		TotalRaised:         FormatVET(rp.TotalRaised),
		TrustScore:          rp.TrustScore.Int64(),
		LastUpdateTimestamp: rp.LastUpdateTimestamp.Int64(),
		Exists:              true,
	}, nil
}

// GetDonation returns the donor's contribution as a decimal string.
func (r *Registry) GetDonation(ctx context.Context, campaignID int64, donorAddress string) (string, error) {
	out, err := r.call(ctx, "getDonation", big.NewInt(campaignID), common.HexToAddress(donorAddress))
	if err != nil {
		return "", err
	}
	amount := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return FormatVET(amount), nil
}

// IsGoalReached reports whether the campaign goal has been met.
func (r *Registry) IsGoalReached(ctx context.Context, campaignID int64) (bool, error) {
	out, err := r.call(ctx, "isGoalReached", big.NewInt(campaignID))
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// CampaignUpdateCount returns the number of updates posted to a campaign.
func (r *Registry) CampaignUpdateCount(ctx context.Context, campaignID int64) (int64, error) {
	out, err := r.call(ctx, "getCampaignUpdateCount", big.NewInt(campaignID))
	if err != nil {
		return 0, err
	}
	count := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return count.Int64(), nil
}

func (r *Registry) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := r.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", method, err)
	}

	raw, err := r.client.Call(ctx, r.contract, data, r.origin)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	out, err := r.abi.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s output: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("decode %s output: empty result", method)
	}
	return out, nil
}

// transact signs and submits a single-clause transaction against the
// contract, then waits for its receipt under the configured timeout.
func (r *Registry) transact(ctx context.Context, data []byte) (*Receipt, string, error) {
	chainTag, err := r.client.ChainTag(ctx)
	if err != nil {
		return nil, "", err
	}
	blockRef, err := r.client.BestBlockRef(ctx)
	if err != nil {
		return nil, "", err
	}

	body := newTxBody(chainTag, blockRef, r.expiration, []Clause{{
		To:    &r.contract,
		Value: new(big.Int),
		Data:  data,
	}}, r.gasPriceCoef, r.gas)

	raw, txID, err := signTx(body, r.key)
	if err != nil {
		return nil, "", err
	}

	sentID, err := r.client.SendTransaction(ctx, raw)
	if err != nil {
		return nil, "", fmt.Errorf("submit transaction: %w", err)
	}
	if sentID != "" {
		txID = sentID
	}

	waitCtx, cancel := context.WithTimeout(ctx, r.receiptTimeout)
	defer cancel()
	receipt, err := r.client.WaitForReceipt(waitCtx, txID)
	if err != nil {
		return nil, "", err
	}
	return receipt, txID, nil
}

// campaignIDFromReceipt scans the receipt for the CampaignCreated event
// emitted by the registry contract and decodes its first indexed topic.
func (r *Registry) campaignIDFromReceipt(receipt *Receipt) (int64, error) {
	selector := r.abi.Events["CampaignCreated"].ID

	for _, output := range receipt.Outputs {
		for _, event := range output.Events {
			if len(event.Topics) < 2 {
				continue
			}
			if common.HexToHash(event.Topics[0]) != selector {
				continue
			}
			if common.HexToAddress(event.Address) != r.contract {
				continue
			}
			id := new(big.Int).SetBytes(common.HexToHash(event.Topics[1]).Bytes())
			return id.Int64(), nil
		}
	}
	return 0, fmt.Errorf("receipt carries no CampaignCreated event")
}
