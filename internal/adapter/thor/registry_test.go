package thor

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecare-backend/internal/config/configs"
	"vecare-backend/internal/core/port"
)

const testContract = "0x1111222233334444555566667777888899990000"

// fakeNode emulates the slice of the Thor REST API the registry touches.
type fakeNode struct {
	t           *testing.T
	callResults []callResult
	callStatus  int
	receipt     *Receipt
	txID        string
	sentRaw     string
}

func (n *fakeNode) handler() http.Handler {
	genesisID := "0x" + strings.Repeat("00", 31) + "4a"
	bestID := "0x00000000aabbccdd" + strings.Repeat("11", 24)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /blocks/0", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(blockSummary{ID: genesisID})
	})
	mux.HandleFunc("GET /blocks/best", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(blockSummary{ID: bestID, Number: 100})
	})
	mux.HandleFunc("POST /accounts/", func(w http.ResponseWriter, r *http.Request) {
		if n.callStatus != 0 {
			w.WriteHeader(n.callStatus)
			return
		}
		json.NewEncoder(w).Encode(n.callResults)
	})
	mux.HandleFunc("POST /transactions", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(n.t, json.NewDecoder(r.Body).Decode(&body))
		n.sentRaw = body["raw"]
		json.NewEncoder(w).Encode(map[string]string{"id": n.txID})
	})
	mux.HandleFunc("GET /transactions/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(n.receipt)
	})
	return mux
}

func newTestRegistry(t *testing.T, node *fakeNode) (*Registry, *httptest.Server) {
	t.Helper()
	node.t = t
	if node.txID == "" {
		node.txID = "0x" + strings.Repeat("ab", 32)
	}
	srv := httptest.NewServer(node.handler())
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(nodeLogWriter{t}, nil))
	registry, err := NewRegistry(NewClient(srv.URL, logger), configs.Thor{
		NodeURL:               srv.URL,
		ContractAddress:       testContract,
		AdminPrivateKey:       testKeyHex,
		Gas:                   3000000,
		Expiration:            720,
		ReceiptTimeoutSeconds: 5,
	}, logger)
	require.NoError(t, err)
	return registry, srv
}

type nodeLogWriter struct{ t *testing.T }

func (w nodeLogWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func mustABI(t *testing.T) abi.ABI {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(registryABI))
	require.NoError(t, err)
	return parsed
}

// packOutput ABI-encodes a method's return values the way the node would.
func packOutput(t *testing.T, method string, values ...any) callResult {
	t.Helper()
	parsed := mustABI(t)
	data, err := parsed.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)
	return callResult{Data: "0x" + common.Bytes2Hex(data)}
}

func vet(t *testing.T, amount string) *big.Int {
	t.Helper()
	wei, err := ParseVET(amount)
	require.NoError(t, err)
	return wei
}

func TestGetCampaign(t *testing.T) {
	node := &fakeNode{callResults: []callResult{packOutput(t, "getCampaign", rawCampaign{
		Id:                  big.NewInt(7),
		Creator:             common.HexToAddress("0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"),
		Title:               "Help Sarah",
		Description:         strings.Repeat("d", 60),
		MedicalDocumentHash: "bafyevidence",
		GoalAmount:          vet(t, "1000"),
		RaisedAmount:        vet(t, "250.5"),
		Deadline:            big.NewInt(1800000000),
		IsActive:            true,
		IsVerified:          true,
		FundsWithdrawn:      false,
		CreatedAt:           big.NewInt(1700000000),
		DonorCount:          big.NewInt(3),
	})}}
	registry, _ := newTestRegistry(t, node)

	campaign, err := registry.GetCampaign(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), campaign.ID)
	assert.Equal(t, "Help Sarah", campaign.Title)
	assert.Equal(t, "bafyevidence", campaign.MedicalDocumentHash)
	assert.Equal(t, "1000", campaign.GoalAmount)
	assert.Equal(t, "250.5", campaign.RaisedAmount)
	assert.True(t, campaign.IsActive)
	assert.True(t, campaign.IsVerified)
	assert.Equal(t, int64(3), campaign.DonorCount)
}

func TestGetCampaignNotFound(t *testing.T) {
	t.Run("zero id record", func(t *testing.T) {
		node := &fakeNode{callResults: []callResult{packOutput(t, "getCampaign", rawCampaign{
			Id: big.NewInt(0), GoalAmount: big.NewInt(0), RaisedAmount: big.NewInt(0),
			Deadline: big.NewInt(0), CreatedAt: big.NewInt(0), DonorCount: big.NewInt(0),
		})}}
		registry, _ := newTestRegistry(t, node)

		_, err := registry.GetCampaign(context.Background(), 99)
		require.ErrorIs(t, err, port.ErrNotFound)
	})

	t.Run("reverted call", func(t *testing.T) {
		node := &fakeNode{callResults: []callResult{{Reverted: true, VMError: "execution reverted"}}}
		registry, _ := newTestRegistry(t, node)

		_, err := registry.GetCampaign(context.Background(), 99)
		require.ErrorIs(t, err, port.ErrNotFound)
	})

	t.Run("transport failure is not a miss", func(t *testing.T) {
		node := &fakeNode{callStatus: http.StatusBadGateway}
		registry, _ := newTestRegistry(t, node)

		_, err := registry.GetCampaign(context.Background(), 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, port.ErrNotFound)
	})
}

func TestCampaignCount(t *testing.T) {
	node := &fakeNode{callResults: []callResult{packOutput(t, "campaignCounter", big.NewInt(12))}}
	registry, _ := newTestRegistry(t, node)

	count, err := registry.CampaignCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestGetCreatorProfile(t *testing.T) {
	node := &fakeNode{callResults: []callResult{packOutput(t, "getCreatorProfile", rawProfile{
		TotalCampaigns:      big.NewInt(4),
		SuccessfulCampaigns: big.NewInt(2),
		TotalRaised:         vet(t, "5000"),
		TrustScore:          big.NewInt(80),
		LastUpdateTimestamp: big.NewInt(1700000000),
		Exists:              true,
	})}}
	registry, _ := newTestRegistry(t, node)

	profile, err := registry.GetCreatorProfile(context.Background(), "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")
	require.NoError(t, err)
	assert.Equal(t, int64(4), profile.TotalCampaigns)
	assert.Equal(t, "5000", profile.TotalRaised)
	assert.Equal(t, int64(80), profile.TrustScore)
}

func TestGetCreatorProfileNotFound(t *testing.T) {
	node := &fakeNode{callResults: []callResult{packOutput(t, "getCreatorProfile", rawProfile{
		TotalCampaigns:      big.NewInt(0),
		SuccessfulCampaigns: big.NewInt(0),
		TotalRaised:         big.NewInt(0),
		TrustScore:          big.NewInt(0),
		LastUpdateTimestamp: big.NewInt(0),
		Exists:              false,
	})}}
	registry, _ := newTestRegistry(t, node)

	_, err := registry.GetCreatorProfile(context.Background(), "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestGetDonation(t *testing.T) {
	node := &fakeNode{callResults: []callResult{packOutput(t, "getDonation", vet(t, "12.5"))}}
	registry, _ := newTestRegistry(t, node)

	amount, err := registry.GetDonation(context.Background(), 1, "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")
	require.NoError(t, err)
	assert.Equal(t, "12.5", amount)
}

func TestIsGoalReached(t *testing.T) {
	node := &fakeNode{callResults: []callResult{packOutput(t, "isGoalReached", true)}}
	registry, _ := newTestRegistry(t, node)

	reached, err := registry.IsGoalReached(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, reached)
}

func createdReceipt(t *testing.T, campaignID int64, contract string) *Receipt {
	selector := mustABI(t).Events["CampaignCreated"].ID.Hex()
	return &Receipt{
		Outputs: []Output{{Events: []Event{
			// Decoy: right selector, different contract.
			{
				Address: "0x9999999999999999999999999999999999999999",
				Topics:  []string{selector, common.BigToHash(big.NewInt(555)).Hex()},
			},
			// Decoy: registry contract, different event.
			{
				Address: contract,
				Topics:  []string{common.HexToHash("0x01").Hex(), common.BigToHash(big.NewInt(777)).Hex()},
			},
			{
				Address: contract,
				Topics:  []string{selector, common.BigToHash(big.NewInt(campaignID)).Hex()},
			},
		}}},
	}
}

func TestCreateCampaign(t *testing.T) {
	node := &fakeNode{receipt: createdReceipt(t, 42, testContract)}
	registry, _ := newTestRegistry(t, node)

	result, err := registry.CreateCampaign(context.Background(),
		"Help Sarah", strings.Repeat("d", 60), "bafyevidence", "1000", 30)
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.CampaignID)
	assert.Equal(t, node.txID, result.TxID)
	assert.NotEmpty(t, node.sentRaw, "a signed transaction must reach the node")
}

func TestCreateCampaignReverted(t *testing.T) {
	node := &fakeNode{receipt: &Receipt{Reverted: true}}
	registry, _ := newTestRegistry(t, node)

	_, err := registry.CreateCampaign(context.Background(),
		"Help Sarah", strings.Repeat("d", 60), "bafyevidence", "1000", 30)
	require.ErrorIs(t, err, port.ErrTransactionReverted)
}

func TestCreateCampaignWithoutEvent(t *testing.T) {
	node := &fakeNode{receipt: &Receipt{Outputs: []Output{{}}}}
	registry, _ := newTestRegistry(t, node)

	_, err := registry.CreateCampaign(context.Background(),
		"Help Sarah", strings.Repeat("d", 60), "bafyevidence", "1000", 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CampaignCreated")
}

func TestCreateCampaignRejectsBadGoal(t *testing.T) {
	registry, _ := newTestRegistry(t, &fakeNode{})

	_, err := registry.CreateCampaign(context.Background(),
		"Help Sarah", strings.Repeat("d", 60), "bafyevidence", "-1", 30)
	require.Error(t, err)
}

func TestVerifyCampaign(t *testing.T) {
	node := &fakeNode{receipt: &Receipt{}}
	registry, _ := newTestRegistry(t, node)

	require.NoError(t, registry.VerifyCampaign(context.Background(), 42, true))
	assert.NotEmpty(t, node.sentRaw)

	node.receipt = &Receipt{Reverted: true}
	require.ErrorIs(t, registry.VerifyCampaign(context.Background(), 42, true), port.ErrTransactionReverted)
}

func TestNewRegistryValidation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(nodeLogWriter{t}, nil))

	_, err := NewRegistry(NewClient("http://localhost:0", logger), configs.Thor{
		ContractAddress: "not-an-address",
		AdminPrivateKey: testKeyHex,
	}, logger)
	require.Error(t, err)

	_, err = NewRegistry(NewClient("http://localhost:0", logger), configs.Thor{
		ContractAddress: testContract,
		AdminPrivateKey: "zz",
	}, logger)
	require.Error(t, err)
}
