package thor

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrCallReverted indicates a read-only contract call reverted in the VM.
var ErrCallReverted = errors.New("contract call reverted")

// receiptPollInterval is how often WaitForReceipt asks the node for a
// pending transaction's receipt.
const receiptPollInterval = 3 * time.Second

// Client is a thin HTTP client for the VeChain Thor REST API. It covers
// only what the campaign registry needs: best-block lookup, clause
// inspection for reads, raw transaction submission and receipt polling.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a Client for the node at baseURL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

type blockSummary struct {
	ID     string `json:"id"`
	Number uint32 `json:"number"`
}

// ChainTag returns the network's chain tag, the last byte of the genesis
// block id.
func (c *Client) ChainTag(ctx context.Context) (byte, error) {
	var genesis blockSummary
	if err := c.get(ctx, "/blocks/0", &genesis); err != nil {
		return 0, fmt.Errorf("fetch genesis block: %w", err)
	}
	id, err := hexutil.Decode(genesis.ID)
	if err != nil || len(id) != 32 {
		return 0, fmt.Errorf("malformed genesis block id %q", genesis.ID)
	}
	return id[31], nil
}

// BestBlockRef returns the first eight bytes of the best block id, used
// as the blockRef of new transactions.
func (c *Client) BestBlockRef(ctx context.Context) (uint64, error) {
	var best blockSummary
	if err := c.get(ctx, "/blocks/best", &best); err != nil {
		return 0, fmt.Errorf("fetch best block: %w", err)
	}
	id, err := hexutil.Decode(best.ID)
	if err != nil || len(id) != 32 {
		return 0, fmt.Errorf("malformed best block id %q", best.ID)
	}
	return binary.BigEndian.Uint64(id[:8]), nil
}

type callClause struct {
	To    *string `json:"to"`
	Value string  `json:"value"`
	Data  string  `json:"data"`
}

type callRequest struct {
	Clauses []callClause `json:"clauses"`
	Caller  string       `json:"caller,omitempty"`
}

type callResult struct {
	Data     string `json:"data"`
	Reverted bool   `json:"reverted"`
	VMError  string `json:"vmError"`
	GasUsed  uint64 `json:"gasUsed"`
}

// Call inspects a single read-only clause against the contract at to and
// returns the raw ABI-encoded output. A VM revert is reported as
// ErrCallReverted so callers can tell "the contract said no" apart from
// transport failure.
func (c *Client) Call(ctx context.Context, to common.Address, data []byte, caller common.Address) ([]byte, error) {
	toHex := to.Hex()
	req := callRequest{
		Clauses: []callClause{{To: &toHex, Value: "0x0", Data: hexutil.Encode(data)}},
	}
	if caller != (common.Address{}) {
		req.Caller = caller.Hex()
	}

	var results []callResult
	if err := c.post(ctx, "/accounts/*", req, &results); err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("expected one clause result, got %d", len(results))
	}
	if results[0].Reverted {
		return nil, fmt.Errorf("%w: %s", ErrCallReverted, results[0].VMError)
	}
	return hexutil.Decode(results[0].Data)
}

// SendTransaction submits a signed, RLP-encoded transaction and returns
// the transaction id assigned by the node.
func (c *Client) SendTransaction(ctx context.Context, raw []byte) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	body := map[string]string{"raw": hexutil.Encode(raw)}
	if err := c.post(ctx, "/transactions", body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Event is a log entry emitted by a contract during execution.
type Event struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
}

// Output is the result of one transaction clause.
type Output struct {
	ContractAddress *string `json:"contractAddress"`
	Events          []Event `json:"events"`
}

// ReceiptMeta carries the block and transaction identifiers a receipt
// settled under.
type ReceiptMeta struct {
	BlockID        string `json:"blockID"`
	BlockNumber    uint32 `json:"blockNumber"`
	BlockTimestamp uint64 `json:"blockTimestamp"`
	TxID           string `json:"txID"`
	TxOrigin       string `json:"txOrigin"`
}

// Receipt is a settled transaction's receipt.
type Receipt struct {
	GasUsed  uint64      `json:"gasUsed"`
	Reverted bool        `json:"reverted"`
	Outputs  []Output    `json:"outputs"`
	Meta     ReceiptMeta `json:"meta"`
}

// TransactionReceipt returns the receipt for id, or nil when the
// transaction has not settled yet.
func (c *Client) TransactionReceipt(ctx context.Context, id string) (*Receipt, error) {
	var receipt *Receipt
	if err := c.get(ctx, "/transactions/"+id+"/receipt", &receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// WaitForReceipt polls until the transaction settles or ctx is done.
func (c *Client) WaitForReceipt(ctx context.Context, id string) (*Receipt, error) {
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.TransactionReceipt(ctx, id)
		if err != nil {
			return nil, err
		}
		if receipt != nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for receipt of %s: %w", id, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("thor request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("thor request %s %s: %s: %s",
			req.Method, req.URL.Path, resp.Status, strings.TrimSpace(string(detail)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("thor request %s %s: decode response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
