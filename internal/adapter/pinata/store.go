package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"vecare-backend/internal/config/configs"
	"vecare-backend/internal/core/domain"
	"vecare-backend/internal/core/port"
)

// Store implements port.EvidenceStore against the Pinata pinning API.
// It is constructed once at process start and injected; credentials are
// checked per call so a misconfigured deployment fails on first use with
// port.ErrStoreUnavailable rather than at startup.
type Store struct {
	apiKey     string
	apiSecret  string
	apiBase    string
	gateway    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewStore builds a Store from configuration.
func NewStore(cfg configs.Pinata, logger *slog.Logger) *Store {
	return &Store{
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		apiBase:    strings.TrimSuffix(cfg.APIBase, "/"),
		gateway:    strings.TrimSuffix(cfg.Gateway, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type pinMetadata struct {
	Name      string            `json:"name"`
	KeyValues map[string]string `json:"keyvalues,omitempty"`
}

type pinOptions struct {
	CIDVersion int `json:"cidVersion"`
}

type pinRequest struct {
	PinataContent  domain.EvidenceBundle `json:"pinataContent"`
	PinataMetadata pinMetadata           `json:"pinataMetadata"`
	PinataOptions  pinOptions            `json:"pinataOptions"`
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// Store pins the bundle as JSON and returns its content identifier.
// Single attempt, no retry; the caller decides what a failure means.
func (s *Store) Store(ctx context.Context, bundle domain.EvidenceBundle, meta port.PinMetadata) (string, error) {
	if s.apiKey == "" || s.apiSecret == "" {
		return "", port.ErrStoreUnavailable
	}

	name := meta.Name
	if name == "" {
		name = fmt.Sprintf("vecare-%d", time.Now().UnixMilli())
	}

	body, err := json.Marshal(pinRequest{
		PinataContent:  bundle,
		PinataMetadata: pinMetadata{Name: name, KeyValues: meta.KeyValues},
		PinataOptions:  pinOptions{CIDVersion: 1},
	})
	if err != nil {
		return "", fmt.Errorf("encode pin request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiBase+"/pinning/pinJSONToIPFS", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build pin request: %w", err)
	}
	s.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload to IPFS failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload to IPFS failed: %s", responseError(resp))
	}

	var pinned pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&pinned); err != nil {
		return "", fmt.Errorf("decode pin response: %w", err)
	}
	if pinned.IpfsHash == "" {
		return "", fmt.Errorf("pin response carried no content identifier")
	}

	s.logger.Info("pinned evidence bundle",
		slog.String("cid", pinned.IpfsHash),
		slog.Int64("size", pinned.PinSize))
	return pinned.IpfsHash, nil
}

// Retrieve fetches a pinned bundle through the configured gateway.
func (s *Store) Retrieve(ctx context.Context, cid string) (domain.EvidenceBundle, error) {
	var bundle domain.EvidenceBundle

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.gateway+"/ipfs/"+cid, nil)
	if err != nil {
		return bundle, fmt.Errorf("build retrieval request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return bundle, fmt.Errorf("IPFS retrieval failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return bundle, fmt.Errorf("IPFS retrieval failed: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&bundle); err != nil {
		return bundle, fmt.Errorf("IPFS retrieval failed: %w", err)
	}
	return bundle, nil
}

// Unpin removes the pin for cid.
func (s *Store) Unpin(ctx context.Context, cid string) error {
	if s.apiKey == "" || s.apiSecret == "" {
		return port.ErrStoreUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.apiBase+"/pinning/unpin/"+cid, nil)
	if err != nil {
		return fmt.Errorf("build unpin request: %w", err)
	}
	s.authorize(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("unpin failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unpin failed: %s", responseError(resp))
	}
	s.logger.Info("unpinned evidence bundle", slog.String("cid", cid))
	return nil
}

// CheckAuth verifies the configured credentials against the pinning API.
func (s *Store) CheckAuth(ctx context.Context) error {
	if s.apiKey == "" || s.apiSecret == "" {
		return port.ErrStoreUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBase+"/data/testAuthentication", nil)
	if err != nil {
		return fmt.Errorf("build auth request: %w", err)
	}
	s.authorize(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pinning service authentication failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pinning service authentication failed: %s", resp.Status)
	}
	return nil
}

func (s *Store) authorize(req *http.Request) {
	req.Header.Set("pinata_api_key", s.apiKey)
	req.Header.Set("pinata_secret_api_key", s.apiSecret)
}

func responseError(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if len(body) == 0 {
		return resp.Status
	}
	return fmt.Sprintf("%s: %s", resp.Status, strings.TrimSpace(string(body)))
}
