package port

import (
	"context"

	"vecare-backend/internal/core/domain"
)

// PinMetadata is the descriptive metadata attached to a pinned bundle.
// All values are coerced to strings by the caller.
type PinMetadata struct {
	Name      string
	KeyValues map[string]string
}

// EvidenceStore pins evidence bundles to a content-addressed store and
// retrieves them by content identifier. Implementations make a single
// attempt per call; the caller decides whether to surface a failure.
type EvidenceStore interface {
	// Store pins the bundle and returns its content identifier. Returns
	// ErrStoreUnavailable when no credentials are configured.
	Store(ctx context.Context, bundle domain.EvidenceBundle, meta PinMetadata) (string, error)
	// Retrieve fetches a previously pinned bundle by content identifier.
	Retrieve(ctx context.Context, cid string) (domain.EvidenceBundle, error)
	// Unpin removes the pin for the given content identifier.
	Unpin(ctx context.Context, cid string) error
	// CheckAuth verifies the configured credentials against the store.
	CheckAuth(ctx context.Context) error
}
