package port

import "errors"

var (
	// ErrNotFound indicates the registry has no record for the requested
	// id or address. It is distinct from a transport failure, which is
	// returned as its own wrapped error.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable indicates the content store client has no
	// credentials configured. Detected at first use, not at startup.
	ErrStoreUnavailable = errors.New("content store is not configured")

	// ErrInvalidAIResponse indicates the AI backend returned parseable
	// JSON that violates the verdict schema. This is a hard error: the
	// provider contract is structurally broken, not merely badly
	// formatted.
	ErrInvalidAIResponse = errors.New("invalid AI verification response")

	// ErrTransactionReverted indicates the registry transaction settled
	// but reverted. The registry surfaces no further detail.
	ErrTransactionReverted = errors.New("transaction reverted")
)
