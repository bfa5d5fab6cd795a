package port

import (
	"context"

	"vecare-backend/internal/core/domain"
)

// DocumentVerifier produces a structured verdict for a set of evidence
// documents. It is an outbound port; the production implementation talks
// to a vision-capable language model.
//
// Implementations must validate the documents locally before any network
// call, and must absorb an unparseable provider response into a safe
// degraded VerificationResult instead of returning an error. A response
// that parses but violates the verdict schema is returned as
// ErrInvalidAIResponse.
type DocumentVerifier interface {
	Verify(ctx context.Context, documents []string) (domain.VerificationResult, error)
}
