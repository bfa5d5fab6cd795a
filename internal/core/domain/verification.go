package domain

// VerificationResult is the structured verdict produced by the AI document
// check. It is ephemeral: it exists for one creation request and is only
// persisted as part of the evidence bundle. ConfidenceScore is in [0,1].
type VerificationResult struct {
	IsVerified      bool     `json:"isVerified"`
	ConfidenceScore float64  `json:"confidenceScore"`
	DocumentType    string   `json:"documentType"`
	Findings        []string `json:"findings"`
	Reasoning       string   `json:"reasoning"`
	RedFlags        []string `json:"redFlags"`
}

// EvidenceBundle is the payload pinned to the content store and referenced
// by hash from the registry. Immutable once pinned. The field names are
// part of the stored JSON format and must not change.
type EvidenceBundle struct {
	Documents          []string           `json:"documents"`
	VerificationResult VerificationResult `json:"verificationResult"`
	CampaignTitle      string             `json:"campaignTitle"`
	Creator            string             `json:"creator"`
	Timestamp          int64              `json:"timestamp"`
}
