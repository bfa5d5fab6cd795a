package domain

// Campaign mirrors the registry's on-chain campaign record. Currency
// amounts are kept as decimal strings on this side of the boundary; the
// registry adapter converts them to fixed-point wei before submission.
type Campaign struct {
	ID                  int64  `json:"id"`
	Creator             string `json:"creator"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	MedicalDocumentHash string `json:"medicalDocumentHash"`
	GoalAmount          string `json:"goalAmount"`
	RaisedAmount        string `json:"raisedAmount"`
	Deadline            int64  `json:"deadline"`
	IsActive            bool   `json:"isActive"`
	IsVerified          bool   `json:"isVerified"`
	FundsWithdrawn      bool   `json:"fundsWithdrawn"`
	CreatedAt           int64  `json:"createdAt"`
	DonorCount          int64  `json:"donorCount"`
}

// CreatorProfile is the registry-maintained reputation aggregate for a
// creator account. Exists is false when the registry has never seen the
// account.
type CreatorProfile struct {
	TotalCampaigns      int64  `json:"totalCampaigns"`
	SuccessfulCampaigns int64  `json:"successfulCampaigns"`
	TotalRaised         string `json:"totalRaised"`
	TrustScore          int64  `json:"trustScore"`
	LastUpdateTimestamp int64  `json:"lastUpdateTimestamp"`
	Exists              bool   `json:"exists"`
}

// Donation is a single donor's contribution to a campaign.
type Donation struct {
	CampaignID   int64  `json:"campaignId"`
	DonorAddress string `json:"donorAddress"`
	Amount       string `json:"amount"`
}
