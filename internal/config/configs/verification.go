package configs

// Verification holds the two confidence thresholds used by the campaign
// creation workflow. They are deliberately distinct: AutoVerifyThreshold
// governs whether the on-chain verify transaction fires, while
// ReportVerifiedThreshold governs what confidence bar is reported as
// "fully verified" to the caller.
type Verification struct {
	AutoVerifyThreshold     float64 `env:"AUTO_THRESHOLD" envDefault:"0.6"`
	ReportVerifiedThreshold float64 `env:"REPORT_THRESHOLD" envDefault:"0.8"`
}
