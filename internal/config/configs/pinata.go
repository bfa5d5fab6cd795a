package configs

// Pinata holds configuration for the IPFS pinning service. Credentials
// are optional at startup; the store client reports itself unavailable
// on first use when they are missing.
type Pinata struct {
	// APIKey and APISecret are the Pinata API credentials.
	APIKey    string `env:"API_KEY"`
	APISecret string `env:"API_SECRET"`
	// Gateway is the HTTP gateway used for content retrieval.
	Gateway string `env:"GATEWAY" envDefault:"https://gateway.pinata.cloud"`
	// APIBase is the pinning API endpoint.
	APIBase string `env:"API_BASE" envDefault:"https://api.pinata.cloud"`
}
