package configs

// Thor holds configuration for the VeChain Thor node and the campaign
// registry contract deployed on it.
type Thor struct {
	// NodeURL is the base URL of the Thor REST API.
	NodeURL string `env:"NODE_URL" envDefault:"http://localhost:8669"`
	// ContractAddress is the deployed campaign registry contract.
	ContractAddress string `env:"CONTRACT_ADDRESS"`
	// AdminPrivateKey signs registry transactions (campaign creation and
	// verification). Hex encoded, with or without 0x prefix.
	AdminPrivateKey string `env:"ADMIN_PRIVATE_KEY"`
	// Gas is the gas provided for each transaction clause.
	Gas uint64 `env:"GAS" envDefault:"3000000"`
	// GasPriceCoef biases the gas price between base and maximum (0-255).
	GasPriceCoef uint8 `env:"GAS_PRICE_COEF" envDefault:"0"`
	// Expiration is how many blocks a submitted transaction stays valid.
	Expiration uint32 `env:"EXPIRATION" envDefault:"720"`
	// ReceiptTimeoutSeconds bounds how long a write waits for its receipt.
	ReceiptTimeoutSeconds int `env:"RECEIPT_TIMEOUT_SECONDS" envDefault:"60"`
}
