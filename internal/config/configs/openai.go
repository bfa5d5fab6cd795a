package configs

// OpenAI holds configuration for the vision model used for medical
// document verification. BaseURL is only set when pointing at a
// compatible proxy or a test double.
type OpenAI struct {
	// APIKey authenticates against the AI backend. Verification requests
	// fail without it.
	APIKey string `env:"API_KEY"`
	// Model is the vision-capable chat model used for document analysis.
	Model string `env:"MODEL" envDefault:"gpt-4o"`
	// BaseURL overrides the provider endpoint. Empty means the provider
	// default.
	BaseURL string `env:"BASE_URL"`
}
