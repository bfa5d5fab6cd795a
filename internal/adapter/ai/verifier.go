package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/xeipuuv/gojsonschema"

	"vecare-backend/internal/config/configs"
	"vecare-backend/internal/core/domain"
	"vecare-backend/internal/core/port"
)

// Verifier implements port.DocumentVerifier against an OpenAI-compatible
// vision endpoint. One request per verification, no streaming, no
// retries.
type Verifier struct {
	client openai.Client
	model  string
	schema *gojsonschema.Schema
	logger *slog.Logger
}

// NewVerifier builds a Verifier from configuration. It fails only when
// the embedded verdict schema does not compile.
func NewVerifier(cfg configs.OpenAI, logger *slog.Logger) (*Verifier, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(resultSchema))
	if err != nil {
		return nil, fmt.Errorf("compile verdict schema: %w", err)
	}

	return &Verifier{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		schema: schema,
		logger: logger,
	}, nil
}

// Verify sends the first document plus the fixed verification prompt to
// the model and parses the verdict. Only the first document is analyzed;
// the rest are still validated and end up in the evidence bundle.
func (v *Verifier) Verify(ctx context.Context, documents []string) (domain.VerificationResult, error) {
	if err := domain.ValidateDocuments(documents); err != nil {
		return domain.VerificationResult{}, err
	}

	resp, err := v.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(v.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(verificationPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: documents[0],
				}),
			}),
		},
	})
	if err != nil {
		return domain.VerificationResult{}, fmt.Errorf("ai verification request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.VerificationResult{}, fmt.Errorf("ai verification request: empty completion")
	}

	return v.parseVerdict(resp.Choices[0].Message.Content)
}

// parseVerdict applies the response-handling policy: fence-strip, parse,
// schema-check. A response that is not JSON at all degrades to the safe
// default; one that parses but breaks the schema is a hard error.
func (v *Verifier) parseVerdict(content string) (domain.VerificationResult, error) {
	raw := stripCodeFence(content)

	validation, err := v.schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		// Not valid JSON. Verification must never crash campaign
		// creation, but must also never silently pass.
		v.logger.Warn("ai verdict was not valid JSON, substituting safe default",
			slog.String("response_prefix", prefix(raw, 80)))
		return degradedResult(), nil
	}
	if !validation.Valid() {
		return domain.VerificationResult{}, fmt.Errorf("%w: %s", port.ErrInvalidAIResponse, validation.Errors()[0])
	}

	var result domain.VerificationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return domain.VerificationResult{}, fmt.Errorf("%w: %v", port.ErrInvalidAIResponse, err)
	}
	if result.Findings == nil {
		result.Findings = []string{}
	}
	if result.RedFlags == nil {
		result.RedFlags = []string{}
	}
	return result, nil
}

// degradedResult is returned when the model answers with something other
// than JSON. Unverified, low confidence, and an explicit red flag so the
// substitution is visible downstream.
func degradedResult() domain.VerificationResult {
	return domain.VerificationResult{
		IsVerified:      false,
		ConfidenceScore: 0.3,
		DocumentType:    "Unknown",
		Findings:        []string{},
		Reasoning: "We could not automatically read the verification verdict for your documents. " +
			"Please re-upload a clearer scan or photo of the original document.",
		RedFlags: []string{"AI verification system returned an invalid response"},
	}
}

// stripCodeFence removes Markdown code-fence wrapping so a fenced JSON
// response parses identically to its unwrapped equivalent.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
