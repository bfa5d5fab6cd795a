package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecare-backend/internal/config/configs"
	"vecare-backend/internal/core/domain"
	"vecare-backend/internal/core/port"
)

func testDocument() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("scan"))
}

// fakeModel serves a chat-completion endpoint whose assistant message
// content is fixed per test.
func fakeModel(t *testing.T, content string, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		resp := map[string]any{
			"id":     "cmpl-test",
			"object": "chat.completion",
			"choices": []map[string]any{{
				"index":   0,
				"message": map[string]any{"role": "assistant", "content": content},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestVerifier(t *testing.T, baseURL string) *Verifier {
	t.Helper()
	v, err := NewVerifier(configs.OpenAI{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: baseURL,
	}, slog.New(slog.NewTextHandler(&testWriter{t}, nil)))
	require.NoError(t, err)
	return v
}

type testWriter struct{ t *testing.T }

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

const verdictJSON = `{
	"isVerified": true,
	"confidenceScore": 0.85,
	"documentType": "Doctor's Letter",
	"findings": ["official letterhead", "consistent dates"],
	"reasoning": "The document looks genuine.",
	"redFlags": []
}`

func TestVerifyParsesPlainJSON(t *testing.T) {
	srv := fakeModel(t, verdictJSON, nil)
	defer srv.Close()

	result, err := newTestVerifier(t, srv.URL).Verify(context.Background(), []string{testDocument()})
	require.NoError(t, err)
	assert.True(t, result.IsVerified)
	assert.InDelta(t, 0.85, result.ConfidenceScore, 1e-9)
	assert.Equal(t, "Doctor's Letter", result.DocumentType)
	assert.Len(t, result.Findings, 2)
	assert.Empty(t, result.RedFlags)
}

func TestVerifyStripsCodeFence(t *testing.T) {
	wrappings := map[string]string{
		"json fence": "```json\n" + verdictJSON + "\n```",
		"bare fence": "```\n" + verdictJSON + "\n```",
		"padded":     "\n\n```json\n" + verdictJSON + "\n```\n\n",
	}

	for name, content := range wrappings {
		t.Run(name, func(t *testing.T) {
			srv := fakeModel(t, content, nil)
			defer srv.Close()

			result, err := newTestVerifier(t, srv.URL).Verify(context.Background(), []string{testDocument()})
			require.NoError(t, err)
			assert.True(t, result.IsVerified)
			assert.InDelta(t, 0.85, result.ConfidenceScore, 1e-9)
		})
	}
}

func TestVerifyDegradesOnNonJSON(t *testing.T) {
	srv := fakeModel(t, "I'm sorry, I cannot analyze this document.", nil)
	defer srv.Close()

	result, err := newTestVerifier(t, srv.URL).Verify(context.Background(), []string{testDocument()})
	require.NoError(t, err, "a non-JSON answer must degrade, not fail")
	assert.False(t, result.IsVerified)
	assert.InDelta(t, 0.3, result.ConfidenceScore, 1e-9)
	assert.Equal(t, "Unknown", result.DocumentType)
	require.Len(t, result.RedFlags, 1)
	assert.Contains(t, result.RedFlags[0], "invalid response")
}

func TestVerifyRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing confidence": `{"isVerified": true}`,
		"mistyped verified":  `{"isVerified": "yes", "confidenceScore": 0.9}`,
		"confidence above 1": `{"isVerified": true, "confidenceScore": 1.5}`,
		"negative confidence": `{"isVerified": true, "confidenceScore": -0.1}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			srv := fakeModel(t, content, nil)
			defer srv.Close()

			_, err := newTestVerifier(t, srv.URL).Verify(context.Background(), []string{testDocument()})
			require.ErrorIs(t, err, port.ErrInvalidAIResponse)
		})
	}
}

func TestVerifyValidatesDocumentsLocally(t *testing.T) {
	var calls atomic.Int64
	srv := fakeModel(t, verdictJSON, &calls)
	defer srv.Close()

	v := newTestVerifier(t, srv.URL)

	var clientErr *domain.ClientError
	_, err := v.Verify(context.Background(), nil)
	require.ErrorAs(t, err, &clientErr)

	_, err = v.Verify(context.Background(), []string{"not an image"})
	require.ErrorAs(t, err, &clientErr)

	assert.Zero(t, calls.Load(), "malformed input must never reach the AI backend")
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`), "unfenced input is returned as-is")
	assert.Equal(t, "plain text", stripCodeFence("plain text"))
}
