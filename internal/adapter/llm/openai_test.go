package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-studio/internal/core/port"
)

func newOpenAIServer(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	_, err := NewOpenAI(Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestOpenAIGenerate(t *testing.T) {
	var calls int32
	var got struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-4.1-mini",
			"choices": [{"index": 0, "finish_reason": "stop",
				"message": {"role": "assistant", "content": "{\"tagline\":\"hi\"}"}}]
		}`))
	}))
	defer srv.Close()

	gen, err := NewOpenAI(Config{APIKey: "test-key", BaseURL: srv.URL, Temperature: 0.8})
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "make a campaign")
	require.NoError(t, err)
	assert.Equal(t, `{"tagline":"hi"}`, text)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	assert.Equal(t, DefaultOpenAIModel, got.Model)
	assert.InDelta(t, 0.8, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, SystemPrompt, got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "make a campaign", got.Messages[1].Content)
}

// TestOpenAIQuotaIsSingleCall ensures a 429 is classified as quota and the
// SDK does not retry it.
func TestOpenAIQuotaIsSingleCall(t *testing.T) {
	var calls int32
	srv := newOpenAIServer(t, http.StatusTooManyRequests,
		`{"error":{"message":"You exceeded your current quota.","type":"insufficient_quota","param":null,"code":"insufficient_quota"}}`,
		&calls)

	gen, err := NewOpenAI(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrQuotaExceeded))
	assert.ErrorIs(t, err, ErrLLMFailed)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestOpenAIAuthFailureIsNotQuota(t *testing.T) {
	var calls int32
	srv := newOpenAIServer(t, http.StatusUnauthorized,
		`{"error":{"message":"Incorrect API key provided.","type":"invalid_request_error","param":null,"code":"invalid_api_key"}}`,
		&calls)

	gen, err := NewOpenAI(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.False(t, errors.Is(err, port.ErrQuotaExceeded))

	var uerr *port.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, http.StatusUnauthorized, uerr.StatusCode)
	assert.Equal(t, ProviderOpenAI, uerr.Provider)
}

func TestOpenAINetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gen, err := NewOpenAI(Config{APIKey: "test-key", BaseURL: url})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.False(t, errors.Is(err, port.ErrQuotaExceeded))
	assert.ErrorIs(t, err, ErrLLMFailed)
}

func TestOpenAIRejectsEmptyPrompt(t *testing.T) {
	gen, err := NewOpenAI(Config{APIKey: "test-key"})
	require.NoError(t, err)
	_, err = gen.Generate(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
