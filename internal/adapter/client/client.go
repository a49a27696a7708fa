// Package client is an outbound adapter for the campaign HTTP API. The
// terminal shell uses it the same way the web page uses the usecase.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"campaign-studio/internal/core/domain"
)

const (
	DefaultBaseURL = "http://localhost:8080"
	generatePath   = "/api/generate-campaign"

	// msgFailed is shown when the server answers with an error but no message.
	msgFailed = "Failed to generate"
)

// Client calls POST /api/generate-campaign on a running server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for baseURL. A nil httpClient means
// http.DefaultClient; no timeout is added on top of the caller's context.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Generate posts req and returns the decoded result. Non-2xx answers become a
// *domain.Error carrying the server's "error" text; 400 maps to InvalidInput.
func (c *Client) Generate(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("campaign request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp.StatusCode, raw)
	}

	var res domain.CampaignResult
	if err = json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &res, nil
}

func responseError(status int, raw []byte) error {
	var body struct {
		Error string `json:"error"`
	}
	msg := msgFailed
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		msg = body.Error
	}
	kind := domain.UpstreamFailure
	if status == http.StatusBadRequest {
		kind = domain.InvalidInput
	}
	return &domain.Error{
		Kind:    kind,
		Message: msg,
		Err:     fmt.Errorf("server returned status %d", status),
	}
}
