package verification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/i-fetch/p2pvault/pkg/kycflow"
)

// IHTTPClient is the type needed for the client to perform HTTP requests.
type IHTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(c *Client)

// Client talks to the wallet backend's KYC endpoints. It never retries;
// retry is the caller's affordance.
type Client struct {
	baseURL string
	http    IHTTPClient
}

type statusResponse struct {
	Status string `json:"status"`
}

type submitResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// FetchStatus returns the backend's raw status string for the session user.
func (c *Client) FetchStatus(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/kyc/status", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apiError("kyc status", resp.StatusCode, body)
	}

	var out statusResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("kyc status: decode response: %w", err)
	}
	return out.Status, nil
}

// Submit posts the structured verification request and returns the backend's
// success message.
func (c *Client) Submit(ctx context.Context, token string, sr *kycflow.SubmitRequest) (string, error) {
	b, err := json.Marshal(sr)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/kyc/submit", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apiError("kyc submit", resp.StatusCode, body)
	}

	var out submitResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("kyc submit: decode response: %w", err)
	}
	return out.Message, nil
}

func apiError(op string, code int, body []byte) error {
	var out submitResponse
	if json.Unmarshal(body, &out) == nil && out.Error != "" {
		return fmt.Errorf("%s: %s (status %d)", op, out.Error, code)
	}
	return fmt.Errorf("%s: unexpected status %d", op, code)
}

// WithHTTPClient is a Option that allows you set the http client.
func WithHTTPClient(client IHTTPClient) Option {
	return func(c *Client) {
		c.http = client
	}
}

func NewClient(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 20 * time.Second},
	}

	for _, o := range options {
		o(c)
	}

	return c
}
