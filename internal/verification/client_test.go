package verification_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-fetch/p2pvault/internal/verification"
	"github.com/i-fetch/p2pvault/pkg/kycflow"
)

func TestFetchStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/kyc/status", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "rejected"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	t.Run("Authorized", func(t *testing.T) {
		client := verification.NewClient(server.URL)
		status, err := client.FetchStatus(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, "rejected", status)
	})

	t.Run("BadToken", func(t *testing.T) {
		client := verification.NewClient(server.URL)
		_, err := client.FetchStatus(ctx, "wrong")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid token")
	})
}

type recordingHTTPClient struct {
	req  *http.Request
	resp *http.Response
}

func (c *recordingHTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.req = req
	return c.resp, nil
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	stub := &recordingHTTPClient{
		resp: &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"status":"approved"}`)),
		},
	}
	client := verification.NewClient("https://wallet.example", verification.WithHTTPClient(stub))

	status, err := client.FetchStatus(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
	assert.Equal(t, "https://wallet.example/api/kyc/status", stub.req.URL.String())
	assert.Equal(t, "Bearer tok", stub.req.Header.Get("Authorization"))
}

func TestSubmit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var received kycflow.SubmitRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/api/kyc/submit", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if received.IDType == "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "idType is required"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "KYC details submitted successfully."})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	t.Run("Accepted", func(t *testing.T) {
		client := verification.NewClient(server.URL)
		msg, err := client.Submit(ctx, "tok", &kycflow.SubmitRequest{
			IDType:   "passport",
			FrontURL: "https://blob/front",
			BackURL:  "https://blob/back",
		})
		require.NoError(t, err)
		assert.Equal(t, "KYC details submitted successfully.", msg)
		assert.Equal(t, "passport", received.IDType)
		assert.Equal(t, "https://blob/front", received.FrontURL)
		assert.Equal(t, "https://blob/back", received.BackURL)
	})

	t.Run("BackendRejects", func(t *testing.T) {
		client := verification.NewClient(server.URL)
		_, err := client.Submit(ctx, "tok", &kycflow.SubmitRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "idType is required")
	})

	t.Run("BadToken", func(t *testing.T) {
		client := verification.NewClient(server.URL)
		_, err := client.Submit(ctx, "wrong", &kycflow.SubmitRequest{IDType: "passport"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})
}
