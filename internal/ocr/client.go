// Package ocr is a thin client for an HTTP OCR provider. Extraction is
// advisory: the workflow logs failures and submits without the text.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

type extractResponse struct {
	Text         string `json:"text"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func New(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ExtractText uploads the image and returns the provider's extracted text.
func (c *Client) ExtractText(ctx context.Context, filename string, r io.Reader) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("missing ocr api key")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e extractResponse
		if json.Unmarshal(body, &e) == nil && e.ErrorMessage != "" {
			return "", fmt.Errorf("ocr error (%d): %s", resp.StatusCode, e.ErrorMessage)
		}
		return "", fmt.Errorf("ocr http error (%d): %s", resp.StatusCode, string(body))
	}

	var out extractResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if out.ErrorMessage != "" {
		return "", errors.New(out.ErrorMessage)
	}

	return out.Text, nil
}
