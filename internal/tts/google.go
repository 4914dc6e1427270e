package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const googleTTSURL = "https://translate.google.com/translate_tts"

// GoogleClient implements the Client interface using the Google Translate
// speech endpoint. It needs no credential and covers all four supported
// languages.
type GoogleClient struct {
	baseURL    string
	httpClient *http.Client
}

// GoogleConfig holds configuration for the Google TTS client.
type GoogleConfig struct {
	BaseURL    string       // override for tests, empty uses the real endpoint
	HTTPClient *http.Client // shared pooled client, nil uses a fresh one
}

// NewGoogleClient creates a new Google TTS client.
func NewGoogleClient(cfg GoogleConfig) *GoogleClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = googleTTSURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &GoogleClient{baseURL: baseURL, httpClient: httpClient}
}

// Synthesize converts text to MP3 audio in the given language.
func (c *GoogleClient) Synthesize(ctx context.Context, text, langCode string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", langCode)
	q.Set("q", text)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Google TTS error: %s - %s", resp.Status, string(respBody))
	}

	return io.ReadAll(resp.Body)
}
