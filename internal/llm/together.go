package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const togetherAPIURL = "https://api.together.xyz/v1/chat/completions"

// TogetherClient implements the Client interface using Together AI's
// chat-completion API.
type TogetherClient struct {
	apiKey     string
	model      string
	maxTokens  int
	baseURL    string
	httpClient *http.Client
}

// TogetherConfig holds configuration for the Together AI client.
type TogetherConfig struct {
	APIKey     string
	Model      string       // e.g. "meta-llama/Llama-3-8b-chat-hf"
	MaxTokens  int          // cap on generated tokens, 0 uses the default
	BaseURL    string       // override for tests, empty uses the real API
	HTTPClient *http.Client // shared pooled client, nil uses a fresh one
}

// NewTogetherClient creates a new Together AI client.
func NewTogetherClient(cfg TogetherConfig) *TogetherClient {
	model := cfg.Model
	if model == "" {
		model = "meta-llama/Llama-3-8b-chat-hf"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 512
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = togetherAPIURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &TogetherClient{
		apiKey:     cfg.APIKey,
		model:      model,
		maxTokens:  maxTokens,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// chatRequest represents a Together AI chat completion request.
type chatRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse represents a Together AI chat completion response.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the messages to Together AI and returns the reply text.
func (c *TogetherClient) Complete(ctx context.Context, messages []Message) (string, error) {
	chatMsgs := make([]chatMessage, 0, len(messages))
	for _, m := range messages {
		chatMsgs = append(chatMsgs, chatMessage{Role: m.Role, Content: m.Content})
	}

	req := chatRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  chatMsgs,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Together API error: %s - %s", resp.Status, string(respBody))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
