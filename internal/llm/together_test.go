package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewTogetherClient(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		client := NewTogetherClient(TogetherConfig{APIKey: "test-key"})

		if client.model != "meta-llama/Llama-3-8b-chat-hf" {
			t.Errorf("model = %q, want %q", client.model, "meta-llama/Llama-3-8b-chat-hf")
		}
		if client.maxTokens != 512 {
			t.Errorf("maxTokens = %d, want %d", client.maxTokens, 512)
		}
		if client.baseURL != togetherAPIURL {
			t.Errorf("baseURL = %q, want %q", client.baseURL, togetherAPIURL)
		}
	})

	t.Run("custom model", func(t *testing.T) {
		client := NewTogetherClient(TogetherConfig{
			APIKey: "test-key",
			Model:  "meta-llama/Llama-3-70b-chat-hf",
		})

		if client.model != "meta-llama/Llama-3-70b-chat-hf" {
			t.Errorf("model = %q, want %q", client.model, "meta-llama/Llama-3-70b-chat-hf")
		}
	})
}

func TestTogetherClientComplete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotAuth string
		var gotReq chatRequest

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotReq)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": "  Hello there!  "}},
				},
			})
		}))
		defer srv.Close()

		client := NewTogetherClient(TogetherConfig{APIKey: "test-key", BaseURL: srv.URL})

		got, err := client.Complete(context.Background(), []Message{
			{Role: "system", Content: "be helpful"},
			{Role: "user", Content: "hi"},
		})
		if err != nil {
			t.Fatalf("Complete() error = %v", err)
		}
		if got != "Hello there!" {
			t.Errorf("Complete() = %q, want %q", got, "Hello there!")
		}
		if gotAuth != "Bearer test-key" {
			t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer test-key")
		}
		if gotReq.MaxTokens != 512 {
			t.Errorf("max_tokens = %d, want %d", gotReq.MaxTokens, 512)
		}
		if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
			t.Errorf("messages = %+v, want system then user", gotReq.Messages)
		}
	})

	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream exploded", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewTogetherClient(TogetherConfig{APIKey: "test-key", BaseURL: srv.URL})

		if _, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
			t.Error("Complete() error = nil, want error for 500 response")
		}
	})

	t.Run("empty choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer srv.Close()

		client := NewTogetherClient(TogetherConfig{APIKey: "test-key", BaseURL: srv.URL})

		if _, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
			t.Error("Complete() error = nil, want error for empty choices")
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // closed server refuses connections

		client := NewTogetherClient(TogetherConfig{APIKey: "test-key", BaseURL: srv.URL})

		if _, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
			t.Error("Complete() error = nil, want transport error")
		}
	})
}

func TestClientInterface(t *testing.T) {
	var _ Client = (*TogetherClient)(nil)
}
