package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func TestOpenAIClient_Complete_Success(t *testing.T) {
	// Mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Expected Authorization header Bearer test-key, got %s", r.Header.Get("Authorization"))
		}

		var apiReq openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if len(apiReq.Messages) != 2 {
			t.Errorf("Expected system + user messages, got %d", len(apiReq.Messages))
		} else if apiReq.Messages[0].Role != "system" {
			t.Errorf("Expected first message role system, got %s", apiReq.Messages[0].Role)
		}

		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-123",
			Object: "chat.completion",
			Model:  "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{
					Index: 0,
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: "The claim verifies at tier 1.",
					},
					FinishReason: "stop",
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client, err := NewOpenAIClient(Config{
		Provider: "openai",
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Model:    "gpt-4o-mini",
		Timeout:  5,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	text, err := client.Complete(context.Background(), CompletionRequest{
		Prompt: "Analyze this claim",
		System: "stay grounded",
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if text != "The claim verifies at tier 1." {
		t.Errorf("Unexpected completion: %q", text)
	}
}

func TestOpenAIClient_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "Internal Server Error", "type": "server_error"}}`))
	}))
	defer server.Close()

	client, err := NewOpenAIClient(Config{Provider: "openai", APIKey: "test-key", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if _, err := client.Complete(context.Background(), CompletionRequest{Prompt: "test"}); err == nil {
		t.Fatal("Expected error for 500 response")
	}
}

func TestOpenAIClient_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{ID: "chatcmpl-123"})
	}))
	defer server.Close()

	client, err := NewOpenAIClient(Config{Provider: "openai", APIKey: "test-key", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if _, err := client.Complete(context.Background(), CompletionRequest{Prompt: "test"}); err == nil {
		t.Fatal("Expected error for empty choices")
	}
}

func TestOpenAIClient_NameFollowsProvider(t *testing.T) {
	client, err := NewOpenAIClient(Config{Provider: "xai", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	if client.Name() != "xai" {
		t.Errorf("Expected name xai, got %s", client.Name())
	}

	client, err = NewOpenAIClient(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	if client.Name() != "openai" {
		t.Errorf("Expected default name openai, got %s", client.Name())
	}
}
