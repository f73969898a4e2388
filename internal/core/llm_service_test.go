package core

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Generate(t *testing.T) {
	var body struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "c1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "You are not alone."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 31, "completion_tokens": 6, "total_tokens": 37}
		}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL+"/v1", "")
	res, err := client.Generate(context.Background(), GenerationRequest{
		Messages:  ComposeMessages("I feel lonely", []string{"CTX"}),
		MaxTokens: 99,
	})
	require.NoError(t, err)

	assert.Equal(t, "You are not alone.", res.Text)
	assert.Equal(t, TokenUsage{PromptTokens: 31, CompletionTokens: 6, TotalTokens: 37}, res.Usage)

	assert.Equal(t, defaultOpenAIModelName, body.Model)
	assert.Equal(t, 99, body.MaxTokens)
	require.Len(t, body.Messages, 3)
	assert.Equal(t, "system", body.Messages[1].Role)
	assert.Equal(t, "CTX", body.Messages[1].Content)
	assert.Equal(t, "user", body.Messages[2].Role)
}

func TestOpenAIClient_SingleAttemptOnError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("k", srv.URL, "m")
	_, err := client.Generate(context.Background(), GenerationRequest{
		Messages:  []ChatMessage{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 10,
	})
	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestOpenAIClient_EmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "c1", "object": "chat.completion", "model": "m",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": ""}, "finish_reason": "length"}]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("k", srv.URL, "m")
	_, err := client.Generate(context.Background(), GenerationRequest{
		Messages:  []ChatMessage{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 10,
	})
	assert.ErrorContains(t, err, "no text")
}
