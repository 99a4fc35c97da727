package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAICompleteSendsSessionAsUser(t *testing.T) {
	var got chatCompletionRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Drink water."}}]}`))
	}))
	defer srv.Close()

	svc := NewOpenAIService("key-1", srv.URL+"/", "")
	answer, err := svc.Complete(context.Background(), ChatRequest{
		SessionID:     "fitness_coach_u1",
		SystemMessage: "You are a coach.",
		UserMessage:   "How do I recover?",
	})
	require.NoError(t, err)

	assert.Equal(t, "Drink water.", answer)
	assert.Equal(t, "Bearer key-1", auth)
	assert.Equal(t, DefaultOpenAIModel, got.Model)
	assert.Equal(t, "fitness_coach_u1", got.User)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "How do I recover?", got.Messages[1].Content)
}

func TestOpenAICompleteSurfacesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIService("k", srv.URL, "gpt-4o").Complete(context.Background(), ChatRequest{UserMessage: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestOllamaCompleteReadsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mistral", body["model"])
		assert.Equal(t, false, body["stream"])
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"  Rest well. "},"done":true}`))
	}))
	defer srv.Close()

	answer, err := NewOllamaService(srv.URL, "mistral").Complete(context.Background(), ChatRequest{UserMessage: "tired"})
	require.NoError(t, err)
	assert.Equal(t, "Rest well.", answer)
}

func TestNewChatProviderSelection(t *testing.T) {
	p, err := NewChatProvider(Config{Provider: ProviderOpenAI, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	_, err = NewChatProvider(Config{Provider: ProviderOpenAI})
	assert.Error(t, err)

	_, err = NewChatProvider(Config{Provider: ProviderGemini})
	assert.Error(t, err)

	p, err = NewChatProvider(Config{Provider: ProviderAuto, GeminiAPIKey: "g"})
	require.NoError(t, err)
	assert.Equal(t, "gemini", p.Name())

	p, err = NewChatProvider(Config{Provider: ProviderAuto})
	require.NoError(t, err)
	assert.Equal(t, "ollama", p.Name())

	_, err = NewChatProvider(Config{Provider: "watson"})
	assert.Error(t, err)
}
