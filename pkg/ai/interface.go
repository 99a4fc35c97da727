package ai

import (
	"context"
)

// ChatRequest is a single coaching turn sent to the LLM.
type ChatRequest struct {
	// SessionID identifies the running conversation thread of the caller.
	SessionID     string
	SystemMessage string
	UserMessage   string
}

// ChatCompletionProvider is the interface for hosted chat models.
// Implement this interface to add new AI providers (OpenAI, Gemini, Ollama, etc.)
// Calls block until the provider answers; no timeout is applied here.
type ChatCompletionProvider interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
	Name() string
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
