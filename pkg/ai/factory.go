package ai

import (
	"context"
	"fmt"

	"fitness-backend/pkg/gemini"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType

	// OpenAI-compatible config
	APIKey  string
	BaseURL string // e.g., "https://api.openai.com/v1"
	Model   string // e.g., "gpt-4o"

	// Gemini config
	GeminiAPIKey string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3"
}

// NewChatProvider creates a ChatCompletionProvider based on the config
// This is the factory function - switch AI provider by changing config.Provider
func NewChatProvider(cfg Config) (ChatCompletionProvider, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("LLM_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIService(cfg.APIKey, cfg.BaseURL, cfg.Model), nil

	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return &geminiProvider{svc: gemini.NewGeminiService(cfg.GeminiAPIKey)}, nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	case ProviderAuto:
		// First configured provider wins: OpenAI, then Gemini, then local Ollama
		if cfg.APIKey != "" {
			return NewOpenAIService(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
		}
		if cfg.GeminiAPIKey != "" {
			return &geminiProvider{svc: gemini.NewGeminiService(cfg.GeminiAPIKey)}, nil
		}
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

// geminiProvider adapts gemini.GeminiService to ChatCompletionProvider
type geminiProvider struct {
	svc *gemini.GeminiService
}

func (g *geminiProvider) Complete(ctx context.Context, req ChatRequest) (string, error) {
	return g.svc.GenerateContent(ctx, req.SystemMessage, req.UserMessage)
}

func (g *geminiProvider) Name() string { return string(ProviderGemini) }
