package services

import (
	"context"
	"encoding/json"
	"strings"

	"contentpilot/errs"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/openai"
)

// CompletionRequest is one prompt sent to an AI provider. Model is the
// API-facing name from SupportedModels; empty means DefaultModel.
type CompletionRequest struct {
	Prompt    string
	Model     string
	MaxTokens int
}

// LLM is the completion surface used by topic extraction, style analysis and
// content generation.
type LLM interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Embedder produces vector embeddings for style profiles.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ModelRouter dispatches completion requests to the provider that serves the
// requested model. Providers without a configured API key are left nil and
// requests routed to them fail with an API key error.
type ModelRouter struct {
	openai    llms.Model
	anthropic llms.Model
}

func NewModelRouter(openaiKey, anthropicKey string) (*ModelRouter, error) {
	router := &ModelRouter{}

	if openaiKey != "" {
		client, err := openai.New(openai.WithToken(openaiKey))
		if err != nil {
			return nil, errs.NewLLMError(ProviderOpenAI, err)
		}
		router.openai = client
	}
	if anthropicKey != "" {
		client, err := anthropic.New(anthropic.WithToken(anthropicKey))
		if err != nil {
			return nil, errs.NewLLMError(ProviderAnthropic, err)
		}
		router.anthropic = client
	}

	return router, nil
}

func (r *ModelRouter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}
	provider, apiModel, ok := ResolveModel(model)
	if !ok {
		return "", errs.NewUnsupportedModelError(model)
	}

	var client llms.Model
	switch provider {
	case ProviderOpenAI:
		client = r.openai
	case ProviderAnthropic:
		client = r.anthropic
	}
	if client == nil {
		return "", errs.NewInvalidAPIKeyError(provider)
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	log.Debug().
		Str("provider", provider).
		Str("model", apiModel).
		Int("maxTokens", maxTokens).
		Int("promptChars", len(req.Prompt)).
		Msg("Sending completion request")

	text, err := llms.GenerateFromSinglePrompt(ctx, client, req.Prompt,
		llms.WithModel(apiModel),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", errs.NewLLMError(provider, err)
	}
	return text, nil
}

// OpenAIEmbedder wraps the OpenAI embedding endpoint for style profile
// vectors.
type OpenAIEmbedder struct {
	embedder embeddings.Embedder
}

func NewOpenAIEmbedder(apiKey string) (*OpenAIEmbedder, error) {
	client, err := openai.New(openai.WithToken(apiKey))
	if err != nil {
		return nil, errs.NewLLMError(ProviderOpenAI, err)
	}
	embedder, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, errs.NewLLMError(ProviderOpenAI, err)
	}
	return &OpenAIEmbedder{embedder: embedder}, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vector, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, errs.NewLLMError(ProviderOpenAI, err)
	}
	return vector, nil
}

// DecodeModelJSON unmarshals a model answer into v, tolerating markdown code
// fences and prose around the JSON body.
func DecodeModelJSON(raw string, v any) error {
	cleaned := strings.TrimSpace(raw)
	if i := strings.Index(cleaned, "```"); i >= 0 {
		cleaned = cleaned[i+3:]
		cleaned = strings.TrimPrefix(cleaned, "json")
		if j := strings.Index(cleaned, "```"); j >= 0 {
			cleaned = cleaned[:j]
		}
	}
	cleaned = strings.TrimSpace(cleaned)

	err := json.Unmarshal([]byte(cleaned), v)
	if err == nil {
		return nil
	}

	// Fall back to the outermost braces when the model wrapped the JSON in
	// explanation text, before or after the object.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		if retryErr := json.Unmarshal([]byte(cleaned[start:end+1]), v); retryErr == nil {
			return nil
		}
	}
	return errs.NewModelOutputError("JSON", err)
}
