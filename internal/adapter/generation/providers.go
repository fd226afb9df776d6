package generation

import (
	"context"
	"fmt"
	"net/http"

	"vidlearn/internal/config"
	"vidlearn/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"google.golang.org/genai"
)

const (
	ProviderGoogleAI = "googleai"
	ProviderGenAI    = "genai"
	ProviderOllama   = "ollama"
	ProviderOpenAI   = "openai"
)

// LLMGenerator adapts any langchaingo model to domain.TextGenerator.
type LLMGenerator struct {
	model       llms.Model
	temperature float64
}

func NewLLMGenerator(model llms.Model, temperature float64) *LLMGenerator {
	return &LLMGenerator{model: model, temperature: temperature}
}

func (g *LLMGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.model, prompt, llms.WithTemperature(g.temperature))
}

// GenAIGenerator talks to Gemini through the google.golang.org/genai SDK.
type GenAIGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGenAIGenerator(ctx context.Context, apiKey, model string, temperature float64, httpClient *http.Client) (*GenAIGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GenAIGenerator{client: client, model: model, temperature: float32(temperature)}, nil
}

func (g *GenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// NewGenerator builds the generator for one credential slot.
func NewGenerator(ctx context.Context, slot config.SlotConfig, temperature float64, httpClient *http.Client) (domain.TextGenerator, error) {
	switch slot.Provider {
	case ProviderGoogleAI, "":
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(slot.APIKey),
			googleai.WithDefaultModel(slot.Model),
			googleai.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create googleai client: %w", err)
		}
		return NewLLMGenerator(llm, temperature), nil
	case ProviderGenAI:
		return NewGenAIGenerator(ctx, slot.APIKey, slot.Model, temperature, httpClient)
	case ProviderOllama:
		llm, err := ollama.New(
			ollama.WithServerURL(slot.ServerURL),
			ollama.WithModel(slot.Model),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewLLMGenerator(llm, temperature), nil
	case ProviderOpenAI:
		opts := []openai.Option{
			openai.WithToken(slot.APIKey),
			openai.WithModel(slot.Model),
			openai.WithHTTPClient(httpClient),
		}
		if slot.ServerURL != "" {
			opts = append(opts, openai.WithBaseURL(slot.ServerURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewLLMGenerator(llm, temperature), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider %q", slot.Provider)
	}
}

var (
	_ domain.TextGenerator = (*LLMGenerator)(nil)
	_ domain.TextGenerator = (*GenAIGenerator)(nil)
)
