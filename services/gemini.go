package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

var errGeneratorUnavailable = errors.New("gemini client not initialized")

// GenerationOptions are the decoding parameters of one call
type GenerationOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// TextGenerator turns a prompt into text
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}

// GeminiGenerator is a TextGenerator backed by the Gemini API. The client is
// created on first use and shared for the life of the process.
type GeminiGenerator struct {
	apiKey string
	model  string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiGenerator returns a generator for the given key and model. No
// network call happens until the first GenerateText.
func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiGenerator{apiKey: apiKey, model: model}
}

func initGemini(ctx context.Context, apiKey string) (*genai.Client, error) {
	config := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	if apiKey != "" {
		config.APIKey = apiKey
	}
	return genai.NewClient(ctx, config)
}

func (g *GeminiGenerator) getClient(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.initErr = initGemini(context.WithoutCancel(ctx), g.apiKey)
	})
	if g.initErr != nil {
		return nil, g.initErr
	}
	if g.client == nil {
		return nil, errGeneratorUnavailable
	}
	return g.client, nil
}

// Model is the model name sent with every request
func (g *GeminiGenerator) Model() string { return g.model }

// GenerateText sends the prompt with fixed decoding parameters
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string, opts GenerationOptions) (string, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return "", err
	}
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		MaxOutputTokens: opts.MaxOutputTokens,
	}
	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

// Close releases the generator. The client holds no connections of its own.
func (g *GeminiGenerator) Close() error { return nil }
