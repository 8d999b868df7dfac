package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiModel calls the Gemini API through the genai SDK.
type GeminiModel struct {
	client *genai.Client
	model  string
}

func NewGeminiModel(ctx context.Context, cfg Config) (*GeminiModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiModel{client: client, model: model}, nil
}

func (m *GeminiModel) Generate(ctx context.Context, prompt string) (*Generation, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, providerError(err)
	}
	return toGeneration(resp), nil
}

func toGeneration(resp *genai.GenerateContentResponse) *Generation {
	g := &Generation{}
	if resp == nil {
		return g
	}
	g.Candidates = len(resp.Candidates)
	if g.Candidates > 0 && resp.Candidates[0] != nil && resp.Candidates[0].Content != nil {
		var b strings.Builder
		for _, p := range resp.Candidates[0].Content.Parts {
			if p != nil {
				b.WriteString(p.Text)
			}
		}
		g.Text = b.String()
	}
	if fb := resp.PromptFeedback; fb != nil {
		g.BlockReason = string(fb.BlockReason)
		for _, r := range fb.SafetyRatings {
			if r == nil {
				continue
			}
			g.Ratings = append(g.Ratings, Rating{Category: string(r.Category), Probability: string(r.Probability)})
		}
	}
	return g
}

// providerError converts a genai API error into a ProviderError and leaves
// transport errors untouched.
func providerError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Code: apiErr.Code, Message: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &ProviderError{Code: apiErrPtr.Code, Message: apiErrPtr.Message}
	}
	return err
}
