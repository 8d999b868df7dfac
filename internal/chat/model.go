package chat

import (
	"context"
	"fmt"
)

// Rating is one safety rating attached to a blocked prompt.
type Rating struct {
	Category    string
	Probability string
}

// Generation is the provider-neutral view of one model response.
type Generation struct {
	// Candidates is the number of candidates returned.
	Candidates int
	// Text is the text of the first candidate.
	Text        string
	BlockReason string
	Ratings     []Rating
}

// Model generates a response for a single text prompt.
type Model interface {
	Generate(ctx context.Context, prompt string) (*Generation, error)
}

// ProviderError is an error response returned by the AI provider.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("ai provider error %d: %s", e.Code, e.Message)
}
