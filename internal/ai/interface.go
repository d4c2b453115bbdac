package ai

import (
	"context"
	"encoding/json"

	"github.com/mcamargo/lexgym/internal/models"
)

// GenerateRequest asks the AI backend for one piece of practice content.
type GenerateRequest struct {
	Module string         `json:"module"`
	Kind   string         `json:"kind"`
	Params map[string]any `json:"params,omitempty"`
}

// GeneratedContent is the typed JSON returned by the backend. The payload is
// opaque to the core; it is stored whole in the activity log.
type GeneratedContent struct {
	Module  string          `json:"module"`
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Service is the opaque content-generation boundary. Failures are surfaced
// to the caller; nothing here retries automatically.
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*GeneratedContent, error)
	EnrichWord(ctx context.Context, word string) (*models.Enrichment, error)
	SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error)
}
