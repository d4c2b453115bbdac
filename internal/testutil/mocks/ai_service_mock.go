package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mcamargo/lexgym/internal/ai"
	"github.com/mcamargo/lexgym/internal/models"
)

// MockAIService is a mock implementation of ai.Service
type MockAIService struct {
	mock.Mock
}

func (m *MockAIService) Generate(ctx context.Context, req ai.GenerateRequest) (*ai.GeneratedContent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.GeneratedContent), args.Error(1)
}

func (m *MockAIService) EnrichWord(ctx context.Context, word string) (*models.Enrichment, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enrichment), args.Error(1)
}

func (m *MockAIService) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	args := m.Called(ctx, text, voice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
