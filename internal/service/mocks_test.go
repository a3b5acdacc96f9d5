package service

import (
	"context"

	"quizgen/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTranscriptRepository ---
type MockTranscriptRepository struct {
	mock.Mock
}

func (m *MockTranscriptRepository) ListTranscripts(ctx context.Context) ([]*domain.WorkItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkItem), args.Error(1)
}

// --- MockQuizGenerationService ---
type MockQuizGenerationService struct {
	mock.Mock
}

func (m *MockQuizGenerationService) GenerateQuiz(ctx context.Context, item *domain.WorkItem) (*domain.Quiz, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

// --- MockQuizWriter ---
type MockQuizWriter struct {
	mock.Mock
}

func (m *MockQuizWriter) WriteQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}
