package service

import (
	"context"
	"time"

	"vidlearn/internal/adapter/generation"
	"vidlearn/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTranscriptSource ---
type MockTranscriptSource struct {
	mock.Mock
}

func (m *MockTranscriptSource) Fetch(ctx context.Context, videoID string) ([]domain.TranscriptSegment, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TranscriptSegment), args.Error(1)
}

// --- MockInvoker ---
type MockInvoker struct {
	mock.Mock
}

func (m *MockInvoker) Invoke(ctx context.Context, slot, prompt string, policy generation.Policy) (generation.Result, error) {
	args := m.Called(ctx, slot, prompt, policy)
	return args.Get(0).(generation.Result), args.Error(1)
}

// --- MockEventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishGenerationCompleted(ctx context.Context, evt domain.GenerationCompleted) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
