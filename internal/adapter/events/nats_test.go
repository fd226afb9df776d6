package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"vidlearn/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockConn struct {
	PublishFunc func(subject string, data []byte) error
	subject     string
	data        []byte
}

func (m *mockConn) Publish(subject string, data []byte) error {
	m.subject = subject
	m.data = data
	if m.PublishFunc != nil {
		return m.PublishFunc(subject, data)
	}
	return nil
}

func TestNATSPublisher_PublishGenerationCompleted(t *testing.T) {
	conn := &mockConn{}
	p := NewNATSPublisher(conn, "", zap.NewNop())

	evt := domain.GenerationCompleted{
		RunID:      "01J0000000000000000000000A",
		Kind:       domain.KindQuizQuestion,
		VideoID:    "dQw4w9WgXcQ",
		Records:    5,
		Attempts:   2,
		Duration:   1500 * time.Millisecond,
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, p.PublishGenerationCompleted(context.Background(), evt))

	assert.Equal(t, DefaultSubject, conn.subject)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(conn.data, &decoded))
	assert.Equal(t, "quiz_question", decoded["kind"])
	assert.Equal(t, "dQw4w9WgXcQ", decoded["videoId"])
	assert.Equal(t, float64(5), decoded["records"])
	assert.Equal(t, false, decoded["fallback"])
}

func TestNATSPublisher_Errors(t *testing.T) {
	brokerErr := errors.New("nats: connection closed")
	conn := &mockConn{PublishFunc: func(string, []byte) error { return brokerErr }}
	p := NewNATSPublisher(conn, "custom.subject", nil)

	err := p.PublishGenerationCompleted(context.Background(), domain.GenerationCompleted{})
	assert.ErrorIs(t, err, brokerErr)
	assert.Equal(t, "custom.subject", conn.subject)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.PublishGenerationCompleted(ctx, domain.GenerationCompleted{}), context.Canceled)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishGenerationCompleted(context.Background(), domain.GenerationCompleted{}))
}
