package observability

import (
	"context"
	"testing"

	"vidlearn/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestClampRatio(t *testing.T) {
	assert.Equal(t, 0.0, clampRatio(-1))
	assert.Equal(t, 0.25, clampRatio(0.25))
	assert.Equal(t, 1.0, clampRatio(3))
}

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected map[string]string
	}{
		{"empty", "", nil},
		{"single", "api-key=abc", map[string]string{"api-key": "abc"}},
		{"multiple with spaces", " a = 1 , b=2 ", map[string]string{"a": "1", "b": "2"}},
		{"malformed parts skipped", "novalue,=x,k=", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseHeaders(tt.raw))
		})
	}
}

func TestInitOTel_Disabled(t *testing.T) {
	shutdown := InitOTel(context.Background(), nil, config.TracingConfig{Enabled: false})
	assert.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	_, span := Tracer().Start(context.Background(), "noop")
	span.End()
}
