package transcript

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidlearn/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string, seen *runInput) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/acts/invideoiq~video-transcript-scraper/run-sync-get-dataset-items", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("token"))
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestApifyClient_Fetch(t *testing.T) {
	var input runInput
	srv := newTestServer(t, http.StatusOK,
		`[{"text":"Hello","start":0.5},{"text":"  "},{"text":"world","offset":2.25}]`, &input)

	client := NewApifyClient(srv.URL, "", "secret", time.Second)
	segments, err := client.Fetch(t.Context(), "dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", input.VideoURL)
	require.Len(t, segments, 2)
	assert.Equal(t, domain.TranscriptSegment{Text: "Hello", Offset: 0.5}, segments[0])
	assert.Equal(t, domain.TranscriptSegment{Text: "world", Offset: 2.25}, segments[1])
	assert.Equal(t, "Hello world", domain.JoinTranscript(segments))
}

func TestApifyClient_FetchErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected domain.ErrorCode
	}{
		{"no items", http.StatusOK, `[]`, domain.ErrTranscriptNotFound},
		{"only blank text", http.StatusOK, `[{"text":""}]`, domain.ErrTranscriptNotFound},
		{"captions disabled", http.StatusOK, `[{"error":"Transcripts are disabled for this video"}]`, domain.ErrTranscriptDisabled},
		{"rate limited", http.StatusTooManyRequests, `{"error":{"type":"rate-limit-exceeded","message":"slow down"}}`, domain.ErrUpstreamQuotaExceeded},
		{"gateway timeout", http.StatusGatewayTimeout, ``, domain.ErrUpstreamTimeout},
		{"server error", http.StatusInternalServerError, `oops`, domain.ErrUpstreamError},
		{"malformed body", http.StatusOK, `{"not":"a list"}`, domain.ErrUpstreamError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body, nil)
			client := NewApifyClient(srv.URL, DefaultActor, "secret", time.Second)

			segments, err := client.Fetch(t.Context(), "dQw4w9WgXcQ")
			require.Error(t, err)
			assert.Nil(t, segments)
			assert.Equal(t, tt.expected, domain.CodeOf(err))
		})
	}
}

func TestApifyClient_ClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewApifyClient(srv.URL, DefaultActor, "secret", 20*time.Millisecond)
	_, err := client.Fetch(t.Context(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Equal(t, domain.ErrUpstreamTimeout, domain.CodeOf(err))
}
