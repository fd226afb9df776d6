package domain

import (
	"context"
	"strings"
	"time"
)

// TextGenerator is the opaque generation call: prompt in, reply text out.
// Implementations return their native errors; classification into timeout,
// quota and generic failures happens in the invoker.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TranscriptSegment is one caption line of a video.
type TranscriptSegment struct {
	Text   string  `json:"text"`
	Offset float64 `json:"offset"`
}

// TranscriptSource fetches the ordered caption segments of a video.
type TranscriptSource interface {
	Fetch(ctx context.Context, videoID string) ([]TranscriptSegment, error)
}

// JoinTranscript concatenates segment texts with single spaces.
func JoinTranscript(segments []TranscriptSegment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

// GenerationCompleted is published after a pipeline run returns to its caller.
type GenerationCompleted struct {
	RunID      string        `json:"runId"`
	Kind       ContentKind   `json:"kind"`
	VideoID    string        `json:"videoId"`
	Records    int           `json:"records"`
	Fallback   bool          `json:"fallback"`
	Attempts   int           `json:"attempts"`
	Duration   time.Duration `json:"durationNs"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// EventPublisher emits run notifications. Failures are never fatal to a run.
type EventPublisher interface {
	PublishGenerationCompleted(ctx context.Context, evt GenerationCompleted) error
}
