package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"vidlearn/internal/adapter/generation"
	"vidlearn/internal/config"
	"vidlearn/internal/domain"
	"vidlearn/internal/extraction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testVideoID = "dQw4w9WgXcQ"

var testSegments = []domain.TranscriptSegment{
	{Text: "Today we learn about Go channels.", Offset: 0},
	{Text: "Channels connect goroutines.", Offset: 4.2},
}

var testGenerationConfig = config.GenerationConfig{
	ShortTimeout: 15 * time.Second,
	LongTimeout:  30 * time.Second,
	MaxAttempts:  3,
	Backoff:      2 * time.Second,
}

type testDeps struct {
	transcripts *MockTranscriptSource
	invoker     *MockInvoker
	events      *MockEventPublisher
	cache       *MockCache
	service     ContentService
}

func newTestService(t *testing.T) *testDeps {
	t.Helper()
	d := &testDeps{
		transcripts: new(MockTranscriptSource),
		invoker:     new(MockInvoker),
		events:      new(MockEventPublisher),
		cache:       new(MockCache),
	}
	pipeline := extraction.NewPipeline(extraction.NewValidator(extraction.NewSeededSource(7)), zap.NewNop())
	d.service = NewContentService(d.transcripts, d.invoker, pipeline, d.events, d.cache, testGenerationConfig)
	return d
}

func quizReply(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "Question %d: Q%d?\nA) a\nB) b\nC) c\nD) d\nAnswer: C\nExplanation: e%d\n\n", i, i, i)
	}
	return b.String()
}

const problemsReply = `"""
Title: Ping Pong
Difficulty: Easy
Description: Pass a value between two goroutines.
"""
"""
Title: Fan In
Description: Merge two channels.
"""`

func TestGenerate_Summary(t *testing.T) {
	d := newTestService(t)
	d.transcripts.On("Fetch", mock.Anything, testVideoID).Return(testSegments, nil)
	d.invoker.On("Invoke", mock.Anything, config.SlotSummary,
		mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, "Provide a 200-word summary of this video transcript:") &&
				strings.HasSuffix(p, "Today we learn about Go channels. Channels connect goroutines.")
		}),
		generation.Policy{Timeout: 15 * time.Second, MaxAttempts: 3, Backoff: 2 * time.Second},
	).Return(generation.Result{Text: "  Channels are typed pipes.  ", Attempts: 1}, nil)
	d.events.On("PublishGenerationCompleted", mock.Anything, mock.MatchedBy(func(evt domain.GenerationCompleted) bool {
		return evt.Kind == domain.KindSummary && evt.VideoID == testVideoID && evt.Records == 1 && evt.RunID != ""
	})).Return(nil)

	out, err := d.service.Generate(context.Background(), GenerateRequest{Kind: domain.KindSummary, VideoID: testVideoID})
	require.NoError(t, err)

	assert.Equal(t, "Channels are typed pipes.", out.Result.Summary)
	assert.Equal(t, 1, out.Attempts)
	assert.NotEmpty(t, out.RunID)
	d.transcripts.AssertExpectations(t)
	d.invoker.AssertExpectations(t)
	d.events.AssertExpectations(t)
}

func TestGenerate_QuizTiers(t *testing.T) {
	tests := []struct {
		tier     domain.QuizTier
		expected int
	}{
		{"", 5},
		{domain.TierQuick, 5},
		{domain.TierFull, 10},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			d := newTestService(t)
			d.transcripts.On("Fetch", mock.Anything, testVideoID).Return(testSegments, nil)
			d.invoker.On("Invoke", mock.Anything, config.SlotQuiz,
				mock.MatchedBy(func(p string) bool {
					return strings.Contains(p, fmt.Sprintf("Write exactly %d questions", tt.expected)) &&
						strings.Contains(p, "Target difficulty: hard.")
				}),
				mock.MatchedBy(func(p generation.Policy) bool { return p.Timeout == 30*time.Second }),
			).Return(generation.Result{Text: quizReply(12), Attempts: 2}, nil)
			d.events.On("PublishGenerationCompleted", mock.Anything, mock.Anything).Return(nil)

			out, err := d.service.Generate(context.Background(), GenerateRequest{
				Kind:       domain.KindQuizQuestion,
				VideoID:    testVideoID,
				Tier:       tt.tier,
				Difficulty: "Hard",
			})
			require.NoError(t, err)
			require.Len(t, out.Result.Questions, tt.expected)
			assert.Equal(t, 2, out.Result.Questions[0].CorrectIndex)
			assert.Equal(t, 2, out.Attempts)
		})
	}
}

func TestGenerate_InvalidInputMakesNoCalls(t *testing.T) {
	tests := []struct {
		name string
		req  GenerateRequest
	}{
		{"bad video id", GenerateRequest{Kind: domain.KindSummary, VideoID: "nope"}},
		{"unknown kind", GenerateRequest{Kind: "poem", VideoID: testVideoID}},
		{"bad difficulty", GenerateRequest{Kind: domain.KindQuizQuestion, VideoID: testVideoID, Difficulty: "brutal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestService(t)
			_, err := d.service.Generate(context.Background(), tt.req)

			var verrs domain.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			d.transcripts.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
			d.invoker.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGenerate_TranscriptErrors(t *testing.T) {
	tests := []struct {
		name     string
		segments []domain.TranscriptSegment
		err      error
		expected domain.ErrorCode
	}{
		{"not found", nil, domain.NewTranscriptNotFoundError(testVideoID), domain.ErrTranscriptNotFound},
		{"disabled", nil, domain.NewTranscriptDisabledError(testVideoID), domain.ErrTranscriptDisabled},
		{"blank segments", []domain.TranscriptSegment{{Text: "  "}}, nil, domain.ErrTranscriptNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestService(t)
			if tt.segments != nil {
				d.transcripts.On("Fetch", mock.Anything, testVideoID).Return(tt.segments, nil)
			} else {
				d.transcripts.On("Fetch", mock.Anything, testVideoID).Return(nil, tt.err)
			}

			_, err := d.service.Generate(context.Background(), GenerateRequest{Kind: domain.KindSectionBreakdown, VideoID: testVideoID})
			assert.Equal(t, tt.expected, domain.CodeOf(err))
			d.invoker.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGenerate_UpstreamFailurePropagates(t *testing.T) {
	d := newTestService(t)
	d.transcripts.On("Fetch", mock.Anything, testVideoID).Return(testSegments, nil)
	d.invoker.On("Invoke", mock.Anything, config.SlotOverview, mock.Anything, mock.Anything).
		Return(generation.Result{Attempts: 3}, domain.NewUpstreamTimeoutError("generation service", context.DeadlineExceeded))

	_, err := d.service.Generate(context.Background(), GenerateRequest{Kind: domain.KindCourseOverview, VideoID: testVideoID})
	assert.Equal(t, domain.ErrUpstreamTimeout, domain.CodeOf(err))
	d.events.AssertNotCalled(t, "PublishGenerationCompleted", mock.Anything, mock.Anything)
}

func TestGenerate_PublishFailureIsNotFatal(t *testing.T) {
	d := newTestService(t)
	d.transcripts.On("Fetch", mock.Anything, testVideoID).Return(testSegments, nil)
	d.invoker.On("Invoke", mock.Anything, config.SlotSections, mock.Anything, mock.Anything).
		Return(generation.Result{Text: "nothing useful", Attempts: 1}, nil)
	d.events.On("PublishGenerationCompleted", mock.Anything, mock.MatchedBy(func(evt domain.GenerationCompleted) bool {
		return evt.Fallback
	})).Return(errors.New("nats down"))

	out, err := d.service.Generate(context.Background(), GenerateRequest{Kind: domain.KindSectionBreakdown, VideoID: testVideoID})
	require.NoError(t, err)
	assert.True(t, out.Result.Fallback)
	require.Len(t, out.Result.Sections, 1)
	d.events.AssertExpectations(t)
}

func TestGenerateProblem(t *testing.T) {
	d := newTestService(t)
	d.transcripts.On("Fetch", mock.Anything, testVideoID).Return(testSegments, nil)
	d.invoker.On("Invoke", mock.Anything, config.SlotProblems,
		mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "write exactly 1 coding problems") && strings.Contains(p, "Target difficulty: CP.")
		}),
		mock.Anything,
	).Return(generation.Result{Text: problemsReply, Attempts: 1}, nil)
	d.events.On("PublishGenerationCompleted", mock.Anything, mock.Anything).Return(nil)

	out, err := d.service.GenerateProblem(context.Background(), testVideoID)
	require.NoError(t, err)
	require.Len(t, out.Result.Problems, 1)
	assert.Equal(t, "Ping Pong", out.Result.Problems[0].Title)
}

func TestCodingChallenge(t *testing.T) {
	d := newTestService(t)
	d.transcripts.On("Fetch", mock.Anything, testVideoID).Return(testSegments, nil).Once()
	d.invoker.On("Invoke", mock.Anything, config.SlotProblems, mock.Anything, mock.Anything).
		Return(generation.Result{Text: problemsReply, Attempts: 1}, nil)
	d.invoker.On("Invoke", mock.Anything, config.SlotQuiz,
		mock.MatchedBy(func(p string) bool { return strings.Contains(p, "Write exactly 5 questions") }),
		mock.Anything,
	).Return(generation.Result{Text: quizReply(8), Attempts: 1}, nil)
	d.events.On("PublishGenerationCompleted", mock.Anything, mock.Anything).Return(nil).Twice()

	bundle, err := d.service.CodingChallenge(context.Background(), testVideoID)
	require.NoError(t, err)

	assert.Len(t, bundle.Problems.Result.Problems, 2)
	assert.Len(t, bundle.Questions.Result.Questions, ChallengeQuizCount)
	assert.NotEqual(t, bundle.Problems.RunID, bundle.Questions.RunID)
	d.transcripts.AssertExpectations(t)
	d.events.AssertExpectations(t)
}

func TestCodingChallenge_OneSideFails(t *testing.T) {
	d := newTestService(t)
	d.transcripts.On("Fetch", mock.Anything, testVideoID).Return(testSegments, nil)
	d.invoker.On("Invoke", mock.Anything, config.SlotProblems, mock.Anything, mock.Anything).
		Return(generation.Result{Text: problemsReply, Attempts: 1}, nil)
	d.invoker.On("Invoke", mock.Anything, config.SlotQuiz, mock.Anything, mock.Anything).
		Return(generation.Result{Attempts: 3}, domain.NewQuotaExceededError("generation service", nil))
	d.events.On("PublishGenerationCompleted", mock.Anything, mock.Anything).Return(nil).Maybe()

	bundle, err := d.service.CodingChallenge(context.Background(), testVideoID)
	assert.Nil(t, bundle)
	assert.Equal(t, domain.ErrUpstreamQuotaExceeded, domain.CodeOf(err))
}

func TestHealth(t *testing.T) {
	d := newTestService(t)
	d.cache.On("Ping", mock.Anything).Return(nil).Once()
	assert.NoError(t, d.service.Health(context.Background()))

	d.cache.On("Ping", mock.Anything).Return(errors.New("refused")).Once()
	assert.Equal(t, domain.ErrInternal, domain.CodeOf(d.service.Health(context.Background())))

	noCache := NewContentService(d.transcripts, d.invoker, nil, nil, nil, testGenerationConfig)
	assert.NoError(t, noCache.Health(context.Background()))
}
