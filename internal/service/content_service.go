package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"vidlearn/internal/adapter/generation"
	"vidlearn/internal/config"
	"vidlearn/internal/domain"
	"vidlearn/internal/extraction"
	"vidlearn/internal/logger"
	"vidlearn/internal/observability"
	"vidlearn/internal/util"
	"vidlearn/internal/validation"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// ChallengeQuizCount is the number of quiz questions in a coding-challenge bundle.
	ChallengeQuizCount    = 5
	competitiveDifficulty = "CP"
	publishTimeout        = 2 * time.Second
)

// Invoker sends a prompt through a credential slot with retries.
type Invoker interface {
	Invoke(ctx context.Context, slot, prompt string, policy generation.Policy) (generation.Result, error)
}

// GenerateRequest asks for one kind of content for one video. Zero values pick
// the kind's defaults.
type GenerateRequest struct {
	Kind       domain.ContentKind
	VideoID    string
	Tier       domain.QuizTier
	Difficulty string
	Count      string
	MaxCount   int
}

// GenerationOutput is a finished run.
type GenerationOutput struct {
	RunID    string            `json:"runId"`
	Result   *domain.ResultSet `json:"result"`
	Attempts int               `json:"attempts"`
	Stats    extraction.Stats  `json:"stats"`
}

// ChallengeBundle pairs coding problems with a quick quiz on the same video.
type ChallengeBundle struct {
	Problems  *GenerationOutput
	Questions *GenerationOutput
}

type ContentService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerationOutput, error)
	CodingChallenge(ctx context.Context, videoID string) (*ChallengeBundle, error)
	GenerateProblem(ctx context.Context, videoID string) (*GenerationOutput, error)
	Health(ctx context.Context) error
}

type contentService struct {
	transcripts domain.TranscriptSource
	invoker     Invoker
	pipeline    *extraction.Pipeline
	events      domain.EventPublisher
	cache       domain.Cache
	cfg         config.GenerationConfig
	validator   *validation.Validator
	tracer      trace.Tracer
	now         func() time.Time
}

// NewContentService wires the run orchestration. events and cache may be nil.
func NewContentService(
	transcripts domain.TranscriptSource,
	invoker Invoker,
	pipeline *extraction.Pipeline,
	events domain.EventPublisher,
	cache domain.Cache,
	cfg config.GenerationConfig,
) ContentService {
	return &contentService{
		transcripts: transcripts,
		invoker:     invoker,
		pipeline:    pipeline,
		events:      events,
		cache:       cache,
		cfg:         cfg,
		validator:   validation.NewValidator(),
		tracer:      observability.Tracer(),
		now:         time.Now,
	}
}

// Generate runs the whole pipeline: transcript, prompt, invoke, extract.
func (s *contentService) Generate(ctx context.Context, req GenerateRequest) (*GenerationOutput, error) {
	req, err := s.normalize(req)
	if err != nil {
		return nil, err
	}

	segments, err := s.fetchTranscript(ctx, req.VideoID)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, req, domain.JoinTranscript(segments))
}

func (s *contentService) GenerateProblem(ctx context.Context, videoID string) (*GenerationOutput, error) {
	return s.Generate(ctx, GenerateRequest{
		Kind:       domain.KindCodingProblem,
		VideoID:    videoID,
		Difficulty: competitiveDifficulty,
		Count:      "1",
		MaxCount:   1,
	})
}

// CodingChallenge fetches the transcript once and generates problems and quiz
// questions concurrently. Either failure fails the bundle.
func (s *contentService) CodingChallenge(ctx context.Context, videoID string) (*ChallengeBundle, error) {
	problemsReq, err := s.normalize(GenerateRequest{Kind: domain.KindCodingProblem, VideoID: videoID})
	if err != nil {
		return nil, err
	}
	quizReq, err := s.normalize(GenerateRequest{
		Kind:     domain.KindQuizQuestion,
		VideoID:  videoID,
		Count:    strconv.Itoa(ChallengeQuizCount),
		MaxCount: ChallengeQuizCount,
	})
	if err != nil {
		return nil, err
	}

	segments, err := s.fetchTranscript(ctx, videoID)
	if err != nil {
		return nil, err
	}
	transcript := domain.JoinTranscript(segments)

	bundle := &ChallengeBundle{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := s.run(gctx, problemsReq, transcript)
		if err != nil {
			return err
		}
		bundle.Problems = out
		return nil
	})
	g.Go(func() error {
		out, err := s.run(gctx, quizReq, transcript)
		if err != nil {
			return err
		}
		bundle.Questions = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Health pings the transcript cache when one is configured.
func (s *contentService) Health(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Ping(ctx); err != nil {
		return domain.NewInternalError("cache unavailable", err)
	}
	return nil
}

func (s *contentService) normalize(req GenerateRequest) (GenerateRequest, error) {
	var errs domain.ValidationErrors
	errs = append(errs, s.validator.ValidateVideoID(req.VideoID)...)
	errs = append(errs, s.validator.ValidateKind(req.Kind.String())...)
	if req.Difficulty != competitiveDifficulty {
		errs = append(errs, s.validator.ValidateDifficulty(req.Difficulty)...)
	}
	if len(errs) > 0 {
		return req, errs
	}

	if req.Kind == domain.KindQuizQuestion && req.Count == "" {
		if req.Tier == "" {
			req.Tier = domain.TierQuick
		}
		n := req.Tier.QuestionCount()
		req.Count = strconv.Itoa(n)
		if req.MaxCount <= 0 {
			req.MaxCount = n
		}
	}
	req.Difficulty = strings.ToLower(req.Difficulty)
	if req.Difficulty == strings.ToLower(competitiveDifficulty) {
		req.Difficulty = competitiveDifficulty
	}
	return req, nil
}

func (s *contentService) fetchTranscript(ctx context.Context, videoID string) ([]domain.TranscriptSegment, error) {
	ctx, span := s.tracer.Start(ctx, "transcript", trace.WithAttributes(attribute.String("video.id", videoID)))
	defer span.End()

	segments, err := s.transcripts.Fetch(ctx, videoID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transcript fetch failed")
		logger.Get().Warn("Transcript fetch failed",
			zap.String("video_id", videoID),
			zap.String("code", string(domain.CodeOf(err))),
			zap.Error(err),
		)
		return nil, err
	}
	if strings.TrimSpace(domain.JoinTranscript(segments)) == "" {
		return nil, domain.NewTranscriptNotFoundError(videoID)
	}
	span.SetAttributes(attribute.Int("transcript.segments", len(segments)))
	return segments, nil
}

func (s *contentService) run(ctx context.Context, req GenerateRequest, transcript string) (*GenerationOutput, error) {
	start := s.now()
	runID := util.NewULID()
	log := logger.Get().With(
		zap.String("run_id", runID),
		zap.String("kind", req.Kind.String()),
		zap.String("video_id", req.VideoID),
	)

	ctx, span := s.tracer.Start(ctx, "pipeline."+req.Kind.String(), trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.String("video.id", req.VideoID),
	))
	defer span.End()

	prompt, err := extraction.BuildPrompt(req.Kind, transcript, extraction.PromptOptions{
		Count:      req.Count,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		span.RecordError(err)
		return nil, domain.NewInvalidInputError(err.Error())
	}

	genCtx, genSpan := s.tracer.Start(ctx, "generate")
	slot := generation.SlotFor(req.Kind)
	result, err := s.invoker.Invoke(genCtx, slot, prompt, s.policyFor(req.Kind))
	genSpan.SetAttributes(attribute.String("slot", slot), attribute.Int("attempts", result.Attempts))
	if err != nil {
		genSpan.RecordError(err)
		genSpan.SetStatus(codes.Error, "generation failed")
		genSpan.End()
		span.SetStatus(codes.Error, "generation failed")
		log.Error("Generation failed", zap.String("slot", slot), zap.Error(err))
		return nil, err
	}
	genSpan.End()

	_, extractSpan := s.tracer.Start(ctx, "extract")
	rs, stats, err := s.pipeline.Process(req.Kind, result.Text, req.MaxCount)
	extractSpan.SetAttributes(
		attribute.Int("blocks", stats.Blocks),
		attribute.Int("dropped", stats.Dropped),
		attribute.Bool("fallback", stats.Fallback),
	)
	extractSpan.End()
	if err != nil {
		span.RecordError(err)
		return nil, domain.NewInternalError("extraction failed", err)
	}

	duration := s.now().Sub(start)
	span.SetAttributes(
		attribute.Int("attempts", result.Attempts),
		attribute.Int("records", rs.Len()),
		attribute.Bool("fallback", rs.Fallback),
	)
	log.Info("Generation completed",
		zap.Int("attempts", result.Attempts),
		zap.Int("records", rs.Len()),
		zap.Bool("fallback", rs.Fallback),
		zap.Duration("duration", duration),
	)

	out := &GenerationOutput{RunID: runID, Result: rs, Attempts: result.Attempts, Stats: stats}
	s.publish(ctx, log, req, out, duration)
	return out, nil
}

func (s *contentService) publish(ctx context.Context, log *zap.Logger, req GenerateRequest, out *GenerationOutput, duration time.Duration) {
	if s.events == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	evt := domain.GenerationCompleted{
		RunID:      out.RunID,
		Kind:       req.Kind,
		VideoID:    req.VideoID,
		Records:    out.Result.Len(),
		Fallback:   out.Result.Fallback,
		Attempts:   out.Attempts,
		Duration:   duration,
		OccurredAt: s.now().UTC(),
	}
	if err := s.events.PublishGenerationCompleted(pubCtx, evt); err != nil {
		log.Warn("Failed to publish generation event", zap.Error(err))
	}
}

func (s *contentService) policyFor(kind domain.ContentKind) generation.Policy {
	timeout := s.cfg.LongTimeout
	switch kind {
	case domain.KindSummary, domain.KindCourseOverview:
		timeout = s.cfg.ShortTimeout
	}
	return generation.Policy{
		Timeout:     timeout,
		MaxAttempts: s.cfg.MaxAttempts,
		Backoff:     s.cfg.Backoff,
	}
}
