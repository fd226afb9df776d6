package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vidlearn/internal/cache"
	"vidlearn/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultFetchTimeout bounds a shared upstream fetch when none is configured.
const DefaultFetchTimeout = 60 * time.Second

// CachedSource keeps fetched transcripts in the cache and coalesces concurrent
// misses for the same video into one upstream call. The shared call is detached
// from every caller's cancellation and bounded by fetchTimeout instead.
type CachedSource struct {
	next         domain.TranscriptSource
	cache        domain.Cache
	ttl          time.Duration
	fetchTimeout time.Duration
	logger       *zap.Logger
	sfGroup      singleflight.Group
}

func NewCachedSource(next domain.TranscriptSource, c domain.Cache, ttl, fetchTimeout time.Duration, logger *zap.Logger) *CachedSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	return &CachedSource{next: next, cache: c, ttl: ttl, fetchTimeout: fetchTimeout, logger: logger}
}

func (s *CachedSource) Fetch(ctx context.Context, videoID string) ([]domain.TranscriptSegment, error) {
	cacheKey := cache.TranscriptKey(videoID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var segments []domain.TranscriptSegment
			if jsonErr := json.Unmarshal([]byte(cached), &segments); jsonErr == nil && len(segments) > 0 {
				s.logger.Debug("Transcript cache hit", zap.String("video_id", videoID))
				return segments, nil
			}
			s.logger.Warn("Discarding unreadable cached transcript", zap.String("key", cacheKey))
			if delErr := s.cache.Delete(ctx, cacheKey); delErr != nil {
				s.logger.Warn("Failed to delete cached transcript", zap.String("key", cacheKey), zap.Error(delErr))
			}
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("Transcript cache lookup failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	ch := s.sfGroup.DoChan(cacheKey, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()

		segments, err := s.next.Fetch(fetchCtx, videoID)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if data, err := json.Marshal(segments); err == nil {
				if setErr := s.cache.Set(fetchCtx, cacheKey, string(data), s.ttl); setErr != nil {
					s.logger.Warn("Failed to cache transcript", zap.String("key", cacheKey), zap.Error(setErr))
				}
			}
		}
		return segments, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.logger.Debug("Transcript fetch shared with concurrent caller", zap.String("video_id", videoID))
		}
		return res.Val.([]domain.TranscriptSegment), nil
	}
}

var _ domain.TranscriptSource = (*CachedSource)(nil)
