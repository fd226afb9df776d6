// Package bootstrap builds the content service from configuration. Both the HTTP
// server and the CLI use it.
package bootstrap

import (
	"context"
	"net/http"
	"time"

	"vidlearn/internal/adapter/events"
	"vidlearn/internal/adapter/generation"
	"vidlearn/internal/adapter/transcript"
	"vidlearn/internal/cache"
	"vidlearn/internal/config"
	"vidlearn/internal/domain"
	"vidlearn/internal/extraction"
	"vidlearn/internal/service"

	"go.uber.org/zap"
)

// Components is the wired application plus its closers.
type Components struct {
	Service service.ContentService
	Cache   domain.Cache
	closers []func()
}

// Close releases connections in reverse order of creation.
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build connects every upstream named in cfg. Redis and NATS are optional: when
// they cannot be reached the service runs without a transcript cache or events.
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Components, error) {
	comps := &Components{}

	httpClient := &http.Client{Timeout: generationClientTimeout(cfg.Generation)}
	pool, err := generation.NewPoolFromConfig(ctx, cfg.Generation, httpClient, log)
	if err != nil {
		return nil, err
	}
	log.Info("Generation slots ready", zap.Strings("slots", pool.Slots()))
	invoker := generation.NewInvoker(pool, log)

	var source domain.TranscriptSource = transcript.NewApifyClient(
		cfg.Transcript.BaseURL, cfg.Transcript.Actor, cfg.Transcript.Token, cfg.Transcript.Timeout)

	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, transcripts will not be cached", zap.Error(err))
		} else {
			log.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
			comps.Cache = cache.NewRedisCache(redisClient)
			comps.closers = append(comps.closers, func() { _ = redisClient.Close() })
		}
	}
	// A nil cache still gives singleflight coalescing.
	source = transcript.NewCachedSource(source, comps.Cache, cfg.Transcript.CacheTTL, cfg.Transcript.Timeout, log)

	var publisher domain.EventPublisher = events.NopPublisher{}
	if cfg.Events.NATSURL != "" {
		natsPub, err := events.Connect(cfg.Events.NATSURL, cfg.Events.NATSToken, cfg.Events.Subject, log)
		if err != nil {
			log.Warn("NATS unavailable, generation events disabled", zap.Error(err))
		} else {
			publisher = natsPub
			comps.closers = append(comps.closers, natsPub.Close)
		}
	}

	pipeline := extraction.NewPipeline(extraction.NewValidator(nil), log)
	comps.Service = service.NewContentService(source, invoker, pipeline, publisher, comps.Cache, cfg.Generation)
	return comps, nil
}

// generationClientTimeout keeps the transport deadline above the per-attempt
// timeout so the invoker, not the HTTP client, decides when an attempt is over.
func generationClientTimeout(g config.GenerationConfig) time.Duration {
	longest := g.LongTimeout
	if g.ShortTimeout > longest {
		longest = g.ShortTimeout
	}
	if longest <= 0 {
		longest = generation.DefaultCeiling
	}
	return longest + 5*time.Second
}
