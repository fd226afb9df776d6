package generation

import (
	"context"
	"strings"
	"time"

	"vidlearn/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 3
	DefaultBackoff     = 2 * time.Second
	// DefaultCeiling bounds an attempt whose policy has no explicit timeout.
	DefaultCeiling = 60 * time.Second
)

// Policy bounds one invocation. Each attempt gets its own Timeout and the wait
// before attempt n+1 is Backoff*n.
type Policy struct {
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration
}

func (p Policy) withDefaults() Policy {
	if p.Timeout <= 0 {
		p.Timeout = DefaultCeiling
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.Backoff < 0 {
		p.Backoff = 0
	}
	return p
}

// Result is a successful reply and the number of attempts it took.
type Result struct {
	Text     string
	Attempts int
}

// Invoker calls a slot's generator with a per-attempt timeout and linear backoff
// between attempts.
type Invoker struct {
	pool   *Pool
	logger *zap.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewInvoker(pool *Pool, logger *zap.Logger) *Invoker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{pool: pool, logger: logger, sleep: sleepCtx}
}

// Invoke sends prompt through the generator bound to slot. When every attempt
// fails the last failure is returned as a *domain.DomainError with code
// ErrUpstreamTimeout, ErrUpstreamQuotaExceeded or ErrUpstreamError.
func (inv *Invoker) Invoke(ctx context.Context, slot, prompt string, policy Policy) (Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return Result{}, domain.NewInvalidInputError("prompt must not be empty")
	}
	gen, resolved, err := inv.pool.Get(slot)
	if err != nil {
		return Result{}, err
	}
	policy = policy.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		text, err := inv.attempt(ctx, gen, prompt, policy.Timeout)
		if err == nil {
			if attempt > 1 {
				inv.logger.Info("Generation succeeded after retry",
					zap.String("slot", resolved),
					zap.Int("attempt", attempt),
				)
			}
			return Result{Text: text, Attempts: attempt}, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			inv.logger.Warn("Generation cancelled by caller",
				zap.String("slot", resolved),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			break
		}
		if attempt == policy.MaxAttempts {
			inv.logger.Error("Generation failed, attempts exhausted",
				zap.String("slot", resolved),
				zap.Int("attempts", attempt),
				zap.Error(err),
			)
			break
		}

		delay := policy.Backoff * time.Duration(attempt)
		inv.logger.Warn("Generation attempt failed, retrying",
			zap.String("slot", resolved),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if err := inv.sleep(ctx, delay); err != nil {
			break
		}
	}
	return Result{}, Classify(lastErr)
}

// attempt returns once the generator answers or the attempt deadline passes,
// even if the generator ignores its context.
func (inv *Invoker) attempt(ctx context.Context, gen domain.TextGenerator, prompt string, timeout time.Duration) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type reply struct {
		text string
		err  error
	}
	done := make(chan reply, 1)
	go func() {
		text, err := gen.Generate(attemptCtx, prompt)
		done <- reply{text: text, err: err}
	}()

	select {
	case r := <-done:
		return r.text, r.err
	case <-attemptCtx.Done():
		return "", attemptCtx.Err()
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
