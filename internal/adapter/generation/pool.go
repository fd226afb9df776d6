package generation

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"vidlearn/internal/config"
	"vidlearn/internal/domain"

	"go.uber.org/zap"
)

// SlotFor is the static kind-to-slot assignment.
func SlotFor(kind domain.ContentKind) string {
	switch kind {
	case domain.KindSummary:
		return config.SlotSummary
	case domain.KindCourseOverview:
		return config.SlotOverview
	case domain.KindSectionBreakdown:
		return config.SlotSections
	case domain.KindCodingProblem:
		return config.SlotProblems
	case domain.KindQuizQuestion:
		return config.SlotQuiz
	}
	return config.SlotDefault
}

// Pool holds one generator per credential slot. It is built once and read-only
// afterwards.
type Pool struct {
	slots map[string]domain.TextGenerator
}

func NewPool(slots map[string]domain.TextGenerator) *Pool {
	copied := make(map[string]domain.TextGenerator, len(slots))
	for name, gen := range slots {
		if gen != nil {
			copied[name] = gen
		}
	}
	return &Pool{slots: copied}
}

// NewPoolFromConfig builds a generator for every configured slot. Slots without
// their own credentials resolve to the default slot and share its client.
func NewPoolFromConfig(ctx context.Context, cfg config.GenerationConfig, httpClient *http.Client, logger *zap.Logger) (*Pool, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.LongTimeout + cfg.ShortTimeout}
	}
	built := make(map[config.SlotConfig]domain.TextGenerator)
	slots := make(map[string]domain.TextGenerator)

	names := make([]string, 0, len(cfg.Slots))
	for name := range cfg.Slots {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		slotCfg, ok := cfg.Slot(name)
		if !ok {
			continue
		}
		gen, ok := built[slotCfg]
		if !ok {
			var err error
			gen, err = NewGenerator(ctx, slotCfg, cfg.Temperature, httpClient)
			if err != nil {
				return nil, fmt.Errorf("slot %s: %w", name, err)
			}
			built[slotCfg] = gen
		}
		slots[name] = gen
		logger.Info("Generation slot ready",
			zap.String("slot", name),
			zap.String("provider", slotCfg.Provider),
			zap.String("model", slotCfg.Model),
		)
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("no generation slot is configured; set generation.slots.default.api_key or GEMINI_API_KEY")
	}
	return &Pool{slots: slots}, nil
}

// Get returns the generator for slot, falling back to the default slot.
// The second return value is the slot that actually served the lookup.
func (p *Pool) Get(slot string) (domain.TextGenerator, string, error) {
	if gen, ok := p.slots[slot]; ok {
		return gen, slot, nil
	}
	if gen, ok := p.slots[config.SlotDefault]; ok {
		return gen, config.SlotDefault, nil
	}
	return nil, "", domain.NewInternalError(fmt.Sprintf("no generator configured for slot %q", slot), nil)
}

// Slots lists the configured slot names in order.
func (p *Pool) Slots() []string {
	names := make([]string, 0, len(p.slots))
	for name := range p.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
