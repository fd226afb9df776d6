package extraction

import (
	"fmt"
	"strings"

	"vidlearn/internal/domain"

	"go.uber.org/zap"
)

// Pipeline turns a raw model reply into a typed result set. Everything after the
// network call runs here, so for a given reply and random source the output is
// always the same.
type Pipeline struct {
	validator *Validator
	logger    *zap.Logger
}

func NewPipeline(validator *Validator, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{validator: validator, logger: logger}
}

// Stats describes what happened to the blocks of one reply.
type Stats struct {
	Blocks   int  `json:"blocks"`
	Dropped  int  `json:"dropped"`
	Fallback bool `json:"fallback"`
}

// Process runs segment, extract, validate and assemble for kind. It only fails
// for an unknown kind; malformed replies degrade to the placeholder record.
func (p *Pipeline) Process(kind domain.ContentKind, reply string, maxCount int) (*domain.ResultSet, Stats, error) {
	profile, ok := ProfileFor(kind)
	if !ok {
		return nil, Stats{}, fmt.Errorf("unsupported content kind %q", kind)
	}

	reply = StripReasoning(reply)
	if kind == domain.KindSummary {
		return p.summary(profile, reply)
	}

	blocks := Segment(reply, profile.Delimiter)
	records := ExtractAll(blocks, profile)
	outcome := p.validator.Validate(records, profile)
	rs := Assemble(profile, outcome.Records, maxCount)
	rs.Fallback = outcome.Fallback

	stats := Stats{Blocks: len(blocks), Dropped: outcome.Dropped, Fallback: outcome.Fallback}
	switch {
	case outcome.Fallback:
		p.logger.Warn("No admissible records in reply, using placeholder",
			zap.String("kind", kind.String()),
			zap.Int("blocks", stats.Blocks),
			zap.Int("dropped", stats.Dropped),
			zap.Int("reply_length", len(reply)),
		)
	case outcome.Dropped > 0:
		p.logger.Debug("Dropped incomplete records",
			zap.String("kind", kind.String()),
			zap.Int("blocks", stats.Blocks),
			zap.Int("dropped", stats.Dropped),
		)
	}
	return rs, stats, nil
}

func (p *Pipeline) summary(profile *KindProfile, reply string) (*domain.ResultSet, Stats, error) {
	text := strings.TrimSpace(reply)
	stats := Stats{Blocks: 1}
	if text == "" {
		stats = Stats{Fallback: true}
		p.logger.Warn("Empty summary reply, using placeholder")
		rs := Assemble(profile, []Record{profile.Fallback.clone()}, 1)
		rs.Fallback = true
		return rs, stats, nil
	}
	return &domain.ResultSet{Kind: domain.KindSummary, Summary: text}, stats, nil
}

// StripReasoning removes <think>...</think> blocks that reasoning models put in
// front of their answer. An unterminated block is left alone.
func StripReasoning(reply string) string {
	for {
		start := strings.Index(reply, "<think>")
		if start == -1 {
			return reply
		}
		end := strings.Index(reply[start:], "</think>")
		if end == -1 {
			return reply
		}
		reply = reply[:start] + reply[start+end+len("</think>"):]
	}
}
