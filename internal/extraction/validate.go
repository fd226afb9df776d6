package extraction

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RandomSource is the subset of *rand.Rand the validator draws from.
type RandomSource interface {
	Intn(n int) int
}

// NewSeededSource returns a deterministic source for tests and replays.
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Outcome is the validator's verdict on one run.
type Outcome struct {
	Records  []Record
	Dropped  int
	Fallback bool
}

// Validator filters extracted records and fills their optional fields.
// It is safe for concurrent use.
type Validator struct {
	mu  sync.Mutex
	rnd RandomSource
}

// NewValidator builds a validator drawing random defaults from rnd. A nil rnd
// gets a time-seeded source.
func NewValidator(rnd RandomSource) *Validator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Validator{rnd: rnd}
}

// Validate keeps the admissible records in order and back-fills their optional
// fields. When fewer than the profile's minimum survive it returns exactly the
// profile's placeholder record.
func (v *Validator) Validate(records []Record, p *KindProfile) Outcome {
	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		if !admissible(rec, p) {
			continue
		}
		filled := rec.clone()
		v.backfill(filled, p)
		kept = append(kept, filled)
	}

	out := Outcome{Records: kept, Dropped: len(records) - len(kept)}
	if len(kept) < max(p.MinRecords, 1) {
		out.Records = []Record{p.Fallback.clone()}
		out.Fallback = true
	}
	return out
}

// admissible is all-or-nothing: every required field must be present, every
// collection must meet its minimum and constrained values must be allowed.
func admissible(rec Record, p *KindProfile) bool {
	for _, field := range p.Required {
		if minItems, ok := p.MinItems[field]; ok {
			if len(rec.Lists[field]) < minItems {
				return false
			}
			continue
		}
		value := strings.TrimSpace(rec.Fields[field])
		if value == "" {
			return false
		}
		if allowed, ok := p.Allowed[field]; ok {
			if len(value) != 1 || !strings.Contains(allowed, value) {
				return false
			}
		}
	}
	return true
}

func (v *Validator) backfill(rec Record, p *KindProfile) {
	for field, def := range p.Defaults {
		if strings.TrimSpace(rec.Fields[field]) == "" {
			rec.Fields[field] = def
		}
	}

	for _, rd := range p.Random {
		if rec.Fields[rd.Field] != "" {
			continue
		}
		rec.Fields[rd.Field] = strconv.Itoa(rd.Min + v.intn(rd.Max-rd.Min+1))
	}

	fields := make([]string, 0, len(p.Padding))
	for field := range p.Padding {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		limit := p.capacity(field)
		for _, filler := range p.Padding[field] {
			if len(rec.Lists[field]) >= limit {
				break
			}
			rec.Lists[field] = append(rec.Lists[field], filler)
		}
	}
}

func (v *Validator) intn(n int) int {
	if n <= 1 {
		return 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rnd.Intn(n)
}
