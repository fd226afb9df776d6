package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"vidlearn/internal/domain"
)

// Field names shared by the profiles and the assembler.
const (
	FieldTitle        = "title"
	FieldDuration     = "duration"
	FieldOverview     = "overview"
	FieldKeyTopics    = "keyTopics"
	FieldTimestamp    = "timestamp"
	FieldSubtitle     = "subtitle"
	FieldSummary      = "summary"
	FieldTips         = "tips"
	FieldBadge        = "badge"
	FieldPoints       = "points"
	FieldDifficulty   = "difficulty"
	FieldDescription  = "description"
	FieldSampleInput  = "sampleInput"
	FieldSampleOutput = "sampleOutput"
	FieldSolution     = "solution"
	FieldTimeLimit    = "timeLimit"
	FieldReward       = "reward"
	FieldQuestion     = "question"
	FieldOptions      = "options"
	FieldAnswer       = "answer"
	FieldExplanation  = "explanation"
)

// FieldMode controls how a matched line feeds its field.
type FieldMode int

const (
	// ModeScalar keeps the first non-empty value.
	ModeScalar FieldMode = iota
	// ModeMultiLine takes the inline value plus every following unrecognised line.
	ModeMultiLine
	// ModeCollection appends one item per matching line, up to the field capacity.
	ModeCollection
	// ModeHeader opens a collection. A non-empty inline value becomes an item.
	ModeHeader
)

// FieldRule maps a line-prefix pattern to a field. The last capture group of
// Pattern is the inline value. A Targeted collection rule only matches under
// the header rule of the same field.
type FieldRule struct {
	Field     string
	Pattern   *regexp.Regexp
	Mode      FieldMode
	Targeted  bool
	Normalize func(string) string
}

// Delimiter selects a segmentation strategy. Label wins over Fence when both are set.
type Delimiter struct {
	Fence string
	Label *regexp.Regexp
}

// RandomDefault back-fills an empty numeric field with a value drawn uniformly
// from [Min, Max].
type RandomDefault struct {
	Field    string
	Min, Max int
}

// KindProfile is everything the pipeline needs to know about one content kind.
type KindProfile struct {
	Kind       domain.ContentKind
	Delimiter  Delimiter
	Rules      []FieldRule
	Required   []string
	MinItems   map[string]int
	Capacity   map[string]int
	Allowed    map[string]string
	Defaults   map[string]string
	Random     []RandomDefault
	Padding    map[string][]string
	MinRecords int
	MaxRecords int
	// PromptCount is the item count stated in the prompt when the caller does not
	// supply one.
	PromptCount string
	Fallback    Record
}

func (p *KindProfile) capacity(field string) int {
	if n, ok := p.Capacity[field]; ok {
		return n
	}
	return 0
}

// match returns the first rule whose pattern matches line.
func (p *KindProfile) match(line string) (*FieldRule, string, bool) {
	for i := range p.Rules {
		rule := &p.Rules[i]
		m := rule.Pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value := ""
		if len(m) > 1 {
			value = strings.TrimSpace(m[len(m)-1])
		}
		if rule.Normalize != nil {
			value = rule.Normalize(value)
		}
		return rule, value, true
	}
	return nil, "", false
}

func labelRule(field string, mode FieldMode, labels string) FieldRule {
	return FieldRule{
		Field:   field,
		Pattern: regexp.MustCompile(`(?i)^(?:` + labels + `)\s*:\s*(.*)$`),
		Mode:    mode,
	}
}

var (
	bulletPattern    = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s+(.+)$`)
	optionPattern    = regexp.MustCompile(`^[A-Da-d][).:]\s*(.+)$`)
	timestampPattern = regexp.MustCompile(`\b(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?\b`)
	digitsPattern    = regexp.MustCompile(`\d+`)
)

// normalizeLetter reduces an answer to its first letter, uppercased.
func normalizeLetter(v string) string {
	v = strings.TrimLeft(strings.TrimSpace(v), `([*"'`)
	for _, r := range v {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// normalizeTimestamp takes the first MM:SS or H:MM:SS in v, so a range yields
// its start, and renders it as HH:MM:SS.
func normalizeTimestamp(v string) string {
	m := timestampPattern.FindStringSubmatch(v)
	if m == nil {
		return ""
	}
	h, mm, ss := "0", m[1], m[2]
	if m[3] != "" {
		h, mm, ss = m[1], m[2], m[3]
	}
	hi, _ := strconv.Atoi(h)
	mi, _ := strconv.Atoi(mm)
	si, _ := strconv.Atoi(ss)
	if mi > 59 || si > 59 {
		return ""
	}
	return pad2(hi) + ":" + pad2(mi) + ":" + pad2(si)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func normalizeInt(v string) string {
	return digitsPattern.FindString(v)
}

var profiles = map[domain.ContentKind]*KindProfile{
	domain.KindSummary:          summaryProfile(),
	domain.KindCourseOverview:   overviewProfile(),
	domain.KindSectionBreakdown: sectionProfile(),
	domain.KindCodingProblem:    codingProfile(),
	domain.KindQuizQuestion:     quizProfile(),
}

// ProfileFor returns the profile registered for kind.
func ProfileFor(kind domain.ContentKind) (*KindProfile, bool) {
	p, ok := profiles[kind]
	return p, ok
}

func summaryProfile() *KindProfile {
	return &KindProfile{
		Kind:        domain.KindSummary,
		Required:    []string{FieldSummary},
		MinRecords:  1,
		MaxRecords:  1,
		PromptCount: "200",
		Fallback: Record{Fields: map[string]string{
			FieldSummary: "A summary could not be generated for this video. Please try again later.",
		}},
	}
}

func overviewProfile() *KindProfile {
	return &KindProfile{
		Kind:      domain.KindCourseOverview,
		Delimiter: Delimiter{Fence: `"""`},
		Rules: []FieldRule{
			labelRule(FieldTitle, ModeScalar, `(?:course\s+)?title`),
			labelRule(FieldDuration, ModeScalar, `duration|length`),
			labelRule(FieldOverview, ModeMultiLine, `overview|summary|description`),
			labelRule(FieldKeyTopics, ModeHeader, `(?:key\s+)?topics`),
			{Field: FieldKeyTopics, Pattern: bulletPattern, Mode: ModeCollection, Targeted: true},
		},
		Required:    []string{FieldTitle, FieldOverview},
		Capacity:    map[string]int{FieldKeyTopics: 5},
		Defaults:    map[string]string{FieldDuration: "Self-paced"},
		MinRecords:  1,
		MaxRecords:  1,
		PromptCount: "1",
		Fallback: Record{
			Fields: map[string]string{
				FieldTitle:    "Course Overview",
				FieldDuration: "Self-paced",
				FieldOverview: "An overview could not be generated for this video. Please try again later.",
			},
			Lists: map[string][]string{FieldKeyTopics: {"Watch the video"}},
		},
	}
}

func sectionProfile() *KindProfile {
	return &KindProfile{
		Kind:      domain.KindSectionBreakdown,
		Delimiter: Delimiter{Label: regexp.MustCompile(`(?im)^[ \t#>*]*section\s+\d+\s*[:.)-]`)},
		Rules: []FieldRule{
			{Field: FieldTitle, Pattern: regexp.MustCompile(`(?i)^section\s+\d+\s*[:.)-]\s*(.*)$`), Mode: ModeScalar},
			{Field: FieldTimestamp, Pattern: regexp.MustCompile(`(?i)^(?:timestamp|time)\s*:\s*(.*)$`), Mode: ModeScalar, Normalize: normalizeTimestamp},
			labelRule(FieldTitle, ModeScalar, `title`),
			labelRule(FieldSubtitle, ModeScalar, `subtitle`),
			labelRule(FieldSummary, ModeMultiLine, `summary|content|theory`),
			labelRule(FieldBadge, ModeScalar, `badge`),
			{Field: FieldPoints, Pattern: regexp.MustCompile(`(?i)^(?:points|reward)\s*:\s*(.*)$`), Mode: ModeScalar, Normalize: normalizeInt},
			labelRule(FieldTips, ModeHeader, `(?:pro\s+)?tips`),
			{Field: FieldTips, Pattern: bulletPattern, Mode: ModeCollection, Targeted: true},
		},
		Required: []string{FieldTitle, FieldSummary},
		Capacity: map[string]int{FieldTips: 3},
		Defaults: map[string]string{
			FieldTimestamp: "00:00:00",
			FieldSubtitle:  "Key Concepts",
			FieldBadge:     "📘 Theory",
		},
		Random: []RandomDefault{{Field: FieldPoints, Min: 20, Max: 30}},
		Padding: map[string][]string{FieldTips: {
			"Pause and restate this section in your own words.",
			"Rewatch this part of the video if anything felt unclear.",
			"Try a small example before moving on.",
		}},
		MinRecords:  1,
		MaxRecords:  5,
		PromptCount: "3-5",
		Fallback: Record{
			Fields: map[string]string{
				FieldTimestamp: "00:00:00",
				FieldTitle:     "Video Notes",
				FieldSubtitle:  "Key Concepts",
				FieldSummary:   "We couldn't break this video into sections. Please try again later.",
				FieldBadge:     "📘 Theory",
				FieldPoints:    "20",
			},
			Lists: map[string][]string{FieldTips: {
				"Watch the video from the start.",
				"Take notes on the main ideas.",
				"Try generating the sections again in a moment.",
			}},
		},
	}
}

func codingProfile() *KindProfile {
	return &KindProfile{
		Kind:      domain.KindCodingProblem,
		Delimiter: Delimiter{Fence: `"""`},
		Rules: []FieldRule{
			labelRule(FieldTitle, ModeScalar, `(?:problem\s+)?title`),
			labelRule(FieldDifficulty, ModeScalar, `difficulty|level`),
			labelRule(FieldDescription, ModeMultiLine, `description|problem\s+statement`),
			labelRule(FieldSampleInput, ModeMultiLine, `sample\s+input|example\s+input`),
			labelRule(FieldSampleOutput, ModeMultiLine, `sample\s+output|example\s+output`),
			labelRule(FieldSolution, ModeMultiLine, `solution|reference\s+solution`),
			labelRule(FieldTimeLimit, ModeScalar, `time\s+limit`),
			{Field: FieldReward, Pattern: regexp.MustCompile(`(?i)^(?:reward|points)\s*:\s*(.*)$`), Mode: ModeScalar, Normalize: normalizeInt},
		},
		Required: []string{FieldTitle, FieldDescription},
		Defaults: map[string]string{
			FieldDifficulty: "Medium",
			FieldTimeLimit:  "30 minutes",
		},
		Random:      []RandomDefault{{Field: FieldReward, Min: 150, Max: 300}},
		MinRecords:  1,
		MaxRecords:  3,
		PromptCount: "3",
		Fallback: Record{Fields: map[string]string{
			FieldTitle:       "Problem Unavailable",
			FieldDifficulty:  "Easy",
			FieldDescription: "We couldn't generate coding problems for this video. Please try again in a moment.",
			FieldTimeLimit:   "30 minutes",
			FieldReward:      "150",
		}},
	}
}

func quizProfile() *KindProfile {
	return &KindProfile{
		Kind:      domain.KindQuizQuestion,
		Delimiter: Delimiter{Label: regexp.MustCompile(`(?im)^[ \t#>*]*question\s+\d+\s*[:.)-]`)},
		Rules: []FieldRule{
			{Field: FieldQuestion, Pattern: regexp.MustCompile(`(?i)^question\s+\d+\s*[:.)-]\s*(.*)$`), Mode: ModeMultiLine},
			{Field: FieldAnswer, Pattern: regexp.MustCompile(`(?i)^(?:correct\s+)?answer\s*:\s*(.*)$`), Mode: ModeScalar, Normalize: normalizeLetter},
			labelRule(FieldExplanation, ModeMultiLine, `explanation|hint`),
			labelRule(FieldOptions, ModeHeader, `options|choices`),
			{Field: FieldOptions, Pattern: optionPattern, Mode: ModeCollection},
		},
		Required: []string{FieldQuestion, FieldOptions, FieldAnswer},
		MinItems: map[string]int{FieldOptions: 4},
		Capacity: map[string]int{FieldOptions: 4},
		Allowed:  map[string]string{FieldAnswer: "ABCD"},
		Defaults: map[string]string{
			FieldExplanation: "Review the matching part of the video for the reasoning behind this answer.",
		},
		MinRecords:  1,
		MaxRecords:  domain.TierQuick.QuestionCount(),
		PromptCount: strconv.Itoa(domain.TierQuick.QuestionCount()),
		Fallback: Record{
			Fields: map[string]string{
				FieldQuestion:    "Quiz questions are not available for this video right now. What would you like to do?",
				FieldAnswer:      "A",
				FieldExplanation: "Generation failed for this video. Trying again usually helps.",
			},
			Lists: map[string][]string{FieldOptions: {
				"Try again in a moment",
				"Pick another video",
				"Read the summary instead",
				"Rewatch the video",
			}},
		},
	}
}
