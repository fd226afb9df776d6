package domain

// ContentKind selects the output shape and the reply contract of a generation run.
type ContentKind string

const (
	KindSummary          ContentKind = "summary"
	KindCourseOverview   ContentKind = "course_overview"
	KindSectionBreakdown ContentKind = "section_breakdown"
	KindCodingProblem    ContentKind = "coding_problem"
	KindQuizQuestion     ContentKind = "quiz_question"
)

// AllKinds lists every supported kind in a stable order.
var AllKinds = []ContentKind{
	KindSummary,
	KindCourseOverview,
	KindSectionBreakdown,
	KindCodingProblem,
	KindQuizQuestion,
}

func (k ContentKind) Valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k ContentKind) String() string {
	return string(k)
}

// QuizTier decides how many questions a quiz run returns.
type QuizTier string

const (
	TierQuick QuizTier = "quick"
	TierFull  QuizTier = "full"
)

// QuestionCount is the maximum number of quiz questions for the tier.
func (t QuizTier) QuestionCount() int {
	if t == TierFull {
		return 10
	}
	return 5
}

type CourseOverview struct {
	Title     string   `json:"title"`
	Duration  string   `json:"duration"`
	Overview  string   `json:"overview"`
	KeyTopics []string `json:"keyTopics"`
}

type Section struct {
	Timestamp string   `json:"time"`
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	Summary   string   `json:"content"`
	Tips      []string `json:"tips"`
	Badge     string   `json:"badge"`
	Points    int      `json:"points"`
}

type CodingProblem struct {
	Title        string `json:"title"`
	Difficulty   string `json:"difficulty"`
	Description  string `json:"problemStatement"`
	SampleInput  string `json:"sampleInput"`
	SampleOutput string `json:"sampleOutput"`
	SolutionText string `json:"solution"`
	TimeLimit    string `json:"timeLimit"`
	Reward       int    `json:"reward"`
}

type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	AnswerLetter string   `json:"answer"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// ResultSet is the typed outcome of one pipeline run. Only the slice or field
// matching Kind is populated.
type ResultSet struct {
	Kind      ContentKind     `json:"kind"`
	Summary   string          `json:"summary,omitempty"`
	Overview  *CourseOverview `json:"overview,omitempty"`
	Sections  []Section       `json:"sections,omitempty"`
	Problems  []CodingProblem `json:"problems,omitempty"`
	Questions []QuizQuestion  `json:"questions,omitempty"`
	// Fallback is set when no admissible record survived and the placeholder was used.
	Fallback bool `json:"fallback"`
}

// Len reports the number of records carried for the run's kind.
func (r *ResultSet) Len() int {
	switch r.Kind {
	case KindSummary:
		if r.Summary == "" {
			return 0
		}
		return 1
	case KindCourseOverview:
		if r.Overview == nil {
			return 0
		}
		return 1
	case KindSectionBreakdown:
		return len(r.Sections)
	case KindCodingProblem:
		return len(r.Problems)
	case KindQuizQuestion:
		return len(r.Questions)
	}
	return 0
}
