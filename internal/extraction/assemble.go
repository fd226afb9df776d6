package extraction

import (
	"strconv"
	"strings"

	"vidlearn/internal/domain"
)

// Assemble truncates records to maxCount, keeping order, and converts them to the
// typed payload of the profile's kind. A maxCount of zero or less means the
// profile's default maximum.
func Assemble(p *KindProfile, records []Record, maxCount int) *domain.ResultSet {
	if maxCount <= 0 {
		maxCount = p.MaxRecords
	}
	if len(records) > maxCount {
		records = records[:maxCount]
	}

	rs := &domain.ResultSet{Kind: p.Kind}
	switch p.Kind {
	case domain.KindSummary:
		if len(records) > 0 {
			rs.Summary = records[0].Get(FieldSummary)
		}
	case domain.KindCourseOverview:
		if len(records) > 0 {
			rs.Overview = toOverview(records[0])
		}
	case domain.KindSectionBreakdown:
		rs.Sections = make([]domain.Section, 0, len(records))
		for _, r := range records {
			rs.Sections = append(rs.Sections, toSection(r))
		}
	case domain.KindCodingProblem:
		rs.Problems = make([]domain.CodingProblem, 0, len(records))
		for _, r := range records {
			rs.Problems = append(rs.Problems, toCodingProblem(r))
		}
	case domain.KindQuizQuestion:
		rs.Questions = make([]domain.QuizQuestion, 0, len(records))
		for _, r := range records {
			rs.Questions = append(rs.Questions, toQuizQuestion(r))
		}
	}
	return rs
}

func toOverview(r Record) *domain.CourseOverview {
	return &domain.CourseOverview{
		Title:     r.Get(FieldTitle),
		Duration:  r.Get(FieldDuration),
		Overview:  r.Get(FieldOverview),
		KeyTopics: copyList(r.List(FieldKeyTopics)),
	}
}

func toSection(r Record) domain.Section {
	return domain.Section{
		Timestamp: r.Get(FieldTimestamp),
		Title:     r.Get(FieldTitle),
		Subtitle:  r.Get(FieldSubtitle),
		Summary:   r.Get(FieldSummary),
		Tips:      copyList(r.List(FieldTips)),
		Badge:     r.Get(FieldBadge),
		Points:    atoi(r.Get(FieldPoints)),
	}
}

func toCodingProblem(r Record) domain.CodingProblem {
	return domain.CodingProblem{
		Title:        r.Get(FieldTitle),
		Difficulty:   r.Get(FieldDifficulty),
		Description:  r.Get(FieldDescription),
		SampleInput:  r.Get(FieldSampleInput),
		SampleOutput: r.Get(FieldSampleOutput),
		SolutionText: r.Get(FieldSolution),
		TimeLimit:    r.Get(FieldTimeLimit),
		Reward:       atoi(r.Get(FieldReward)),
	}
}

func toQuizQuestion(r Record) domain.QuizQuestion {
	letter := r.Get(FieldAnswer)
	idx := -1
	if len(letter) == 1 {
		idx = strings.Index("ABCD", letter)
	}
	return domain.QuizQuestion{
		Question:     r.Get(FieldQuestion),
		Options:      copyList(r.List(FieldOptions)),
		AnswerLetter: letter,
		CorrectIndex: idx,
		Explanation:  r.Get(FieldExplanation),
	}
}

func copyList(l []string) []string {
	if l == nil {
		return []string{}
	}
	return append([]string(nil), l...)
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
