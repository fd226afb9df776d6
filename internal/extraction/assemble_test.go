package extraction

import (
	"fmt"
	"testing"

	"vidlearn/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_Truncates(t *testing.T) {
	p := mustProfile(t, domain.KindQuizQuestion)

	records := make([]Record, 0, 12)
	for i := 0; i < 12; i++ {
		records = append(records, quizRecord(fmt.Sprintf("Q%d", i), []string{"a", "b", "c", "d"}, "A"))
	}

	tests := []struct {
		name     string
		maxCount int
		expected int
	}{
		{"quick tier", domain.TierQuick.QuestionCount(), 5},
		{"full tier", domain.TierFull.QuestionCount(), 10},
		{"profile default", 0, p.MaxRecords},
		{"larger than input", 50, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := Assemble(p, records, tt.maxCount)
			require.Len(t, rs.Questions, tt.expected)
			for i, q := range rs.Questions {
				assert.Equal(t, fmt.Sprintf("Q%d", i), q.Question)
			}
		})
	}
}

func TestAssemble_QuizCorrectIndex(t *testing.T) {
	p := mustProfile(t, domain.KindQuizQuestion)

	rs := Assemble(p, []Record{
		quizRecord("q", []string{"a", "b", "c", "d"}, "C"),
	}, 0)

	require.Len(t, rs.Questions, 1)
	assert.Equal(t, "C", rs.Questions[0].AnswerLetter)
	assert.Equal(t, 2, rs.Questions[0].CorrectIndex)
}

func TestAssemble_TypedKinds(t *testing.T) {
	t.Run("coding problem", func(t *testing.T) {
		p := mustProfile(t, domain.KindCodingProblem)
		rec := newRecord()
		rec.Fields[FieldTitle] = "Two Sum"
		rec.Fields[FieldDescription] = "Find two numbers"
		rec.Fields[FieldReward] = "200"

		rs := Assemble(p, []Record{rec}, 0)

		require.Len(t, rs.Problems, 1)
		assert.Equal(t, domain.CodingProblem{Title: "Two Sum", Description: "Find two numbers", Reward: 200}, rs.Problems[0])
	})

	t.Run("overview", func(t *testing.T) {
		p := mustProfile(t, domain.KindCourseOverview)
		rs := Assemble(p, []Record{p.Fallback.clone(), p.Fallback.clone()}, 0)

		require.NotNil(t, rs.Overview)
		assert.Equal(t, "Course Overview", rs.Overview.Title)
		assert.Equal(t, 1, rs.Len())
	})

	t.Run("section with empty tips renders an empty list", func(t *testing.T) {
		p := mustProfile(t, domain.KindSectionBreakdown)
		rec := newRecord()
		rec.Fields[FieldTitle] = "S"

		rs := Assemble(p, []Record{rec}, 0)

		require.Len(t, rs.Sections, 1)
		assert.NotNil(t, rs.Sections[0].Tips)
		assert.Empty(t, rs.Sections[0].Tips)
	})
}
