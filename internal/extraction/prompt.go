package extraction

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"vidlearn/internal/domain"
)

// MaxTranscriptChars caps the transcript embedded in a prompt so upstream
// requests stay within a safe size.
const MaxTranscriptChars = 30000

// PromptOptions tune a prompt. Empty values fall back to the profile defaults.
type PromptOptions struct {
	Count      string
	Difficulty string
}

// Templates take the item count, the difficulty and the transcript, in that order.
var promptTemplates = map[domain.ContentKind]string{
	domain.KindSummary: `Provide a %[1]s-word summary of this video transcript:

%[3]s`,

	domain.KindCourseOverview: `You are an instructor preparing a course page for a video lecture.
Write exactly %[1]s course overview based only on the transcript below.

Wrap the overview in triple quotes and use exactly these labels:

"""
Title: <course title>
Duration: <estimated study time, for example 45 minutes>
Overview: <one paragraph describing what the learner will understand>
Key Topics:
- <topic>
- <topic>
- <topic>
"""

List at most 5 topics. Do not use triple quotes anywhere else.

Transcript:
%[3]s`,

	domain.KindSectionBreakdown: `You are turning a video lecture into study notes.
Split the transcript below into %[1]s sections, in the order they appear in the video.

Use exactly this format for every section and nothing else:

Section 1: <section title>
Timestamp: <HH:MM:SS where the section starts>
Subtitle: <short subtitle>
Summary: <one paragraph explaining the theory covered>
Badge: <one emoji followed by a one or two word label>
Tips:
- <tip>
- <tip>
- <tip>

Number the sections consecutively. Give exactly three tips per section.

Transcript:
%[3]s`,

	domain.KindCodingProblem: `You are a programming instructor.
Based on the video transcript below, write exactly %[1]s coding problems that practise the concepts it teaches.
Target difficulty: %[2]s.

Wrap every problem in triple quotes and use exactly these labels:

"""
Title: <short title>
Difficulty: <Easy, Medium, Hard or CP>
Description: <full problem statement with constraints>
Sample Input: <input>
Sample Output: <expected output>
Solution: <short explanation followed by a reference solution>
Time Limit: <N minutes>
"""

Do not use triple quotes anywhere else.

Transcript:
%[3]s`,

	domain.KindQuizQuestion: `You are an instructor writing a multiple-choice quiz about a video lecture.
Write exactly %[1]s questions based only on the transcript below.
Target difficulty: %[2]s.

Use exactly this format for every question and nothing else:

Question 1: <question text>
A) <option>
B) <option>
C) <option>
D) <option>
Answer: <letter A-D>
Explanation: <one or two sentences>

Number the questions consecutively. Every question must have exactly four options.

Transcript:
%[3]s`,
}

// BuildPrompt renders the prompt for kind. The output depends only on its inputs.
func BuildPrompt(kind domain.ContentKind, transcript string, opts PromptOptions) (string, error) {
	tmpl, ok := promptTemplates[kind]
	if !ok {
		return "", fmt.Errorf("no prompt template for content kind %q", kind)
	}
	p, ok := ProfileFor(kind)
	if !ok {
		return "", fmt.Errorf("no profile for content kind %q", kind)
	}

	count := strings.TrimSpace(opts.Count)
	if count == "" {
		count = p.PromptCount
	}
	difficulty := strings.TrimSpace(opts.Difficulty)
	if difficulty == "" {
		difficulty = "medium"
	}

	return fmt.Sprintf(tmpl, count, difficulty, TruncateTranscript(transcript, MaxTranscriptChars)), nil
}

// TruncateTranscript cuts s to at most limit characters on a rune boundary.
func TruncateTranscript(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
