package dto

import "vidlearn/internal/domain"

// VideoRequest is the body shared by every generation endpoint.
// @Description Request body carrying a YouTube video id
type VideoRequest struct {
	VideoID string `json:"videoId" example:"dQw4w9WgXcQ"`
}

// QuizRequest selects the quiz tier and difficulty.
// @Description Request body for quiz generation
type QuizRequest struct {
	VideoID    string `json:"videoId" example:"dQw4w9WgXcQ"`
	Tier       string `json:"tier,omitempty" example:"quick" enums:"quick,full"`
	Difficulty string `json:"difficulty,omitempty" example:"medium" enums:"easy,medium,hard"`
}

// CodingProblemsRequest optionally sets the target difficulty.
type CodingProblemsRequest struct {
	VideoID    string `json:"videoId" example:"dQw4w9WgXcQ"`
	Difficulty string `json:"difficulty,omitempty" example:"medium" enums:"easy,medium,hard"`
}

// Meta describes how a result was produced.
type Meta struct {
	RunID    string `json:"runId"`
	Attempts int    `json:"attempts"`
	Fallback bool   `json:"fallback"`
}

type SummaryResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
	Meta    Meta   `json:"meta"`
}

type CourseOverviewResponse struct {
	Success  bool                   `json:"success"`
	Overview *domain.CourseOverview `json:"overview"`
	Meta     Meta                   `json:"meta"`
}

type SectionsResponse struct {
	Success  bool             `json:"success"`
	Sections []domain.Section `json:"sections"`
	Meta     Meta             `json:"meta"`
}

type CodingProblemsResponse struct {
	Success  bool                   `json:"success"`
	Problems []domain.CodingProblem `json:"problems"`
	Meta     Meta                   `json:"meta"`
}

type QuizResponse struct {
	Success   bool                  `json:"success"`
	Questions []domain.QuizQuestion `json:"questions"`
	Meta      Meta                  `json:"meta"`
}

// CodingChallengeResponse bundles problems and a quick quiz for one video.
type CodingChallengeResponse struct {
	Success          bool                   `json:"success"`
	CodingChallenges []domain.CodingProblem `json:"codingChallenges"`
	Quizzes          []domain.QuizQuestion  `json:"quizzes"`
}

type GenerateProblemResponse struct {
	Success bool                  `json:"success"`
	Problem *domain.CodingProblem `json:"problem"`
	Meta    Meta                  `json:"meta"`
}

type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Cache   string `json:"cache"`
}

// ErrorResponse is the envelope written for every failed request.
// @Description Error envelope
type ErrorResponse struct {
	Success bool                     `json:"success"`
	Error   string                   `json:"error"`
	Message string                   `json:"message"`
	Details []domain.ValidationError `json:"details,omitempty"`
}
