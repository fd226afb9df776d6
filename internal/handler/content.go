package handler

import (
	"vidlearn/internal/domain"
	"vidlearn/internal/dto"
	"vidlearn/internal/middleware"
	"vidlearn/internal/service"
	"vidlearn/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler serves the generation endpoints.
type ContentHandler struct {
	service   service.ContentService
	validator *validation.Validator
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// RegisterRoutes mounts every endpoint on the /api group.
func (h *ContentHandler) RegisterRoutes(api fiber.Router) {
	vm := middleware.NewValidationMiddleware()
	api.Get("/health", h.Health)
	api.Post("/summary", vm.ValidateVideoID(), h.Summary)
	api.Post("/course-overview", vm.ValidateVideoID(), h.CourseOverview)
	api.Post("/sections", vm.ValidateVideoID(), h.Sections)
	api.Post("/coding-problems", vm.ValidateVideoID(), h.CodingProblems)
	api.Post("/quiz", vm.ValidateVideoID(), h.Quiz)
	api.Post("/coding-challenge", vm.ValidateVideoID(), h.CodingChallenge)
	api.Post("/generate-problem", vm.ValidateVideoID(), h.GenerateProblem)
}

func (h *ContentHandler) generate(c *fiber.Ctx, req service.GenerateRequest) (*service.GenerationOutput, error) {
	req.VideoID = middleware.VideoID(c)
	return h.service.Generate(c.UserContext(), req)
}

func meta(out *service.GenerationOutput) dto.Meta {
	return dto.Meta{RunID: out.RunID, Attempts: out.Attempts, Fallback: out.Result.Fallback}
}

// Summary godoc
// @Summary Summarize a video
// @Description Returns a roughly 200-word summary of the video transcript
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.VideoRequest true "Video"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /summary [post]
func (h *ContentHandler) Summary(c *fiber.Ctx) error {
	out, err := h.generate(c, service.GenerateRequest{Kind: domain.KindSummary})
	if err != nil {
		return err
	}
	return c.JSON(dto.SummaryResponse{Success: true, Summary: out.Result.Summary, Meta: meta(out)})
}

// CourseOverview godoc
// @Summary Course overview
// @Description Returns a course overview with title, duration and key topics
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.VideoRequest true "Video"
// @Success 200 {object} dto.CourseOverviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /course-overview [post]
func (h *ContentHandler) CourseOverview(c *fiber.Ctx) error {
	out, err := h.generate(c, service.GenerateRequest{Kind: domain.KindCourseOverview})
	if err != nil {
		return err
	}
	return c.JSON(dto.CourseOverviewResponse{Success: true, Overview: out.Result.Overview, Meta: meta(out)})
}

// Sections godoc
// @Summary Theory sections
// @Description Splits the video into 3 to 5 timestamped study sections
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.VideoRequest true "Video"
// @Success 200 {object} dto.SectionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /sections [post]
func (h *ContentHandler) Sections(c *fiber.Ctx) error {
	out, err := h.generate(c, service.GenerateRequest{Kind: domain.KindSectionBreakdown})
	if err != nil {
		return err
	}
	return c.JSON(dto.SectionsResponse{Success: true, Sections: out.Result.Sections, Meta: meta(out)})
}

// CodingProblems godoc
// @Summary Coding problems
// @Description Generates up to three practice problems from the video
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.CodingProblemsRequest true "Video and difficulty"
// @Success 200 {object} dto.CodingProblemsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /coding-problems [post]
func (h *ContentHandler) CodingProblems(c *fiber.Ctx) error {
	var body dto.CodingProblemsRequest
	if err := c.BodyParser(&body); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}
	if errs := h.validator.ValidateDifficulty(body.Difficulty); len(errs) > 0 {
		return errs
	}

	out, err := h.generate(c, service.GenerateRequest{Kind: domain.KindCodingProblem, Difficulty: body.Difficulty})
	if err != nil {
		return err
	}
	return c.JSON(dto.CodingProblemsResponse{Success: true, Problems: out.Result.Problems, Meta: meta(out)})
}

// Quiz godoc
// @Summary Multiple-choice quiz
// @Description Generates 5 (quick) or 10 (full) questions with four options each
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Video, tier and difficulty"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /quiz [post]
func (h *ContentHandler) Quiz(c *fiber.Ctx) error {
	var body dto.QuizRequest
	if err := c.BodyParser(&body); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}
	if errs := h.validator.ValidateQuizRequest(middleware.VideoID(c), body.Tier, body.Difficulty); len(errs) > 0 {
		return errs
	}

	out, err := h.generate(c, service.GenerateRequest{
		Kind:       domain.KindQuizQuestion,
		Tier:       domain.QuizTier(body.Tier),
		Difficulty: body.Difficulty,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.QuizResponse{Success: true, Questions: out.Result.Questions, Meta: meta(out)})
}

// CodingChallenge godoc
// @Summary Coding challenge bundle
// @Description Generates coding problems and a five-question quiz concurrently
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.VideoRequest true "Video"
// @Success 200 {object} dto.CodingChallengeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /coding-challenge [post]
func (h *ContentHandler) CodingChallenge(c *fiber.Ctx) error {
	bundle, err := h.service.CodingChallenge(c.UserContext(), middleware.VideoID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.CodingChallengeResponse{
		Success:          true,
		CodingChallenges: bundle.Problems.Result.Problems,
		Quizzes:          bundle.Questions.Result.Questions,
	})
}

// GenerateProblem godoc
// @Summary Competitive programming problem
// @Description Generates a single competitive-programming problem from the video
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.VideoRequest true "Video"
// @Success 200 {object} dto.GenerateProblemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /generate-problem [post]
func (h *ContentHandler) GenerateProblem(c *fiber.Ctx) error {
	out, err := h.service.GenerateProblem(c.UserContext(), middleware.VideoID(c))
	if err != nil {
		return err
	}
	var problem *domain.CodingProblem
	if len(out.Result.Problems) > 0 {
		problem = &out.Result.Problems[0]
	}
	return c.JSON(dto.GenerateProblemResponse{Success: true, Problem: problem, Meta: meta(out)})
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *ContentHandler) Health(c *fiber.Ctx) error {
	if err := h.service.Health(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{
			Success: false,
			Status:  "degraded",
			Cache:   "unavailable",
		})
	}
	return c.JSON(dto.HealthResponse{Success: true, Status: "ok", Cache: "ok"})
}
