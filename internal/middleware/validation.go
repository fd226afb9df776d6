package middleware

import (
	"vidlearn/internal/domain"
	"vidlearn/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// LocalVideoID is the fiber Locals key holding the validated video id.
const LocalVideoID = "validated_video_id"

type ValidationMiddleware struct {
	validator *validation.Validator
}

func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

type videoIDBody struct {
	VideoID string `json:"videoId"`
}

// ValidateVideoID rejects requests whose JSON body carries no well-formed
// videoId. Handlers read the id back from c.Locals(LocalVideoID).
func (vm *ValidationMiddleware) ValidateVideoID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body videoIDBody
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&body); err != nil {
				return domain.NewInvalidInputError("request body must be valid JSON")
			}
		}

		if errors := vm.validator.ValidateVideoID(body.VideoID); len(errors) > 0 {
			return errors // rendered by ErrorHandler
		}

		c.Locals(LocalVideoID, body.VideoID)
		return c.Next()
	}
}

// VideoID returns the id stored by ValidateVideoID.
func VideoID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalVideoID).(string)
	return id
}
