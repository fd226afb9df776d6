package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidlearn/internal/domain"
	"vidlearn/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	vm := NewValidationMiddleware()
	app.Post("/echo", vm.ValidateVideoID(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"videoId": VideoID(c)})
	})
	app.Get("/fail/:code", func(c *fiber.Ctx) error {
		switch c.Params("code") {
		case "plain":
			return errors.New("boom")
		case "fiber":
			return fiber.NewError(fiber.StatusMethodNotAllowed, "nope")
		default:
			return domain.NewError(domain.ErrorCode(c.Params("code")), "failed", nil)
		}
	})
	return app
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestValidateVideoID(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"valid id", `{"videoId":"dQw4w9WgXcQ"}`, http.StatusOK},
		{"missing id", `{}`, http.StatusBadRequest},
		{"empty body", ``, http.StatusBadRequest},
		{"short id", `{"videoId":"abc"}`, http.StatusBadRequest},
		{"malformed json", `{"videoId":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus != http.StatusOK {
				out := decodeError(t, resp)
				assert.False(t, out.Success)
				assert.NotEmpty(t, out.Error)
				assert.NotEmpty(t, out.Message)
			}
		})
	}
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		code           string
		expectedStatus int
		expectedError  string
	}{
		{string(domain.ErrInvalidInput), http.StatusBadRequest, "INVALID_INPUT"},
		{string(domain.ErrTranscriptNotFound), http.StatusNotFound, "TRANSCRIPT_NOT_FOUND"},
		{string(domain.ErrTranscriptDisabled), http.StatusUnprocessableEntity, "TRANSCRIPT_DISABLED"},
		{string(domain.ErrUpstreamQuotaExceeded), http.StatusTooManyRequests, "UPSTREAM_QUOTA_EXCEEDED"},
		{string(domain.ErrUpstreamTimeout), http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT"},
		{string(domain.ErrUpstreamError), http.StatusInternalServerError, "UPSTREAM_ERROR"},
		{"plain", http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"fiber", http.StatusMethodNotAllowed, "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail/"+tt.code, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			out := decodeError(t, resp)
			assert.False(t, out.Success)
			assert.Equal(t, tt.expectedError, out.Error)
		})
	}
}
