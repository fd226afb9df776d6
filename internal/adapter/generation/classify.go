package generation

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"vidlearn/internal/domain"

	"google.golang.org/genai"
)

const upstreamName = "generation service"

// HTTPStatusCoder is implemented by provider errors that carry an HTTP status.
type HTTPStatusCoder interface {
	HTTPStatusCode() int
}

// Classify maps a provider failure onto the upstream error taxonomy.
// Domain errors pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	switch {
	case isTimeout(err):
		return domain.NewUpstreamTimeoutError(upstreamName, err)
	case isQuota(err):
		return domain.NewQuotaExceededError(upstreamName, err)
	default:
		return domain.NewUpstreamError(upstreamName, err)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return statusOf(err) == http.StatusGatewayTimeout || statusOf(err) == http.StatusRequestTimeout
}

func isQuota(err error) bool {
	if statusOf(err) == http.StatusTooManyRequests {
		return true
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Status == "RESOURCE_EXHAUSTED" {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"resource_exhausted", "quota", "rate limit", "too many requests", "status code: 429", "error 429"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func statusOf(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var coder HTTPStatusCoder
	if errors.As(err, &coder) {
		return coder.HTTPStatusCode()
	}
	return 0
}
