package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vidlearn/internal/domain"
)

const (
	DefaultBaseURL = "https://api.apify.com"
	DefaultActor   = "invideoiq~video-transcript-scraper"
	watchURL       = "https://www.youtube.com/watch?v="
	upstreamName   = "transcript service"
)

// ApifyClient fetches captions by running the transcript scraper actor
// synchronously and reading its dataset items.
type ApifyClient struct {
	baseURL string
	actor   string
	token   string
	client  *http.Client
}

func NewApifyClient(baseURL, actor, token string, timeout time.Duration) *ApifyClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if actor == "" {
		actor = DefaultActor
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &ApifyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		actor:   actor,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

type runInput struct {
	VideoURL string `json:"video_url"`
}

type datasetItem struct {
	Text   string  `json:"text"`
	Start  float64 `json:"start"`
	Offset float64 `json:"offset"`
	Error  string  `json:"error"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Fetch returns the caption segments of videoID in order.
func (c *ApifyClient) Fetch(ctx context.Context, videoID string) ([]domain.TranscriptSegment, error) {
	body, err := json.Marshal(runInput{VideoURL: watchURL + videoID})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s",
		c.baseURL, url.PathEscape(c.actor), url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, domain.NewUpstreamTimeoutError(upstreamName, err)
		}
		return nil, domain.NewUpstreamError(upstreamName, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamError(upstreamName, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, respBody)
	}

	var items []datasetItem
	if err := json.Unmarshal(respBody, &items); err != nil {
		return nil, domain.NewUpstreamError(upstreamName, fmt.Errorf("unmarshal response: %w", err))
	}

	segments := make([]domain.TranscriptSegment, 0, len(items))
	disabled := false
	for _, item := range items {
		if strings.TrimSpace(item.Text) == "" {
			if strings.Contains(strings.ToLower(item.Error), "disabled") {
				disabled = true
			}
			continue
		}
		offset := item.Offset
		if offset == 0 {
			offset = item.Start
		}
		segments = append(segments, domain.TranscriptSegment{Text: item.Text, Offset: offset})
	}

	if len(segments) == 0 {
		if disabled {
			return nil, domain.NewTranscriptDisabledError(videoID)
		}
		return nil, domain.NewTranscriptNotFoundError(videoID)
	}
	return segments, nil
}

func statusError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	var errResp errorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
		msg = errResp.Error.Type + ": " + errResp.Error.Message
	}
	err := fmt.Errorf("api error %d: %s", status, msg)

	switch status {
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return domain.NewUpstreamTimeoutError(upstreamName, err)
	case http.StatusTooManyRequests, http.StatusPaymentRequired:
		return domain.NewQuotaExceededError(upstreamName, err)
	default:
		return domain.NewUpstreamError(upstreamName, err)
	}
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

var _ domain.TranscriptSource = (*ApifyClient)(nil)
