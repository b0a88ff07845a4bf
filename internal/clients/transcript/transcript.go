package transcript

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/supchaser/bookmark_annotator/internal/utils/errs"
	"github.com/supchaser/bookmark_annotator/internal/utils/retry"
)

// Client talks to the video-transcript service. The service resolves the
// first available transcript in the requested language preference order,
// falling back to auto-generated transcripts.
type Client struct {
	apiURL string
	apiKey string
	client *http.Client
}

func CreateClient(apiURL, apiKey string) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func CreateClientWithHTTPClient(apiURL, apiKey string, client *http.Client) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		client: client,
	}
}

// GetTranscript fetches the transcript text for a video id.
func (c *Client) GetTranscript(ctx context.Context, videoID string, languages []string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return "", err
	}

	q := req.URL.Query()
	q.Add("video_id", videoID)
	q.Add("languages", strings.Join(languages, ","))
	q.Add("text", "true")
	q.Add("api_key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", fmt.Errorf("%w: video %s", errs.ErrNoTranscript, videoID)
	case http.StatusTooManyRequests:
		resetAt := time.Now().Add(time.Second)
		if raw := resp.Header.Get("X-RateLimit-Reset"); raw != "" {
			if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
				resetAt = time.Unix(unix, 0)
			}
		}
		return "", &retry.RateLimitError{ResetAt: resetAt, Message: "transcript service rate limit exceeded"}
	default:
		return "", fmt.Errorf("unexpected status %d fetching transcript for video %s", resp.StatusCode, videoID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
