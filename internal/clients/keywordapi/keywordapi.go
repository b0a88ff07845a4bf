package keywordapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/supchaser/bookmark_annotator/internal/utils/retry"
)

// Client talks to the keyword-extraction service, which accepts plain
// text and returns scored candidate phrases.
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

type extractRequest struct {
	Text     string `json:"text"`
	NgramMin int    `json:"ngram_min"`
	NgramMax int    `json:"ngram_max"`
}

type scoredPhrase struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

type extractResponse struct {
	Keywords []scoredPhrase `json:"keywords"`
}

// Extract submits text and returns the candidate phrases in the
// service's ranking order.
func (c *Client) Extract(ctx context.Context, text string, minWords, maxWords int) ([]string, error) {
	payload, err := json.Marshal(extractRequest{
		Text:     text,
		NgramMin: minWords,
		NgramMax: maxWords,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		resetAt := time.Now().Add(time.Second)
		if raw := resp.Header.Get("X-RateLimit-Reset"); raw != "" {
			if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
				resetAt = time.Unix(unix, 0)
			}
		}
		return nil, &retry.RateLimitError{ResetAt: resetAt, Message: "keyword service rate limit exceeded"}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from keyword service", resp.StatusCode)
	}

	var parsed extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding keyword response: %w", err)
	}

	phrases := make([]string, 0, len(parsed.Keywords))
	for _, kw := range parsed.Keywords {
		phrases = append(phrases, kw.Phrase)
	}
	return phrases, nil
}
