package raindrop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/supchaser/bookmark_annotator/internal/app/models"
	"github.com/supchaser/bookmark_annotator/internal/utils/retry"
)

const (
	defaultBaseURL = "https://api.raindrop.io/rest/v1"
	pageSize       = 50
)

// Client is a thin adapter over the Raindrop.io REST API covering only
// the listing and update operations the processor needs.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func CreateClient(token string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateClientWithBaseURL points the adapter at a custom endpoint;
// used by tests.
func CreateClientWithBaseURL(token, baseURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  client,
	}
}

type raindropItem struct {
	ID      int64    `json:"_id"`
	Link    string   `json:"link"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Note    string   `json:"note"`
	Tags    []string `json:"tags"`
	Type    string   `json:"type"`
}

type listResponse struct {
	Items []raindropItem `json:"items"`
}

type updateRequest struct {
	Tags []string `json:"tags"`
	Note string   `json:"note"`
}

type updateResponse struct {
	Item raindropItem `json:"item"`
}

// List pages through the whole collection.
func (c *Client) List(ctx context.Context) ([]*models.Bookmark, error) {
	bookmarks := make([]*models.Bookmark, 0)

	for page := 0; ; page++ {
		url := fmt.Sprintf("%s/raindrops/0?perpage=%d&page=%d", c.baseURL, pageSize, page)

		var parsed listResponse
		if err := c.doJSON(ctx, http.MethodGet, url, nil, &parsed); err != nil {
			return nil, fmt.Errorf("listing raindrops page %d: %w", page, err)
		}

		for _, item := range parsed.Items {
			bookmarks = append(bookmarks, toBookmark(item))
		}
		if len(parsed.Items) < pageSize {
			break
		}
	}

	return bookmarks, nil
}

// Update writes tags and note back to one raindrop.
func (c *Client) Update(ctx context.Context, id string, tags []string, note string) (*models.Bookmark, error) {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid raindrop id %q: %w", id, err)
	}

	url := fmt.Sprintf("%s/raindrop/%d", c.baseURL, numericID)
	body := updateRequest{Tags: tags, Note: note}

	var parsed updateResponse
	if err := c.doJSON(ctx, http.MethodPut, url, body, &parsed); err != nil {
		return nil, fmt.Errorf("updating raindrop %s: %w", id, err)
	}

	return toBookmark(parsed.Item), nil
}

func (c *Client) doJSON(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return rateLimitError(resp)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// rateLimitError converts a 429 into the executor's rate-limit signal
// using the provider's reset header.
func rateLimitError(resp *http.Response) error {
	resetAt := time.Now().Add(time.Second)
	if raw := resp.Header.Get("X-RateLimit-Reset"); raw != "" {
		if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
			resetAt = time.Unix(unix, 0)
		}
	}
	return &retry.RateLimitError{
		ResetAt: resetAt,
		Message: "raindrop rate limit exceeded",
	}
}

func toBookmark(item raindropItem) *models.Bookmark {
	return &models.Bookmark{
		ID:      strconv.FormatInt(item.ID, 10),
		Link:    item.Link,
		Title:   item.Title,
		Excerpt: item.Excerpt,
		Note:    item.Note,
		Tags:    item.Tags,
		Type:    models.BookmarkType(item.Type),
	}
}
