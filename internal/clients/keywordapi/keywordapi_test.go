package keywordapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/supchaser/bookmark_annotator/internal/utils/logger"
	"github.com/supchaser/bookmark_annotator/internal/utils/retry"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req extractRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "some text", req.Text)
		assert.Equal(t, 1, req.NgramMin)
		assert.Equal(t, 2, req.NgramMax)

		json.NewEncoder(w).Encode(extractResponse{
			Keywords: []scoredPhrase{
				{Phrase: "machine learning", Score: 0.91},
				{Phrase: "golang", Score: 0.77},
			},
		})
	}))
	defer server.Close()

	client := CreateClientWithHTTPClient(server.URL, "secret", server.Client())

	phrases, err := client.Extract(context.Background(), "some text", 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, []string{"machine learning", "golang"}, phrases)
}

func TestExtract_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := CreateClientWithHTTPClient(server.URL, "secret", server.Client())

	_, err := client.Extract(context.Background(), "some text", 1, 2)

	var rateLimited *retry.RateLimitError
	assert.True(t, errors.As(err, &rateLimited))
}

func TestExtract_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := CreateClientWithHTTPClient(server.URL, "secret", server.Client())

	_, err := client.Extract(context.Background(), "some text", 1, 2)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}
