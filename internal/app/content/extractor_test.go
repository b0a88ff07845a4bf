package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	mock_app "github.com/supchaser/bookmark_annotator/internal/app/mocks"
	"github.com/supchaser/bookmark_annotator/internal/app/models"
	"github.com/supchaser/bookmark_annotator/internal/utils/errs"
	"github.com/supchaser/bookmark_annotator/internal/utils/logger"
	"github.com/supchaser/bookmark_annotator/internal/utils/retry"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func newFastExecutor() *retry.Executor {
	return retry.CreateExecutorWithClock(
		time.Now,
		func(ctx context.Context, d time.Duration) error { return nil },
	)
}

func TestExtractText_ArticleUsesExcerptWithoutFetching(t *testing.T) {
	var fetches int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
	}))
	defer server.Close()

	extractor := CreateExtractor(server.Client(), nil, nil, newFastExecutor())

	text, err := extractor.ExtractText(context.Background(), &models.Bookmark{
		ID:      "1",
		Type:    models.TypeArticle,
		Link:    server.URL,
		Excerpt: "A short excerpt about Go.",
	})

	assert.NoError(t, err)
	assert.Equal(t, "A short excerpt about Go.", text)
	assert.Zero(t, atomic.LoadInt32(&fetches))
}

func TestExtractText_ArticleFallsBackToFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>Fallback body</p></body></html>"))
	}))
	defer server.Close()

	extractor := CreateExtractor(server.Client(), nil, nil, newFastExecutor())

	text, err := extractor.ExtractText(context.Background(), &models.Bookmark{
		ID:   "1",
		Type: models.TypeArticle,
		Link: server.URL,
	})

	assert.NoError(t, err)
	assert.Contains(t, text, "Fallback body")
}

func TestExtractText_LinkStripsHyperlinkMarkup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1>Title</h1><p>Hello <a href="https://example.com">world</a></p></body></html>`))
	}))
	defer server.Close()

	extractor := CreateExtractor(server.Client(), nil, nil, newFastExecutor())

	text, err := extractor.ExtractText(context.Background(), &models.Bookmark{
		ID:   "1",
		Type: models.TypeLink,
		Link: server.URL,
	})

	assert.NoError(t, err)
	assert.Contains(t, text, "Title")
	assert.Contains(t, text, "Hello world")
	assert.NotContains(t, text, "](")
	assert.NotContains(t, text, "example.com")
}

func TestExtractText_LinkFetchFailureIsNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	extractor := CreateExtractor(server.Client(), nil, nil, newFastExecutor())

	text, err := extractor.ExtractText(context.Background(), &models.Bookmark{
		ID:   "1",
		Type: models.TypeLink,
		Link: server.URL,
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNoContent)
	assert.Empty(t, text)
}

func TestExtractText_VideoAlreadySummarizedReusesNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT calls: neither the transcript service nor the model may
	// be invoked for an already summarized video.
	transcripts := mock_app.NewMockTranscriptFetcher(ctrl)
	composer := mock_app.NewMockSummaryGenerator(ctrl)

	extractor := CreateExtractor(nil, transcripts, composer, newFastExecutor())

	note := "# Core Message\n\nExisting summary."
	text, err := extractor.ExtractText(context.Background(), &models.Bookmark{
		ID:   "1",
		Type: models.TypeVideo,
		Link: "https://www.youtube.com/watch?v=abc12345678",
		Note: note,
		Tags: []string{models.TagVideoSummarized},
	})

	assert.NoError(t, err)
	assert.Equal(t, note, text)
}

func TestExtractText_VideoFetchesTranscriptAndSummarizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transcripts := mock_app.NewMockTranscriptFetcher(ctrl)
	transcripts.EXPECT().
		GetTranscript(gomock.Any(), "abc12345678", []string{"en-US", "en-GB", "en"}).
		Return("full transcript text", nil)

	composer := mock_app.NewMockSummaryGenerator(ctrl)
	composer.EXPECT().
		ComposeSummary(gomock.Any(), "full transcript text").
		Return("# Core Message\n\ncondensed")

	extractor := CreateExtractor(nil, transcripts, composer, newFastExecutor())

	text, err := extractor.ExtractText(context.Background(), &models.Bookmark{
		ID:   "1",
		Type: models.TypeVideo,
		Link: "https://www.youtube.com/watch?v=abc12345678",
	})

	assert.NoError(t, err)
	assert.Equal(t, "# Core Message\n\ncondensed", text)
}

func TestExtractText_VideoWithoutTranscriptFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transcripts := mock_app.NewMockTranscriptFetcher(ctrl)
	transcripts.EXPECT().
		GetTranscript(gomock.Any(), "abc12345678", gomock.Any()).
		Return("", errs.ErrNoTranscript)

	composer := mock_app.NewMockSummaryGenerator(ctrl)

	extractor := CreateExtractor(nil, transcripts, composer, newFastExecutor())

	text, err := extractor.ExtractText(context.Background(), &models.Bookmark{
		ID:   "1",
		Type: models.TypeVideo,
		Link: "https://youtu.be/abc12345678",
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNoContent)
	assert.Empty(t, text)
}

func TestExtractText_UnrecognizedVideoUsesNote(t *testing.T) {
	extractor := CreateExtractor(nil, nil, nil, newFastExecutor())

	text, err := extractor.ExtractText(context.Background(), &models.Bookmark{
		ID:   "1",
		Type: models.TypeVideo,
		Link: "https://vimeo.com/12345",
		Note: "Talk notes taken by hand.",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Talk notes taken by hand.", text)
}

func TestExtractText_UnrecognizedVideoWithoutNoteFails(t *testing.T) {
	extractor := CreateExtractor(nil, nil, nil, newFastExecutor())

	text, err := extractor.ExtractText(context.Background(), &models.Bookmark{
		ID:   "1",
		Type: models.TypeVideo,
		Link: "https://vimeo.com/12345",
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNoContent)
	assert.Empty(t, text)
}
