package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/supchaser/bookmark_annotator/internal/app"
	"github.com/supchaser/bookmark_annotator/internal/app/models"
	"github.com/supchaser/bookmark_annotator/internal/utils/errs"
	"github.com/supchaser/bookmark_annotator/internal/utils/logger"
	"github.com/supchaser/bookmark_annotator/internal/utils/retry"
	"go.uber.org/zap"
)

const (
	fetchAttempts = 3

	// summaryNoteMarker identifies a note that already holds a generated
	// video summary, so the transcript and model stages can be skipped.
	summaryNoteMarker = "# Core Message"
)

// transcriptLanguages is the preference order passed to the transcript
// service: manual English transcripts first, auto-generated last.
var transcriptLanguages = []string{"en-US", "en-GB", "en"}

// strategy tries to derive text for a bookmark. Empty text without an
// error means "not applicable, try the next one".
type strategy func(ctx context.Context, bookmark *models.Bookmark) (string, error)

// Extractor derives plain text from a bookmark through an ordered
// fallback chain selected by bookmark type.
type Extractor struct {
	client      *http.Client
	converter   *md.Converter
	transcripts app.TranscriptFetcher
	composer    app.SummaryGenerator
	exec        *retry.Executor
}

func CreateExtractor(client *http.Client, transcripts app.TranscriptFetcher, composer app.SummaryGenerator, exec *retry.Executor) *Extractor {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	converter := md.NewConverter("", true, nil)
	// Keep anchor text, drop the hyperlink markup.
	converter.AddRules(md.Rule{
		Filter: []string{"a"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return &content
		},
	})

	return &Extractor{
		client:      client,
		converter:   converter,
		transcripts: transcripts,
		composer:    composer,
		exec:        exec,
	}
}

// ExtractText runs the bookmark through its type's strategy chain and
// returns the first non-empty text. Extraction failures are local to the
// bookmark; callers mark the item failed and move on.
func (e *Extractor) ExtractText(ctx context.Context, bookmark *models.Bookmark) (string, error) {
	const funcName = "Extractor.ExtractText"
	logger.Info("extracting text from bookmark",
		zap.String("function", funcName),
		zap.String("bookmark_id", bookmark.ID),
		zap.String("type", string(bookmark.Type)),
	)

	var lastErr error
	for _, s := range e.strategiesFor(bookmark) {
		text, err := s(ctx, bookmark)
		if err != nil {
			lastErr = err
			logger.Warn("extraction strategy failed",
				zap.String("function", funcName),
				zap.String("bookmark_id", bookmark.ID),
				zap.Error(err),
			)
			continue
		}
		if text != "" {
			return text, nil
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrNoContent, lastErr)
	}
	return "", fmt.Errorf("%w: bookmark %s", errs.ErrNoContent, bookmark.ID)
}

// strategiesFor returns the ordered fallback chain for the bookmark type.
func (e *Extractor) strategiesFor(bookmark *models.Bookmark) []strategy {
	switch {
	case IsRecognizedVideo(bookmark):
		return []strategy{e.fromExistingSummary, e.fromTranscript}
	case bookmark.Type == models.TypeVideo:
		return []strategy{e.fromNote}
	case bookmark.Type == models.TypeArticle:
		return []strategy{e.fromExcerpt, e.fromWebPage}
	case bookmark.Type == models.TypeLink:
		return []strategy{e.fromWebPage}
	default:
		return nil
	}
}

// fromExistingSummary reuses the note of a video that was already
// summarized in an earlier run.
func (e *Extractor) fromExistingSummary(_ context.Context, bookmark *models.Bookmark) (string, error) {
	if bookmark.Note == "" {
		return "", nil
	}
	if bookmark.HasTag(models.TagVideoSummarized) || strings.Contains(bookmark.Note, summaryNoteMarker) {
		logger.Info("video already summarized, reusing existing note",
			zap.String("function", "Extractor.fromExistingSummary"),
			zap.String("bookmark_id", bookmark.ID),
		)
		return bookmark.Note, nil
	}
	return "", nil
}

// fromTranscript fetches the video transcript and condenses it into a
// summary; for videos the summary doubles as the extracted text.
func (e *Extractor) fromTranscript(ctx context.Context, bookmark *models.Bookmark) (string, error) {
	const funcName = "Extractor.fromTranscript"

	videoID, err := ExtractVideoID(bookmark.Link)
	if err != nil {
		return "", err
	}

	transcript, err := e.transcripts.GetTranscript(ctx, videoID, transcriptLanguages)
	if err != nil {
		return "", fmt.Errorf("fetching transcript for video %s: %w", videoID, err)
	}

	logger.Info("generating summary from transcript",
		zap.String("function", funcName),
		zap.String("bookmark_id", bookmark.ID),
		zap.String("video_id", videoID),
		zap.Int("transcript_length", len(transcript)),
	)

	summary := e.composer.ComposeSummary(ctx, transcript)
	if summary == "" {
		return "", fmt.Errorf("empty summary for video %s", videoID)
	}
	return summary, nil
}

func (e *Extractor) fromNote(_ context.Context, bookmark *models.Bookmark) (string, error) {
	return bookmark.Note, nil
}

func (e *Extractor) fromExcerpt(_ context.Context, bookmark *models.Bookmark) (string, error) {
	return bookmark.Excerpt, nil
}

// fromWebPage fetches the page body and converts it to markdown with
// hyperlink markup stripped.
func (e *Extractor) fromWebPage(ctx context.Context, bookmark *models.Bookmark) (string, error) {
	var body string
	err := e.exec.Do(ctx, "fetch page", fetchAttempts, func() error {
		fetched, err := e.fetchPage(ctx, bookmark.Link)
		if err != nil {
			return err
		}
		body = fetched
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", bookmark.Link, err)
	}

	text, err := e.converter.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("converting page %s to markdown: %w", bookmark.Link, err)
	}
	return strings.TrimSpace(text), nil
}

func (e *Extractor) fetchPage(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, link)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
