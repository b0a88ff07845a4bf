package app

import (
	"context"

	"github.com/supchaser/bookmark_annotator/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

// BookmarkStore is the external bookmark store (list and write-back only).
type BookmarkStore interface {
	List(ctx context.Context) ([]*models.Bookmark, error)
	Update(ctx context.Context, id string, tags []string, note string) (*models.Bookmark, error)
}

// KeywordClient is the external keyword-extraction capability.
type KeywordClient interface {
	Extract(ctx context.Context, text string, minWords, maxWords int) ([]string, error)
}

// Completer is a stateless single-turn completion against the
// summarization language model.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// TranscriptFetcher is the external video-transcript service.
type TranscriptFetcher interface {
	GetTranscript(ctx context.Context, videoID string, languages []string) (string, error)
}

// TextExtractor produces plain text for a bookmark via the per-type
// fallback chain.
type TextExtractor interface {
	ExtractText(ctx context.Context, bookmark *models.Bookmark) (string, error)
}

// TagExtractor turns text into tag tokens. Best-effort: failures yield an
// empty slice.
type TagExtractor interface {
	ExtractKeywords(ctx context.Context, text string) []string
}

// SummaryGenerator composes a markdown summary from text. Best-effort:
// failed stages degrade to empty sections.
type SummaryGenerator interface {
	ComposeSummary(ctx context.Context, text string) string
}

// TaskRepository tracks batch tasks and their state machine.
type TaskRepository interface {
	CreateTask(ctx context.Context, totalBookmarks int) (*models.BatchTask, error)
	GetTask(ctx context.Context, id string) (*models.BatchTask, error)
	GetAllTasks(ctx context.Context) ([]*models.BatchTask, error)
	StartTask(ctx context.Context, id string) error
	CompleteTask(ctx context.Context, id string, processed []*models.ProcessedBookmark, failedIDs []string) error
	FailTask(ctx context.Context, id string, message string) error
}

// BookmarkUsecase is the delivery-facing surface of the processor.
type BookmarkUsecase interface {
	ListBookmarks(ctx context.Context, includeProcessed bool) ([]*models.Bookmark, error)
	ProcessBookmarks(ctx context.Context, ids []string, opts models.ProcessOptions) ([]*models.ProcessedBookmark, []string, error)
	StartProcessAll(ctx context.Context, opts models.ProcessOptions) (*models.BatchTask, error)
	GetTask(ctx context.Context, id string) (*models.BatchTask, error)
	GetAllTasks(ctx context.Context) ([]*models.BatchTask, error)
}
