package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/supchaser/bookmark_annotator/internal/app"
	"github.com/supchaser/bookmark_annotator/internal/app/content"
	"github.com/supchaser/bookmark_annotator/internal/app/models"
	"github.com/supchaser/bookmark_annotator/internal/utils/errs"
	"github.com/supchaser/bookmark_annotator/internal/utils/logger"
	"github.com/supchaser/bookmark_annotator/internal/utils/retry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	lookupAttempts = 5
	updateAttempts = 5

	// Full-account runs go through the store in chunks with a cooldown in
	// between to avoid sustained rate-limit pressure.
	allBatchSize  = 10
	batchCooldown = time.Second
)

// BookmarkUsecase orchestrates the per-item pipeline: extract text, run
// the annotation stages, merge tags, write back, and track batch runs.
type BookmarkUsecase struct {
	store     app.BookmarkStore
	extractor app.TextExtractor
	tagger    app.TagExtractor
	composer  app.SummaryGenerator
	taskRepo  app.TaskRepository
	exec      *retry.Executor
	sleep     func(d time.Duration)
}

func CreateBookmarkUsecase(
	store app.BookmarkStore,
	extractor app.TextExtractor,
	tagger app.TagExtractor,
	composer app.SummaryGenerator,
	taskRepo app.TaskRepository,
	exec *retry.Executor,
) *BookmarkUsecase {
	return &BookmarkUsecase{
		store:     store,
		extractor: extractor,
		tagger:    tagger,
		composer:  composer,
		taskRepo:  taskRepo,
		exec:      exec,
		sleep:     time.Sleep,
	}
}

func (u *BookmarkUsecase) ready() error {
	if u.store == nil || u.extractor == nil || u.taskRepo == nil {
		return errs.ErrProcessorNotReady
	}
	return nil
}

// ListBookmarks returns the store's bookmarks, filtering out already
// processed ones unless includeProcessed is set.
func (u *BookmarkUsecase) ListBookmarks(ctx context.Context, includeProcessed bool) ([]*models.Bookmark, error) {
	const funcName = "BookmarkUsecase.ListBookmarks"

	if err := u.ready(); err != nil {
		return nil, err
	}

	bookmarks, err := u.listWithRetries(ctx)
	if err != nil {
		logger.Error("failed to list bookmarks",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	if includeProcessed {
		return bookmarks, nil
	}

	unprocessed := make([]*models.Bookmark, 0, len(bookmarks))
	for _, bm := range bookmarks {
		if bm.HasTag(models.TagProcessed) {
			continue
		}
		unprocessed = append(unprocessed, bm)
	}

	logger.Info("bookmarks listed",
		zap.String("function", funcName),
		zap.Int("total", len(bookmarks)),
		zap.Int("unprocessed", len(unprocessed)),
	)
	return unprocessed, nil
}

// ProcessBookmark runs the pipeline for a single bookmark. A nil result
// with an error means the item failed; annotation-stage failures degrade
// to empty output instead.
func (u *BookmarkUsecase) ProcessBookmark(ctx context.Context, bookmark *models.Bookmark, opts models.ProcessOptions) (*models.ProcessedBookmark, error) {
	const funcName = "BookmarkUsecase.ProcessBookmark"
	logger.Info("processing bookmark",
		zap.String("function", funcName),
		zap.String("bookmark_id", bookmark.ID),
		zap.String("title", bookmark.Title),
	)

	text, err := u.extractor.ExtractText(ctx, bookmark)
	if err != nil {
		logger.Error("failed to extract text",
			zap.String("function", funcName),
			zap.String("bookmark_id", bookmark.ID),
			zap.Error(err),
		)
		return nil, err
	}

	isVideo := content.IsRecognizedVideo(bookmark)

	// Keyword extraction and summary composition are independent of each
	// other; run them concurrently. Each stage's own external calls stay
	// ordered inside it.
	var (
		newTags []string
		summary string
		g       errgroup.Group
	)
	if opts.ExtractTags {
		g.Go(func() error {
			newTags = u.tagger.ExtractKeywords(ctx, text)
			return nil
		})
	}
	if opts.GenerateSummary {
		if isVideo {
			// The video pipeline already condensed the transcript; the
			// extracted text is the summary.
			summary = text
		} else {
			g.Go(func() error {
				summary = u.composer.ComposeSummary(ctx, text)
				return nil
			})
		}
	}
	_ = g.Wait()

	markers := []string{models.TagProcessed}
	if isVideo {
		markers = append(markers, models.TagVideoSummarized)
	}

	return &models.ProcessedBookmark{
		ID:        bookmark.ID,
		Link:      bookmark.Link,
		Title:     bookmark.Title,
		Excerpt:   bookmark.Excerpt,
		Note:      bookmark.Note,
		Tags:      models.MergeTags(bookmark.Tags, newTags, markers),
		Summary:   summary,
		CreatedAt: time.Now(),
	}, nil
}

// ProcessBookmarks resolves each id against the store and runs the
// per-item pipeline, accumulating successes and failed ids. Only fatal
// conditions (processor not ready, cancelled context) surface as errors.
func (u *BookmarkUsecase) ProcessBookmarks(ctx context.Context, ids []string, opts models.ProcessOptions) ([]*models.ProcessedBookmark, []string, error) {
	const funcName = "BookmarkUsecase.ProcessBookmarks"

	if err := u.ready(); err != nil {
		return nil, nil, err
	}

	logger.Info("starting batch processing",
		zap.String("function", funcName),
		zap.Int("count", len(ids)),
		zap.Bool("extract_tags", opts.ExtractTags),
		zap.Bool("generate_summary", opts.GenerateSummary),
		zap.Bool("update_store", opts.UpdateStore),
	)

	processed := make([]*models.ProcessedBookmark, 0, len(ids))
	failed := make([]string, 0)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return processed, failed, fmt.Errorf("batch aborted: %w", err)
		}

		bookmark, err := u.findBookmark(ctx, id)
		if err != nil {
			logger.Error("bookmark lookup failed",
				zap.String("function", funcName),
				zap.String("bookmark_id", id),
				zap.Error(err),
			)
			failed = append(failed, id)
			continue
		}

		result, err := u.ProcessBookmark(ctx, bookmark, opts)
		if err != nil {
			failed = append(failed, id)
			continue
		}

		if opts.UpdateStore {
			if err := u.updateBookmark(ctx, result); err != nil {
				logger.Error("write-back failed, demoting bookmark to failed",
					zap.String("function", funcName),
					zap.String("bookmark_id", id),
					zap.Error(err),
				)
				failed = append(failed, id)
				continue
			}
		}
		processed = append(processed, result)
	}

	logger.Info("batch processing finished",
		zap.String("function", funcName),
		zap.Int("processed", len(processed)),
		zap.Int("failed", len(failed)),
	)
	return processed, failed, nil
}

// StartProcessAll scans the account for unprocessed bookmarks, registers
// a batch task and processes it in the background. A task with an empty
// id means there was nothing to do.
func (u *BookmarkUsecase) StartProcessAll(ctx context.Context, opts models.ProcessOptions) (*models.BatchTask, error) {
	const funcName = "BookmarkUsecase.StartProcessAll"

	if err := u.ready(); err != nil {
		return nil, err
	}

	bookmarks, err := u.listWithRetries(ctx)
	if err != nil {
		// Unreachable store at batch start is a shared-setup failure and
		// propagates to the caller.
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}

	ids := make([]string, 0, len(bookmarks))
	for _, bm := range bookmarks {
		if bm.HasTag(models.TagProcessed) {
			continue
		}
		ids = append(ids, bm.ID)
	}

	if len(ids) == 0 {
		logger.Info("no unprocessed bookmarks found",
			zap.String("function", funcName),
		)
		return &models.BatchTask{Status: models.StatusCompleted}, nil
	}

	task, err := u.taskRepo.CreateTask(ctx, len(ids))
	if err != nil {
		return nil, fmt.Errorf("creating batch task: %w", err)
	}

	logger.Info("starting background batch",
		zap.String("function", funcName),
		zap.String("task_id", task.ID),
		zap.Int("total_bookmarks", len(ids)),
	)

	go u.runBatch(context.WithoutCancel(ctx), task.ID, ids, opts)

	return task, nil
}

// runBatch drives one batch task through its state machine, processing
// ids in chunks with a cooldown between chunks.
func (u *BookmarkUsecase) runBatch(ctx context.Context, taskID string, ids []string, opts models.ProcessOptions) {
	const funcName = "BookmarkUsecase.runBatch"

	if err := u.taskRepo.StartTask(ctx, taskID); err != nil {
		logger.Error("failed to start batch task",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
		return
	}

	allProcessed := make([]*models.ProcessedBookmark, 0, len(ids))
	allFailed := make([]string, 0)

	for start := 0; start < len(ids); start += allBatchSize {
		end := min(start+allBatchSize, len(ids))

		processed, failed, err := u.ProcessBookmarks(ctx, ids[start:end], opts)
		allProcessed = append(allProcessed, processed...)
		allFailed = append(allFailed, failed...)

		if err != nil {
			if failErr := u.taskRepo.FailTask(ctx, taskID, err.Error()); failErr != nil {
				logger.Error("failed to mark task as failed",
					zap.String("function", funcName),
					zap.String("task_id", taskID),
					zap.Error(failErr),
				)
			}
			return
		}

		// Deliberate throughput throttle between chunks.
		if end < len(ids) {
			u.sleep(batchCooldown)
		}
	}

	if err := u.taskRepo.CompleteTask(ctx, taskID, allProcessed, allFailed); err != nil {
		logger.Error("failed to complete batch task",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
	}
}

func (u *BookmarkUsecase) GetTask(ctx context.Context, id string) (*models.BatchTask, error) {
	return u.taskRepo.GetTask(ctx, id)
}

func (u *BookmarkUsecase) GetAllTasks(ctx context.Context) ([]*models.BatchTask, error) {
	return u.taskRepo.GetAllTasks(ctx)
}

// findBookmark resolves an id by scanning the store's listing.
func (u *BookmarkUsecase) findBookmark(ctx context.Context, id string) (*models.Bookmark, error) {
	var bookmarks []*models.Bookmark
	err := u.exec.Do(ctx, "search bookmark", lookupAttempts, func() error {
		listed, err := u.store.List(ctx)
		if err != nil {
			return err
		}
		bookmarks = listed
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, bm := range bookmarks {
		if bm.ID == id {
			return bm, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", errs.ErrBookmarkNotFound, id)
}

func (u *BookmarkUsecase) listWithRetries(ctx context.Context) ([]*models.Bookmark, error) {
	var bookmarks []*models.Bookmark
	err := u.exec.Do(ctx, "list bookmarks", lookupAttempts, func() error {
		listed, err := u.store.List(ctx)
		if err != nil {
			return err
		}
		bookmarks = listed
		return nil
	})
	return bookmarks, err
}

// updateBookmark writes tags and note back to the store, prepending the
// generated summary to any prior note content.
func (u *BookmarkUsecase) updateBookmark(ctx context.Context, result *models.ProcessedBookmark) error {
	note := result.Note
	if result.Summary != "" {
		note = result.Summary + "\n\n" + result.Note
	}

	return u.exec.Do(ctx, "update bookmark", updateAttempts, func() error {
		_, err := u.store.Update(ctx, result.ID, result.Tags, note)
		return err
	})
}
