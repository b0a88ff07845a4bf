package delivery

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/supchaser/bookmark_annotator/internal/app"
	"github.com/supchaser/bookmark_annotator/internal/app/models"
	"github.com/supchaser/bookmark_annotator/internal/utils/logger"
	"github.com/supchaser/bookmark_annotator/internal/utils/responses"
	"go.uber.org/zap"
)

type BookmarkDelivery struct {
	bookmarkUsecase app.BookmarkUsecase
}

func CreateBookmarkDelivery(bookmarkUsecase app.BookmarkUsecase) *BookmarkDelivery {
	return &BookmarkDelivery{
		bookmarkUsecase: bookmarkUsecase,
	}
}

// GetBookmarks lists bookmarks from the store. Already processed
// bookmarks are filtered out unless ?include_processed=true.
func (d *BookmarkDelivery) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	const funcName = "BookmarkDelivery.GetBookmarks"
	logger.Debug("listing bookmarks", zap.String("function", funcName))

	includeProcessed := r.URL.Query().Get("include_processed") == "true"

	bookmarks, err := d.bookmarkUsecase.ListBookmarks(r.Context(), includeProcessed)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, models.BookmarkList{
		Bookmarks:  bookmarks,
		TotalCount: len(bookmarks),
	}, http.StatusOK)
}

// ProcessBookmarks processes the requested ids synchronously.
func (d *BookmarkDelivery) ProcessBookmarks(w http.ResponseWriter, r *http.Request) {
	const funcName = "BookmarkDelivery.ProcessBookmarks"
	logger.Debug("processing bookmarks", zap.String("function", funcName))

	req := models.ProcessRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.BookmarkIDs) == 0 {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "bookmark_ids must not be empty")
		return
	}

	opts := models.ProcessOptions{
		ExtractTags:     req.ExtractTags,
		GenerateSummary: req.GenerateSummary,
		UpdateStore:     req.UpdateStore,
	}

	start := time.Now()
	processed, failed, err := d.bookmarkUsecase.ProcessBookmarks(r.Context(), req.BookmarkIDs, opts)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, models.ProcessResponse{
		Processed:        processed,
		FailedIDs:        failed,
		ProcessingTimeMS: float64(time.Since(start).Microseconds()) / 1000.0,
	}, http.StatusOK)
}

// ProcessAllBookmarks starts asynchronous processing of every
// unprocessed bookmark and returns a task id to poll.
func (d *BookmarkDelivery) ProcessAllBookmarks(w http.ResponseWriter, r *http.Request) {
	const funcName = "BookmarkDelivery.ProcessAllBookmarks"
	logger.Debug("starting batch of all unprocessed bookmarks", zap.String("function", funcName))

	opts := models.ProcessOptions{
		ExtractTags:     queryFlag(r, "extract_tags", true),
		GenerateSummary: queryFlag(r, "generate_summary", true),
		UpdateStore:     queryFlag(r, "update_store", true),
	}

	task, err := d.bookmarkUsecase.StartProcessAll(r.Context(), opts)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	if task.ID == "" {
		responses.DoJSONResponse(w, models.BatchResponse{
			Status:  models.StatusCompleted,
			Message: "no unprocessed bookmarks found",
		}, http.StatusOK)
		return
	}

	responses.DoJSONResponse(w, models.BatchResponse{
		TaskID:  task.ID,
		Status:  task.Status,
		Message: "batch processing started",
	}, http.StatusAccepted)
}

// GetTaskStatus returns the current snapshot of a batch task.
func (d *BookmarkDelivery) GetTaskStatus(w http.ResponseWriter, r *http.Request) {
	const funcName = "BookmarkDelivery.GetTaskStatus"

	taskID := mux.Vars(r)["id"]
	if taskID == "" {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := d.bookmarkUsecase.GetTask(r.Context(), taskID)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, task, http.StatusOK)
}

// GetAllTasks lists all batch tasks known to this process.
func (d *BookmarkDelivery) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	const funcName = "BookmarkDelivery.GetAllTasks"
	logger.Debug("listing tasks", zap.String("function", funcName))

	tasks, err := d.bookmarkUsecase.GetAllTasks(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	summaries := make([]models.TaskSummary, 0, len(tasks))
	for _, task := range tasks {
		summaries = append(summaries, models.TaskSummary{
			ID:             task.ID,
			Status:         task.Status,
			TotalBookmarks: task.TotalBookmarks,
			ProcessedCount: task.ProcessedCount,
			FailedCount:    task.FailedCount,
			StartTime:      task.StartTime,
		})
	}

	responses.DoJSONResponse(w, map[string]any{
		"count": len(summaries),
		"tasks": summaries,
	}, http.StatusOK)
}

// queryFlag reads a boolean query parameter, defaulting when absent.
func queryFlag(r *http.Request, name string, def bool) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	return raw == "true" || raw == "1"
}
