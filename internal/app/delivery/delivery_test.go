package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	mock_app "github.com/supchaser/bookmark_annotator/internal/app/mocks"
	"github.com/supchaser/bookmark_annotator/internal/app/models"
	"github.com/supchaser/bookmark_annotator/internal/utils/errs"
	"github.com/supchaser/bookmark_annotator/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestGetBookmarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	usecase.EXPECT().
		ListBookmarks(gomock.Any(), false).
		Return([]*models.Bookmark{
			{ID: "1", Title: "first"},
			{ID: "2", Title: "second"},
		}, nil)

	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookmarks", nil)
	w := httptest.NewRecorder()
	d.GetBookmarks(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body models.BookmarkList
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.TotalCount)
	assert.Len(t, body.Bookmarks, 2)
}

func TestGetBookmarks_IncludeProcessedFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	usecase.EXPECT().
		ListBookmarks(gomock.Any(), true).
		Return([]*models.Bookmark{}, nil)

	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookmarks?include_processed=true", nil)
	w := httptest.NewRecorder()
	d.GetBookmarks(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetBookmarks_UpstreamUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	usecase.EXPECT().
		ListBookmarks(gomock.Any(), false).
		Return(nil, errs.ErrExhaustedRetries)

	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookmarks", nil)
	w := httptest.NewRecorder()
	d.GetBookmarks(w, r)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestProcessBookmarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	usecase.EXPECT().
		ProcessBookmarks(gomock.Any(), []string{"1", "2"}, models.ProcessOptions{
			ExtractTags:     true,
			GenerateSummary: true,
			UpdateStore:     false,
		}).
		Return([]*models.ProcessedBookmark{{ID: "1"}}, []string{"2"}, nil)

	d := CreateBookmarkDelivery(usecase)

	payload := `{"bookmark_ids":["1","2"],"extract_tags":true,"generate_summary":true}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookmarks/process", strings.NewReader(payload))
	w := httptest.NewRecorder()
	d.ProcessBookmarks(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body models.ProcessResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Processed, 1)
	assert.Equal(t, []string{"2"}, body.FailedIDs)
	assert.GreaterOrEqual(t, body.ProcessingTimeMS, 0.0)
}

func TestProcessBookmarks_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookmarks/process", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	d.ProcessBookmarks(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessBookmarks_EmptyIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookmarks/process", strings.NewReader(`{"bookmark_ids":[]}`))
	w := httptest.NewRecorder()
	d.ProcessBookmarks(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessBookmarks_NotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	usecase.EXPECT().
		ProcessBookmarks(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, errs.ErrProcessorNotReady)

	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookmarks/process", strings.NewReader(`{"bookmark_ids":["1"]}`))
	w := httptest.NewRecorder()
	d.ProcessBookmarks(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestProcessAllBookmarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	usecase.EXPECT().
		StartProcessAll(gomock.Any(), models.ProcessOptions{
			ExtractTags:     true,
			GenerateSummary: true,
			UpdateStore:     true,
		}).
		Return(&models.BatchTask{ID: "task-1", Status: models.StatusPending}, nil)

	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookmarks/process-all", nil)
	w := httptest.NewRecorder()
	d.ProcessAllBookmarks(w, r)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var body models.BatchResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "task-1", body.TaskID)
	assert.Equal(t, models.StatusPending, body.Status)
}

func TestProcessAllBookmarks_QueryFlagsOverrideDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	usecase.EXPECT().
		StartProcessAll(gomock.Any(), models.ProcessOptions{
			ExtractTags:     false,
			GenerateSummary: true,
			UpdateStore:     false,
		}).
		Return(&models.BatchTask{ID: "task-1", Status: models.StatusPending}, nil)

	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookmarks/process-all?extract_tags=false&update_store=0", nil)
	w := httptest.NewRecorder()
	d.ProcessAllBookmarks(w, r)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestProcessAllBookmarks_NothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	usecase.EXPECT().
		StartProcessAll(gomock.Any(), gomock.Any()).
		Return(&models.BatchTask{Status: models.StatusCompleted}, nil)

	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookmarks/process-all", nil)
	w := httptest.NewRecorder()
	d.ProcessAllBookmarks(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body models.BatchResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.TaskID)
	assert.Equal(t, models.StatusCompleted, body.Status)
	assert.Equal(t, "no unprocessed bookmarks found", body.Message)
}

func TestGetTaskStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	end := time.Now()
	task := &models.BatchTask{
		ID:             "task-1",
		Status:         models.StatusCompleted,
		TotalBookmarks: 3,
		ProcessedCount: 2,
		FailedCount:    1,
		FailedIDs:      []string{"2"},
		EndTime:        &end,
	}

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	usecase.EXPECT().GetTask(gomock.Any(), "task-1").Return(task, nil)

	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/task-1", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "task-1"})
	w := httptest.NewRecorder()
	d.GetTaskStatus(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body models.BatchTask
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "task-1", body.ID)
	assert.Equal(t, models.StatusCompleted, body.Status)
	assert.Equal(t, []string{"2"}, body.FailedIDs)
}

func TestGetTaskStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	usecase.EXPECT().GetTask(gomock.Any(), "missing").Return(nil, errs.ErrTaskNotFound)

	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/missing", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "missing"})
	w := httptest.NewRecorder()
	d.GetTaskStatus(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAllTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := mock_app.NewMockBookmarkUsecase(ctrl)
	usecase.EXPECT().GetAllTasks(gomock.Any()).Return([]*models.BatchTask{
		{ID: "task-1", Status: models.StatusCompleted, TotalBookmarks: 2, ProcessedCount: 2},
		{ID: "task-2", Status: models.StatusInProgress, TotalBookmarks: 5},
	}, nil)

	d := CreateBookmarkDelivery(usecase)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	w := httptest.NewRecorder()
	d.GetAllTasks(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count int                  `json:"count"`
		Tasks []models.TaskSummary `json:"tasks"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Len(t, body.Tasks, 2)
	assert.Equal(t, "task-1", body.Tasks[0].ID)
}
