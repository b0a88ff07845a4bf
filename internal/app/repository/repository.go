package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/supchaser/bookmark_annotator/internal/app/models"
	"github.com/supchaser/bookmark_annotator/internal/utils/errs"
	"github.com/supchaser/bookmark_annotator/internal/utils/logger"
	"go.uber.org/zap"
)

// TaskRepository keeps batch tasks in memory for the life of the process.
// A restart loses task history; that is an accepted limitation.
type TaskRepository struct {
	tasks map[string]*models.BatchTask
	mu    sync.Mutex
}

func CreateTaskRepository() *TaskRepository {
	return &TaskRepository{
		tasks: make(map[string]*models.BatchTask),
	}
}

func (r *TaskRepository) CreateTask(ctx context.Context, totalBookmarks int) (*models.BatchTask, error) {
	const funcName = "TaskRepository.CreateTask"

	r.mu.Lock()
	defer r.mu.Unlock()

	task := &models.BatchTask{
		ID:             uuid.NewString(),
		Status:         models.StatusPending,
		TotalBookmarks: totalBookmarks,
		StartTime:      time.Now(),
	}
	r.tasks[task.ID] = task

	logger.Info("batch task created",
		zap.String("function", funcName),
		zap.String("task_id", task.ID),
		zap.Int("total_bookmarks", totalBookmarks),
	)

	return snapshot(task), nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id string) (*models.BatchTask, error) {
	const funcName = "TaskRepository.GetTask"

	r.mu.Lock()
	defer r.mu.Unlock()

	task, exists := r.tasks[id]
	if !exists {
		logger.Warn("task not found",
			zap.String("function", funcName),
			zap.String("task_id", id),
		)
		return nil, errs.ErrTaskNotFound
	}

	return snapshot(task), nil
}

func (r *TaskRepository) GetAllTasks(ctx context.Context) ([]*models.BatchTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]*models.BatchTask, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, snapshot(task))
	}
	return tasks, nil
}

// StartTask moves a pending task to in-progress.
func (r *TaskRepository) StartTask(ctx context.Context, id string) error {
	const funcName = "TaskRepository.StartTask"

	r.mu.Lock()
	defer r.mu.Unlock()

	task, exists := r.tasks[id]
	if !exists {
		return errs.ErrTaskNotFound
	}
	if task.IsTerminal() {
		return fmt.Errorf("%w: task %s is %s", errs.ErrTaskFinished, id, task.Status)
	}

	task.Status = models.StatusInProgress

	logger.Info("batch task started",
		zap.String("function", funcName),
		zap.String("task_id", id),
	)
	return nil
}

// CompleteTask records the batch outcome. Completed means "finished
// running": individual failures live in failedIDs, they do not fail the
// task.
func (r *TaskRepository) CompleteTask(ctx context.Context, id string, processed []*models.ProcessedBookmark, failedIDs []string) error {
	const funcName = "TaskRepository.CompleteTask"

	r.mu.Lock()
	defer r.mu.Unlock()

	task, exists := r.tasks[id]
	if !exists {
		return errs.ErrTaskNotFound
	}
	if task.IsTerminal() {
		return fmt.Errorf("%w: task %s is %s", errs.ErrTaskFinished, id, task.Status)
	}

	now := time.Now()
	task.Status = models.StatusCompleted
	task.Processed = processed
	task.FailedIDs = failedIDs
	task.ProcessedCount = len(processed)
	task.FailedCount = len(failedIDs)
	task.EndTime = &now

	logger.Info("batch task completed",
		zap.String("function", funcName),
		zap.String("task_id", id),
		zap.Int("processed", task.ProcessedCount),
		zap.Int("failed", task.FailedCount),
	)
	return nil
}

// FailTask marks the whole batch as failed; reserved for worker-level
// failures, not individual item failures.
func (r *TaskRepository) FailTask(ctx context.Context, id string, message string) error {
	const funcName = "TaskRepository.FailTask"

	r.mu.Lock()
	defer r.mu.Unlock()

	task, exists := r.tasks[id]
	if !exists {
		return errs.ErrTaskNotFound
	}
	if task.IsTerminal() {
		return fmt.Errorf("%w: task %s is %s", errs.ErrTaskFinished, id, task.Status)
	}

	now := time.Now()
	task.Status = models.StatusFailed
	task.ErrorMessage = message
	task.EndTime = &now

	logger.Error("batch task failed",
		zap.String("function", funcName),
		zap.String("task_id", id),
		zap.String("error_message", message),
	)
	return nil
}

// snapshot copies a task so status polling never races the worker that
// mutates it.
func snapshot(task *models.BatchTask) *models.BatchTask {
	copied := *task
	if task.EndTime != nil {
		end := *task.EndTime
		copied.EndTime = &end
	}
	copied.Processed = append([]*models.ProcessedBookmark(nil), task.Processed...)
	copied.FailedIDs = append([]string(nil), task.FailedIDs...)
	return &copied
}
