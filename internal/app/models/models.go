package models

import (
	"sort"
	"time"
)

type BookmarkType string

const (
	TypeLink    BookmarkType = "link"
	TypeArticle BookmarkType = "article"
	TypeVideo   BookmarkType = "video"
)

// Processing markers are reserved tag values. TagProcessed is the
// idempotency guard for full-account scans; TagVideoSummarized signals a
// video whose note already holds a generated summary.
const (
	TagProcessed       = "_processed"
	TagVideoSummarized = "_video_summarized"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusFailed     TaskStatus = "failed"
)

// Bookmark is a single item read from the external bookmark store.
type Bookmark struct {
	ID      string       `json:"id"`
	Link    string       `json:"link"`
	Title   string       `json:"title"`
	Excerpt string       `json:"excerpt,omitempty"`
	Note    string       `json:"note,omitempty"`
	Tags    []string     `json:"tags"`
	Type    BookmarkType `json:"type"`
}

// HasTag reports whether the bookmark carries the given tag.
func (b *Bookmark) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ProcessedBookmark is the ephemeral result of annotating one bookmark.
type ProcessedBookmark struct {
	ID        string    `json:"id"`
	Link      string    `json:"link"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Note      string    `json:"note,omitempty"`
	Tags      []string  `json:"tags"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BatchTask tracks one asynchronous batch run. Owned by the task
// repository; mutated only by the worker executing the batch.
type BatchTask struct {
	ID             string               `json:"task_id"`
	Status         TaskStatus           `json:"status"`
	TotalBookmarks int                  `json:"total_bookmarks"`
	ProcessedCount int                  `json:"processed_count"`
	FailedCount    int                  `json:"failed_count"`
	StartTime      time.Time            `json:"start_time"`
	EndTime        *time.Time           `json:"end_time,omitempty"`
	ErrorMessage   string               `json:"error_message,omitempty"`
	Processed      []*ProcessedBookmark `json:"processed_bookmarks,omitempty"`
	FailedIDs      []string             `json:"failed_bookmarks,omitempty"`
}

// IsTerminal reports whether the task can no longer change state.
func (t *BatchTask) IsTerminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusFailed
}

// ProcessOptions gates the annotation stages of the per-item pipeline.
type ProcessOptions struct {
	ExtractTags     bool `json:"extract_tags"`
	GenerateSummary bool `json:"generate_summary"`
	UpdateStore     bool `json:"update_store"`
}

// ProcessRequest is the body of the synchronous processing endpoint.
type ProcessRequest struct {
	BookmarkIDs     []string `json:"bookmark_ids"`
	ExtractTags     bool     `json:"extract_tags"`
	GenerateSummary bool     `json:"generate_summary"`
	UpdateStore     bool     `json:"update_store"`
}

// ProcessResponse reports the outcome of a synchronous processing call.
type ProcessResponse struct {
	Processed        []*ProcessedBookmark `json:"processed_bookmarks"`
	FailedIDs        []string             `json:"failed_bookmarks"`
	ProcessingTimeMS float64              `json:"total_processing_time_ms"`
}

// BatchResponse acknowledges an asynchronous batch submission.
type BatchResponse struct {
	TaskID  string     `json:"task_id"`
	Status  TaskStatus `json:"status"`
	Message string     `json:"message"`
}

// BookmarkList is the response of the bookmark listing endpoint.
type BookmarkList struct {
	Bookmarks  []*Bookmark `json:"bookmarks"`
	TotalCount int         `json:"total_count"`
}

// TaskSummary is the compact task representation for listings.
type TaskSummary struct {
	ID             string     `json:"task_id"`
	Status         TaskStatus `json:"status"`
	TotalBookmarks int        `json:"total_bookmarks"`
	ProcessedCount int        `json:"processed_count"`
	FailedCount    int        `json:"failed_count"`
	StartTime      time.Time  `json:"start_time"`
}

// MergeTags returns the deduplicated, sorted union of the given tag sets.
func MergeTags(tagSets ...[]string) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0)
	for _, tags := range tagSets {
		for _, tag := range tags {
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			merged = append(merged, tag)
		}
	}
	sort.Strings(merged)
	return merged
}
