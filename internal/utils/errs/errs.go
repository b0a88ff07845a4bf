package errs

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskFinished         = errors.New("task is already in a terminal state")
	ErrBookmarkNotFound     = errors.New("bookmark not found")
	ErrExhaustedRetries     = errors.New("exhausted retry attempts")
	ErrUnrecognizedVideoURL = errors.New("unrecognized video url")
	ErrNoTranscript         = errors.New("no transcript available")
	ErrNoContent            = errors.New("no text content available")
	ErrProcessorNotReady    = errors.New("processor is not initialized")
)
