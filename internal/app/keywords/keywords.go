package keywords

import (
	"context"
	"strings"

	"github.com/supchaser/bookmark_annotator/internal/app"
	"github.com/supchaser/bookmark_annotator/internal/utils/logger"
	"github.com/supchaser/bookmark_annotator/internal/utils/retry"
	"github.com/supchaser/bookmark_annotator/internal/utils/slugify"
	"go.uber.org/zap"
)

const (
	// maxInputTokens bounds the cost of a keyword-extraction call.
	maxInputTokens  = 1000
	extractAttempts = 3

	// Requested phrase length range (1-2 word phrases).
	minPhraseWords = 1
	maxPhraseWords = 2
)

// Extractor turns bookmark text into normalized tag tokens via the
// external keyword-extraction capability.
type Extractor struct {
	client app.KeywordClient
	exec   *retry.Executor
}

func CreateExtractor(client app.KeywordClient, exec *retry.Executor) *Extractor {
	return &Extractor{
		client: client,
		exec:   exec,
	}
}

// ExtractKeywords submits at most 1000 whitespace-delimited tokens and
// slugifies the returned phrases. Best-effort: any failure after retries
// yields an empty slice and never blocks the rest of the pipeline.
func (e *Extractor) ExtractKeywords(ctx context.Context, text string) []string {
	const funcName = "Extractor.ExtractKeywords"

	truncated := truncateWords(text, maxInputTokens)
	if len(truncated) < len(text) {
		logger.Info("text truncated for keyword extraction",
			zap.String("function", funcName),
			zap.Int("max_tokens", maxInputTokens),
		)
	}

	var phrases []string
	err := e.exec.Do(ctx, "extract keywords", extractAttempts, func() error {
		result, err := e.client.Extract(ctx, truncated, minPhraseWords, maxPhraseWords)
		if err != nil {
			return err
		}
		phrases = result
		return nil
	})
	if err != nil {
		logger.Error("keyword extraction failed",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return []string{}
	}

	tags := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if slug := slugify.Slugify(phrase); slug != "" {
			tags = append(tags, slug)
		}
	}

	logger.Info("keywords extracted",
		zap.String("function", funcName),
		zap.Int("count", len(tags)),
	)
	return tags
}

// truncateWords keeps at most limit whitespace-delimited tokens.
func truncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return text
	}
	return strings.Join(words[:limit], " ")
}
