package summary

import (
	"context"
	"fmt"

	"github.com/supchaser/bookmark_annotator/internal/app"
	"github.com/supchaser/bookmark_annotator/internal/utils/logger"
	"github.com/supchaser/bookmark_annotator/internal/utils/retry"
	"go.uber.org/zap"
)

const (
	stageAttempts = 3

	// minInputLength short-circuits composition for inputs too short to
	// summarize.
	minInputLength = 10
)

// Composer assembles a fixed-structure markdown summary out of three
// dependent language-model stages: key ideas, structured summary, and a
// core message distilled from the first two.
type Composer struct {
	completer app.Completer
	exec      *retry.Executor
}

func CreateComposer(completer app.Completer, exec *retry.Executor) *Composer {
	return &Composer{
		completer: completer,
		exec:      exec,
	}
}

// ComposeSummary runs the three stages and fills the output template.
// Each stage is independently best-effort: a failed stage leaves its
// section empty instead of aborting the composition.
func (c *Composer) ComposeSummary(ctx context.Context, text string) string {
	const funcName = "Composer.ComposeSummary"

	if len(text) < minInputLength {
		logger.Warn("input too short to summarize",
			zap.String("function", funcName),
			zap.Int("length", len(text)),
		)
		return ""
	}

	ideas := c.runStage(ctx, "ideas", ideasPrompt, text)
	structured := c.runStage(ctx, "summary", summaryPrompt, text)

	// The core message is distilled from the previous stages' output,
	// not from the original text.
	core := c.runStage(ctx, "core message", coreMessagePrompt, structured+ideas)

	logger.Info("summary composed",
		zap.String("function", funcName),
		zap.Bool("has_ideas", ideas != ""),
		zap.Bool("has_summary", structured != ""),
		zap.Bool("has_core_message", core != ""),
	)

	return fmt.Sprintf("# Core Message\n\n%s\n\n# Summary\n\n%s\n\n# Key Ideas\n\n%s\n", core, structured, ideas)
}

func (c *Composer) runStage(ctx context.Context, stage, systemPrompt, input string) string {
	const funcName = "Composer.runStage"

	var output string
	err := c.exec.Do(ctx, "summary stage: "+stage, stageAttempts, func() error {
		result, err := c.completer.Complete(ctx, systemPrompt, input)
		if err != nil {
			return err
		}
		output = result
		return nil
	})
	if err != nil {
		logger.Error("summary stage failed, leaving section empty",
			zap.String("function", funcName),
			zap.String("stage", stage),
			zap.Error(err),
		)
		return ""
	}
	return output
}
