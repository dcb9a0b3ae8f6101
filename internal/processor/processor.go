// Package processor filters source text line by line and wraps the result for slave-node replies
package processor

import (
	"context"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

// Filter returns the lines of source that contain query, in source order.
// Lines are split on '\n' only: a trailing '\r' stays part of the line.
// A trailing '\n' does not produce an extra empty line, an unterminated last segment is a line.
func Filter(query, source string, caseSensitive bool) model.MatchResult {
	m := matcher.New(query, caseSensitive)

	result := model.MatchResult{}
	for line := range strings.Lines(source) {
		line = strings.TrimSuffix(line, "\n")
		if m.FindMatch(line) {
			result = append(result, line)
		}
	}
	return result
}

// Search runs Filter over a prepared request.
func Search(req model.SearchRequest) model.MatchResult {
	return Filter(req.Query, req.Source, req.CaseSensitive)
}

type Processor struct{}

// ProcessInput returns nil when ctx is already cancelled: a skipped task has no result to vote with.
func (p Processor) ProcessInput(ctx context.Context, task *model.SlaveTask) *model.SlaveResult {
	// если master уже отменил запрос - не тратим время на фильтрацию
	if ctx.Err() != nil {
		return nil
	}

	result := model.SlaveResult{
		TaskID: task.TaskID,
	}
	result.Output = Search(task.Request())
	result.HashSumm = Hash(result.Output)

	return &result
}

// Hash digests a result for quorum voting. Every line is terminated with '\n'
// so that {"ab"} and {"a", "b"} produce different sums.
func Hash(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
