// Package qaggr - counts votes of slave-node results by their hash and tells when a quorum is reached
package qaggr

import (
	"errors"
	"fmt"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
)

var ErrNoQuorum = errors.New("quorum not reached")

type hashTotals struct {
	votes int
	data  []string
}

// Aggregator collects results for a single task. Not safe for concurrent use.
type Aggregator struct {
	taskID string
	quorum int
	votes  map[uint64]*hashTotals
	result []string
	done   bool
}

func New(taskID string, quorum int) *Aggregator {
	return &Aggregator{
		taskID: taskID,
		quorum: quorum,
		votes:  make(map[uint64]*hashTotals),
	}
}

// Add registers one slave-node result and reports whether the quorum is reached.
// Votes are counted by the hash of Output, results for other tasks are ignored.
func (a *Aggregator) Add(res *model.SlaveResult) bool {
	if a.done {
		return true
	}
	// проверяем, что результат относится к нашей задаче
	if res == nil || res.TaskID != a.taskID {
		return false
	}

	// хеш считаем сами: заявленный slave-node HashSumm не учитывается
	sum := processor.Hash(res.Output)
	record, ok := a.votes[sum]
	if !ok {
		record = &hashTotals{data: res.Output}
		a.votes[sum] = record
	}
	record.votes++

	if record.votes >= a.quorum {
		a.result = record.data
		a.done = true
		clear(a.votes) // кворум достигнут - остальные варианты больше не нужны
	}
	return a.done
}

// Result returns the agreed output or ErrNoQuorum if no hash has enough votes yet.
func (a *Aggregator) Result() ([]string, error) {
	if !a.done {
		return nil, fmt.Errorf("task %q: %w: best hash has %d of %d vote(s)", a.taskID, ErrNoQuorum, a.bestVotes(), a.quorum)
	}
	return a.result, nil
}

func (a *Aggregator) bestVotes() int {
	best := 0
	for _, v := range a.votes {
		best = max(best, v.votes)
	}
	return best
}
