// Package appmode provides the search driver for 'local' mode and the 'master' and 'slave' node modes
package appmode

import (
	"bufio"
	"io"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/reader"
)

// RunLocal reads ai.FileName, filters it and writes every matching line to out.
// A read failure is returned as is and nothing is written.
func RunLocal(ai *model.AppInit, out io.Writer) error {
	source, err := reader.ReadInput(ai.FileName)
	if err != nil {
		return err
	}

	req := model.SearchRequest{
		Query:         ai.Query,
		Source:        source,
		CaseSensitive: ai.CaseSensitive,
	}
	return printLines(out, processor.Search(req))
}

func printLines(out io.Writer, lines []string) error {
	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
