// Package matcher checks an input line for containing the query under the chosen case policy
package matcher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher tests lines for a plain substring. It is not safe for concurrent use:
// the underlying cases.Caser keeps state between calls.
type Matcher struct {
	query         string
	caseSensitive bool
	lower         cases.Caser
}

func New(query string, caseSensitive bool) *Matcher {
	m := &Matcher{
		query:         query,
		caseSensitive: caseSensitive,
	}
	if !caseSensitive { // паттерн приводим к нижнему регистру один раз
		m.lower = cases.Lower(language.Und)
		m.query = m.lower.String(query)
	}
	return m
}

// FindMatch reports whether line contains the query. The line itself is never modified.
func (m *Matcher) FindMatch(line string) bool {
	if !m.caseSensitive { //-i
		line = m.lower.String(line)
	}
	return strings.Contains(line, m.query)
}
