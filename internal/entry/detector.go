// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entry splits aggregate Markdown files of short structured records,
// such as creature stat blocks, into one file per entry with per-letter
// indexes.
package entry

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/srd-split/pkg/types"
)

// titleLike matches a capitalized name made of letters, digits, apostrophes,
// spaces, parentheses and hyphens.
var titleLike = regexp.MustCompile(`^[A-Z][A-Za-z0-9'’‘ ()\-]+$`)

// state is a position of the boundary scanner.
type state int

const (
	// seekingCandidate looks for a line that could name an entry.
	seekingCandidate state = iota
	// awaitingConfirmation looks past blank lines for the line that proves
	// the candidate starts an entry.
	awaitingConfirmation
	// inEntry is seekingCandidate with an entry open; the next confirmed
	// start closes it.
	inEntry
)

// Detector finds entry start lines. A start is a short title-like line that
// is not a structural heading, followed (after any blank lines) by either a
// repeat of itself or a size marker such as "Small Humanoid, Neutral Evil".
type Detector struct {
	minLen, maxLen int
	denied         map[string]bool
	size           *regexp.Regexp
}

// NewDetector builds a detector from the configured markers.
func NewDetector(m types.EntryMarkers) *Detector {
	sizes := make([]string, len(m.Sizes))
	for i, s := range m.Sizes {
		sizes[i] = regexp.QuoteMeta(s)
	}
	denied := make(map[string]bool, len(m.Denylist))
	for _, d := range m.Denylist {
		denied[d] = true
	}
	return &Detector{
		minLen: m.MinNameLen,
		maxLen: m.MaxNameLen,
		denied: denied,
		size:   regexp.MustCompile(`^(` + strings.Join(sizes, "|") + `)\b.*?,`),
	}
}

// Denied reports whether name is a structural heading that never starts an
// entry.
func (d *Detector) Denied(name string) bool {
	return d.denied[name]
}

// IsCandidate reports whether a trimmed line could name an entry.
func (d *Detector) IsCandidate(line string) bool {
	n := utf8.RuneCountInString(line)
	if n <= d.minLen || n >= d.maxLen {
		return false
	}
	return titleLike.MatchString(line) && !d.denied[line]
}

// Confirms reports whether next, the first non-blank line after candidate,
// proves that candidate starts an entry.
func (d *Detector) Confirms(candidate, next string) bool {
	return next == candidate || d.size.MatchString(next)
}

// Detect scans lines forward and returns the confirmed entries in order.
// Each entry's block runs from its start line to the next start (or the end
// of lines). Text before the first start belongs to no entry. Scanning
// resumes after a confirming line, so a repeated name is never taken as a
// second start.
func (d *Detector) Detect(lines []string) []types.Entry {
	var (
		entries   []types.Entry
		st        = seekingCandidate
		resume    state
		pos, cand int
		name      string
	)

	for pos < len(lines) {
		switch st {
		case seekingCandidate, inEntry:
			line := strings.TrimSpace(lines[pos])
			if skippable(line) || !d.IsCandidate(line) {
				pos++
				continue
			}
			resume, cand, name = st, pos, line
			st = awaitingConfirmation
			pos++

		case awaitingConfirmation:
			for pos < len(lines) && strings.TrimSpace(lines[pos]) == "" {
				pos++
			}
			if pos < len(lines) && d.Confirms(name, strings.TrimSpace(lines[pos])) {
				if n := len(entries); n > 0 {
					entries[n-1].EndLine = cand
				}
				entries = append(entries, types.Entry{Name: name, StartLine: cand, EndLine: len(lines)})
				st = inEntry
				pos++
				continue
			}
			st, pos = resume, cand+1
		}
	}

	for i := range entries {
		e := &entries[i]
		e.Slug = Slugify(e.Name)
		e.Letter = Letter(e.Name)
		e.Block = strings.TrimSpace(strings.Join(lines[e.StartLine:e.EndLine], "\n"))
	}
	return entries
}

func skippable(line string) bool {
	return line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "<!--")
}
