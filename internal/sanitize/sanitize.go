// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sanitize cleans layout-preserving PDF text dumps for embedding in
// Markdown: it drops running footers, collapses blank runs, repairs
// hyphenated line breaks, and reflows soft-wrapped prose.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	blankRun   = regexp.MustCompile(`\n{3,}`)
	hyphenWrap = regexp.MustCompile(`([A-Za-z])-\n[ \t]*([a-z])`)
	numbered   = regexp.MustCompile(`^\d+\.`)
)

// Sanitizer applies a fixed sequence of cleanups. Build one with New.
type Sanitizer struct {
	footers []*regexp.Regexp
}

// New compiles the footer patterns. Patterns are matched per line
// (multiline mode).
func New(footerPatterns []string) (*Sanitizer, error) {
	s := &Sanitizer{}
	for _, p := range footerPatterns {
		re, err := regexp.Compile("(?m)" + p)
		if err != nil {
			return nil, fmt.Errorf("compiling footer pattern %q: %w", p, err)
		}
		s.footers = append(s.footers, re)
	}
	return s, nil
}

// Sanitize returns text cleaned for Markdown. The result never holds more
// than one consecutive blank line and ends with exactly one newline.
func (s *Sanitizer) Sanitize(text string) string {
	return strings.TrimSpace(reflow(s.clean(text))) + "\n"
}

// SanitizeLines is Sanitize without reflow: line breaks other than
// hyphenated word splits are kept.
func (s *Sanitizer) SanitizeLines(text string) string {
	return strings.TrimSpace(s.clean(text)) + "\n"
}

func (s *Sanitizer) clean(text string) string {
	text = normalize(text)
	for _, re := range s.footers {
		text = re.ReplaceAllString(text, "")
	}
	text = blankRun.ReplaceAllString(text, "\n\n")
	return hyphenWrap.ReplaceAllString(text, "$1$2")
}

// normalize unifies line endings, turns page breaks into newlines, and
// strips trailing blanks so whitespace-only lines count as empty.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")
	text = norm.NFC.String(text)

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}

// reflow joins soft-wrapped lines with a single space. A line keeps its
// newline when the next line is blank, a heading, a list item, or indented
// by two or more whitespace characters.
func reflow(text string) string {
	lines := strings.Split(text, "\n")
	var b strings.Builder
	b.Grow(len(text))
	for i, l := range lines {
		b.WriteString(l)
		if i == len(lines)-1 {
			break
		}
		if l != "" && continues(lines[i+1]) {
			b.WriteByte(' ')
		} else {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func continues(next string) bool {
	if next == "" {
		return false
	}
	switch next[0] {
	case '#', '-', '*':
		return false
	}
	if numbered.MatchString(next) {
		return false
	}
	if len(next) >= 2 && isSpace(next[0]) && isSpace(next[1]) {
		return false
	}
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
