// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package section locates named sections of the corpus by their headings,
// splits sections into topics, and writes them out as Markdown.
package section

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/srd-split/pkg/types"
)

// SectionNotFoundError reports a heading pattern with no match in the corpus.
type SectionNotFoundError struct {
	// Role is "start" or "end".
	Role    string
	Pattern string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("%s pattern not found: %s", e.Role, e.Pattern)
}

// NoTopicsFoundError reports that none of a section's topic headings matched.
type NoTopicsFoundError struct {
	Section string
}

func (e *NoTopicsFoundError) Error() string {
	return fmt.Sprintf("no %s headings found", e.Section)
}

// Locate returns the span from the first match of startPattern up to, but
// excluding, the first match of endPattern. Both patterns are matched in
// multiline mode, so ^ and $ anchor at line boundaries. An empty endPattern
// extends the span to the end of the corpus.
//
// The end match is searched over the whole corpus. When its first match
// precedes the start, the first end match after the start is used instead.
func Locate(corpus, startPattern, endPattern string) (types.Span, error) {
	startRe, err := compile(startPattern)
	if err != nil {
		return types.Span{}, err
	}
	loc := startRe.FindStringIndex(corpus)
	if loc == nil {
		return types.Span{}, &SectionNotFoundError{Role: "start", Pattern: startPattern}
	}
	span := types.Span{Start: loc[0], End: len(corpus)}
	if endPattern == "" {
		return span, nil
	}

	endRe, err := compile(endPattern)
	if err != nil {
		return types.Span{}, err
	}
	end := endRe.FindStringIndex(corpus)
	if end != nil && end[0] <= span.Start {
		end = nil
		for _, m := range endRe.FindAllStringIndex(corpus, -1) {
			if m[0] > span.Start {
				end = m
				break
			}
		}
	}
	if end == nil {
		return types.Span{}, &SectionNotFoundError{Role: "end", Pattern: endPattern}
	}
	span.End = end[0]
	return span, nil
}

// Pages returns the 1-based PDF pages a span covers, counting form feeds as
// page breaks. It returns the zero range when the corpus has no form feeds.
func Pages(corpus string, span types.Span) types.PageRange {
	if !strings.Contains(corpus, "\f") {
		return types.PageRange{}
	}
	body := corpus[span.Start:span.End]
	lead := len(body) - len(strings.TrimLeft(body, " \t\r\n\f"))
	first := strings.Count(corpus[:span.Start+lead], "\f") + 1
	last := strings.Count(strings.TrimRight(corpus[:span.End], " \t\r\n\f"), "\f") + 1
	if last < first {
		last = first
	}
	return types.PageRange{First: first, Last: last}
}

func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	return re, nil
}
