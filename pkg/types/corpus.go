// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Span is a half-open byte range [Start, End) of the corpus.
type Span struct {
	Start int
	End   int
}

// PageRange is an inclusive range of 1-based PDF page numbers.
type PageRange struct {
	First int
	Last  int
}

// Section is a located top-level region of the corpus.
type Section struct {
	Spec  SectionSpec
	Span  Span
	Pages PageRange

	// Raw is the corpus text inside Span; Text is Raw after sanitation.
	Raw  string
	Text string
}

// Topic is a sub-region of a section, bounded by consecutive topic headings.
type Topic struct {
	Slug string

	// Offset is the start of the heading match within the section text.
	Offset int

	// Content is the trimmed text from the heading to the next heading.
	Content string
}

// Entry is one structured record, such as a creature, within an aggregate
// file.
type Entry struct {
	Name   string
	Slug   string
	Letter string

	// StartLine and EndLine bound the block as [StartLine, EndLine) line
	// indexes of the aggregate file.
	StartLine int
	EndLine   int

	Block string
}
