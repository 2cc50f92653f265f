// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown renders the generated Markdown files: source comments,
// headings, and README indexes. It also parses generated files with goldmark
// to inspect headings and links.
package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/srd-split/pkg/types"
)

// IndexFile is the name of the index written into every generated directory.
const IndexFile = "README.md"

var titleCaser = cases.Title(language.English)

// SourceComment returns the HTML comment citing the source document, e.g.
// "<!-- Source: docs/srd/SRD.pdf (Rules Glossary, pp. 176–191) -->".
// A zero page range is omitted.
func SourceComment(pdf, label string, pages types.PageRange) string {
	switch {
	case pages.First == 0:
		return fmt.Sprintf("<!-- Source: %s (%s) -->", pdf, label)
	case pages.First == pages.Last:
		return fmt.Sprintf("<!-- Source: %s (%s, p. %d) -->", pdf, label, pages.First)
	default:
		return fmt.Sprintf("<!-- Source: %s (%s, pp. %d–%d) -->", pdf, label, pages.First, pages.Last)
	}
}

// TitleFromSlug turns "curses-and-magical-contagions" into
// "Curses And Magical Contagions".
func TitleFromSlug(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// Document assembles a generated file: source comment, optional level-1
// heading, and body. The result ends with exactly one newline.
func Document(comment, heading, body string) string {
	var b strings.Builder
	b.WriteString(comment)
	b.WriteString("\n\n")
	if heading != "" {
		fmt.Fprintf(&b, "# %s\n\n", heading)
	}
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.String()
}

// Link is one item of an index list.
type Link struct {
	Title  string
	Target string
}

// Index renders a README: optional source comment, heading, optional
// description, and a bulleted list of relative links in the given order.
func Index(comment, title, description string, links []Link) string {
	var b strings.Builder
	if comment != "" {
		b.WriteString(comment)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if description != "" {
		b.WriteString(strings.TrimSpace(description))
		b.WriteString("\n\n")
	}
	for _, l := range links {
		fmt.Fprintf(&b, "- [%s](%s)\n", l.Title, l.Target)
	}
	return b.String()
}

// StartsWithH1 reports whether the first block of src is a level-1 ATX or
// setext heading.
func StartsWithH1(src string) bool {
	doc := goldmark.New().Parser().Parse(text.NewReader([]byte(src)))
	first := doc.FirstChild()
	for first != nil && first.Kind() == ast.KindHTMLBlock {
		first = first.NextSibling()
	}
	h, ok := first.(*ast.Heading)
	return ok && h.Level == 1
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
