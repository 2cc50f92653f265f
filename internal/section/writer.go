// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package section

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/srd-split/internal/markdown"
	"github.com/pdiddy/srd-split/internal/sanitize"
	"github.com/pdiddy/srd-split/pkg/types"
)

// Writer writes located sections under Root. Progress lines go to Out.
type Writer struct {
	Root      string
	PDF       string
	Sanitizer *sanitize.Sanitizer
	Out       io.Writer
}

// WriteAll writes every section in order and stops at the first error.
func (wr *Writer) WriteAll(corpus string, specs []types.SectionSpec) ([]types.Section, error) {
	sections := make([]types.Section, 0, len(specs))
	for _, spec := range specs {
		sec, err := wr.WriteSection(corpus, spec)
		if err != nil {
			return sections, fmt.Errorf("section %s: %w", spec.Name, err)
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

// WriteSection locates one section, sanitizes it, and writes it according
// to its mode, followed by the directory's README.
func (wr *Writer) WriteSection(corpus string, spec types.SectionSpec) (types.Section, error) {
	span, err := Locate(corpus, spec.Start, spec.End)
	if err != nil {
		return types.Section{}, err
	}
	sec := types.Section{
		Spec:  spec,
		Span:  span,
		Pages: Pages(corpus, span),
		Raw:   corpus[span.Start:span.End],
	}
	if spec.KeepLines {
		sec.Text = wr.Sanitizer.SanitizeLines(sec.Raw)
	} else {
		sec.Text = wr.Sanitizer.Sanitize(sec.Raw)
	}

	switch spec.Mode {
	case types.ModeSingle:
		err = wr.writeSingle(sec)
	case types.ModeTopics:
		err = wr.writeTopics(sec)
	case types.ModeAggregate:
		err = wr.writeAggregate(sec)
	default:
		err = fmt.Errorf("unknown section mode %q", spec.Mode)
	}
	return sec, err
}

func (wr *Writer) writeSingle(sec types.Section) error {
	spec := sec.Spec
	comment := markdown.SourceComment(wr.PDF, spec.Title, sec.Pages)
	if err := wr.write(filepath.Join(spec.Dir, spec.File), markdown.Document(comment, spec.Title, sec.Text)); err != nil {
		return err
	}
	readme := markdown.Index(comment, spec.Title, spec.Description, []markdown.Link{
		{Title: spec.Title, Target: spec.File},
	})
	return wr.write(filepath.Join(spec.Dir, markdown.IndexFile), readme)
}

func (wr *Writer) writeTopics(sec types.Section) error {
	spec := sec.Spec
	topics, err := SplitTopics(spec.Title, sec.Text, spec.Topics)
	if err != nil {
		return err
	}

	comment := markdown.SourceComment(wr.PDF, spec.Title, types.PageRange{})
	links := make([]markdown.Link, 0, len(topics))
	for _, t := range topics {
		title := markdown.TitleFromSlug(t.Slug)
		file := t.Slug + ".md"
		if err := wr.write(filepath.Join(spec.Dir, file), markdown.Document(comment, title, t.Content)); err != nil {
			return err
		}
		links = append(links, markdown.Link{Title: title, Target: file})
	}
	return wr.write(filepath.Join(spec.Dir, markdown.IndexFile), markdown.Index(comment, spec.Title, spec.Description, links))
}

func (wr *Writer) writeAggregate(sec types.Section) error {
	spec := sec.Spec
	title := spec.Title + " (Aggregate)"
	comment := markdown.SourceComment(wr.PDF, spec.Title, sec.Pages)
	if err := wr.write(filepath.Join(spec.Dir, spec.File), markdown.Document(comment, title, sec.Text)); err != nil {
		return err
	}
	readme := markdown.Index(comment, spec.Title, spec.Description, []markdown.Link{
		{Title: title, Target: spec.File},
	})
	return wr.write(filepath.Join(spec.Dir, markdown.IndexFile), readme)
}

func (wr *Writer) write(rel, content string) error {
	path := filepath.Join(wr.Root, rel)
	if err := markdown.WriteFile(path, content); err != nil {
		return err
	}
	fmt.Fprintf(wr.Out, "wrote: %s\n", path)
	return nil
}
