// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entry

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/srd-split/internal/markdown"
	"github.com/pdiddy/srd-split/pkg/types"
)

// SplitResult holds the outcome of splitting one aggregate file.
type SplitResult struct {
	Category string
	OutDir   string

	// Entries are the written entries, deduplicated by path, grouped by
	// letter and sorted by name within each letter.
	Entries map[string][]types.Entry

	// Removed lists denylisted leftover files deleted during cleanup.
	Removed []string

	// Skipped is set when the aggregate file does not exist.
	Skipped bool
}

// Written returns the number of entry files written.
func (r SplitResult) Written() int {
	n := 0
	for _, es := range r.Entries {
		n += len(es)
	}
	return n
}

// Letters returns the letter buckets in alphabetical order.
func (r SplitResult) Letters() []string {
	letters := make([]string, 0, len(r.Entries))
	for l := range r.Entries {
		letters = append(letters, l)
	}
	sort.Strings(letters)
	return letters
}

// Splitter writes the entries of aggregate files. Progress lines go to Out.
type Splitter struct {
	Detector *Detector

	// Denylist repeats the detector's structural headings; leftover entry
	// files named after them are removed.
	Denylist []string

	PDF string
	Out io.Writer
}

// NewSplitter returns a splitter for the given markers.
func NewSplitter(m types.EntryMarkers, pdf string, out io.Writer) *Splitter {
	return &Splitter{
		Detector: NewDetector(m),
		Denylist: m.Denylist,
		PDF:      pdf,
		Out:      out,
	}
}

// SplitAll splits every category's aggregate under root. A missing
// aggregate is reported and skipped; the categories are independent.
func (s *Splitter) SplitAll(root string, cats []types.CategorySpec) ([]SplitResult, error) {
	var results []SplitResult
	for _, cat := range cats {
		agg := filepath.Join(root, cat.Aggregate)
		if _, err := os.Stat(agg); errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(s.Out, "skipped: %s aggregate not found at %s; run extract first\n", cat.Title, agg)
			results = append(results, SplitResult{Category: cat.Title, OutDir: filepath.Dir(agg), Skipped: true})
			continue
		}
		res, err := s.SplitFile(cat, agg)
		if err != nil {
			return results, fmt.Errorf("splitting %s: %w", cat.Title, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// SplitFile writes one file per entry of the aggregate at aggPath into
// letter directories next to it, removes denylisted leftovers, and rewrites
// the letter indexes and the top-level index.
func (s *Splitter) SplitFile(cat types.CategorySpec, aggPath string) (SplitResult, error) {
	data, err := os.ReadFile(aggPath)
	if err != nil {
		return SplitResult{}, fmt.Errorf("reading aggregate: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	outDir := filepath.Dir(aggPath)
	res := SplitResult{
		Category: cat.Title,
		OutDir:   outDir,
		Entries:  make(map[string][]types.Entry),
	}

	comment := markdown.SourceComment(s.PDF, cat.Source, types.PageRange{})
	written := make(map[string]int) // path -> index in res.Entries[letter]
	for _, e := range s.Detector.Detect(strings.Split(text, "\n")) {
		if e.Block == "" || e.Slug == "" {
			continue
		}
		path := filepath.Join(outDir, e.Letter, e.Slug+".md")
		heading := e.Name
		if markdown.StartsWithH1(e.Block) {
			heading = ""
		}
		if err := markdown.WriteFile(path, markdown.Document(comment, heading, e.Block)); err != nil {
			return res, err
		}
		if i, ok := written[path]; ok {
			res.Entries[e.Letter][i] = e
			continue
		}
		written[path] = len(res.Entries[e.Letter])
		res.Entries[e.Letter] = append(res.Entries[e.Letter], e)
	}

	removed, err := s.removeDenied(outDir, written)
	if err != nil {
		return res, err
	}
	res.Removed = removed

	for _, letter := range res.Letters() {
		entries := res.Entries[letter]
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Name != entries[j].Name {
				return entries[i].Name < entries[j].Name
			}
			return entries[i].Slug < entries[j].Slug
		})
		if err := s.writeLetterIndex(outDir, cat, comment, letter, entries); err != nil {
			return res, err
		}
	}
	if err := s.writeTopIndex(outDir, aggPath, cat, comment, res.Letters()); err != nil {
		return res, err
	}

	fmt.Fprintf(s.Out, "split: %s: %d files written under %s\n", cat.Title, res.Written(), outDir)
	return res, nil
}

// removeDenied deletes entry files whose slug is a denylisted heading,
// left over from runs with an older denylist.
func (s *Splitter) removeDenied(outDir string, written map[string]int) ([]string, error) {
	var removed []string
	for _, name := range s.Denylist {
		path := filepath.Join(outDir, Letter(name), Slugify(name)+".md")
		if _, ok := written[path]; ok {
			continue
		}
		err := os.Remove(path)
		switch {
		case err == nil:
			fmt.Fprintf(s.Out, "removed: %s\n", path)
			removed = append(removed, path)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return removed, fmt.Errorf("removing %s: %w", path, err)
		}
	}
	return removed, nil
}

func (s *Splitter) writeLetterIndex(outDir string, cat types.CategorySpec, comment, letter string, entries []types.Entry) error {
	links := make([]markdown.Link, len(entries))
	for i, e := range entries {
		links[i] = markdown.Link{Title: e.Name, Target: e.Slug + ".md"}
	}
	title := fmt.Sprintf("%s: %s", cat.Title, letter)
	path := filepath.Join(outDir, letter, markdown.IndexFile)
	return markdown.WriteFile(path, markdown.Index(comment, title, "", links))
}

func (s *Splitter) writeTopIndex(outDir, aggPath string, cat types.CategorySpec, comment string, letters []string) error {
	links := make([]markdown.Link, 0, len(letters)+1)
	for _, l := range letters {
		links = append(links, markdown.Link{Title: l, Target: l + "/" + markdown.IndexFile})
	}
	links = append(links, markdown.Link{
		Title:  cat.Source + " (Aggregate)",
		Target: filepath.Base(aggPath),
	})
	const desc = "One file per entry, grouped by the first letter of its name."
	path := filepath.Join(outDir, markdown.IndexFile)
	return markdown.WriteFile(path, markdown.Index(comment, cat.Title, desc, links))
}
