// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// BrokenLink is an index link whose target does not exist.
type BrokenLink struct {
	// File is the index file containing the link.
	File   string
	Title  string
	Target string
}

func (b BrokenLink) String() string {
	return fmt.Sprintf("%s: [%s](%s)", b.File, b.Title, b.Target)
}

// CheckLinks walks root, parses every README.md, and returns the relative
// links that point at missing files. External and fragment links are
// ignored. A missing root is an error.
func CheckLinks(root string) ([]BrokenLink, error) {
	var broken []BrokenLink
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != IndexFile {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, l := range Links(src) {
			if isExternal(l.Target) {
				continue
			}
			target := filepath.Join(filepath.Dir(path), filepath.FromSlash(l.Target))
			if _, err := os.Stat(target); err != nil {
				broken = append(broken, BrokenLink{File: path, Title: l.Title, Target: l.Target})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return broken, nil
}

// Links returns every inline link in src in document order.
func Links(src []byte) []Link {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	var links []Link
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if l, ok := n.(*ast.Link); ok {
			links = append(links, Link{
				Title:  nodeText(l, src),
				Target: string(l.Destination),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return links
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			continue
		}
		b.WriteString(nodeText(c, src))
	}
	return b.String()
}

func isExternal(target string) bool {
	return target == "" || strings.HasPrefix(target, "#") || strings.Contains(target, "://")
}
