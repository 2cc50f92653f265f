// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textdump

import (
	"context"
	"fmt"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// NativeExtractor reads page text with a pure-Go PDF reader. It needs no
// external tool but does not preserve column layout as well as pdftotext.
type NativeExtractor struct{}

func (n *NativeExtractor) Name() string { return "native" }

// Extract writes the plain text of every page to outPath, separating pages
// with form feeds. Pages that fail to decode are left empty so page numbers
// stay aligned.
func (n *NativeExtractor) Extract(ctx context.Context, pdfPath, outPath string) error {
	f, reader, err := pdflib.Open(pdfPath)
	if err != nil {
		return fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 1 {
			buf.WriteString("\f")
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
	}

	if err := os.WriteFile(outPath, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("writing text dump: %w", err)
	}
	return nil
}
