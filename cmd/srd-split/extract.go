// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/srd-split/internal/sanitize"
	"github.com/pdiddy/srd-split/internal/section"
	"github.com/pdiddy/srd-split/internal/textdump"
	"github.com/pdiddy/srd-split/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Dump the PDF to text and write sections as Markdown",
	Long: `Extract renders the source PDF as layout-preserving text (skipped when
the cached dump exists), locates each configured section, and writes it as a
single file, one file per topic, or an aggregate file for split. Every output
directory receives a README index.

A missing section heading aborts the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := runConfig()
		if err != nil {
			return err
		}
		sections, err := extract(cmd.Context(), cfg, l, os.Stdout)
		if err != nil {
			return err
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("Extracted %d sections", len(sections))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func extract(ctx context.Context, cfg types.RunConfig, l types.Layout, w io.Writer) ([]types.Section, error) {
	ex, err := textdump.NewExtractor(cfg.Backend)
	if err != nil {
		return nil, err
	}
	pdf := filepath.Join(cfg.Root, l.Source.PDF)
	cache := filepath.Join(cfg.Root, l.Source.Cache)
	corpus, err := textdump.EnsureDump(ctx, ex, pdf, cache, w)
	if err != nil {
		return nil, err
	}

	s, err := sanitize.New(l.Sanitize.FooterPatterns)
	if err != nil {
		return nil, err
	}
	wr := &section.Writer{Root: cfg.Root, PDF: l.Source.PDF, Sanitizer: s, Out: w}
	return wr.WriteAll(corpus, l.Sections)
}
