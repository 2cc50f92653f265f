// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/srd-split/internal/entry"
	"github.com/pdiddy/srd-split/pkg/types"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split aggregate files into one Markdown file per entry",
	Long: `Split reads the aggregate files written by extract, detects entry
boundaries, and writes each entry to <dir>/<LETTER>/<slug>.md next to its
aggregate. Letter indexes are rewritten on every run; leftover files named
after structural headings are removed. Missing aggregates are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := runConfig()
		if err != nil {
			return err
		}
		results, err := split(cfg, l, os.Stdout)
		if err != nil {
			return err
		}
		printSplitSummary(results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func split(cfg types.RunConfig, l types.Layout, w io.Writer) ([]entry.SplitResult, error) {
	s := entry.NewSplitter(l.Markers, l.Source.PDF, w)
	return s.SplitAll(cfg.Root, l.Categories)
}

func printSplitSummary(results []entry.SplitResult) {
	for _, r := range results {
		if r.Skipped {
			fmt.Println(warnStyle.Render(fmt.Sprintf("%s: aggregate not found; run extract first", r.Category)))
			continue
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("%s: %d entries in %d letters under %s",
			r.Category, r.Written(), len(r.Letters()), r.OutDir)))
	}
}
