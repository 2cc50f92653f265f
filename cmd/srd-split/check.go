// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/srd-split/internal/markdown"
	"github.com/pdiddy/srd-split/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every README link points at an existing file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := runConfig()
		if err != nil {
			return err
		}

		var broken []markdown.BrokenLink
		for _, dir := range outputDirs(cfg.Root, l) {
			found, err := markdown.CheckLinks(dir)
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(os.Stdout, "skipped: %s (not generated)\n", dir)
				continue
			}
			if err != nil {
				return err
			}
			broken = append(broken, found...)
		}

		for _, b := range broken {
			fmt.Println(warnStyle.Render("broken: " + b.String()))
		}
		if len(broken) > 0 {
			return fmt.Errorf("%d broken link(s)", len(broken))
		}
		fmt.Println(okStyle.Render("All index links resolve"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// outputDirs lists the distinct directories the layout writes to, in
// layout order.
func outputDirs(root string, l types.Layout) []string {
	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		dir = filepath.Join(root, dir)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	for _, s := range l.Sections {
		add(s.Dir)
	}
	for _, c := range l.Categories {
		add(filepath.Dir(c.Aggregate))
	}
	return dirs
}
