// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run extract and then split",
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

		results, err := split(cfg, l, os.Stdout)
		if err != nil {
			return err
		}
		printSplitSummary(results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
