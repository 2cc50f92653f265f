// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/srd-split/internal/layout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [file]",
	Short: "Write the built-in layout to a YAML file for editing",
	Long: `Layout writes the built-in SRD 5.2.1 layout (section headings, topic
headings, footer patterns, entry markers) to a YAML file. Edit it for a
different document or edition and pass it back with --layout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "srd-layout.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := layout.Write(path, layout.Default()); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("Wrote " + path))
		return nil
	},
}

func init() {
	layoutCmd.Flags().Bool("force", false, "overwrite an existing file")
	rootCmd.AddCommand(layoutCmd)
}
