// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the srd-split CLI. It turns the SRD
// PDF into a tree of Markdown files: sections and topics first (extract),
// then one file per creature (split).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/srd-split/internal/layout"
	"github.com/pdiddy/srd-split/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// rootCmd is the base command for the srd-split CLI.
var rootCmd = &cobra.Command{
	Use:   "srd-split",
	Short: "Split the SRD PDF into Markdown sections and entries",
	Long: `srd-split converts a reference-document PDF into a tree of Markdown files.

extract dumps the PDF to text (reusing a cached dump when present), locates
the configured sections by their headings, and writes each section, topic,
or aggregate file with a README index. split reads the aggregate files and
writes one file per entry under letter directories. check verifies that
every README link resolves.

Section headings, topic headings, and entry markers come from a layout file;
the built-in layout matches the SRD 5.2.1.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./srd-split.yaml or ~/.config/srd-split/srd-split.yaml)")
	rootCmd.PersistentFlags().String("root", ".", "output root; layout paths are relative to it")
	rootCmd.PersistentFlags().String("layout", "", "layout YAML file (default: built-in SRD 5.2.1 layout)")
	rootCmd.PersistentFlags().String("backend", string(types.BackendPdftotext), "text extraction backend: pdftotext or native")

	for _, key := range []string{"root", "layout", "backend"} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("srd-split")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "srd-split"))
		}
	}

	viper.SetEnvPrefix("SRD_SPLIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// runConfig resolves the shared settings and the document layout.
func runConfig() (types.RunConfig, types.Layout, error) {
	var cfg types.RunConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, types.Layout{}, fmt.Errorf("reading config: %w", err)
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.LayoutFile == "" {
		return cfg, layout.Default(), nil
	}
	l, err := layout.Load(cfg.LayoutFile)
	return cfg, l, err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
