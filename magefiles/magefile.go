//go:build mage

// Package main contains Mage build targets for srd-split developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "srd-split"
	cmdPkg  = "./cmd/srd-split"
)

var binPath = filepath.Join(binDir, binName)

// srdDirs lists the output directories the built-in layout writes to.
var srdDirs = []string{
	"docs/srd/.tmp",
	"docs/srd/07-monsters/a-z",
	"docs/srd/08-animals/a-z",
	"docs/srd/09-rules-glossary",
	"docs/srd/10-gameplay-toolbox",
}

// Init creates the docs/srd directory structure. Place the SRD PDF in
// docs/srd before running Extract.
func Init() error {
	for _, dir := range srdDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("SRD directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := "-X main.version=" + strings.TrimSpace(version)
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", binPath)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Extract dumps the SRD PDF and writes the section files.
func Extract() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "extract")
}

// Split writes one file per monster and animal.
func Split() error {
	mg.Deps(Extract)
	return sh.RunV(binPath, "split")
}

// Check verifies every generated README link.
func Check() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "check")
}

// Clean removes the binary and the cached text dump, forcing a fresh
// extraction on the next run.
func Clean() error {
	if err := sh.Rm(binDir); err != nil {
		return err
	}
	return sh.Rm("docs/srd/.tmp")
}

// Stats prints project metrics: Go production/test LOC and generated
// Markdown file counts.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	mdFiles, err := countMarkdownFiles("docs/srd")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Markdown files (docs/srd):      %d\n", mdFiles)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go
// files, skipping the reference pack. If testOnly is true, count only
// _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") || d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}

// countMarkdownFiles counts .md files under root. A missing root counts as
// zero.
func countMarkdownFiles(root string) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".md" {
			total++
		}
		return nil
	})
	return total, err
}
