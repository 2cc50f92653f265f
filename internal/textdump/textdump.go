// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textdump produces the plain-text rendering of the source PDF that
// every later stage reads. The dump is cached on disk and reused on reruns.
package textdump

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/pdiddy/srd-split/pkg/types"
)

// Extractor renders a PDF as layout-preserving plain text. Pages are
// separated by form feeds.
type Extractor interface {
	// Name identifies the backend in progress output.
	Name() string

	// Extract reads the PDF at pdfPath and writes its text to outPath.
	Extract(ctx context.Context, pdfPath, outPath string) error
}

// ExtractionToolFailure reports that the external extraction tool exited
// with a non-zero status.
type ExtractionToolFailure struct {
	Tool     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExtractionToolFailure) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ExtractionToolFailure) Unwrap() error { return e.Err }

// NewExtractor returns the extractor for the given backend. An empty backend
// selects pdftotext.
func NewExtractor(backend types.ExtractionBackend) (Extractor, error) {
	switch backend {
	case types.BackendPdftotext, "":
		return NewPdftotext(), nil
	case types.BackendNative:
		return &NativeExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported extraction backend %q: use pdftotext or native", backend)
	}
}

// EnsureDump returns the text of the cached dump at cachePath, running the
// extractor first if the cache does not exist yet. Invalid UTF-8 in the dump
// is dropped.
func EnsureDump(ctx context.Context, ex Extractor, pdfPath, cachePath string, w io.Writer) (string, error) {
	if _, err := os.Stat(cachePath); err == nil {
		fmt.Fprintf(w, "skipped: %s (cached)\n", cachePath)
		if stale, _ := Stale(pdfPath, cachePath); stale {
			fmt.Fprintf(w, "warning: %s was extracted from a different %s; delete it to refresh\n", cachePath, pdfPath)
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
			return "", fmt.Errorf("creating cache directory: %w", err)
		}
		// Extract beside the cache and rename so an interrupted run never
		// leaves a truncated dump that later runs would reuse.
		partial := cachePath + ".partial"
		if err := ex.Extract(ctx, pdfPath, partial); err != nil {
			os.Remove(partial)
			return "", fmt.Errorf("extracting %s with %s: %w", pdfPath, ex.Name(), err)
		}
		if err := os.Rename(partial, cachePath); err != nil {
			return "", fmt.Errorf("saving text dump: %w", err)
		}
		if err := writeStamp(pdfPath, cachePath); err != nil {
			return "", err
		}
		fmt.Fprintf(w, "extracted: %s -> %s (%s)\n", pdfPath, cachePath, ex.Name())
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		return "", fmt.Errorf("reading text dump: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// stampPath is where the source fingerprint of a cached dump is kept.
func stampPath(cachePath string) string {
	return cachePath + ".xxh3"
}

func fingerprint(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxh3.Hash(data)), nil
}

func writeStamp(pdfPath, cachePath string) error {
	sum, err := fingerprint(pdfPath)
	if err != nil {
		// Unreadable source: leave the dump unstamped.
		return nil
	}
	if err := os.WriteFile(stampPath(cachePath), []byte(sum+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing cache stamp: %w", err)
	}
	return nil
}

// Stale reports whether the cached dump was extracted from a PDF whose
// content differs from the one at pdfPath. A dump without a stamp, or a
// PDF that cannot be read, is not considered stale.
func Stale(pdfPath, cachePath string) (bool, error) {
	want, err := os.ReadFile(stampPath(cachePath))
	if err != nil {
		return false, nil
	}
	got, err := fingerprint(pdfPath)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(want)) != got, nil
}
