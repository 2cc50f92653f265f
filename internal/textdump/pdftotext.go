// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textdump

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	// Run executes the command and returns its captured stderr.
	Run(ctx context.Context, name string, args ...string) (stderr []byte, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.Bytes(), err
}

// PdftotextExtractor runs poppler's pdftotext in layout mode.
type PdftotextExtractor struct {
	exec executor
}

// NewPdftotext returns an extractor that runs pdftotext from PATH.
func NewPdftotext() *PdftotextExtractor {
	return &PdftotextExtractor{exec: &osExecutor{}}
}

func (p *PdftotextExtractor) Name() string { return binPdftotext }

// Extract runs "pdftotext -layout pdfPath outPath". A non-zero exit is
// reported as *ExtractionToolFailure.
func (p *PdftotextExtractor) Extract(ctx context.Context, pdfPath, outPath string) error {
	if _, err := p.exec.LookPath(binPdftotext); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", binPdftotext, err)
	}

	stderr, err := p.exec.Run(ctx, binPdftotext, "-layout", pdfPath, outPath)
	if err == nil {
		return nil
	}
	// *exec.ExitError carries the status.
	var exited interface{ ExitCode() int }
	if errors.As(err, &exited) {
		return &ExtractionToolFailure{
			Tool:     binPdftotext,
			ExitCode: exited.ExitCode(),
			Stderr:   string(stderr),
			Err:      err,
		}
	}
	return fmt.Errorf("running %s: %w", binPdftotext, err)
}
