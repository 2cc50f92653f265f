// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textdump

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/srd-split/pkg/types"
)

// exitError mimics *exec.ExitError.
type exitError struct{ code int }

func (e *exitError) Error() string { return "exit status" }
func (e *exitError) ExitCode() int { return e.code }

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	onPath bool
	runFn  func(name string, args []string) ([]byte, error)
	calls  [][]string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.onPath {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, append([]string{name}, args...))
	if m.runFn != nil {
		return m.runFn(name, args)
	}
	return nil, nil
}

// countingExtractor writes canned text and counts invocations.
type countingExtractor struct {
	text  string
	err   error
	calls int
}

func (c *countingExtractor) Name() string { return "fake" }

func (c *countingExtractor) Extract(_ context.Context, _, outPath string) error {
	c.calls++
	if c.err != nil {
		return c.err
	}
	return os.WriteFile(outPath, []byte(c.text), 0o644)
}

func TestPdftotextExtract(t *testing.T) {
	tests := []struct {
		name      string
		exec      *mockExecutor
		wantErr   bool
		wantTool  bool
		wantCode  int
		errSubstr string
	}{
		{
			name: "runs pdftotext in layout mode",
			exec: &mockExecutor{onPath: true},
		},
		{
			name:      "missing binary",
			exec:      &mockExecutor{onPath: false},
			wantErr:   true,
			errSubstr: "not found on PATH",
		},
		{
			name: "non-zero exit becomes tool failure",
			exec: &mockExecutor{
				onPath: true,
				runFn: func(string, []string) ([]byte, error) {
					return []byte("Syntax Error: Couldn't read xref table\n"), &exitError{code: 1}
				},
			},
			wantErr:   true,
			wantTool:  true,
			wantCode:  1,
			errSubstr: "xref table",
		},
		{
			name: "start failure is a plain error",
			exec: &mockExecutor{
				onPath: true,
				runFn: func(string, []string) ([]byte, error) {
					return nil, errors.New("permission denied")
				},
			},
			wantErr:   true,
			errSubstr: "permission denied",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PdftotextExtractor{exec: tt.exec}
			err := p.Extract(context.Background(), "in.pdf", "out.txt")
			if !tt.wantErr {
				require.NoError(t, err)
				require.Len(t, tt.exec.calls, 1)
				assert.Equal(t, []string{"pdftotext", "-layout", "in.pdf", "out.txt"}, tt.exec.calls[0])
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)

			var failure *ExtractionToolFailure
			assert.Equal(t, tt.wantTool, errors.As(err, &failure))
			if tt.wantTool {
				assert.Equal(t, tt.wantCode, failure.ExitCode)
				assert.Equal(t, "pdftotext", failure.Tool)
			}
		})
	}
}

func TestEnsureDump(t *testing.T) {
	t.Run("extracts when cache is missing", func(t *testing.T) {
		dir := t.TempDir()
		cache := filepath.Join(dir, ".tmp", "all.txt")
		ex := &countingExtractor{text: "Rules Glossary\n"}
		var log bytes.Buffer

		text, err := EnsureDump(context.Background(), ex, "doc.pdf", cache, &log)
		require.NoError(t, err)
		assert.Equal(t, "Rules Glossary\n", text)
		assert.Equal(t, 1, ex.calls)
		assert.Contains(t, log.String(), "extracted:")
		assert.FileExists(t, cache)
	})

	t.Run("reuses existing cache", func(t *testing.T) {
		dir := t.TempDir()
		cache := filepath.Join(dir, "all.txt")
		require.NoError(t, os.WriteFile(cache, []byte("cached text"), 0o644))
		ex := &countingExtractor{text: "fresh text"}
		var log bytes.Buffer

		text, err := EnsureDump(context.Background(), ex, "doc.pdf", cache, &log)
		require.NoError(t, err)
		assert.Equal(t, "cached text", text)
		assert.Zero(t, ex.calls)
		assert.Contains(t, log.String(), "skipped:")
	})

	t.Run("drops invalid utf-8", func(t *testing.T) {
		dir := t.TempDir()
		cache := filepath.Join(dir, "all.txt")
		require.NoError(t, os.WriteFile(cache, []byte("Goblin\xff\xfe Boss"), 0o644))

		text, err := EnsureDump(context.Background(), &countingExtractor{}, "doc.pdf", cache, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "Goblin Boss", text)
	})

	t.Run("propagates tool failure", func(t *testing.T) {
		dir := t.TempDir()
		cache := filepath.Join(dir, "all.txt")
		ex := &countingExtractor{err: &ExtractionToolFailure{Tool: "pdftotext", ExitCode: 99}}

		_, err := EnsureDump(context.Background(), ex, "doc.pdf", cache, &bytes.Buffer{})
		require.Error(t, err)
		var failure *ExtractionToolFailure
		require.True(t, errors.As(err, &failure))
		assert.Equal(t, 99, failure.ExitCode)
		assert.NoFileExists(t, cache)
		assert.NoFileExists(t, cache+".partial")
	})
}

func TestEnsureDump_Stamp(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "doc.pdf")
	cache := filepath.Join(dir, ".tmp", "all.txt")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.7 original"), 0o644))

	ex := &countingExtractor{text: "Rules Glossary\n"}
	_, err := EnsureDump(context.Background(), ex, pdf, cache, &bytes.Buffer{})
	require.NoError(t, err)
	assert.FileExists(t, cache+".xxh3")

	stale, err := Stale(pdf, cache)
	require.NoError(t, err)
	assert.False(t, stale)

	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.7 revised"), 0o644))
	stale, err = Stale(pdf, cache)
	require.NoError(t, err)
	assert.True(t, stale)

	var log bytes.Buffer
	text, err := EnsureDump(context.Background(), ex, pdf, cache, &log)
	require.NoError(t, err)
	assert.Equal(t, "Rules Glossary\n", text, "a stale cache is still reused")
	assert.Equal(t, 1, ex.calls)
	assert.Contains(t, log.String(), "warning:")
}

func TestStale_NoStamp(t *testing.T) {
	dir := t.TempDir()
	stale, err := Stale(filepath.Join(dir, "doc.pdf"), filepath.Join(dir, "all.txt"))
	require.NoError(t, err)
	assert.False(t, stale)
}

func TestNewExtractor(t *testing.T) {
	tests := []struct {
		backend  types.ExtractionBackend
		wantName string
		wantErr  bool
	}{
		{backend: "", wantName: "pdftotext"},
		{backend: types.BackendPdftotext, wantName: "pdftotext"},
		{backend: types.BackendNative, wantName: "native"},
		{backend: "grobid", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			ex, err := NewExtractor(tt.backend)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), "unsupported"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, ex.Name())
		})
	}
}

func TestExtractionToolFailure_Error(t *testing.T) {
	err := &ExtractionToolFailure{Tool: "pdftotext", ExitCode: 3, Stderr: "  bad file \n"}
	assert.Equal(t, "pdftotext exited with status 3: bad file", err.Error())

	bare := &ExtractionToolFailure{Tool: "pdftotext", ExitCode: 1}
	assert.Equal(t, "pdftotext exited with status 1", bare.Error())
}
