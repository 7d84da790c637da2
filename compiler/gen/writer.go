package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// FileWriter renders Jennifer files, formats them with goimports and
// writes them to the output directory. Files whose content did not change
// are left untouched, so their modification times stay stable.
type FileWriter struct {
	outDir string

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks generation performance
type WriterMetrics struct {
	FilesWritten   int
	FilesUnchanged int
	TotalBytes     int64
	RenderTime     time.Duration
	FormatTime     time.Duration
	WriteTime      time.Duration
}

// NewFileWriter creates a new writer for the given directory.
func NewFileWriter(outDir string) *FileWriter {
	return &FileWriter{outDir: outDir}
}

// Metrics returns a copy of the generation metrics.
func (w *FileWriter) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Write renders f into name, relative to the output directory. It reports
// whether the file on disk was changed.
func (w *FileWriter) Write(f *jen.File, name string) (bool, error) {
	// 1. Render
	start := time.Now()
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return false, NewGenerationError("render", name, "", err)
	}
	rendered := time.Now()

	// 2. Format using goimports
	fullPath := filepath.Join(w.outDir, name)
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		// Write unformatted file for debugging (errors intentionally ignored as we're already in error state)
		debugPath := fullPath + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return false, NewGenerationError("format", name, fmt.Sprintf("unformatted written to %s", debugPath), err)
	}
	formattedAt := time.Now()

	// 3. Skip unchanged files
	if old, err := os.ReadFile(fullPath); err == nil && bytes.Equal(old, formatted) {
		w.record(false, 0, rendered.Sub(start), formattedAt.Sub(rendered), 0)
		return false, nil
	}

	// 4. Write file
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return false, NewGenerationError("write", name, "create directory", err)
	}
	if err := writeFileAtomic(fullPath, formatted); err != nil {
		return false, NewGenerationError("write", name, "", err)
	}
	w.record(true, len(formatted), rendered.Sub(start), formattedAt.Sub(rendered), time.Since(formattedAt))
	return true, nil
}

// writeFileAtomic writes data to a temporary file in the directory of
// path and renames it over path, so readers never see a partial file.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (w *FileWriter) record(written bool, n int, render, format, write time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if written {
		w.metrics.FilesWritten++
		w.metrics.TotalBytes += int64(n)
	} else {
		w.metrics.FilesUnchanged++
	}
	w.metrics.RenderTime += render
	w.metrics.FormatTime += format
	w.metrics.WriteTime += write
}
