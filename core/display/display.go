// Package display delivers rendered reports: to a stream, a file, or a browser.
package display

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	apperrors "proposal-pricing/internal/errors"
	"proposal-pricing/internal/logging"
)

// Display shows a rendered report. name carries the file extension that
// matches the content (for example "proposal.html").
type Display interface {
	Show(ctx context.Context, name string, content []byte) error
}

// Writer copies reports to an io.Writer such as stdout.
type Writer struct {
	w io.Writer
}

// NewWriter creates a stream display.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (d *Writer) Show(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := d.w.Write(content); err != nil {
		return apperrors.Display("failed to write report", err)
	}
	return nil
}

// File writes reports to a fixed path.
type File struct {
	Path string
}

// NewFile creates a file display.
func NewFile(path string) *File {
	return &File{Path: path}
}

func (d *File) Show(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(d.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.Display("failed to create output directory", err).WithContext("path", d.Path)
		}
	}
	if err := os.WriteFile(d.Path, content, 0644); err != nil {
		return apperrors.Display("failed to write report", err).WithContext("path", d.Path)
	}
	logging.Debug("Report written", zap.String("path", d.Path), zap.Int("bytes", len(content)))
	return nil
}

// Browser writes reports to a disposable temporary file and opens it in the
// system viewer.
type Browser struct {
	// Dir is where temporary files are created; empty means os.TempDir
	Dir string

	// Open launches the viewer for a file path
	Open func(path string) error
}

// NewBrowser creates a display that opens reports with the default browser.
func NewBrowser() *Browser {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Browser{Open: browser.OpenFile}
}

func (d *Browser) Show(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ext := filepath.Ext(name)
	prefix := strings.TrimSuffix(filepath.Base(name), ext) + "-*" + ext
	f, err := os.CreateTemp(d.Dir, prefix)
	if err != nil {
		return apperrors.Display("failed to create temporary report", err)
	}
	path := f.Name()

	if _, err := f.Write(content); err != nil {
		f.Close()
		return apperrors.Display("failed to write temporary report", err).WithContext("path", path)
	}
	if err := f.Close(); err != nil {
		return apperrors.Display("failed to write temporary report", err).WithContext("path", path)
	}

	logging.Debug("Opening report", zap.String("path", path))
	if err := d.Open(path); err != nil {
		return apperrors.Display("failed to open report viewer", err).WithContext("path", path)
	}
	return nil
}
