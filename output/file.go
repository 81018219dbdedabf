package output

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/knockscan/knock/scan"
)

// File persists a report to a path atomically: the rendering is written to
// a temp file in the destination directory and renamed into place, so a
// failed write never leaves a truncated report behind.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Write(report *scan.Report) error {
	dir := filepath.Dir(f.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &SinkWriteError{Dest: f.path, Err: errors.Wrap(err, "mkdir")}
		}
	}

	tmp, err := os.CreateTemp(dir, "knock-*.tmp")
	if err != nil {
		return &SinkWriteError{Dest: f.path, Err: errors.Wrap(err, "create temp file")}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(report.String()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &SinkWriteError{Dest: f.path, Err: errors.Wrap(err, "write temp file")}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &SinkWriteError{Dest: f.path, Err: errors.Wrap(err, "close temp file")}
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return &SinkWriteError{Dest: f.path, Err: errors.Wrap(err, "rename into place")}
	}
	return nil
}
