// Package storage reads and writes the plain UTF-8 text documents the editor
// works on, and watches them for changes made by other programs.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"mindnote/internal/logger"
)

// ErrNotFound is returned when the requested document does not exist.
var ErrNotFound = errors.New("file not found")

// Error records the operation and path behind a failed file access.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// TextFiles stores documents directly on the local filesystem.
type TextFiles struct {
	logger logger.Logger
}

func NewTextFiles(log logger.Logger) *TextFiles {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &TextFiles{logger: log}
}

// ReadText returns the whole file as a string. Invalid UTF-8 sequences are
// kept as-is.
func (t *TextFiles) ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Op: "open", Path: path, Err: fmt.Errorf("%w: %w", ErrNotFound, err)}
		}
		return "", &Error{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", &Error{Op: "stat", Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &Error{Op: "open", Path: path, Err: errors.New("is a directory")}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &Error{Op: "read", Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		t.logger.Warning("TextFiles", "file is not valid UTF-8", map[string]interface{}{
			"path": path,
		})
	}

	t.logger.Debug("TextFiles", "file read", map[string]interface{}{
		"path":  path,
		"bytes": len(data),
	})
	return string(data), nil
}

// WriteText replaces the file contents atomically: the text is written to a
// temporary file in the same directory which is then renamed over path. A
// symlinked path is resolved first so the link keeps pointing at the saved
// file.
func (t *TextFiles) WriteText(path, content string) (err error) {
	target := path
	if resolved, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		target = resolved
	}

	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return &Error{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		return &Error{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &Error{Op: "sync", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &Error{Op: "close", Path: path, Err: err}
	}

	mode := fs.FileMode(0o644)
	if info, statErr := os.Stat(target); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return &Error{Op: "chmod", Path: path, Err: err}
	}
	if err = os.Rename(tmpName, target); err != nil {
		return &Error{Op: "rename", Path: path, Err: err}
	}

	t.logger.Debug("TextFiles", "file written", map[string]interface{}{
		"path":   path,
		"target": target,
		"bytes":  len(content),
	})
	return nil
}
