// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assets relocates image files between the post-local asset
// directory and the site-wide image directory.
package assets

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrMissingDestination is returned when the directory an image should be
// moved into does not exist. No filesystem operation is performed.
var ErrMissingDestination = errors.New("destination directory does not exist")

// MoveError describes a move that did not happen.
type MoveError struct {
	Image string
	From  string
	To    string
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("moving %s from %s to %s: %v", e.Image, e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Mover moves image files on a filesystem.
type Mover struct {
	FS afero.Fs

	// DryRun checks the destination gate but never renames.
	DryRun bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewMover returns a Mover over fs.
func NewMover(fs afero.Fs) *Mover {
	return &Mover{FS: fs}
}

// Move relocates name from fromDir to toDir. It only acts when toDir exists;
// otherwise it returns a *MoveError wrapping ErrMissingDestination and
// leaves the filesystem untouched. A missing source file is reported as a
// *MoveError wrapping fs.ErrNotExist.
func (m *Mover) Move(name, fromDir, toDir string) error {
	ok, err := afero.DirExists(m.FS, toDir)
	if err != nil {
		return &MoveError{Image: name, From: fromDir, To: toDir, Err: err}
	}
	if !ok {
		return &MoveError{Image: name, From: fromDir, To: toDir, Err: ErrMissingDestination}
	}

	src := filepath.Join(fromDir, name)
	dst := filepath.Join(toDir, name)

	if _, err := m.FS.Stat(src); err != nil {
		return &MoveError{Image: name, From: fromDir, To: toDir, Err: err}
	}

	if m.DryRun {
		m.logger().Debug("would move image", "image", name, "from", fromDir, "to", toDir)
		return nil
	}

	if err := m.FS.Rename(src, dst); err != nil {
		return &MoveError{Image: name, From: fromDir, To: toDir, Err: err}
	}
	m.logger().Debug("moved image", "image", name, "from", fromDir, "to", toDir)
	return nil
}

func (m *Mover) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}
