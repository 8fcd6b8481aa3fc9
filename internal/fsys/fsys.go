// Package fsys provides the filesystem capability consumed by the
// reconciler. The capability is an interface so tests and embedders can
// inject failures; OS is the production implementation.
package fsys

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrInit signals that the filesystem capability itself could not be
// constructed, typically a host credential or configuration problem.
var ErrInit = errors.New("filesystem capability unavailable")

// Capability is the set of filesystem operations the reconciler needs.
// Predicates return plain booleans; mutating operations return an error
// carrying the cause.
type Capability interface {
	Exists(path string) bool
	IsDir(path string) bool
	MkdirAll(path string) error
	Copy(src, dst string) error
	Remove(path string) error
	IsWritable(path string) bool
}

// OS implements Capability against the local filesystem.
type OS struct{}

// NewOS returns the OS-backed capability.
func NewOS() *OS {
	return &OS{}
}

// Exists reports whether path exists.
func (*OS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func (*OS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// MkdirAll creates path and any missing parents.
func (*OS) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// Copy copies src to dst, overwriting any existing file. The content is
// written to a temp file in dst's directory and renamed into place, so a
// reader never observes a half-written destination.
func (*OS) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source %s: %w", src, err)
	}

	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, ".dropin-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", dst, err)
	}

	success = true
	return nil
}

// Remove deletes the file at path.
func (*OS) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// IsWritable reports whether path can be written to. Directories are
// probed with a create-and-remove of a temp file; files with a
// write-only open. A path that does not exist is not writable — callers
// decide whether absence is acceptable.
func (*OS) IsWritable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	if info.IsDir() {
		probe, err := os.CreateTemp(path, ".dropin-probe-*")
		if err != nil {
			return false
		}
		name := probe.Name()
		_ = probe.Close()
		_ = os.Remove(name)
		return true
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
