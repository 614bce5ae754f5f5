package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/absfs/absfs"
	"github.com/google/uuid"
)

// Filesystem is the subset of absfs.FileSystem the store needs. Any absfs
// filesystem satisfies it, which lets tests run the store against memfs.
type Filesystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (absfs.File, error)
	Stat(name string) (os.FileInfo, error)
	MkdirAll(name string, perm os.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

// OSFilesystem returns a Filesystem backed by the host operating system.
func OSFilesystem() Filesystem {
	return osFilesystem{}
}

type osFilesystem struct{}

func (osFilesystem) OpenFile(name string, flag int, perm os.FileMode) (absfs.File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (osFilesystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (osFilesystem) MkdirAll(name string, perm os.FileMode) error {
	return os.MkdirAll(name, perm)
}

func (osFilesystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (osFilesystem) Remove(name string) error {
	return os.Remove(name)
}

// readFile reads the whole named file.
func readFile(fsys Filesystem, name string) ([]byte, error) {
	f, err := fsys.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// writeFileExclusive creates name with data and fails if it already exists.
func writeFileExclusive(fsys Filesystem, name string, data []byte, perm os.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(name), 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(name), err)
	}

	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write to %s: %w", name, err)
	}

	return f.Close()
}

// replaceFile writes data to a sibling temp file and renames it over name, so
// readers see either the old content or the new content and never a partial write.
func replaceFile(fsys Filesystem, name string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(name)
	if err := fsys.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmpPath := name + ".tmp-" + uuid.NewString()
	f, err := fsys.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to write to %s: %w", tmpPath, err)
	}

	if err := f.Close(); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}

	if err := fsys.Rename(tmpPath, name); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}
