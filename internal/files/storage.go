// Package files implements the attachment store: a managed directory of
// binary files with collision-free stored names. The store owns file bytes;
// the relational layer only keeps references to stored names.
package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkuzmenko/wisdomvault/internal/common"
	"github.com/dkuzmenko/wisdomvault/internal/logging"
)

type Storage struct {
	dir string
	log logging.Logger
}

// NewStorage opens (creating if necessary) the managed directory.
func NewStorage(dir string, log logging.Logger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Storage{dir: dir, log: log}, nil
}

// Dir returns the managed directory path.
func (s *Storage) Dir() string {
	return s.dir
}

// Resolve maps a stored name to its absolute path. Pure join, no stat.
func (s *Storage) Resolve(storedName string) string {
	return filepath.Join(s.dir, storedName)
}

// Store copies the file at sourcePath into the managed directory under a
// collision-free name derived from originalName (base.ext, base-1.ext, ...)
// and returns the stored name. Creation uses O_EXCL, so the existence check
// is atomic with file creation and two concurrent stores cannot claim the
// same name.
//
// An unreadable source yields an empty placeholder instead of a failure:
// the reference and its metadata survive even when content capture does not.
func (s *Storage) Store(ctx context.Context, originalName, sourcePath string) (string, error) {
	base := filepath.Base(originalName)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "", fmt.Errorf("%w: empty file name", common.ErrValidation)
	}

	dst, storedName, err := s.createUnique(base)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	src, err := os.Open(sourcePath)
	if err != nil {
		s.log.Warn(ctx, "source unreadable, storing empty placeholder",
			"name", originalName, "source", sourcePath, "error", err)
		return storedName, nil
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(s.Resolve(storedName))
		return "", fmt.Errorf("copy %s: %w", originalName, err)
	}
	return storedName, nil
}

// createUnique claims the first free name derived from base.
func (s *Storage) createUnique(base string) (*os.File, string, error) {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	name := base
	for n := 1; ; n++ {
		f, err := os.OpenFile(s.Resolve(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
		if err == nil {
			return f, name, nil
		}
		if !os.IsExist(err) {
			return nil, "", fmt.Errorf("create %s: %w", name, err)
		}
		name = fmt.Sprintf("%s-%d%s", stem, n, ext)
	}
}

// Open opens a stored file for reading. Missing files map to ErrNotFound.
func (s *Storage) Open(storedName string) (*os.File, error) {
	f, err := os.Open(s.Resolve(storedName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", common.ErrNotFound, storedName)
		}
		return nil, fmt.Errorf("open %s: %w", storedName, err)
	}
	return f, nil
}

// Delete removes a stored file. Missing files map to ErrNotFound so cascade
// deletions can treat them as already deleted.
func (s *Storage) Delete(storedName string) error {
	if err := os.Remove(s.Resolve(storedName)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", common.ErrNotFound, storedName)
		}
		return fmt.Errorf("delete %s: %w", storedName, err)
	}
	return nil
}

// ImportDir copies every regular file from srcDir into the managed directory,
// merging by name: names that already exist locally are left untouched.
// It returns the stored names it actually copied, so a failed import can
// remove them again.
func (s *Storage) ImportDir(ctx context.Context, srcDir string) ([]string, error) {
	dirents, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", srcDir, err)
	}

	var copied []string
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		name := de.Name()

		dst, err := os.OpenFile(s.Resolve(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
		if err != nil {
			if os.IsExist(err) {
				s.log.Debug(ctx, "attachment already present, keeping local copy", "name", name)
				continue
			}
			return copied, fmt.Errorf("create %s: %w", name, err)
		}

		src, err := os.Open(filepath.Join(srcDir, name))
		if err != nil {
			dst.Close()
			_ = os.Remove(s.Resolve(name))
			return copied, fmt.Errorf("open %s: %w", name, err)
		}

		_, err = io.Copy(dst, src)
		src.Close()
		if cerr := dst.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(s.Resolve(name))
			return copied, fmt.Errorf("copy %s: %w", name, err)
		}
		copied = append(copied, name)
	}
	return copied, nil
}
