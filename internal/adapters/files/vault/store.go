package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
	"github.com/spf13/afero"
)

var errStopWalk = errors.New("stop walk")

// Store reads notes and attachments from a vault directory. Refs are paths
// relative to the vault root; absolute paths are read as-is.
type Store struct {
	fs   afero.Fs
	root string
}

var _ ports.FileStore = (*Store)(nil)

func NewStore(fsys afero.Fs, root string) *Store {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return &Store{fs: fsys, root: filepath.Clean(root)}
}

func (s *Store) ReadText(ctx context.Context, ref string) (string, error) {
	data, err := s.ReadBinary(ctx, ref)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (s *Store) ReadBinary(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.pathForRef(ref)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", ref, domain.ErrFileNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", ref, err)
	}

	return data, nil
}

// ResolveName finds a file by name. A name with directories is tried as a
// path first; otherwise the first file in lexical walk order whose base name
// matches wins. Hidden directories are skipped.
func (s *Store) ResolveName(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("resolve name: %w", domain.ErrFileNotFound)
	}

	if strings.ContainsRune(name, '/') {
		if path, err := s.pathForRef(name); err == nil {
			if info, statErr := s.fs.Stat(path); statErr == nil && !info.IsDir() {
				return filepath.ToSlash(filepath.Clean(name)), nil
			}
		}
	}

	base := filepath.Base(name)
	var found string
	err := afero.Walk(s.fs, s.root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			if path != s.root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() != base {
			return nil
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return relErr
		}
		found = filepath.ToSlash(rel)
		return errStopWalk
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("resolve %s: vault %s: %w", name, s.root, domain.ErrFileNotFound)
		}
		return "", fmt.Errorf("resolve %s: %w", name, err)
	}
	if found == "" {
		return "", fmt.Errorf("resolve %s: %w", name, domain.ErrFileNotFound)
	}

	return found, nil
}

func (s *Store) pathForRef(ref string) (string, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return "", errors.New("file reference is empty")
	}

	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed), nil
	}

	cleaned := filepath.Clean(filepath.FromSlash(trimmed))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file reference %q escapes the vault", ref)
	}

	return filepath.Join(s.root, cleaned), nil
}
