package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/locfang/locfang/pkg/ignore"
)

// ErrNotDirectory is returned when the scan root does not exist or is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// WorktreeProvider serves files from a directory tree on disk.
type WorktreeProvider struct {
	root    string
	ignorer *ignore.Matcher
}

// NewWorktreeProvider creates a provider rooted at dir. The ignore matcher
// prunes matching directories before they are descended into; a nil matcher
// disables pruning.
func NewWorktreeProvider(dir string, ignorer *ignore.Matcher) (*WorktreeProvider, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scan root %q: %w", dir, ErrNotDirectory)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %q: %w", dir, ErrNotDirectory)
	}

	return &WorktreeProvider{root: dir, ignorer: ignorer}, nil
}

// Root returns the directory the provider was rooted at.
func (p *WorktreeProvider) Root() string {
	return p.root
}

// ListFiles walks the tree and returns the relative paths of every regular
// file. Ignored directories are pruned without descending, so a matching
// `node_modules/` costs one check rather than a full subtree walk. Symlinks
// are not followed.
func (p *WorktreeProvider) ListFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(p.root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable subtrees are skipped, not fatal.
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		rel, relErr := filepath.Rel(p.root, path)
		if relErr != nil {
			return relErr
		}

		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if rel != "." && p.ignorer != nil && p.ignorer.Match(rel+"/") {
				return filepath.SkipDir
			}

			return nil
		}

		if entry.Type().IsRegular() {
			files = append(files, rel)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", p.root, err)
	}

	return files, nil
}

// ReadFile reads one file relative to the root.
func (p *WorktreeProvider) ReadFile(path string) ([]byte, bool) {
	raw, err := os.ReadFile(filepath.Join(p.root, filepath.FromSlash(path)))
	if err != nil {
		return nil, false
	}

	return raw, true
}
