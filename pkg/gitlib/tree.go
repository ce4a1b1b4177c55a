package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// Tree wraps a libgit2 tree.
type Tree struct {
	tree *git2go.Tree
	repo *Repository
}

// Hash returns the tree hash.
func (t *Tree) Hash() Hash {
	return HashFromOid(t.tree.Id())
}

// EntryCount returns the number of entries in the tree.
func (t *Tree) EntryCount() uint64 {
	return t.tree.EntryCount()
}

// EntryByIndex returns the tree entry at the given index, or nil when the
// index is out of range.
func (t *Tree) EntryByIndex(i uint64) *TreeEntry {
	entry := t.tree.EntryByIndex(i)
	if entry == nil {
		return nil
	}

	return &TreeEntry{entry: entry}
}

// Free releases the tree resources.
func (t *Tree) Free() {
	if t.tree != nil {
		t.tree.Free()
		t.tree = nil
	}
}

// TreeEntry wraps a libgit2 tree entry.
type TreeEntry struct {
	entry *git2go.TreeEntry
}

// Name returns the entry name.
func (e *TreeEntry) Name() string {
	return e.entry.Name
}

// Hash returns the entry object hash.
func (e *TreeEntry) Hash() Hash {
	return HashFromOid(e.entry.Id)
}

// IsBlob reports whether the entry is a blob.
func (e *TreeEntry) IsBlob() bool {
	return e.entry.Type == git2go.ObjectBlob
}

// FileRef identifies one blob in a tree by its repository-relative path.
type FileRef struct {
	Path string
	Hash Hash
}

// ListFiles walks the tree recursively and returns a FileRef for every blob,
// in tree order. Submodule and other non-blob entries are skipped.
func ListFiles(repo *Repository, tree *Tree) ([]FileRef, error) {
	var files []FileRef

	err := walkTree(repo, tree, "", func(path string, entry *TreeEntry) {
		files = append(files, FileRef{Path: path, Hash: entry.Hash()})
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// walkTree recursively walks a tree and calls fn for each blob entry.
func walkTree(repo *Repository, tree *Tree, prefix string, fn func(path string, entry *TreeEntry)) error {
	count := tree.EntryCount()

	for i := range count {
		entry := tree.EntryByIndex(i)
		if entry == nil {
			continue
		}

		path := entry.Name()
		if prefix != "" {
			path = prefix + "/" + path
		}

		switch {
		case entry.IsBlob():
			fn(path, entry)

		case entry.entry.Type == git2go.ObjectTree:
			subtree, err := repo.LookupTree(entry.Hash())
			if err != nil {
				return fmt.Errorf("walk tree at %q: %w", path, err)
			}

			walkErr := walkTree(repo, subtree, path, fn)
			subtree.Free()

			if walkErr != nil {
				return walkErr
			}
		}
	}

	return nil
}
