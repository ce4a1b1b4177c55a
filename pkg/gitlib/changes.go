package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// ChangeAction represents the type of change in a tree diff.
type ChangeAction int

const (
	// Insert indicates a new file was added.
	Insert ChangeAction = iota
	// Delete indicates a file was removed.
	Delete
	// Modify indicates a file's content changed under the same path.
	Modify
)

// Change represents a single file change between two trees. From is set for
// Delete and Modify, To for Insert and Modify.
type Change struct {
	Action ChangeAction
	From   ChangeEntry
	To     ChangeEntry
}

// ChangeEntry represents one side of a change.
type ChangeEntry struct {
	Path string
	Hash Hash
	Size int64
}

// Changes is a collection of Change records.
type Changes []*Change

// TreeDiff computes the file changes between two trees. A rename or copy is
// reported as a delete of the old path plus an insert of the new path, so
// path identity is the only identity: moved content counts as removed and
// added. Equal tree OIDs short-circuit to no changes.
func TreeDiff(repo *Repository, oldTree, newTree *Tree) (Changes, error) {
	if oldTree != nil && newTree != nil && oldTree.Hash() == newTree.Hash() {
		return Changes{}, nil
	}

	diff, err := repo.DiffTreeToTree(oldTree, newTree)
	if err != nil {
		return nil, fmt.Errorf("diff trees: %w", err)
	}
	defer diff.Free()

	numDeltas, err := diff.NumDeltas()
	if err != nil {
		return nil, fmt.Errorf("get num deltas: %w", err)
	}

	changes := make(Changes, 0, numDeltas)

	for i := range numDeltas {
		delta, deltaErr := diff.Delta(i)
		if deltaErr != nil {
			return nil, deltaErr
		}

		changes = append(changes, deltaChanges(delta)...)
	}

	return changes, nil
}

// deltaChanges maps one libgit2 delta to zero or more changes.
func deltaChanges(delta DiffDelta) Changes {
	from := ChangeEntry{Path: delta.OldFile.Path, Hash: delta.OldFile.Hash, Size: delta.OldFile.Size}
	to := ChangeEntry{Path: delta.NewFile.Path, Hash: delta.NewFile.Hash, Size: delta.NewFile.Size}

	switch delta.Status {
	case git2go.DeltaAdded:
		return Changes{{Action: Insert, To: to}}

	case git2go.DeltaDeleted:
		return Changes{{Action: Delete, From: from}}

	case git2go.DeltaModified:
		return Changes{{Action: Modify, From: from, To: to}}

	case git2go.DeltaRenamed, git2go.DeltaCopied:
		return Changes{
			{Action: Delete, From: from},
			{Action: Insert, To: to},
		}

	case git2go.DeltaUnmodified, git2go.DeltaIgnored, git2go.DeltaUntracked,
		git2go.DeltaTypeChange, git2go.DeltaUnreadable, git2go.DeltaConflicted:
		return nil
	}

	return nil
}

// InitialTreeChanges builds the change set for a commit without parents:
// every blob in the tree is an insertion.
func InitialTreeChanges(repo *Repository, tree *Tree) (Changes, error) {
	if tree == nil {
		return nil, nil
	}

	files, err := ListFiles(repo, tree)
	if err != nil {
		return nil, err
	}

	changes := make(Changes, 0, len(files))
	for _, file := range files {
		changes = append(changes, &Change{
			Action: Insert,
			To:     ChangeEntry{Path: file.Path, Hash: file.Hash},
		})
	}

	return changes, nil
}
