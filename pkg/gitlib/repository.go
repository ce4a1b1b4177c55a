package gitlib

import (
	"errors"
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// ErrNotFound is returned when a revision or object cannot be resolved.
var ErrNotFound = errors.New("object not found")

// Repository wraps a libgit2 repository.
type Repository struct {
	repo *git2go.Repository
	path string
}

// Open opens the git repository at the given path.
func Open(path string) (*Repository, error) {
	repo, err := git2go.OpenRepository(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", path, err)
	}

	return &Repository{repo: repo, path: path}, nil
}

// Path returns the path the repository was opened at.
func (r *Repository) Path() string {
	return r.path
}

// Free releases the repository resources.
func (r *Repository) Free() {
	if r.repo != nil {
		r.repo.Free()
		r.repo = nil
	}
}

// Head returns the commit hash HEAD points at.
func (r *Repository) Head() (Hash, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return Hash{}, fmt.Errorf("get HEAD: %w", err)
	}
	defer ref.Free()

	return HashFromOid(ref.Target()), nil
}

// HeadBranch returns the shorthand name of the reference HEAD points at,
// e.g. "main". A detached HEAD reports "HEAD".
func (r *Repository) HeadBranch() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("get HEAD: %w", err)
	}
	defer ref.Free()

	return ref.Shorthand(), nil
}

// ResolveCommit resolves a revision spec (full or abbreviated hash, branch,
// tag, HEAD~n, and the rest of the rev-parse syntax) to a commit. Annotated
// tags are peeled to the commit they point at. An unresolvable spec returns
// ErrNotFound.
func (r *Repository) ResolveCommit(spec string) (*Commit, error) {
	obj, err := r.repo.RevparseSingle(spec)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", spec, ErrNotFound)
	}
	defer obj.Free()

	peeled, err := obj.Peel(git2go.ObjectCommit)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: not a commit: %w", spec, ErrNotFound)
	}

	commit, err := peeled.AsCommit()
	if err != nil {
		peeled.Free()

		return nil, fmt.Errorf("resolve %q: not a commit: %w", spec, ErrNotFound)
	}

	return &Commit{commit: commit, repo: r}, nil
}

// LookupCommit returns the commit with the given hash.
func (r *Repository) LookupCommit(hash Hash) (*Commit, error) {
	commit, err := r.repo.LookupCommit(hash.ToOid())
	if err != nil {
		return nil, fmt.Errorf("lookup commit %s: %w", hash, ErrNotFound)
	}

	return &Commit{commit: commit, repo: r}, nil
}

// LookupBlob returns the blob with the given hash. Blob contents live in
// libgit2's object store and are served from memory; nothing is written to
// disk.
func (r *Repository) LookupBlob(hash Hash) (*Blob, error) {
	blob, err := r.repo.LookupBlob(hash.ToOid())
	if err != nil {
		return nil, fmt.Errorf("lookup blob %s: %w", hash, ErrNotFound)
	}

	return &Blob{blob: blob}, nil
}

// LookupTree returns the tree with the given hash.
func (r *Repository) LookupTree(hash Hash) (*Tree, error) {
	tree, err := r.repo.LookupTree(hash.ToOid())
	if err != nil {
		return nil, fmt.Errorf("lookup tree %s: %w", hash, ErrNotFound)
	}

	return &Tree{tree: tree, repo: r}, nil
}

// Walk creates a new revision walker.
func (r *Repository) Walk() (*RevWalk, error) {
	walk, err := r.repo.Walk()
	if err != nil {
		return nil, fmt.Errorf("create revwalk: %w", err)
	}

	return &RevWalk{walk: walk, repo: r}, nil
}

// DiffTreeToTree computes the diff between two trees. Either side may be nil
// to diff against the empty tree.
func (r *Repository) DiffTreeToTree(oldTree, newTree *Tree) (*Diff, error) {
	opts, err := git2go.DefaultDiffOptions()
	if err != nil {
		return nil, fmt.Errorf("get diff options: %w", err)
	}

	var oldT, newT *git2go.Tree
	if oldTree != nil {
		oldT = oldTree.tree
	}

	if newTree != nil {
		newT = newTree.tree
	}

	diff, err := r.repo.DiffTreeToTree(oldT, newT, &opts)
	if err != nil {
		return nil, fmt.Errorf("diff trees: %w", err)
	}

	return &Diff{diff: diff}, nil
}
