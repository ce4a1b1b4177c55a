package snapshot

import (
	"fmt"
	"sync"

	"github.com/locfang/locfang/pkg/gitlib"
)

// CommitProvider serves files from one commit's tree. Blob contents come
// straight from the git object store in memory; nothing touches the
// filesystem.
type CommitProvider struct {
	repo   *gitlib.Repository
	paths  []string
	hashes map[string]gitlib.Hash

	// libgit2 object access is not thread-safe; reads are serialized while
	// classification stays parallel.
	mu sync.Mutex
}

// NewCommitProvider snapshots the file list of the commit's tree. The
// provider stays valid after the commit is freed; only the repository must
// outlive it.
func NewCommitProvider(repo *gitlib.Repository, commit *gitlib.Commit) (*CommitProvider, error) {
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", commit.Hash(), err)
	}
	defer tree.Free()

	files, err := gitlib.ListFiles(repo, tree)
	if err != nil {
		return nil, fmt.Errorf("list files of %s: %w", commit.Hash(), err)
	}

	paths := make([]string, 0, len(files))
	hashes := make(map[string]gitlib.Hash, len(files))

	for _, file := range files {
		paths = append(paths, file.Path)
		hashes[file.Path] = file.Hash
	}

	return &CommitProvider{repo: repo, paths: paths, hashes: hashes}, nil
}

// ListFiles returns the paths of every blob in the commit's tree.
func (p *CommitProvider) ListFiles() ([]string, error) {
	return p.paths, nil
}

// ReadFile loads one blob's contents from the object store.
func (p *CommitProvider) ReadFile(path string) ([]byte, bool) {
	hash, ok := p.hashes[path]
	if !ok {
		return nil, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	blob, err := p.repo.LookupBlob(hash)
	if err != nil {
		return nil, false
	}
	defer blob.Free()

	return blob.CopyContents(), true
}

// ContentID returns the blob hash for a path, letting callers reuse cached
// classifications for unchanged blobs.
func (p *CommitProvider) ContentID(path string) (string, bool) {
	hash, ok := p.hashes[path]
	if !ok {
		return "", false
	}

	return hash.String(), true
}
