// Package snapshot abstracts "a set of files at one point in time" so the
// same analysis runs over a working directory on disk and over a commit's
// tree served from the git object store.
package snapshot

// Provider lists the files of one snapshot and serves their raw content.
// Implementations must be safe for concurrent ReadFile calls.
type Provider interface {
	// ListFiles returns the repository-relative, slash-separated paths of
	// every candidate file in the snapshot.
	ListFiles() ([]string, error)

	// ReadFile returns the raw bytes of one file. The second return value is
	// false when the file cannot be read; unreadable files are skipped, not
	// fatal.
	ReadFile(path string) ([]byte, bool)
}

// ContentIdentifier is implemented by providers that can name a stable
// content identity for a path (a blob hash). Identical content IDs allow a
// classification cache to skip re-reading the bytes.
type ContentIdentifier interface {
	ContentID(path string) (string, bool)
}
