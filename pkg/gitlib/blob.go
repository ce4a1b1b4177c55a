package gitlib

import (
	git2go "github.com/libgit2/git2go/v34"
)

// Blob wraps a libgit2 blob.
type Blob struct {
	blob *git2go.Blob
}

// Hash returns the blob hash.
func (b *Blob) Hash() Hash {
	return HashFromOid(b.blob.Id())
}

// Size returns the blob size in bytes.
func (b *Blob) Size() int64 {
	return b.blob.Size()
}

// Contents returns the blob contents. The returned slice aliases libgit2
// memory and is only valid until Free; callers that keep the data copy it.
func (b *Blob) Contents() []byte {
	return b.blob.Contents()
}

// CopyContents returns the blob contents in Go-owned memory, safe to use
// after Free.
func (b *Blob) CopyContents() []byte {
	contents := b.blob.Contents()
	copied := make([]byte, len(contents))
	copy(copied, contents)

	return copied
}

// Free releases the blob resources.
func (b *Blob) Free() {
	if b.blob != nil {
		b.blob.Free()
		b.blob = nil
	}
}
