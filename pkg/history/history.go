// Package history analyzes commits of a git repository: single-commit
// snapshots, commit-to-commit comparisons, and date-bounded range walks.
package history

import (
	"time"

	"github.com/locfang/locfang/pkg/counter"
)

// RepositoryInfo describes the repository a result came from.
type RepositoryInfo struct {
	Path         string `json:"path" yaml:"path"`
	Branch       string `json:"active_branch" yaml:"active_branch"`
	Head         string `json:"head_commit" yaml:"head_commit"`
	TotalCommits int    `json:"total_commits" yaml:"total_commits"`
}

// CommitStats pairs one commit's metadata with the full line statistics of
// its tree. Repository and Changes are set for single-commit analyses and
// omitted from range walks.
type CommitStats struct {
	Hash       string                `json:"commit_hash" yaml:"commit_hash"`
	Author     string                `json:"author_name" yaml:"author_name"`
	Email      string                `json:"author_email" yaml:"author_email"`
	Date       time.Time             `json:"commit_date" yaml:"commit_date"`
	Message    string                `json:"message" yaml:"message"`
	Stats      *counter.ProjectStats `json:"stats" yaml:"stats"`
	Repository *RepositoryInfo       `json:"repository,omitempty" yaml:"repository,omitempty"`
	Changes    *ChangeSet            `json:"changes,omitempty" yaml:"changes,omitempty"`
}

// ChangeSet partitions the paths changed between two trees. A renamed file
// appears as a removal of the old path and an addition of the new one; path
// identity is the only identity.
type ChangeSet struct {
	Added    []string `json:"files_added" yaml:"files_added"`
	Removed  []string `json:"files_removed" yaml:"files_removed"`
	Modified []string `json:"files_modified" yaml:"files_modified"`
}

// Comparison holds the result of comparing two commits: both full snapshots,
// the changed-path partition, and the per-file code-line delta for modified
// files that classify on both sides.
type Comparison struct {
	Repository *RepositoryInfo `json:"repository,omitempty" yaml:"repository,omitempty"`
	Old        *CommitStats    `json:"old_commit" yaml:"old_commit"`
	New        *CommitStats    `json:"new_commit" yaml:"new_commit"`
	Changes    ChangeSet       `json:"changes" yaml:"changes"`
	LocChanges map[string]int  `json:"loc_changes" yaml:"loc_changes"`
}
