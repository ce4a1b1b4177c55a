package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/locfang/locfang/internal/observability"
	"github.com/locfang/locfang/pkg/analyze"
	"github.com/locfang/locfang/pkg/counter"
	"github.com/locfang/locfang/pkg/gitlib"
	"github.com/locfang/locfang/pkg/snapshot"
)

// Walker runs analyses against the commits of one repository.
type Walker struct {
	repo    *gitlib.Repository
	runner  *analyze.Runner
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewWalker creates a walker over the given repository. Metrics may be nil;
// a nil logger falls back to slog.Default.
func NewWalker(repo *gitlib.Repository, runner *analyze.Runner, metrics *observability.Metrics, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}

	return &Walker{repo: repo, runner: runner, metrics: metrics, logger: logger}
}

// AnalyzeCommit resolves a revision spec and analyzes the full tree of the
// commit it names. Blob contents are served from the object store in memory.
// The result carries the repository description and the paths the commit
// changed relative to its first parent.
func (w *Walker) AnalyzeCommit(ctx context.Context, spec string) (*CommitStats, error) {
	commit, err := w.repo.ResolveCommit(spec)
	if err != nil {
		return nil, err
	}
	defer commit.Free()

	stats, err := w.analyzeResolved(ctx, commit)
	if err != nil {
		return nil, err
	}

	stats.Changes, err = w.changedFilesResolved(commit)
	if err != nil {
		return nil, err
	}

	stats.Repository, err = w.RepositoryInfo()
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// RepositoryInfo describes the repository under analysis: its path, the
// active branch, the HEAD commit, and the number of commits reachable from
// HEAD.
func (w *Walker) RepositoryInfo() (*RepositoryInfo, error) {
	branch, err := w.repo.HeadBranch()
	if err != nil {
		return nil, err
	}

	head, err := w.repo.Head()
	if err != nil {
		return nil, err
	}

	total, err := w.countCommits()
	if err != nil {
		return nil, err
	}

	return &RepositoryInfo{
		Path:         w.repo.Path(),
		Branch:       branch,
		Head:         head.String(),
		TotalCommits: total,
	}, nil
}

// countCommits counts the commits reachable from HEAD.
func (w *Walker) countCommits() (int, error) {
	walk, err := w.repo.Walk()
	if err != nil {
		return 0, err
	}
	defer walk.Free()

	err = walk.PushHead()
	if err != nil {
		return 0, err
	}

	count := 0

	for {
		_, nextErr := walk.Next()
		if errors.Is(nextErr, io.EOF) {
			return count, nil
		}

		if nextErr != nil {
			return 0, nextErr
		}

		count++
	}
}

// analyzeResolved analyzes an already-resolved commit.
func (w *Walker) analyzeResolved(ctx context.Context, commit *gitlib.Commit) (*CommitStats, error) {
	provider, err := snapshot.NewCommitProvider(w.repo, commit)
	if err != nil {
		return nil, err
	}

	stats, err := w.runner.Run(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("analyze commit %s: %w", commit.Hash(), err)
	}

	author := commit.Author()

	return &CommitStats{
		Hash:    commit.Hash().String(),
		Author:  author.Name,
		Email:   author.Email,
		Date:    author.When,
		Message: commit.Summary(),
		Stats:   stats,
	}, nil
}

// ChangedFiles partitions the paths a commit changed relative to its first
// parent. A commit without parents reports every file as added.
func (w *Walker) ChangedFiles(spec string) (*ChangeSet, error) {
	commit, err := w.repo.ResolveCommit(spec)
	if err != nil {
		return nil, err
	}
	defer commit.Free()

	return w.changedFilesResolved(commit)
}

// changedFilesResolved partitions the changed paths of an already-resolved
// commit.
func (w *Walker) changedFilesResolved(commit *gitlib.Commit) (*ChangeSet, error) {
	tree, err := commit.Tree()
	if err != nil {
		return nil, err
	}
	defer tree.Free()

	if commit.ParentCount() == 0 {
		changes, initErr := gitlib.InitialTreeChanges(w.repo, tree)
		if initErr != nil {
			return nil, initErr
		}

		return changeSetFrom(changes), nil
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return nil, err
	}
	defer parent.Free()

	parentTree, err := parent.Tree()
	if err != nil {
		return nil, err
	}
	defer parentTree.Free()

	changes, err := gitlib.TreeDiff(w.repo, parentTree, tree)
	if err != nil {
		return nil, err
	}

	return changeSetFrom(changes), nil
}

// Compare analyzes two commits and reports how the codebase moved between
// them: both snapshots, the changed-path partition, and per-file code-line
// deltas for modified files that classify on both sides. A modified file
// that is binary or unrecognized on either side stays in the modified list
// but gets no delta entry.
func (w *Walker) Compare(ctx context.Context, oldSpec, newSpec string) (*Comparison, error) {
	oldCommit, err := w.repo.ResolveCommit(oldSpec)
	if err != nil {
		return nil, err
	}
	defer oldCommit.Free()

	newCommit, err := w.repo.ResolveCommit(newSpec)
	if err != nil {
		return nil, err
	}
	defer newCommit.Free()

	oldStats, err := w.analyzeResolved(ctx, oldCommit)
	if err != nil {
		return nil, err
	}

	newStats, err := w.analyzeResolved(ctx, newCommit)
	if err != nil {
		return nil, err
	}

	oldTree, err := oldCommit.Tree()
	if err != nil {
		return nil, err
	}
	defer oldTree.Free()

	newTree, err := newCommit.Tree()
	if err != nil {
		return nil, err
	}
	defer newTree.Free()

	changes, err := gitlib.TreeDiff(w.repo, oldTree, newTree)
	if err != nil {
		return nil, err
	}

	changeSet := changeSetFrom(changes)

	info, err := w.RepositoryInfo()
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Repository: info,
		Old:        oldStats,
		New:        newStats,
		Changes:    *changeSet,
		LocChanges: codeLineDeltas(changeSet.Modified, oldStats.Stats, newStats.Stats),
	}, nil
}

// CommitsInRange returns the hashes of all commits reachable from HEAD whose
// author date falls inside the range, oldest first. Filtering and ordering
// use the author timestamp, not the committer timestamp, so amended or
// rebased commits keep their original day.
func (w *Walker) CommitsInRange(dateRange DateRange) ([]gitlib.Hash, error) {
	walk, err := w.repo.Walk()
	if err != nil {
		return nil, err
	}
	defer walk.Free()

	err = walk.PushHead()
	if err != nil {
		return nil, err
	}

	walk.SortTimeTopological()

	type dated struct {
		hash gitlib.Hash
		when int64
	}

	var commits []dated

	for {
		hash, nextErr := walk.Next()
		if errors.Is(nextErr, io.EOF) {
			break
		}

		if nextErr != nil {
			return nil, nextErr
		}

		commit, lookupErr := w.repo.LookupCommit(hash)
		if lookupErr != nil {
			return nil, lookupErr
		}

		when := commit.Author().When
		commit.Free()

		if dateRange.Contains(when) {
			commits = append(commits, dated{hash: hash, when: when.Unix()})
		}
	}

	sort.SliceStable(commits, func(i, j int) bool { return commits[i].when < commits[j].when })

	hashes := make([]gitlib.Hash, len(commits))
	for i, c := range commits {
		hashes[i] = c.hash
	}

	return hashes, nil
}

// AnalyzeRange analyzes every commit in the date range, oldest first. A
// commit that fails to analyze is logged and skipped; the walk continues
// with the rest.
func (w *Walker) AnalyzeRange(ctx context.Context, dateRange DateRange) ([]*CommitStats, error) {
	hashes, err := w.CommitsInRange(dateRange)
	if err != nil {
		return nil, err
	}

	return analyzeHashes(ctx, hashes, w.analyzeHash, w.metrics, w.logger)
}

// analyzeHashes runs analyze over the hashes in order. A hash whose analysis
// fails is warned about, counted as skipped, and dropped from the result; the
// rest of the walk continues.
func analyzeHashes(
	ctx context.Context,
	hashes []gitlib.Hash,
	analyze func(context.Context, gitlib.Hash) (*CommitStats, error),
	metrics *observability.Metrics,
	logger *slog.Logger,
) ([]*CommitStats, error) {
	results := make([]*CommitStats, 0, len(hashes))

	for _, hash := range hashes {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		stats, analyzeErr := analyze(ctx, hash)
		if analyzeErr != nil {
			metrics.CommitSkipped()
			logger.Warn("skipping commit", "commit", hash.String(), "error", analyzeErr)

			continue
		}

		metrics.CommitAnalyzed()

		results = append(results, stats)
	}

	return results, nil
}

// analyzeHash analyzes one commit by hash.
func (w *Walker) analyzeHash(ctx context.Context, hash gitlib.Hash) (*CommitStats, error) {
	commit, err := w.repo.LookupCommit(hash)
	if err != nil {
		return nil, err
	}
	defer commit.Free()

	return w.analyzeResolved(ctx, commit)
}

// changeSetFrom partitions gitlib changes into sorted path lists.
func changeSetFrom(changes gitlib.Changes) *ChangeSet {
	set := &ChangeSet{
		Added:    []string{},
		Removed:  []string{},
		Modified: []string{},
	}

	for _, change := range changes {
		switch change.Action {
		case gitlib.Insert:
			set.Added = append(set.Added, change.To.Path)
		case gitlib.Delete:
			set.Removed = append(set.Removed, change.From.Path)
		case gitlib.Modify:
			set.Modified = append(set.Modified, change.To.Path)
		}
	}

	sort.Strings(set.Added)
	sort.Strings(set.Removed)
	sort.Strings(set.Modified)

	return set
}

// codeLineDeltas computes newCode minus oldCode per modified path, for paths
// that have a classified record on both sides.
func codeLineDeltas(modified []string, oldStats, newStats *counter.ProjectStats) map[string]int {
	oldCode := codeLinesByPath(oldStats)
	newCode := codeLinesByPath(newStats)

	deltas := make(map[string]int, len(modified))

	for _, path := range modified {
		oldLines, oldOK := oldCode[path]
		newLines, newOK := newCode[path]

		if oldOK && newOK {
			deltas[path] = newLines - oldLines
		}
	}

	return deltas
}

// codeLinesByPath indexes a snapshot's per-file code-line counts.
func codeLinesByPath(stats *counter.ProjectStats) map[string]int {
	byPath := make(map[string]int, len(stats.Files))
	for _, file := range stats.Files {
		byPath[file.Path] = file.CodeLines
	}

	return byPath
}
