package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/locfang/locfang/pkg/counter"
	"github.com/locfang/locfang/pkg/history"
)

// markdownProject renders the per-language table as GitHub-flavored markdown.
func (r *Reporter) markdownProject(w io.Writer, stats *counter.ProjectStats, commit *history.CommitStats) error {
	fmt.Fprintln(w, "# Lines of Code")
	fmt.Fprintln(w)

	if commit != nil {
		markdownCommitHeader(w, commit)
	}

	fmt.Fprintln(w, "| Language | Files | Total | Code | Comment | Blank | Size |")
	fmt.Fprintln(w, "|---|---:|---:|---:|---:|---:|---:|")

	for _, lang := range sortedLanguages(stats) {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %d | %d | %s |\n",
			lang.Language, lang.FileCount, lang.TotalLines, lang.CodeLines,
			lang.CommentLines, lang.BlankLines, humanize.Bytes(uint64(lang.TotalSize)))
	}

	fmt.Fprintf(w, "| **Total** | %d | %d | %d | %d | %d | %s |\n",
		stats.TotalFiles, stats.TotalLines, stats.CodeLines,
		stats.CommentLines, stats.BlankLines, humanize.Bytes(uint64(stats.TotalSize)))

	if r.showFiles {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "## Files")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Path | Language | Total | Code | Comment | Blank |")
		fmt.Fprintln(w, "|---|---|---:|---:|---:|---:|")

		for _, file := range stats.Files {
			fmt.Fprintf(w, "| %s | %s | %d | %d | %d | %d |\n",
				file.Path, file.Language, file.TotalLines, file.CodeLines,
				file.CommentLines, file.BlankLines)
		}
	}

	return nil
}

// markdownComparison renders a commit-to-commit comparison.
func markdownComparison(w io.Writer, cmp *history.Comparison) error {
	fmt.Fprintln(w, "# Commit Comparison")
	fmt.Fprintln(w)
	markdownCommitHeader(w, cmp.Old)
	markdownCommitHeader(w, cmp.New)

	fmt.Fprintf(w, "- Files added: %d\n", len(cmp.Changes.Added))
	fmt.Fprintf(w, "- Files removed: %d\n", len(cmp.Changes.Removed))
	fmt.Fprintf(w, "- Files modified: %d\n", len(cmp.Changes.Modified))
	fmt.Fprintf(w, "- Code lines: %d -> %d (%+d)\n",
		cmp.Old.Stats.CodeLines, cmp.New.Stats.CodeLines,
		cmp.New.Stats.CodeLines-cmp.Old.Stats.CodeLines)
	fmt.Fprintln(w)

	if len(cmp.LocChanges) == 0 {
		return nil
	}

	fmt.Fprintln(w, "| Path | Code Delta |")
	fmt.Fprintln(w, "|---|---:|")

	for _, path := range sortedPaths(cmp.LocChanges) {
		fmt.Fprintf(w, "| %s | %+d |\n", path, cmp.LocChanges[path])
	}

	return nil
}

// markdownRange renders one table row per analyzed commit, oldest first.
func markdownRange(w io.Writer, commits []*history.CommitStats) error {
	fmt.Fprintln(w, "# History")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Commit | Date | Author | Files | Code | Comment | Blank |")
	fmt.Fprintln(w, "|---|---|---|---:|---:|---:|---:|")

	for _, commit := range commits {
		fmt.Fprintf(w, "| %s | %s | %s | %d | %d | %d | %d |\n",
			shortHash(commit.Hash),
			commit.Date.Format(time.DateOnly),
			commit.Author,
			commit.Stats.TotalFiles,
			commit.Stats.CodeLines,
			commit.Stats.CommentLines,
			commit.Stats.BlankLines)
	}

	return nil
}

// markdownCommitHeader prints one commit's metadata block.
func markdownCommitHeader(w io.Writer, commit *history.CommitStats) {
	fmt.Fprintf(w, "- Commit: `%s`\n", commit.Hash)
	fmt.Fprintf(w, "- Author: %s <%s>\n", commit.Author, commit.Email)
	fmt.Fprintf(w, "- Date: %s\n", commit.Date.Format(time.RFC3339))
	fmt.Fprintf(w, "- Message: %s\n", commit.Message)
	fmt.Fprintln(w)
}
