package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/locfang/locfang/pkg/counter"
	"github.com/locfang/locfang/pkg/history"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.FgYellow)
)

// consoleProject renders the per-language table, optionally preceded by a
// commit header and followed by per-file rows.
func (r *Reporter) consoleProject(w io.Writer, stats *counter.ProjectStats, commit *history.CommitStats) error {
	if commit != nil {
		if commit.Repository != nil {
			writeRepositoryInfo(w, commit.Repository)
		}

		writeCommitHeader(w, commit)
	}

	headerColor.Fprintln(w, "Lines of Code")

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Language", "Files", "Total", "Code", "Comment", "Blank", "Size"})

	for _, lang := range sortedLanguages(stats) {
		tbl.AppendRow(table.Row{
			lang.Language,
			lang.FileCount,
			lang.TotalLines,
			lang.CodeLines,
			lang.CommentLines,
			lang.BlankLines,
			humanize.Bytes(uint64(lang.TotalSize)),
		})
	}

	tbl.AppendFooter(table.Row{
		"Total",
		stats.TotalFiles,
		stats.TotalLines,
		stats.CodeLines,
		stats.CommentLines,
		stats.BlankLines,
		humanize.Bytes(uint64(stats.TotalSize)),
	})
	tbl.Render()

	if r.showFiles {
		consoleFiles(w, stats.Files)
	}

	return nil
}

// consoleFiles renders the per-file breakdown table.
func consoleFiles(w io.Writer, files []counter.FileStats) {
	headerColor.Fprintln(w, "Files")

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Path", "Language", "Total", "Code", "Comment", "Blank"})

	for _, file := range files {
		tbl.AppendRow(table.Row{
			file.Path,
			file.Language,
			file.TotalLines,
			file.CodeLines,
			file.CommentLines,
			file.BlankLines,
		})
	}

	tbl.Render()
}

// consoleComparison renders a commit-to-commit comparison.
func consoleComparison(w io.Writer, cmp *history.Comparison) error {
	headerColor.Fprintln(w, "Commit Comparison")

	if cmp.Repository != nil {
		writeRepositoryInfo(w, cmp.Repository)
	}

	writeCommitHeader(w, cmp.Old)
	writeCommitHeader(w, cmp.New)

	labelColor.Fprint(w, "Files added: ")
	fmt.Fprintln(w, len(cmp.Changes.Added))
	labelColor.Fprint(w, "Files removed: ")
	fmt.Fprintln(w, len(cmp.Changes.Removed))
	labelColor.Fprint(w, "Files modified: ")
	fmt.Fprintln(w, len(cmp.Changes.Modified))

	labelColor.Fprint(w, "Code lines: ")
	fmt.Fprintf(w, "%d -> %d (%+d)\n",
		cmp.Old.Stats.CodeLines, cmp.New.Stats.CodeLines,
		cmp.New.Stats.CodeLines-cmp.Old.Stats.CodeLines)

	if len(cmp.LocChanges) == 0 {
		return nil
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Path", "Code Delta"})

	for _, path := range sortedPaths(cmp.LocChanges) {
		tbl.AppendRow(table.Row{path, fmt.Sprintf("%+d", cmp.LocChanges[path])})
	}

	tbl.Render()

	return nil
}

// consoleRange renders one row per analyzed commit, oldest first.
func consoleRange(w io.Writer, commits []*history.CommitStats) error {
	headerColor.Fprintln(w, "History")

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Commit", "Date", "Author", "Files", "Code", "Comment", "Blank"})

	for _, commit := range commits {
		tbl.AppendRow(table.Row{
			shortHash(commit.Hash),
			commit.Date.Format(time.DateOnly),
			commit.Author,
			commit.Stats.TotalFiles,
			commit.Stats.CodeLines,
			commit.Stats.CommentLines,
			commit.Stats.BlankLines,
		})
	}

	tbl.Render()

	return nil
}

// writeCommitHeader prints one commit's metadata block.
func writeCommitHeader(w io.Writer, commit *history.CommitStats) {
	labelColor.Fprint(w, "Commit: ")
	fmt.Fprintln(w, commit.Hash)
	labelColor.Fprint(w, "Author: ")
	fmt.Fprintf(w, "%s <%s>\n", commit.Author, commit.Email)
	labelColor.Fprint(w, "Date: ")
	fmt.Fprintln(w, commit.Date.Format(time.RFC3339))
	labelColor.Fprint(w, "Message: ")
	fmt.Fprintln(w, commit.Message)

	if commit.Changes != nil {
		labelColor.Fprint(w, "Files changed: ")
		fmt.Fprintf(w, "%d added, %d removed, %d modified\n",
			len(commit.Changes.Added), len(commit.Changes.Removed), len(commit.Changes.Modified))
	}
}

// writeRepositoryInfo prints the repository description block.
func writeRepositoryInfo(w io.Writer, info *history.RepositoryInfo) {
	headerColor.Fprintln(w, "Repository")
	labelColor.Fprint(w, "Path: ")
	fmt.Fprintln(w, info.Path)
	labelColor.Fprint(w, "Branch: ")
	fmt.Fprintln(w, info.Branch)
	labelColor.Fprint(w, "Head: ")
	fmt.Fprintln(w, info.Head)
	labelColor.Fprint(w, "Commits: ")
	fmt.Fprintln(w, info.TotalCommits)
}
