package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/locfang/locfang/pkg/counter"
	"github.com/locfang/locfang/pkg/history"
)

// csvProject writes per-language rows, a total row, and optionally per-file
// rows prefixed by record type.
func (r *Reporter) csvProject(w io.Writer, stats *counter.ProjectStats) error {
	writer := csv.NewWriter(w)

	err := writer.Write([]string{"type", "name", "files", "total_lines", "code_lines", "comment_lines", "blank_lines", "size"})
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, lang := range sortedLanguages(stats) {
		err = writer.Write([]string{
			"language",
			lang.Language,
			strconv.Itoa(lang.FileCount),
			strconv.Itoa(lang.TotalLines),
			strconv.Itoa(lang.CodeLines),
			strconv.Itoa(lang.CommentLines),
			strconv.Itoa(lang.BlankLines),
			strconv.FormatInt(lang.TotalSize, 10),
		})
		if err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	err = writer.Write([]string{
		"total",
		"",
		strconv.Itoa(stats.TotalFiles),
		strconv.Itoa(stats.TotalLines),
		strconv.Itoa(stats.CodeLines),
		strconv.Itoa(stats.CommentLines),
		strconv.Itoa(stats.BlankLines),
		strconv.FormatInt(stats.TotalSize, 10),
	})
	if err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}

	if r.showFiles {
		for _, file := range stats.Files {
			err = writer.Write([]string{
				"file",
				file.Path,
				"1",
				strconv.Itoa(file.TotalLines),
				strconv.Itoa(file.CodeLines),
				strconv.Itoa(file.CommentLines),
				strconv.Itoa(file.BlankLines),
				strconv.FormatInt(file.Size, 10),
			})
			if err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	writer.Flush()

	return writer.Error()
}

// csvComparison writes one row per modified file with a code-line delta.
func csvComparison(w io.Writer, cmp *history.Comparison) error {
	writer := csv.NewWriter(w)

	err := writer.Write([]string{"path", "code_delta"})
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, path := range sortedPaths(cmp.LocChanges) {
		err = writer.Write([]string{path, strconv.Itoa(cmp.LocChanges[path])})
		if err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}

// csvRange writes one row per analyzed commit, oldest first.
func csvRange(w io.Writer, commits []*history.CommitStats) error {
	writer := csv.NewWriter(w)

	err := writer.Write([]string{"commit", "date", "author", "files", "total_lines", "code_lines", "comment_lines", "blank_lines"})
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, commit := range commits {
		err = writer.Write([]string{
			commit.Hash,
			commit.Date.Format(time.RFC3339),
			commit.Author,
			strconv.Itoa(commit.Stats.TotalFiles),
			strconv.Itoa(commit.Stats.TotalLines),
			strconv.Itoa(commit.Stats.CodeLines),
			strconv.Itoa(commit.Stats.CommentLines),
			strconv.Itoa(commit.Stats.BlankLines),
		})
		if err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}
