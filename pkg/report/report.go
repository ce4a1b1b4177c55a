// Package report renders analysis results in the supported output formats:
// console tables, json, csv, markdown, html charts, and yaml.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/locfang/locfang/pkg/counter"
	"github.com/locfang/locfang/pkg/history"
)

// ErrUnknownFormat is returned for a format name outside the supported set.
var ErrUnknownFormat = errors.New("unknown report format")

// Format names accepted by New.
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatYAML     = "yaml"
)

// Reporter renders results in one fixed format.
type Reporter struct {
	format    string
	showFiles bool
}

// New creates a reporter for the named format. ShowFiles adds per-file rows
// to the formats that support them.
func New(format string, showFiles bool) (*Reporter, error) {
	switch format {
	case FormatConsole, FormatJSON, FormatCSV, FormatMarkdown, FormatHTML, FormatYAML:
		return &Reporter{format: format, showFiles: showFiles}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Project renders one snapshot's statistics.
func (r *Reporter) Project(w io.Writer, stats *counter.ProjectStats) error {
	switch r.format {
	case FormatConsole:
		return r.consoleProject(w, stats, nil)
	case FormatJSON:
		return writeJSON(w, stats)
	case FormatCSV:
		return r.csvProject(w, stats)
	case FormatMarkdown:
		return r.markdownProject(w, stats, nil)
	case FormatHTML:
		return htmlProject(w, stats, nil)
	case FormatYAML:
		return writeYAML(w, stats)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
}

// Commit renders one commit's statistics with its metadata header.
func (r *Reporter) Commit(w io.Writer, commit *history.CommitStats) error {
	switch r.format {
	case FormatConsole:
		return r.consoleProject(w, commit.Stats, commit)
	case FormatJSON:
		return writeJSON(w, commit)
	case FormatCSV:
		return r.csvProject(w, commit.Stats)
	case FormatMarkdown:
		return r.markdownProject(w, commit.Stats, commit)
	case FormatHTML:
		return htmlProject(w, commit.Stats, commit)
	case FormatYAML:
		return writeYAML(w, commit)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
}

// Comparison renders a commit-to-commit comparison.
func (r *Reporter) Comparison(w io.Writer, cmp *history.Comparison) error {
	switch r.format {
	case FormatConsole:
		return consoleComparison(w, cmp)
	case FormatJSON:
		return writeJSON(w, cmp)
	case FormatCSV:
		return csvComparison(w, cmp)
	case FormatMarkdown:
		return markdownComparison(w, cmp)
	case FormatHTML:
		return htmlComparison(w, cmp)
	case FormatYAML:
		return writeYAML(w, cmp)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
}

// Range renders a chronological series of commit statistics.
func (r *Reporter) Range(w io.Writer, commits []*history.CommitStats) error {
	switch r.format {
	case FormatConsole:
		return consoleRange(w, commits)
	case FormatJSON:
		return writeJSON(w, commits)
	case FormatCSV:
		return csvRange(w, commits)
	case FormatMarkdown:
		return markdownRange(w, commits)
	case FormatHTML:
		return htmlRange(w, commits)
	case FormatYAML:
		return writeYAML(w, commits)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
}

// sortedLanguages returns the per-language rows ordered by code lines
// descending, ties broken by name.
func sortedLanguages(stats *counter.ProjectStats) []*counter.LanguageStats {
	languages := make([]*counter.LanguageStats, 0, len(stats.Languages))
	for _, lang := range stats.Languages {
		languages = append(languages, lang)
	}

	sort.Slice(languages, func(i, j int) bool {
		if languages[i].CodeLines != languages[j].CodeLines {
			return languages[i].CodeLines > languages[j].CodeLines
		}

		return languages[i].Language < languages[j].Language
	})

	return languages
}

// sortedPaths returns the keys of a delta map in path order.
func sortedPaths(deltas map[string]int) []string {
	paths := make([]string, 0, len(deltas))
	for path := range deltas {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths
}

// shortHash abbreviates a commit hash for table display.
func shortHash(hash string) string {
	const short = 8
	if len(hash) > short {
		return hash[:short]
	}

	return hash
}
