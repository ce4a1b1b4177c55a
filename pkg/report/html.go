package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/locfang/locfang/pkg/counter"
	"github.com/locfang/locfang/pkg/history"
)

// htmlProject renders a per-language bar chart page.
func htmlProject(w io.Writer, stats *counter.ProjectStats, commit *history.CommitStats) error {
	title := "Lines of Code"
	if commit != nil {
		title = fmt.Sprintf("Lines of Code at %s", shortHash(commit.Hash))
	}

	languages := sortedLanguages(stats)

	labels := make([]string, 0, len(languages))
	code := make([]opts.BarData, 0, len(languages))
	comment := make([]opts.BarData, 0, len(languages))
	blank := make([]opts.BarData, 0, len(languages))

	for _, lang := range languages {
		labels = append(labels, lang.Language)
		code = append(code, opts.BarData{Value: lang.CodeLines})
		comment = append(comment, opts.BarData{Value: lang.CommentLines})
		blank = append(blank, opts.BarData{Value: lang.BlankLines})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d files, %d lines", stats.TotalFiles, stats.TotalLines),
		}),
	)
	bar.SetXAxis(labels).
		AddSeries("Code", code).
		AddSeries("Comment", comment).
		AddSeries("Blank", blank)

	return renderPage(w, bar)
}

// htmlComparison renders the per-file code-line deltas as a bar chart.
func htmlComparison(w io.Writer, cmp *history.Comparison) error {
	paths := sortedPaths(cmp.LocChanges)

	deltas := make([]opts.BarData, 0, len(paths))
	for _, path := range paths {
		deltas = append(deltas, opts.BarData{Value: cmp.LocChanges[path]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Commit Comparison",
			Subtitle: fmt.Sprintf("%s -> %s", shortHash(cmp.Old.Hash), shortHash(cmp.New.Hash)),
		}),
	)
	bar.SetXAxis(paths).AddSeries("Code Delta", deltas)

	return renderPage(w, bar)
}

// htmlRange renders code-line evolution over the analyzed commits.
func htmlRange(w io.Writer, commits []*history.CommitStats) error {
	labels := make([]string, 0, len(commits))
	code := make([]opts.LineData, 0, len(commits))
	comment := make([]opts.LineData, 0, len(commits))

	for _, commit := range commits {
		labels = append(labels, fmt.Sprintf("%s %s", commit.Date.Format(time.DateOnly), shortHash(commit.Hash)))
		code = append(code, opts.LineData{Value: commit.Stats.CodeLines})
		comment = append(comment, opts.LineData{Value: commit.Stats.CommentLines})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "History",
			Subtitle: fmt.Sprintf("%d commits", len(commits)),
		}),
	)
	line.SetXAxis(labels).
		AddSeries("Code", code).
		AddSeries("Comment", comment)

	return renderPage(w, line)
}

// renderPage wraps charts in a page and renders the standalone HTML document.
func renderPage(w io.Writer, chart components.Charter) error {
	page := components.NewPage()
	page.AddCharts(chart)

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render html report: %w", err)
	}

	return nil
}
