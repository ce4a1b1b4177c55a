// Package commands implements the locfang CLI subcommands.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/locfang/locfang/internal/config"
	"github.com/locfang/locfang/internal/observability"
	"github.com/locfang/locfang/pkg/analyze"
	"github.com/locfang/locfang/pkg/counter"
	"github.com/locfang/locfang/pkg/ignore"
	"github.com/locfang/locfang/pkg/report"
)

// commonFlags holds the flags shared by every analysis command.
type commonFlags struct {
	configPath  string
	format      string
	outPath     string
	showFiles   bool
	ignore      []string
	languages   []string
	workers     int
	metricsFile string
}

// register declares the shared flags on a command.
func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Config file path (default: .locfang.yaml in CWD or $HOME)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format (console, json, csv, markdown, html, yaml)")
	cmd.Flags().StringVarP(&f.outPath, "out", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&f.showFiles, "show-files", false, "Include per-file rows in the report")
	cmd.Flags().StringSliceVar(&f.ignore, "ignore", nil, "Ignore patterns (case-insensitive regex), replacing the default list")
	cmd.Flags().StringSliceVarP(&f.languages, "languages", "l", nil, "Restrict the report to these languages")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "Write run metrics in Prometheus textfile format")
}

// session bundles everything an analysis command needs at run time.
type session struct {
	cfg      *config.Config
	reporter *report.Reporter
	runner   *analyze.Runner
	metrics  *observability.Metrics
	matcher  *ignore.Matcher
}

// setup resolves configuration (flags override file and environment) and
// builds the analysis pipeline.
func (f *commonFlags) setup(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("format") {
		cfg.Output.Format = f.format
	}

	if flags.Changed("show-files") {
		cfg.Output.ShowFiles = f.showFiles
	}

	if flags.Changed("metrics-file") {
		cfg.Output.MetricsFile = f.metricsFile
	}

	if flags.Changed("ignore") {
		cfg.Analysis.IgnorePatterns = f.ignore
	}

	if flags.Changed("languages") {
		cfg.Analysis.Languages = f.languages
	}

	if flags.Changed("workers") {
		cfg.Analysis.Workers = f.workers
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	matcher, err := buildMatcher(cfg.Analysis.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	metrics := observability.NewMetrics()

	runner, err := analyze.NewRunner(counter.NewAnalyzer(matcher), analyze.Options{
		Workers:   cfg.Analysis.Workers,
		Languages: cfg.Analysis.Languages,
		CacheSize: cfg.Analysis.CacheSize,
		Metrics:   metrics,
	})
	if err != nil {
		return nil, err
	}

	reporter, err := report.New(cfg.Output.Format, cfg.Output.ShowFiles)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, reporter: reporter, runner: runner, metrics: metrics, matcher: matcher}, nil
}

// buildMatcher compiles the ignore patterns; an explicit list replaces the
// defaults entirely.
func buildMatcher(patterns []string) (*ignore.Matcher, error) {
	if len(patterns) == 0 {
		return ignore.Default(), nil
	}

	return ignore.New(patterns)
}

// render writes the report through fn to stdout or the --out file, then
// exports metrics when requested.
func (s *session) render(outPath string, fn func(io.Writer) error) error {
	out := io.Writer(os.Stdout)

	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer file.Close()

		out = file
	}

	err := fn(out)
	if err != nil {
		return err
	}

	if s.cfg.Output.MetricsFile != "" {
		return s.metrics.WriteTextfile(s.cfg.Output.MetricsFile)
	}

	return nil
}
