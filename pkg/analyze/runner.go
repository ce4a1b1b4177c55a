// Package analyze fans file classification out over a bounded worker pool
// and folds the per-worker results into project statistics.
package analyze

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/locfang/locfang/internal/observability"
	"github.com/locfang/locfang/pkg/counter"
	"github.com/locfang/locfang/pkg/snapshot"
)

// DefaultCacheSize is the default entry capacity of the classification cache.
// Entries are small (one FileStats per blob), so the cap is generous.
const DefaultCacheSize = 16384

// Options configures a Runner.
type Options struct {
	// Workers bounds the classification pool. Zero or negative means
	// runtime.NumCPU.
	Workers int

	// Languages restricts the result to the named languages. Empty means all.
	Languages []string

	// CacheSize is the entry capacity of the blob classification cache.
	// Zero means DefaultCacheSize; negative disables the cache.
	CacheSize int

	// Metrics receives run instrumentation. Nil disables recording.
	Metrics *observability.Metrics
}

// Runner drives one or more snapshot analyses. The classification cache is
// keyed by blob content ID and shared across runs, so walking consecutive
// commits only re-reads blobs that actually changed.
type Runner struct {
	analyzer  *counter.Analyzer
	workers   int
	languages map[string]struct{}
	metrics   *observability.Metrics
	cache     *lru.Cache[string, counter.FileStats]
}

// NewRunner creates a runner around the given analyzer.
func NewRunner(analyzer *counter.Analyzer, opts Options) (*Runner, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var languages map[string]struct{}
	if len(opts.Languages) > 0 {
		languages = make(map[string]struct{}, len(opts.Languages))
		for _, lang := range opts.Languages {
			languages[lang] = struct{}{}
		}
	}

	var cache *lru.Cache[string, counter.FileStats]

	if opts.CacheSize >= 0 {
		size := opts.CacheSize
		if size == 0 {
			size = DefaultCacheSize
		}

		var err error

		cache, err = lru.New[string, counter.FileStats](size)
		if err != nil {
			return nil, fmt.Errorf("create classification cache: %w", err)
		}
	}

	return &Runner{
		analyzer:  analyzer,
		workers:   workers,
		languages: languages,
		metrics:   opts.Metrics,
		cache:     cache,
	}, nil
}

// Run analyzes every file of the snapshot and returns the aggregated
// statistics. Files are distributed over the worker pool; each worker folds
// into its own accumulator and the partials are merged at the end, so the
// result is independent of scheduling order.
func (r *Runner) Run(ctx context.Context, provider snapshot.Provider) (*counter.ProjectStats, error) {
	paths, err := provider.ListFiles()
	if err != nil {
		return nil, fmt.Errorf("list snapshot files: %w", err)
	}

	pathCh := make(chan string)
	partials := make([]*counter.Accumulator, r.workers)

	var wg sync.WaitGroup

	for i := range r.workers {
		acc := counter.NewAccumulator()
		partials[i] = acc

		wg.Add(1)

		go func() {
			defer wg.Done()

			for path := range pathCh {
				r.analyzeOne(provider, path, acc)
			}
		}()
	}

	err = nil

feed:
	for _, path := range paths {
		if ctx.Err() != nil {
			err = ctx.Err()

			break feed
		}

		select {
		case <-ctx.Done():
			err = ctx.Err()

			break feed
		case pathCh <- path:
		}
	}

	close(pathCh)
	wg.Wait()

	if err != nil {
		return nil, err
	}

	merged := partials[0]
	for _, acc := range partials[1:] {
		merged.Merge(acc)
	}

	return merged.Finalize(), nil
}

// analyzeOne classifies a single file into the accumulator, consulting the
// blob cache when the provider can name a stable content ID for the path.
func (r *Runner) analyzeOne(provider snapshot.Provider, path string, acc *counter.Accumulator) {
	contentID, cacheable := r.contentID(provider, path)

	if cacheable {
		if stats, ok := r.cache.Get(contentID); ok {
			r.metrics.CacheHit()
			r.addFiltered(acc, stats.WithPath(path))

			return
		}

		r.metrics.CacheMiss()
	}

	raw, ok := provider.ReadFile(path)
	if !ok {
		r.metrics.FileExcluded()

		return
	}

	stats, ok := r.analyzer.Analyze(path, raw)
	if !ok {
		r.metrics.FileExcluded()

		return
	}

	r.metrics.FileAnalyzed(stats.Size)

	if cacheable {
		r.cache.Add(contentID, stats)
	}

	r.addFiltered(acc, stats)
}

// contentID resolves the cache key for a path, when caching is possible.
func (r *Runner) contentID(provider snapshot.Provider, path string) (string, bool) {
	if r.cache == nil {
		return "", false
	}

	identifier, ok := provider.(snapshot.ContentIdentifier)
	if !ok {
		return "", false
	}

	return identifier.ContentID(path)
}

// addFiltered folds the record into the accumulator unless a language filter
// excludes it.
func (r *Runner) addFiltered(acc *counter.Accumulator, stats counter.FileStats) {
	if r.languages != nil {
		if _, ok := r.languages[stats.Language]; !ok {
			return
		}
	}

	acc.Add(stats)
}
