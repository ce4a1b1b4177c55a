// Package observability collects run metrics for the analyzer. A one-shot
// CLI has nothing to scrape, so metrics live in a private registry and are
// exported to a Prometheus textfile on request.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// durationBuckets covers sub-second directory scans up to multi-minute
// history walks.
var durationBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600}

// Metrics holds the instruments recorded during an analysis run.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	filesAnalyzed   prometheus.Counter
	filesExcluded   prometheus.Counter
	bytesRead       prometheus.Counter
	commitsAnalyzed prometheus.Counter
	commitsSkipped  prometheus.Counter
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	runDuration     prometheus.Histogram
}

// NewMetrics creates a metrics set backed by its own registry, so repeated
// construction never collides with previously registered collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		filesAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Name: "locfang_files_analyzed_total",
			Help: "Files classified into line statistics.",
		}),
		filesExcluded: factory.NewCounter(prometheus.CounterOpts{
			Name: "locfang_files_excluded_total",
			Help: "Files skipped: ignored, binary, unknown extension, or unreadable.",
		}),
		bytesRead: factory.NewCounter(prometheus.CounterOpts{
			Name: "locfang_bytes_read_total",
			Help: "Raw bytes read from snapshots.",
		}),
		commitsAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Name: "locfang_commits_analyzed_total",
			Help: "Commits fully analyzed during history walks.",
		}),
		commitsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "locfang_commits_skipped_total",
			Help: "Commits skipped after an analysis failure.",
		}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "locfang_blob_cache_hits_total",
			Help: "Classifications served from the blob cache.",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "locfang_blob_cache_misses_total",
			Help: "Classifications that required reading the blob.",
		}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "locfang_run_duration_seconds",
			Help:    "Wall-clock duration of one analysis run.",
			Buckets: durationBuckets,
		}),
	}
}

// FileAnalyzed records one classified file and the bytes read for it.
func (m *Metrics) FileAnalyzed(size int64) {
	if m == nil {
		return
	}

	m.filesAnalyzed.Inc()
	m.bytesRead.Add(float64(size))
}

// FileExcluded records one skipped file.
func (m *Metrics) FileExcluded() {
	if m == nil {
		return
	}

	m.filesExcluded.Inc()
}

// CommitAnalyzed records one fully analyzed commit.
func (m *Metrics) CommitAnalyzed() {
	if m == nil {
		return
	}

	m.commitsAnalyzed.Inc()
}

// CommitSkipped records one commit dropped after a failure.
func (m *Metrics) CommitSkipped() {
	if m == nil {
		return
	}

	m.commitsSkipped.Inc()
}

// CacheHit records a classification served from cache.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}

	m.cacheHits.Inc()
}

// CacheMiss records a classification that had to read the blob.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}

	m.cacheMisses.Inc()
}

// ObserveRunDuration records the wall-clock duration of one run.
func (m *Metrics) ObserveRunDuration(d time.Duration) {
	if m == nil {
		return
	}

	m.runDuration.Observe(d.Seconds())
}

// WriteTextfile exports the registry in the Prometheus textfile collector
// format, for the node_exporter textfile directory or offline inspection.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}

	err := prometheus.WriteToTextfile(path, m.registry)
	if err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}

	return nil
}
