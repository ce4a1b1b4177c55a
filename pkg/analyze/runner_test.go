package analyze_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locfang/locfang/pkg/analyze"
	"github.com/locfang/locfang/pkg/counter"
)

// memoryProvider serves an in-memory file set, optionally with content IDs.
// ReadFile is called from the runner's workers, so the read counter is
// mutex-guarded.
type memoryProvider struct {
	files      map[string]string
	contentIDs map[string]string

	mu    sync.Mutex
	reads map[string]int
}

func newMemoryProvider(files map[string]string) *memoryProvider {
	return &memoryProvider{files: files, reads: make(map[string]int)}
}

func (p *memoryProvider) ListFiles() ([]string, error) {
	paths := make([]string, 0, len(p.files))
	for path := range p.files {
		paths = append(paths, path)
	}

	return paths, nil
}

func (p *memoryProvider) ReadFile(path string) ([]byte, bool) {
	content, ok := p.files[path]
	if !ok {
		return nil, false
	}

	p.mu.Lock()
	p.reads[path]++
	p.mu.Unlock()

	return []byte(content), true
}

func (p *memoryProvider) readCount(path string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.reads[path]
}

func (p *memoryProvider) ContentID(path string) (string, bool) {
	id, ok := p.contentIDs[path]

	return id, ok
}

func newRunner(t *testing.T, opts analyze.Options) *analyze.Runner {
	t.Helper()

	runner, err := analyze.NewRunner(counter.NewAnalyzer(nil), opts)
	require.NoError(t, err)

	return runner
}

func TestRunAggregatesSnapshot(t *testing.T) {
	t.Parallel()

	provider := newMemoryProvider(map[string]string{
		"main.go":  "package main\n\nfunc main() {}\n",
		"util.py":  "# helper\nx = 1\n",
		"notes.xyz": "unclassified\n",
	})

	runner := newRunner(t, analyze.Options{Workers: 4})

	stats, err := runner.Run(context.Background(), provider)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalFiles)
	require.Len(t, stats.Files, 2)
	assert.Equal(t, "main.go", stats.Files[0].Path)
	assert.Equal(t, "util.py", stats.Files[1].Path)
	assert.Contains(t, stats.Languages, "Go")
	assert.Contains(t, stats.Languages, "Python")
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"a.go": "package a\n",
		"b.go": "package b\n// b\n",
		"c.py": "x = 1\n\n",
		"d.sh": "#!/bin/sh\necho hi\n",
	}

	single, err := newRunner(t, analyze.Options{Workers: 1}).Run(context.Background(), newMemoryProvider(files))
	require.NoError(t, err)

	many, err := newRunner(t, analyze.Options{Workers: 8}).Run(context.Background(), newMemoryProvider(files))
	require.NoError(t, err)

	assert.Equal(t, single, many)
}

func TestRunLanguageFilter(t *testing.T) {
	t.Parallel()

	provider := newMemoryProvider(map[string]string{
		"main.go": "package main\n",
		"app.py":  "x = 1\n",
	})

	runner := newRunner(t, analyze.Options{Workers: 2, Languages: []string{"Go"}})

	stats, err := runner.Run(context.Background(), provider)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalFiles)
	assert.Contains(t, stats.Languages, "Go")
	assert.NotContains(t, stats.Languages, "Python")
}

func TestRunReusesCachedClassification(t *testing.T) {
	t.Parallel()

	provider := newMemoryProvider(map[string]string{"pkg/a.go": "package a\n"})
	provider.contentIDs = map[string]string{"pkg/a.go": "blob-1"}

	runner := newRunner(t, analyze.Options{Workers: 1})

	first, err := runner.Run(context.Background(), provider)
	require.NoError(t, err)

	second, err := runner.Run(context.Background(), provider)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// The second run was served from the classification cache.
	assert.Equal(t, 1, provider.readCount("pkg/a.go"))
}

func TestRunCachedEntryFollowsRenamedPath(t *testing.T) {
	t.Parallel()

	before := newMemoryProvider(map[string]string{"old.go": "package a\n"})
	before.contentIDs = map[string]string{"old.go": "blob-1"}

	runner := newRunner(t, analyze.Options{Workers: 1})

	_, err := runner.Run(context.Background(), before)
	require.NoError(t, err)

	after := newMemoryProvider(map[string]string{"new.go": "package a\n"})
	after.contentIDs = map[string]string{"new.go": "blob-1"}

	stats, err := runner.Run(context.Background(), after)
	require.NoError(t, err)

	require.Len(t, stats.Files, 1)
	assert.Equal(t, "new.go", stats.Files[0].Path)
	assert.Zero(t, after.readCount("new.go"))
}

func TestRunCountsReadsUnderParallelWorkers(t *testing.T) {
	t.Parallel()

	files := make(map[string]string, 64)
	for i := range 64 {
		files[fmt.Sprintf("pkg%02d/file.go", i)] = "package p\n"
	}

	provider := newMemoryProvider(files)

	stats, err := newRunner(t, analyze.Options{Workers: 8}).Run(context.Background(), provider)
	require.NoError(t, err)
	assert.Equal(t, 64, stats.TotalFiles)

	for path := range files {
		assert.Equal(t, 1, provider.readCount(path))
	}
}

func TestRunCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := newMemoryProvider(map[string]string{"a.go": "package a\n"})

	_, err := newRunner(t, analyze.Options{Workers: 1}).Run(ctx, provider)
	require.ErrorIs(t, err, context.Canceled)
}
