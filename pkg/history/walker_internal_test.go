package history

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locfang/locfang/internal/observability"
	"github.com/locfang/locfang/pkg/counter"
	"github.com/locfang/locfang/pkg/gitlib"
)

func TestChangeSetFromPartitionsAndSorts(t *testing.T) {
	t.Parallel()

	changes := gitlib.Changes{
		{Action: gitlib.Modify, From: gitlib.ChangeEntry{Path: "b.go"}, To: gitlib.ChangeEntry{Path: "b.go"}},
		{Action: gitlib.Insert, To: gitlib.ChangeEntry{Path: "z.go"}},
		{Action: gitlib.Insert, To: gitlib.ChangeEntry{Path: "a.go"}},
		{Action: gitlib.Delete, From: gitlib.ChangeEntry{Path: "gone.py"}},
	}

	set := changeSetFrom(changes)

	assert.Equal(t, []string{"a.go", "z.go"}, set.Added)
	assert.Equal(t, []string{"gone.py"}, set.Removed)
	assert.Equal(t, []string{"b.go"}, set.Modified)
}

func TestChangeSetFromEmpty(t *testing.T) {
	t.Parallel()

	set := changeSetFrom(nil)

	assert.Empty(t, set.Added)
	assert.Empty(t, set.Removed)
	assert.Empty(t, set.Modified)
	require.NotNil(t, set.Added)
}

func TestAnalyzeHashesSkipsFailingCommit(t *testing.T) {
	t.Parallel()

	first := gitlib.NewHash("1111111111111111111111111111111111111111")
	broken := gitlib.NewHash("2222222222222222222222222222222222222222")
	last := gitlib.NewHash("3333333333333333333333333333333333333333")

	analyze := func(_ context.Context, hash gitlib.Hash) (*CommitStats, error) {
		if hash == broken {
			return nil, errors.New("corrupt tree")
		}

		return &CommitStats{Hash: hash.String()}, nil
	}

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	metrics := observability.NewMetrics()

	results, err := analyzeHashes(context.Background(), []gitlib.Hash{first, broken, last}, analyze, metrics, logger)
	require.NoError(t, err)

	// The failing commit is dropped and the walk continues in order.
	require.Len(t, results, 2)
	assert.Equal(t, first.String(), results[0].Hash)
	assert.Equal(t, last.String(), results[1].Hash)

	assert.Contains(t, logBuf.String(), broken.String())
	assert.Contains(t, logBuf.String(), "corrupt tree")

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, metrics.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(raw), "locfang_commits_analyzed_total 2")
	assert.Contains(t, string(raw), "locfang_commits_skipped_total 1")
}

func TestAnalyzeHashesCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	analyze := func(context.Context, gitlib.Hash) (*CommitStats, error) {
		return &CommitStats{}, nil
	}

	hashes := []gitlib.Hash{gitlib.NewHash("1111111111111111111111111111111111111111")}

	_, err := analyzeHashes(ctx, hashes, analyze, nil, slog.Default())
	require.ErrorIs(t, err, context.Canceled)
}

func TestCodeLineDeltas(t *testing.T) {
	t.Parallel()

	oldStats := counter.Aggregate([]counter.FileStats{
		counter.NewFileStats("kept.go", "Go", 100, 0, 0, 1),
		counter.NewFileStats("shrunk.py", "Python", 50, 0, 0, 1),
	})
	newStats := counter.Aggregate([]counter.FileStats{
		counter.NewFileStats("kept.go", "Go", 120, 0, 0, 1),
		counter.NewFileStats("shrunk.py", "Python", 30, 0, 0, 1),
	})

	deltas := codeLineDeltas([]string{"kept.go", "shrunk.py"}, oldStats, newStats)

	assert.Equal(t, map[string]int{
		"kept.go":   20,
		"shrunk.py": -20,
	}, deltas)
}

func TestCodeLineDeltasSkipsUnclassifiedSides(t *testing.T) {
	t.Parallel()

	oldStats := counter.Aggregate([]counter.FileStats{
		counter.NewFileStats("a.go", "Go", 10, 0, 0, 1),
	})
	// a.go became binary in the new snapshot and was excluded there.
	newStats := counter.Aggregate(nil)

	deltas := codeLineDeltas([]string{"a.go"}, oldStats, newStats)

	assert.Empty(t, deltas)
}
