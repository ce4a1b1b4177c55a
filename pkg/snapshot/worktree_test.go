package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locfang/locfang/pkg/ignore"
	"github.com/locfang/locfang/pkg/snapshot"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWorktreeListFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "pkg/util/util.go", "package util\n")
	writeFile(t, root, "docs/guide.md", "# guide\n")

	provider, err := snapshot.NewWorktreeProvider(root, nil)
	require.NoError(t, err)

	files, err := provider.ListFiles()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"main.go", "pkg/util/util.go", "docs/guide.md"}, files)
}

func TestWorktreePrunesIgnoredDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "node_modules/dep/index.js", "module.exports = {}\n")
	writeFile(t, root, "vendor/lib/lib.go", "package lib\n")

	provider, err := snapshot.NewWorktreeProvider(root, ignore.Default())
	require.NoError(t, err)

	files, err := provider.ListFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go"}, files)
}

func TestWorktreeReadFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a/b.py", "x = 1\n")

	provider, err := snapshot.NewWorktreeProvider(root, nil)
	require.NoError(t, err)

	raw, ok := provider.ReadFile("a/b.py")
	require.True(t, ok)
	assert.Equal(t, "x = 1\n", string(raw))

	_, ok = provider.ReadFile("missing.py")
	assert.False(t, ok)
}

func TestWorktreeRejectsMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := snapshot.NewWorktreeProvider(filepath.Join(t.TempDir(), "nope"), nil)
	require.ErrorIs(t, err, snapshot.ErrNotDirectory)
}

func TestWorktreeRejectsFileRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "plain.txt", "hi\n")

	_, err := snapshot.NewWorktreeProvider(filepath.Join(root, "plain.txt"), nil)
	require.ErrorIs(t, err, snapshot.ErrNotDirectory)
}
