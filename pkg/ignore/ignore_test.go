package ignore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locfang/locfang/pkg/ignore"
)

func TestDefaultMatcher(t *testing.T) {
	t.Parallel()

	matcher := ignore.Default()

	tests := []struct {
		path  string
		match bool
	}{
		{path: ".git/config", match: true},
		{path: "src/node_modules/pkg/index.js", match: true},
		{path: "__pycache__/mod.cpython-312.pyc", match: true},
		{path: "build/app.EXE", match: true},
		{path: "release.tar.gz", match: true},
		{path: "src/main.py", match: false},
		{path: "docs/README.md", match: false},
		{path: "environment.go", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.match, matcher.Match(tt.path))
		})
	}
}

func TestCustomPatternsReplaceDefaults(t *testing.T) {
	t.Parallel()

	matcher, err := ignore.New([]string{`_test\.go$`})
	require.NoError(t, err)

	assert.True(t, matcher.Match("pkg/thing_test.go"))

	// The defaults no longer apply.
	assert.False(t, matcher.Match(".git/config"))
}

func TestCaseInsensitiveMatch(t *testing.T) {
	t.Parallel()

	matcher, err := ignore.New([]string{`vendor/`})
	require.NoError(t, err)

	assert.True(t, matcher.Match("Vendor/lib.go"))
	assert.True(t, matcher.Match("a/VENDOR/lib.go"))
}

func TestMalformedPatternFails(t *testing.T) {
	t.Parallel()

	_, err := ignore.New([]string{`[unclosed`})
	require.Error(t, err)
}

func TestEmptyPatternListMatchesNothing(t *testing.T) {
	t.Parallel()

	matcher, err := ignore.New(nil)
	require.NoError(t, err)

	assert.False(t, matcher.Match("anything/at/all.go"))
}
