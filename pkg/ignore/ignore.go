// Package ignore decides which paths are excluded from analysis.
// Matching is case-insensitive regular-expression search against the full
// path string, so directory patterns like `node_modules/` match anywhere in
// the path.
package ignore

import (
	"fmt"
	"regexp"
)

// DefaultPatterns is the fixed ignore list applied when no custom patterns
// are supplied: version-control metadata, dependency and build directories,
// compiled and archive artifacts, editor directories, and OS droppings.
func DefaultPatterns() []string {
	return []string{
		`\.git/`,
		`\.svn/`,
		`\.hg/`,
		`__pycache__/`,
		`\.pyc$`,
		`\.pyo$`,
		`\.pyd$`,
		`\.so$`,
		`\.dll$`,
		`\.exe$`,
		`\.o$`,
		`\.a$`,
		`\.lib$`,
		`\.dylib$`,
		`\.class$`,
		`\.jar$`,
		`\.war$`,
		`\.ear$`,
		`\.zip$`,
		`\.tar$`,
		`\.gz$`,
		`\.bz2$`,
		`\.xz$`,
		`\.7z$`,
		`\.rar$`,
		`node_modules/`,
		`vendor/`,
		`\.venv/`,
		`venv/`,
		`env/`,
		`\.env/`,
		`\.idea/`,
		`\.vscode/`,
		`\.DS_Store$`,
		`Thumbs\.db$`,
	}
}

// Matcher matches paths against a compiled pattern list.
// Matcher values are immutable and safe for concurrent use.
type Matcher struct {
	patterns []*regexp.Regexp
}

// New compiles a matcher from the given patterns. Each pattern is compiled
// case-insensitively; a malformed pattern fails the whole construction.
func New(patterns []string) (*Matcher, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(`(?i)` + pattern)
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return &Matcher{patterns: compiled}, nil
}

// Default returns a matcher over DefaultPatterns.
func Default() *Matcher {
	matcher, err := New(DefaultPatterns())
	if err != nil {
		// The default list is fixed configuration; it always compiles.
		panic("ignore: default patterns failed to compile: " + err.Error())
	}

	return matcher
}

// Match reports whether the path matches any ignore pattern.
func (m *Matcher) Match(path string) bool {
	for _, re := range m.patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
