// Package langmap holds the fixed extension-to-language table and the
// per-language comment grammar table. Both are versioned configuration:
// adding a language is a data change, not new control flow.
package langmap

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// CommentGrammar describes how comments look in one language.
// A nil pattern means the language has no marker of that kind.
type CommentGrammar struct {
	SingleLine *regexp.Regexp
	MultiStart *regexp.Regexp
	MultiEnd   *regexp.Regexp
}

// HasMultiLine reports whether the grammar defines a multi-line comment pair.
func (g CommentGrammar) HasMultiLine() bool {
	return g.MultiStart != nil && g.MultiEnd != nil
}

// extensions maps a lower-cased file extension to its language name.
// The table must stay byte-for-byte compatible with existing report output.
var extensions = map[string]string{
	// Python.
	".py":  "Python",
	".pyw": "Python",
	".pyx": "Python",
	".pxd": "Python",

	// JavaScript / TypeScript.
	".js":  "JavaScript",
	".jsx": "JavaScript",
	".ts":  "TypeScript",
	".tsx": "TypeScript",

	// Java.
	".java": "Java",

	// C / C++.
	".c":   "C",
	".cpp": "C++",
	".cc":  "C++",
	".cxx": "C++",
	".h":   "C/C++",
	".hpp": "C++",
	".hxx": "C++",

	// Go.
	".go": "Go",

	// Ruby.
	".rb":  "Ruby",
	".erb": "Ruby",

	// PHP.
	".php": "PHP",

	// C#.
	".cs": "C#",

	// Rust.
	".rs": "Rust",

	// Swift.
	".swift": "Swift",

	// Kotlin.
	".kt":  "Kotlin",
	".kts": "Kotlin",

	// Scala.
	".scala": "Scala",

	// Shell.
	".sh":   "Shell",
	".bash": "Shell",
	".zsh":  "Shell",

	// HTML / CSS.
	".html": "HTML",
	".htm":  "HTML",
	".css":  "CSS",
	".scss": "SCSS",
	".sass": "Sass",
	".less": "Less",

	// Markup and data formats.
	".md":   "Markdown",
	".xml":  "XML",
	".json": "JSON",
	".yaml": "YAML",
	".yml":  "YAML",
	".toml": "TOML",
	".ini":  "INI",
	".cfg":  "INI",
	".conf": "INI",
}

// slashCommentGrammar is shared by the C family and its descendants.
func slashCommentGrammar() CommentGrammar {
	return CommentGrammar{
		SingleLine: regexp.MustCompile(`//.*$`),
		MultiStart: regexp.MustCompile(`/\*`),
		MultiEnd:   regexp.MustCompile(`\*/`),
	}
}

// grammars maps a language name to its comment grammar. Languages absent
// from this table are still counted, but every non-blank line is code.
var grammars = map[string]CommentGrammar{
	"Python": {
		SingleLine: regexp.MustCompile(`#.*$`),
		MultiStart: regexp.MustCompile(`"""|'''`),
		MultiEnd:   regexp.MustCompile(`"""|'''`),
	},
	"JavaScript": slashCommentGrammar(),
	"TypeScript": slashCommentGrammar(),
	"Java":       slashCommentGrammar(),
	"C":          slashCommentGrammar(),
	"C++":        slashCommentGrammar(),
	"C/C++":      slashCommentGrammar(),
	"Go":         slashCommentGrammar(),
	"Ruby": {
		SingleLine: regexp.MustCompile(`#.*$`),
		MultiStart: regexp.MustCompile(`=begin`),
		MultiEnd:   regexp.MustCompile(`=end`),
	},
	"PHP": {
		SingleLine: regexp.MustCompile(`//.*$|#.*$`),
		MultiStart: regexp.MustCompile(`/\*`),
		MultiEnd:   regexp.MustCompile(`\*/`),
	},
	"C#":     slashCommentGrammar(),
	"Rust":   slashCommentGrammar(),
	"Swift":  slashCommentGrammar(),
	"Kotlin": slashCommentGrammar(),
	"Scala":  slashCommentGrammar(),
	"Shell": {
		SingleLine: regexp.MustCompile(`#.*$`),
	},
}

// LanguageForPath resolves a language by the lower-cased final extension only.
// There is no shebang or content sniffing; an unknown extension returns false
// and the file is excluded from all statistics.
func LanguageForPath(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", false
	}

	language, ok := extensions[ext]

	return language, ok
}

// GrammarFor returns the comment grammar for a language. The zero grammar is
// returned for languages without comment detection.
func GrammarFor(language string) (CommentGrammar, bool) {
	grammar, ok := grammars[language]

	return grammar, ok
}

// Languages returns all known language names in sorted order.
func Languages() []string {
	seen := make(map[string]bool, len(extensions))
	for _, language := range extensions {
		seen[language] = true
	}

	names := make([]string, 0, len(seen))
	for language := range seen {
		names = append(names, language)
	}

	sort.Strings(names)

	return names
}

// ExtensionsFor returns the extensions mapped to a language, sorted.
func ExtensionsFor(language string) []string {
	var exts []string

	for ext, lang := range extensions {
		if lang == language {
			exts = append(exts, ext)
		}
	}

	sort.Strings(exts)

	return exts
}
