package counter

import (
	"bytes"
	"strings"

	"github.com/locfang/locfang/pkg/ignore"
	"github.com/locfang/locfang/pkg/langmap"
)

// binarySniffLen is how many leading bytes are inspected for NUL bytes.
const binarySniffLen = 1024

// Analyzer classifies raw file content into a FileStats record.
// Analyzer values are immutable and safe for concurrent use.
type Analyzer struct {
	ignorer *ignore.Matcher
}

// NewAnalyzer creates an analyzer using the given ignore matcher.
// A nil matcher means no path is ignored.
func NewAnalyzer(ignorer *ignore.Matcher) *Analyzer {
	return &Analyzer{ignorer: ignorer}
}

// Analyze classifies one file. The second return value is false when the file
// is excluded from statistics: ignored path, binary content, or unrecognized
// extension. Exclusion is not an error; the file is silently dropped.
func (a *Analyzer) Analyze(path string, raw []byte) (FileStats, bool) {
	if a.ignorer != nil && a.ignorer.Match(path) {
		return FileStats{}, false
	}

	if IsBinary(raw) {
		return FileStats{}, false
	}

	language, ok := langmap.LanguageForPath(path)
	if !ok {
		return FileStats{}, false
	}

	grammar, _ := langmap.GrammarFor(language)
	tally := ClassifyLines(DecodeText(raw), grammar)

	return NewFileStats(path, language, tally.Code, tally.Comment, tally.Blank, int64(len(raw))), true
}

// IsBinary reports whether content looks binary: any NUL byte within the
// first 1024 bytes.
func IsBinary(raw []byte) bool {
	sniff := raw
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}

	return bytes.IndexByte(sniff, 0x00) >= 0
}

// DecodeText interprets raw bytes as UTF-8, dropping invalid sequences so
// malformed encodings degrade gracefully instead of excluding the file.
func DecodeText(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "")
}
