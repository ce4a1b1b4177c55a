package counter

import (
	"strings"

	"github.com/locfang/locfang/pkg/langmap"
)

// LineTally is the result of classifying one file's text.
type LineTally struct {
	Total   int
	Code    int
	Comment int
	Blank   int
}

// ClassifyLines walks the decoded text of one file line by line and tallies
// code, comment, and blank lines under the grammar's comment markers.
//
// Classification precedence per physical line:
//  1. blank after trimming whitespace (checked even inside an open multi-line
//     comment: a literal blank line inside a block comment counts as blank),
//  2. multi-line comment opening and closing on the same line,
//  3. multi-line comment opening,
//  4. line inside an open multi-line comment (closes it when the end marker
//     appears),
//  5. single-line comment marker anywhere in the line,
//  6. code.
//
// Marker matching is an unanchored substring search, so code followed by a
// trailing comment marker counts the whole line as a comment line. That
// matches the established output of this tool and is kept for compatibility;
// a marker inside a string literal is misclassified the same way.
func ClassifyLines(text string, grammar langmap.CommentGrammar) LineTally {
	var tally LineTally

	insideMultiline := false

	for _, line := range splitLines(text) {
		tally.Total++

		switch {
		case strings.TrimSpace(line) == "":
			tally.Blank++

		case grammar.HasMultiLine() && opensAndCloses(line, grammar):
			tally.Comment++

		case grammar.HasMultiLine() && grammar.MultiStart.MatchString(line):
			tally.Comment++
			insideMultiline = true

		case insideMultiline:
			tally.Comment++

			if grammar.HasMultiLine() && grammar.MultiEnd.MatchString(line) {
				insideMultiline = false
			}

		case grammar.SingleLine != nil && grammar.SingleLine.MatchString(line):
			tally.Comment++

		default:
			tally.Code++
		}
	}

	return tally
}

// opensAndCloses reports whether a multi-line comment both opens and closes
// on this line: the end marker must match after the start marker's match, so
// languages whose start and end markers share a pattern (Python's triple
// quotes) do not treat a lone delimiter as self-closing.
func opensAndCloses(line string, grammar langmap.CommentGrammar) bool {
	loc := grammar.MultiStart.FindStringIndex(line)
	if loc == nil {
		return false
	}

	return grammar.MultiEnd.MatchString(line[loc[1]:])
}

// splitLines splits text into physical lines with line endings normalized:
// the trailing newline of the last line does not produce a phantom blank
// line, and carriage returns are stripped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
