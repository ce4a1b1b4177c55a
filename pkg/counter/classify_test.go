package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locfang/locfang/pkg/counter"
	"github.com/locfang/locfang/pkg/langmap"
)

func grammarFor(t *testing.T, language string) langmap.CommentGrammar {
	t.Helper()

	grammar, ok := langmap.GrammarFor(language)
	require.True(t, ok)

	return grammar
}

func TestClassifyLinesPython(t *testing.T) {
	t.Parallel()

	text := "# comment\nx = 1\n\ny = 2\nz = 3\n"

	tally := counter.ClassifyLines(text, grammarFor(t, "Python"))

	assert.Equal(t, 5, tally.Total)
	assert.Equal(t, 3, tally.Code)
	assert.Equal(t, 1, tally.Comment)
	assert.Equal(t, 1, tally.Blank)
}

func TestClassifyLinesBlockComment(t *testing.T) {
	t.Parallel()

	text := "/*\n * explanation\n */\nfunc main() {}\n"

	tally := counter.ClassifyLines(text, grammarFor(t, "Go"))

	assert.Equal(t, 4, tally.Total)
	assert.Equal(t, 1, tally.Code)
	assert.Equal(t, 3, tally.Comment)
	assert.Equal(t, 0, tally.Blank)
}

func TestClassifyLinesBlankInsideBlockComment(t *testing.T) {
	t.Parallel()

	// A literal blank line inside an open block comment counts as blank,
	// not comment.
	text := "/*\n\n*/\ncode\n"

	tally := counter.ClassifyLines(text, grammarFor(t, "Go"))

	assert.Equal(t, 4, tally.Total)
	assert.Equal(t, 1, tally.Code)
	assert.Equal(t, 2, tally.Comment)
	assert.Equal(t, 1, tally.Blank)
}

func TestClassifyLinesSameLineOpenClose(t *testing.T) {
	t.Parallel()

	text := "/* one line */\ncode\n"

	tally := counter.ClassifyLines(text, grammarFor(t, "Go"))

	assert.Equal(t, 2, tally.Total)
	assert.Equal(t, 1, tally.Code)
	assert.Equal(t, 1, tally.Comment)
}

func TestClassifyLinesLoneTripleQuoteOpensMultiline(t *testing.T) {
	t.Parallel()

	// A single triple quote must not self-close; the following line is
	// inside the comment.
	text := "\"\"\"\ndocumentation\n"

	tally := counter.ClassifyLines(text, grammarFor(t, "Python"))

	assert.Equal(t, 2, tally.Total)
	assert.Equal(t, 2, tally.Comment)
	assert.Equal(t, 0, tally.Code)
}

func TestClassifyLinesTrailingCommentMarker(t *testing.T) {
	t.Parallel()

	// Substring matching is unanchored: a trailing marker counts the whole
	// line as a comment line.
	text := "x := 1 // set x\n"

	tally := counter.ClassifyLines(text, grammarFor(t, "Go"))

	assert.Equal(t, 1, tally.Total)
	assert.Equal(t, 1, tally.Comment)
	assert.Equal(t, 0, tally.Code)
}

func TestClassifyLinesCRLFAndNoTrailingNewline(t *testing.T) {
	t.Parallel()

	tally := counter.ClassifyLines("a\r\nb\r\nc", grammarFor(t, "Go"))

	assert.Equal(t, 3, tally.Total)
	assert.Equal(t, 3, tally.Code)
	assert.Equal(t, 0, tally.Blank)
}

func TestClassifyLinesEmptyText(t *testing.T) {
	t.Parallel()

	tally := counter.ClassifyLines("", grammarFor(t, "Go"))

	assert.Equal(t, counter.LineTally{}, tally)
}

func TestClassifyLinesSingleLineOnlyGrammar(t *testing.T) {
	t.Parallel()

	text := "# header\necho hi\n\n"

	tally := counter.ClassifyLines(text, grammarFor(t, "Shell"))

	assert.Equal(t, 3, tally.Total)
	assert.Equal(t, 1, tally.Code)
	assert.Equal(t, 1, tally.Comment)
	assert.Equal(t, 1, tally.Blank)
}
