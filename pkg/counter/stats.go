// Package counter classifies source text into code, comment, and blank lines
// and folds per-file results into per-language and project-wide statistics.
package counter

// FileStats holds the line statistics for a single classified file.
// Created once per file and never mutated afterwards.
type FileStats struct {
	Path         string `json:"file_path" yaml:"file_path"`
	Language     string `json:"language" yaml:"language"`
	TotalLines   int    `json:"total_lines" yaml:"total_lines"`
	CodeLines    int    `json:"code_lines" yaml:"code_lines"`
	CommentLines int    `json:"comment_lines" yaml:"comment_lines"`
	BlankLines   int    `json:"blank_lines" yaml:"blank_lines"`
	Size         int64  `json:"file_size" yaml:"file_size"`
}

// NewFileStats builds a FileStats record. The total is always recomputed from
// the three class counts; a caller-supplied total is never trusted.
func NewFileStats(path, language string, code, comment, blank int, size int64) FileStats {
	return FileStats{
		Path:         path,
		Language:     language,
		TotalLines:   code + comment + blank,
		CodeLines:    code,
		CommentLines: comment,
		BlankLines:   blank,
		Size:         size,
	}
}

// WithPath returns a copy of the stats record under a different path.
// Used when a cached classification for the same blob is reused.
func (f FileStats) WithPath(path string) FileStats {
	f.Path = path

	return f
}

// LanguageStats accumulates the statistics of every file of one language.
type LanguageStats struct {
	Language     string `json:"language" yaml:"language"`
	FileCount    int    `json:"file_count" yaml:"file_count"`
	TotalLines   int    `json:"total_lines" yaml:"total_lines"`
	CodeLines    int    `json:"code_lines" yaml:"code_lines"`
	CommentLines int    `json:"comment_lines" yaml:"comment_lines"`
	BlankLines   int    `json:"blank_lines" yaml:"blank_lines"`
	TotalSize    int64  `json:"total_size" yaml:"total_size"`
}

// ProjectStats holds whole-snapshot totals, the per-language breakdown, and
// the constituent file records. Built once by the aggregator; rebuilt rather
// than patched when the input set changes.
type ProjectStats struct {
	TotalFiles   int                       `json:"total_files" yaml:"total_files"`
	TotalLines   int                       `json:"total_lines" yaml:"total_lines"`
	CodeLines    int                       `json:"code_lines" yaml:"code_lines"`
	CommentLines int                       `json:"comment_lines" yaml:"comment_lines"`
	BlankLines   int                       `json:"blank_lines" yaml:"blank_lines"`
	TotalSize    int64                     `json:"total_size" yaml:"total_size"`
	Languages    map[string]*LanguageStats `json:"languages" yaml:"languages"`
	Files        []FileStats               `json:"files" yaml:"files"`
}
