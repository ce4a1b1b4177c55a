package counter

import "sort"

// Accumulator folds FileStats records into project totals. The fold is
// commutative and associative: accumulators filled in any order, or filled in
// parallel and merged, finalize to identical ProjectStats. This is the
// property that makes worker fan-out safe.
type Accumulator struct {
	files     []FileStats
	languages map[string]*LanguageStats
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{languages: make(map[string]*LanguageStats)}
}

// Add folds one file into the accumulator.
func (acc *Accumulator) Add(file FileStats) {
	acc.files = append(acc.files, file)

	lang, ok := acc.languages[file.Language]
	if !ok {
		lang = &LanguageStats{Language: file.Language}
		acc.languages[file.Language] = lang
	}

	lang.FileCount++
	lang.TotalLines += file.TotalLines
	lang.CodeLines += file.CodeLines
	lang.CommentLines += file.CommentLines
	lang.BlankLines += file.BlankLines
	lang.TotalSize += file.Size
}

// Merge folds another accumulator into this one. The other accumulator must
// not be used afterwards.
func (acc *Accumulator) Merge(other *Accumulator) {
	for _, file := range other.files {
		acc.Add(file)
	}
}

// Finalize builds the immutable ProjectStats. Files are ordered by path so
// the result is independent of fold order.
func (acc *Accumulator) Finalize() *ProjectStats {
	files := make([]FileStats, len(acc.files))
	copy(files, acc.files)
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	stats := &ProjectStats{
		Languages: make(map[string]*LanguageStats, len(acc.languages)),
		Files:     files,
	}

	for name, lang := range acc.languages {
		langCopy := *lang
		stats.Languages[name] = &langCopy
	}

	for _, file := range files {
		stats.TotalFiles++
		stats.TotalLines += file.TotalLines
		stats.CodeLines += file.CodeLines
		stats.CommentLines += file.CommentLines
		stats.BlankLines += file.BlankLines
		stats.TotalSize += file.Size
	}

	return stats
}

// Aggregate reduces a sequence of FileStats to ProjectStats in one call.
func Aggregate(files []FileStats) *ProjectStats {
	acc := NewAccumulator()

	for _, file := range files {
		acc.Add(file)
	}

	return acc.Finalize()
}
