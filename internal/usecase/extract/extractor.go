// Package extract turns operator-pasted text into structured content:
// timed transcript lines, rendered transcript HTML, chapter markers and
// FAQ pairs.
//
// Every function here is pure. Any input string is accepted and a valid,
// possibly empty, value is returned; nothing in this package fails.
package extract

import "github.com/johnquangdev/agency-cms/internal/domain/entities"

const (
	DefaultChapterMaxWords = 10
	DefaultChapterMaxRunes = 60
	DefaultFAQMax          = 8
)

// Options holds the tunable limits used by chapter and FAQ extraction
type Options struct {
	ChapterMaxWords int
	ChapterMaxRunes int
	FAQMax          int
}

// DefaultOptions returns the limits used by the package-level functions
func DefaultOptions() Options {
	return Options{
		ChapterMaxWords: DefaultChapterMaxWords,
		ChapterMaxRunes: DefaultChapterMaxRunes,
		FAQMax:          DefaultFAQMax,
	}
}

// Extractor applies a fixed set of Options. The zero value is not useful;
// build one with New.
type Extractor struct {
	opts Options
}

// New creates an Extractor. Non-positive limits fall back to the defaults.
func New(opts Options) *Extractor {
	if opts.ChapterMaxWords <= 0 {
		opts.ChapterMaxWords = DefaultChapterMaxWords
	}
	if opts.ChapterMaxRunes <= 0 {
		opts.ChapterMaxRunes = DefaultChapterMaxRunes
	}
	if opts.FAQMax <= 0 {
		opts.FAQMax = DefaultFAQMax
	}
	return &Extractor{opts: opts}
}

// Options returns the effective limits
func (e *Extractor) Options() Options {
	return e.opts
}

// Chapters derives chapter markers using the extractor's label limits
func (e *Extractor) Chapters(raw string) []entities.Chapter {
	return synthesizeChapters(Split(raw), e.opts.ChapterMaxWords, e.opts.ChapterMaxRunes)
}

// CleanChapters normalizes editor-supplied chapters with the extractor's
// label limits
func (e *Extractor) CleanChapters(chapters []entities.Chapter) []entities.Chapter {
	return cleanChapters(chapters, e.opts.ChapterMaxWords, e.opts.ChapterMaxRunes)
}

// FAQs extracts question/answer pairs. limit <= 0 means the configured FAQMax.
func (e *Extractor) FAQs(raw string, limit int) []entities.FaqPair {
	if limit <= 0 {
		limit = e.opts.FAQMax
	}
	return ExtractFAQs(raw, limit)
}

var defaultExtractor = New(DefaultOptions())

// SynthesizeChapters derives chapters with the default label limits
func SynthesizeChapters(raw string) []entities.Chapter {
	return defaultExtractor.Chapters(raw)
}

// CleanChapters normalizes editor-supplied chapters with the default label
// limits
func CleanChapters(chapters []entities.Chapter) []entities.Chapter {
	return defaultExtractor.CleanChapters(chapters)
}
