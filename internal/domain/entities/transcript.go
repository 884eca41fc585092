package entities

// TimedLine is one non-empty line of a pasted transcript. Timecode is empty
// when the line has no leading timecode.
type TimedLine struct {
	Timecode string `json:"timecode" yaml:"timecode"`
	Text     string `json:"text" yaml:"text"`
}

// HasTimecode reports whether the line starts with a recognised timecode
func (l TimedLine) HasTimecode() bool {
	return l.Timecode != ""
}

// Chapter is a named bookmark at a timecode within a video
type Chapter struct {
	T     string `json:"t" yaml:"t" validate:"required"`
	Label string `json:"label" yaml:"label" validate:"required,max=120"`
}

// FaqPair is a question with its answer, both trimmed and non-empty
type FaqPair struct {
	Q string `json:"q" yaml:"q" validate:"required"`
	A string `json:"a" yaml:"a" validate:"required"`
}
