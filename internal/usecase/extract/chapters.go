package extract

import (
	"strings"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
)

const ellipsis = "…"

func synthesizeChapters(tl []entities.TimedLine, maxWords, maxRunes int) []entities.Chapter {
	chapters := make([]entities.Chapter, 0)
	seen := make(map[string]struct{})

	for _, l := range tl {
		if !l.HasTimecode() {
			continue
		}
		if _, dup := seen[l.Timecode]; dup {
			continue
		}
		label := chapterLabel(l.Text, maxWords, maxRunes)
		if label == "" {
			continue
		}
		seen[l.Timecode] = struct{}{}
		chapters = append(chapters, entities.Chapter{T: l.Timecode, Label: label})
	}
	return chapters
}

// cleanChapters applies the synthesized-chapter rules to editor-supplied
// chapters: brackets are stripped from t, labels are shortened like
// synthesized ones, and the first chapter at a timecode wins.
func cleanChapters(chapters []entities.Chapter, maxWords, maxRunes int) []entities.Chapter {
	out := make([]entities.Chapter, 0, len(chapters))
	seen := make(map[string]struct{}, len(chapters))
	for _, c := range chapters {
		t := strings.TrimSpace(strings.Trim(strings.TrimSpace(c.T), "[]"))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		label := chapterLabel(c.Label, maxWords, maxRunes)
		if label == "" {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, entities.Chapter{T: t, Label: label})
	}
	return out
}

// chapterLabel keeps the first maxWords words. Labels longer than maxRunes
// are cut on a word boundary when possible and end with an ellipsis.
func chapterLabel(text string, maxWords, maxRunes int) string {
	words := strings.Fields(text)
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	label := strings.Join(words, " ")

	r := []rune(label)
	if len(r) <= maxRunes {
		return label
	}

	cut := string(r[:maxRunes])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ") + ellipsis
}
