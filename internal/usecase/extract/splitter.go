package extract

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
)

// leadingTimecode matches "00:15 text", "[1:02:03] text" and "12:00text"
var leadingTimecode = regexp.MustCompile(`^\[?(\d{1,2}:\d{2}(?::\d{2})?)\]?\s*(.*)$`)

// lines normalizes raw input: CR removed, split on LF, each line trimmed,
// blank lines dropped.
func lines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r", "")
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Split turns a raw transcript into one TimedLine per non-empty line, in
// input order. Lines without a leading timecode keep their full text.
func Split(raw string) []entities.TimedLine {
	ls := lines(raw)
	out := make([]entities.TimedLine, 0, len(ls))
	for _, l := range ls {
		m := leadingTimecode.FindStringSubmatch(l)
		if m == nil {
			out = append(out, entities.TimedLine{Text: l})
			continue
		}
		out = append(out, entities.TimedLine{
			Timecode: m[1],
			Text:     strings.TrimSpace(m[2]),
		})
	}
	return out
}

// TranscriptText returns the text of every line with timecodes removed,
// joined by newlines.
func TranscriptText(raw string) string {
	tl := Split(raw)
	texts := make([]string, 0, len(tl))
	for _, l := range tl {
		if l.Text == "" {
			continue
		}
		texts = append(texts, l.Text)
	}
	return strings.Join(texts, "\n")
}
