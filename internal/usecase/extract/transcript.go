package extract

import (
	"html"
	"strings"
)

const (
	transcriptOpen  = `<div class="transcript">`
	transcriptClose = `</div>`
)

// RenderTranscript renders the split transcript as an HTML fragment that is
// safe to inject verbatim into a page. All text is escaped. Blank input
// yields "".
func RenderTranscript(raw string) string {
	tl := Split(raw)
	if len(tl) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(transcriptOpen)
	for _, l := range tl {
		b.WriteString("<p>")
		if l.HasTimecode() {
			b.WriteString(`<span class="timecode">`)
			b.WriteString(html.EscapeString(l.Timecode))
			b.WriteString("</span> ")
		}
		b.WriteString(html.EscapeString(l.Text))
		b.WriteString("</p>")
	}
	b.WriteString(transcriptClose)
	return b.String()
}
