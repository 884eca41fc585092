package seo

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/johnquangdev/agency-cms/internal/usecase/extract"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		maxRunes int
		want     string
	}{
		{
			name: "blocks are separated",
			html: "<h2>Title</h2><p>First <b>bold</b> para.</p><p>Second<br>line</p>",
			want: "Title First bold para. Second line",
		},
		{
			name: "scripts and styles are dropped",
			html: "<p>Visible</p><script>alert(1)</script><style>p{}</style>",
			want: "Visible",
		},
		{
			name: "entities are decoded",
			html: "<p>Fish &amp; chips &lt;3</p>",
			want: "Fish & chips <3",
		},
		{
			name:     "cut at a word boundary",
			html:     "<p>one two three four</p>",
			maxRunes: 12,
			want:     "one two…",
		},
		{
			name:     "short text is not cut",
			html:     "<p>short</p>",
			maxRunes: 160,
			want:     "short",
		},
		{
			name: "empty",
			html: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.html, tt.maxRunes); got != tt.want {
				t.Errorf("PlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlainText_RuneBudget(t *testing.T) {
	html := "<p>" + strings.Repeat("ข้อความ ", 50) + "</p>"
	got := PlainText(html, DescriptionLength)
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, "…")); n > DescriptionLength {
		t.Errorf("got %d runes, want <= %d", n, DescriptionLength)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("cut text %q has no ellipsis", got)
	}
}

func TestTranscriptExcerpt(t *testing.T) {
	rendered := extract.RenderTranscript("00:00 Hello there\nUntimed line\n00:15 Bye")
	if got, want := TranscriptExcerpt(rendered, 0), "Hello there Untimed line Bye"; got != want {
		t.Errorf("TranscriptExcerpt() = %q, want %q", got, want)
	}
}
