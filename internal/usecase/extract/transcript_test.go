package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestRenderTranscript(t *testing.T) {
	raw := "00:00 Hello there\nNo timecode"
	want := `<div class="transcript">` +
		`<p><span class="timecode">00:00</span> Hello there</p>` +
		`<p>No timecode</p>` +
		`</div>`

	if got := RenderTranscript(raw); got != want {
		t.Errorf("RenderTranscript() = %q, want %q", got, want)
	}
}

func TestRenderTranscript_Empty(t *testing.T) {
	for _, raw := range []string{"", "  \n\r\n "} {
		if got := RenderTranscript(raw); got != "" {
			t.Errorf("RenderTranscript(%q) = %q, want empty", raw, got)
		}
	}
}

func TestRenderTranscript_EscapesText(t *testing.T) {
	raw := "00:01 <script>alert('x')</script>\n" +
		`Tom & "Jerry" <b>bold</b>` + "\n" +
		"[00:02] <SCRIPT src=evil.js></SCRIPT>"

	got := RenderTranscript(raw)

	if strings.Contains(strings.ToLower(got), "<script") {
		t.Fatalf("output contains unescaped script tag: %s", got)
	}
	for _, want := range []string{"&lt;script&gt;", "&amp;", "&#34;Jerry&#34;", "&#39;x&#39;", "&lt;b&gt;"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}

	// A browser-grade parser must see only our own elements.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(got))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if n := doc.Find("script").Length(); n != 0 {
		t.Errorf("parsed output has %d script elements, want 0", n)
	}
	if n := doc.Find("b").Length(); n != 0 {
		t.Errorf("parsed output has %d b elements, want 0", n)
	}
	if n := doc.Find("div.transcript > p").Length(); n != 3 {
		t.Errorf("parsed output has %d paragraphs, want 3", n)
	}
	if n := doc.Find("span.timecode").Length(); n != 2 {
		t.Errorf("parsed output has %d timecodes, want 2", n)
	}
	first := doc.Find("div.transcript > p").First().Text()
	if first != "00:01 <script>alert('x')</script>" {
		t.Errorf("first paragraph text = %q", first)
	}
}

func TestRenderTranscript_Deterministic(t *testing.T) {
	raw := "00:00 a\n00:10 b & c"
	if RenderTranscript(raw) != RenderTranscript(raw) {
		t.Error("RenderTranscript is not deterministic")
	}
}
