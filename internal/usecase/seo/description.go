package seo

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const blockSelector = "p, div, li, h1, h2, h3, h4, h5, h6, tr, blockquote, section, article, figcaption"

// PlainText strips markup from an HTML fragment, collapses whitespace and
// cuts the result to maxRunes at a word boundary, appending "…" when cut.
// maxRunes <= 0 disables the cut.
func PlainText(html string, maxRunes int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return textOf(doc, maxRunes)
}

// TranscriptExcerpt is PlainText for rendered transcripts: timecode spans
// are dropped so only the spoken text remains.
func TranscriptExcerpt(transcriptHTML string, maxRunes int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(transcriptHTML))
	if err != nil {
		return ""
	}
	doc.Find("span.timecode").Remove()
	return textOf(doc, maxRunes)
}

func textOf(doc *goquery.Document, maxRunes int) string {
	doc.Find("script, style, noscript, template").Remove()
	doc.Find("br").ReplaceWithHtml(" ")
	doc.Find(blockSelector).AppendHtml(" ")

	text := strings.Join(strings.Fields(doc.Text()), " ")
	return truncate(text, maxRunes)
}

func truncate(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	cut := string([]rune(text)[:maxRunes])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
