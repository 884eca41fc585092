package extract

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
)

func TestSynthesizeChapters(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []entities.Chapter
	}{
		{
			name: "two timed lines",
			raw:  "00:00 Hello there\n00:15 Second point",
			want: []entities.Chapter{
				{T: "00:00", Label: "Hello there"},
				{T: "00:15", Label: "Second point"},
			},
		},
		{
			name: "duplicate timecode keeps first",
			raw:  "00:00 First label\n00:00 Other label\n01:00 Next",
			want: []entities.Chapter{
				{T: "00:00", Label: "First label"},
				{T: "01:00", Label: "Next"},
			},
		},
		{
			name: "untimed and empty lines are skipped",
			raw:  "Intro without time\n00:05\n00:10 Real chapter",
			want: []entities.Chapter{
				{T: "00:10", Label: "Real chapter"},
			},
		},
		{
			name: "empty label does not claim the timecode",
			raw:  "[00:05]\n00:05 Filled later",
			want: []entities.Chapter{
				{T: "00:05", Label: "Filled later"},
			},
		},
		{
			name: "whitespace collapsed",
			raw:  "02:00   spaced    out\twords",
			want: []entities.Chapter{
				{T: "02:00", Label: "spaced out words"},
			},
		},
		{
			name: "first ten words only",
			raw:  "03:00 one two three four five six seven eight nine ten eleven twelve",
			want: []entities.Chapter{
				{T: "03:00", Label: "one two three four five six seven eight nine ten"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynthesizeChapters(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SynthesizeChapters() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSynthesizeChapters_TruncatesLongLabels(t *testing.T) {
	raw := "00:00 Supercalifragilistic marketing strategies for extraordinarily ambitious companies everywhere"
	got := SynthesizeChapters(raw)
	if len(got) != 1 {
		t.Fatalf("got %d chapters, want 1", len(got))
	}

	label := got[0].Label
	if !strings.HasSuffix(label, "…") {
		t.Errorf("label %q does not end with ellipsis", label)
	}
	body := strings.TrimSuffix(label, "…")
	if n := utf8.RuneCountInString(body); n > DefaultChapterMaxRunes {
		t.Errorf("label body has %d runes, want <= %d", n, DefaultChapterMaxRunes)
	}
	if strings.HasSuffix(body, " ") {
		t.Errorf("label body %q ends with a space", body)
	}
	want := "Supercalifragilistic marketing strategies for…"
	if label != want {
		t.Errorf("label = %q, want %q", label, want)
	}
}

func TestSynthesizeChapters_TruncatesByRunes(t *testing.T) {
	thai := strings.Repeat("ก", 70)
	got := SynthesizeChapters("00:00 " + thai)
	if len(got) != 1 {
		t.Fatalf("got %d chapters, want 1", len(got))
	}
	want := strings.Repeat("ก", 60) + "…"
	if got[0].Label != want {
		t.Errorf("label = %q, want %q", got[0].Label, want)
	}
}

func TestExtractor_CustomLimits(t *testing.T) {
	e := New(Options{ChapterMaxWords: 2, ChapterMaxRunes: 5})
	got := e.Chapters("00:00 alpha beta gamma")
	want := []entities.Chapter{{T: "00:00", Label: "alpha…"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Chapters() = %#v, want %#v", got, want)
	}

	if opts := e.Options(); opts.FAQMax != DefaultFAQMax {
		t.Errorf("FAQMax = %d, want default %d", opts.FAQMax, DefaultFAQMax)
	}
}

func TestSynthesizeChapters_Empty(t *testing.T) {
	got := SynthesizeChapters("")
	if got == nil || len(got) != 0 {
		t.Errorf("SynthesizeChapters(\"\") = %#v, want empty non-nil slice", got)
	}
}

func TestCleanChapters(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 20))
	tests := []struct {
		name string
		in   []entities.Chapter
		want []entities.Chapter
	}{
		{
			name: "trims and drops incomplete",
			in: []entities.Chapter{
				{T: " [01:00] ", Label: "  Intro   part "},
				{T: "", Label: "no time"},
				{T: "02:00", Label: " "},
			},
			want: []entities.Chapter{{T: "01:00", Label: "Intro part"}},
		},
		{
			name: "first chapter at a timecode wins",
			in: []entities.Chapter{
				{T: "00:00", Label: "Intro"},
				{T: "[00:00]", Label: "Duplicate"},
				{T: "00:30", Label: "Next"},
			},
			want: []entities.Chapter{{T: "00:00", Label: "Intro"}, {T: "00:30", Label: "Next"}},
		},
		{
			name: "long label shortened like synthesized ones",
			in:   []entities.Chapter{{T: "01:00", Label: long}},
			want: []entities.Chapter{{T: "01:00", Label: SynthesizeChapters("01:00 " + long)[0].Label}},
		},
		{
			name: "label over the rune limit gets an ellipsis",
			in:   []entities.Chapter{{T: "02:00", Label: strings.Repeat("abcdefghijklmn ", 6)}},
			want: []entities.Chapter{{T: "02:00", Label: "abcdefghijklmn abcdefghijklmn abcdefghijklmn abcdefghijklmn…"}},
		},
		{
			name: "nil",
			in:   nil,
			want: []entities.Chapter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanChapters(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CleanChapters() = %#v, want %#v", got, tt.want)
			}
			for _, c := range got {
				if n := utf8.RuneCountInString(strings.TrimSuffix(c.Label, "…")); n > DefaultChapterMaxRunes {
					t.Errorf("label %q has %d runes, want <= %d", c.Label, n, DefaultChapterMaxRunes)
				}
			}
		})
	}
}

func TestExtractor_CleanChaptersUsesLimits(t *testing.T) {
	e := New(Options{ChapterMaxWords: 2, ChapterMaxRunes: 5})
	got := e.CleanChapters([]entities.Chapter{{T: "00:00", Label: "alpha beta gamma"}})
	want := []entities.Chapter{{T: "00:00", Label: "alpha…"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanChapters() = %#v, want %#v", got, want)
	}
}
