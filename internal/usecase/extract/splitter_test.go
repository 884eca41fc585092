package extract

import (
	"reflect"
	"testing"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []entities.TimedLine
	}{
		{
			name: "plain timecodes",
			raw:  "00:00 Hello there\n00:15 Second point",
			want: []entities.TimedLine{
				{Timecode: "00:00", Text: "Hello there"},
				{Timecode: "00:15", Text: "Second point"},
			},
		},
		{
			name: "bracketed and hour timecodes",
			raw:  "[1:02:03] Deep dive\n[0:05]Intro",
			want: []entities.TimedLine{
				{Timecode: "1:02:03", Text: "Deep dive"},
				{Timecode: "0:05", Text: "Intro"},
			},
		},
		{
			name: "line without timecode is kept whole",
			raw:  "Welcome to the show\n00:30 Topic",
			want: []entities.TimedLine{
				{Text: "Welcome to the show"},
				{Timecode: "00:30", Text: "Topic"},
			},
		},
		{
			name: "crlf, indentation and blank lines",
			raw:  "\r\n   00:10   Padded   \r\n\r\n\t\nTail\r\n",
			want: []entities.TimedLine{
				{Timecode: "00:10", Text: "Padded"},
				{Text: "Tail"},
			},
		},
		{
			name: "timecode only",
			raw:  "05:00",
			want: []entities.TimedLine{{Timecode: "05:00", Text: ""}},
		},
		{
			name: "three digit minutes do not match",
			raw:  "100:00 Too long",
			want: []entities.TimedLine{{Text: "100:00 Too long"}},
		},
		{
			name: "thai text",
			raw:  "00:45 สวัสดีครับ",
			want: []entities.TimedLine{{Timecode: "00:45", Text: "สวัสดีครับ"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSplit_LineCountMatchesNonEmptyLines(t *testing.T) {
	inputs := []string{
		"a\nb\nc",
		"00:00 a\n\n\n00:01 b\n   \nplain",
		"\n\n[00:00]\n",
		"one line without newline",
	}
	want := []int{3, 3, 1, 1}

	for i, raw := range inputs {
		if got := len(Split(raw)); got != want[i] {
			t.Errorf("len(Split(%q)) = %d, want %d", raw, got, want[i])
		}
	}
}

func TestSplit_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\r\n\t"} {
		got := Split(raw)
		if got == nil || len(got) != 0 {
			t.Errorf("Split(%q) = %#v, want empty non-nil slice", raw, got)
		}
	}
}

func TestTranscriptText(t *testing.T) {
	raw := "00:00 Is this safe?\n[00:05] Yes it is.\n00:10\nNo timecode here"
	want := "Is this safe?\nYes it is.\nNo timecode here"
	if got := TranscriptText(raw); got != want {
		t.Errorf("TranscriptText() = %q, want %q", got, want)
	}
	if got := TranscriptText(""); got != "" {
		t.Errorf("TranscriptText(\"\") = %q, want empty", got)
	}
}
