package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSplitFromStdin(t *testing.T) {
	out, err := run(t, "00:00 Hello\nplain line\n", "split")
	if err != nil {
		t.Fatalf("split error = %v", err)
	}
	var lines []entities.TimedLine
	if err := json.Unmarshal([]byte(out), &lines); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(lines) != 2 || lines[0].Timecode != "00:00" || lines[1].Text != "plain line" {
		t.Errorf("lines = %+v", lines)
	}
}

func TestChaptersYAMLFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	if err := os.WriteFile(path, []byte("00:00 Intro\n02:10 Pricing talk"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "chapters", path, "--format", "yaml")
	if err != nil {
		t.Fatalf("chapters error = %v", err)
	}
	var chapters []entities.Chapter
	if err := yaml.Unmarshal([]byte(out), &chapters); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if len(chapters) != 2 || chapters[1].T != "02:10" || chapters[1].Label != "Pricing talk" {
		t.Errorf("chapters = %+v", chapters)
	}
}

func TestFAQsMax(t *testing.T) {
	out, err := run(t, "Q: a?\nA: 1\nQ: b?\nA: 2", "faqs", "--max", "1")
	if err != nil {
		t.Fatalf("faqs error = %v", err)
	}
	var faqs []entities.FaqPair
	if err := json.Unmarshal([]byte(out), &faqs); err != nil {
		t.Fatal(err)
	}
	if len(faqs) != 1 || faqs[0].Q != "a?" {
		t.Errorf("faqs = %+v", faqs)
	}
}

func TestTranscriptPrintsRawHTML(t *testing.T) {
	out, err := run(t, "00:05 <b>bold</b>", "transcript", "--format", "yaml")
	if err != nil {
		t.Fatalf("transcript error = %v", err)
	}
	want := `<div class="transcript"><p><span class="timecode">00:05</span> &lt;b&gt;bold&lt;/b&gt;</p></div>` + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestBadFormatAndMissingFile(t *testing.T) {
	if _, err := run(t, "", "split", "--format", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := run(t, "", "split", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := run(t, "x", "faqs", "--max", "-1"); err == nil {
		t.Error("expected error for negative max")
	}
}
