package extract

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
)

var (
	questionMarker = regexp.MustCompile(`(?i)^(?:q|คำถาม)\s*[:：]\s*(.*)$`)
	answerMarker   = regexp.MustCompile(`(?i)^(?:a|คำตอบ)\s*[:：]\s*(.*)$`)
	listBullet     = regexp.MustCompile(`^[-*•]\s*`)
)

// pendingPair accumulates one question and its answer lines
type pendingPair struct {
	q      string
	answer []string
	open   bool
}

func (p *pendingPair) start(q string) {
	p.q = q
	p.answer = p.answer[:0]
	p.open = true
}

func (p *pendingPair) add(line string) {
	if !p.open || line == "" {
		return
	}
	p.answer = append(p.answer, line)
}

// flush emits the pending pair when both sides have text
func (p *pendingPair) flush(out []entities.FaqPair) []entities.FaqPair {
	if !p.open {
		return out
	}
	p.open = false
	q := strings.TrimSpace(p.q)
	a := strings.TrimSpace(strings.Join(p.answer, "\n"))
	if q == "" || a == "" {
		return out
	}
	return append(out, entities.FaqPair{Q: q, A: a})
}

// ExtractFAQs classifies raw text into question/answer pairs.
//
// If any line carries a Q:/A: marker (or คำถาม:/คำตอบ:), the whole input is
// read in marker mode. Otherwise a line ending in "?" starts a new question
// and the lines after it form the answer. Duplicate questions are dropped
// case-insensitively and at most limit pairs are returned.
func ExtractFAQs(raw string, limit int) []entities.FaqPair {
	ls := lines(raw)
	if len(ls) == 0 || limit <= 0 {
		return make([]entities.FaqPair, 0)
	}

	var pairs []entities.FaqPair
	if hasMarkers(ls) {
		pairs = extractMarked(ls)
	} else {
		pairs = extractByPunctuation(ls)
	}
	return dedupeFAQs(pairs, limit)
}

func hasMarkers(ls []string) bool {
	for _, l := range ls {
		if questionMarker.MatchString(l) || answerMarker.MatchString(l) {
			return true
		}
	}
	return false
}

func extractMarked(ls []string) []entities.FaqPair {
	var (
		out []entities.FaqPair
		p   pendingPair
	)
	for _, l := range ls {
		if m := questionMarker.FindStringSubmatch(l); m != nil {
			out = p.flush(out)
			p.start(strings.TrimSpace(m[1]))
			continue
		}
		if m := answerMarker.FindStringSubmatch(l); m != nil {
			p.add(strings.TrimSpace(m[1]))
			continue
		}
		p.add(l)
	}
	return p.flush(out)
}

func extractByPunctuation(ls []string) []entities.FaqPair {
	var (
		out []entities.FaqPair
		p   pendingPair
	)
	for _, l := range ls {
		if q, ok := asQuestion(l); ok {
			out = p.flush(out)
			p.start(q)
			continue
		}
		p.add(l)
	}
	return p.flush(out)
}

// asQuestion reports whether a line reads as a question once a leading
// list bullet is removed
func asQuestion(line string) (string, bool) {
	q := strings.TrimSpace(listBullet.ReplaceAllString(line, ""))
	if strings.HasSuffix(q, "?") || strings.HasSuffix(q, "？") {
		return q, true
	}
	return "", false
}

func dedupeFAQs(pairs []entities.FaqPair, limit int) []entities.FaqPair {
	out := make([]entities.FaqPair, 0, min(len(pairs), limit))
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if len(out) == limit {
			break
		}
		q := strings.TrimSpace(p.Q)
		a := strings.TrimSpace(p.A)
		if q == "" || a == "" {
			continue
		}
		key := strings.ToLower(q)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, entities.FaqPair{Q: q, A: a})
	}
	return out
}

// CleanFAQs trims editor-supplied pairs, drops incomplete ones and removes
// repeated questions. Unlike ExtractFAQs it does not cap the count.
func CleanFAQs(pairs []entities.FaqPair) []entities.FaqPair {
	return dedupeFAQs(pairs, len(pairs))
}
