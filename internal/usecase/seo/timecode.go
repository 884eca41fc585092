package seo

import (
	"fmt"
	"strconv"
	"strings"
)

// TimecodeSeconds converts "M:SS", "MM:SS" or "H:MM:SS" into seconds.
// Surrounding brackets are ignored.
func TimecodeSeconds(tc string) (int, bool) {
	tc = strings.Trim(strings.TrimSpace(tc), "[]")
	parts := strings.Split(tc, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	values := make([]int, len(parts))
	for i, p := range parts {
		if p == "" || len(p) > 2 {
			return 0, false
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		// every field after the first is a 0-59 two-digit field
		if i > 0 && (len(p) != 2 || n > 59) {
			return 0, false
		}
		values[i] = n
	}

	if len(values) == 2 {
		return values[0]*60 + values[1], true
	}
	return values[0]*3600 + values[1]*60 + values[2], true
}

// ISODuration formats seconds as an ISO 8601 duration such as "PT1H2M3S".
// Zero components are omitted; non-positive input yields "PT0S".
func ISODuration(seconds int) string {
	if seconds <= 0 {
		return "PT0S"
	}

	h, m, s := seconds/3600, seconds%3600/60, seconds%60
	var b strings.Builder
	b.WriteString("PT")
	if h > 0 {
		fmt.Fprintf(&b, "%dH", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dM", m)
	}
	if s > 0 {
		fmt.Fprintf(&b, "%dS", s)
	}
	return b.String()
}
