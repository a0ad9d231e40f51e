package ingest

import (
	"strings"
	"time"
)

// dateLayouts are tried in order; the first parse wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"02-Jan-2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006/01/02",
	"02.01.2006",
}

// ParseDate parses a contract date cell. Unparseable or empty input yields
// the zero time, which downstream renders as "Not specified" and excludes
// from earliest-date computation.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	switch strings.ToLower(s) {
	case "nan", "null", "none", "n/a", "not specified", "unspecified":
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
