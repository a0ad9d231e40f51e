// Package ingest canonicalizes raw tabular data into the vendor and client
// record shapes consumed by the matching core. Header detection is heuristic;
// per-record parse failures degrade to safe defaults instead of aborting.
package ingest

import "strings"

// findColumn returns the index of the first header matching one of the
// candidate names. Exact case-insensitive matches are preferred over
// substring matches, in candidate order. Returns -1 when nothing matches.
func findColumn(header []string, candidates ...string) int {
	cleaned := make([]string, len(header))
	for i, h := range header {
		cleaned[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for _, cand := range candidates {
		cand = strings.ToLower(cand)
		for i, h := range cleaned {
			if h == cand {
				return i
			}
		}
	}
	for _, cand := range candidates {
		cand = strings.ToLower(cand)
		for i, h := range cleaned {
			if strings.Contains(h, cand) {
				return i
			}
		}
	}
	return -1
}

// cell safely reads a column from a row that may be shorter than the header.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
