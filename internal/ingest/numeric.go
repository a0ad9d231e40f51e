package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

var numberRe = regexp.MustCompile(`-?\d+\.?\d*`)

var currencyStripper = strings.NewReplacer(
	"$", "", "€", "", "£", "", ",", "", " ", "",
)

// ExtractNumeric pulls a numeric value out of a formatted cell, tolerating
// currency symbols, thousands separators, and surrounding text. Anything
// unparseable yields 0, a per-record soft failure rather than an error.
func ExtractNumeric(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	switch strings.ToLower(s) {
	case "nan", "null", "none", "n/a":
		return 0
	}

	s = currencyStripper.Replace(s)

	m := numberRe.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}
