// Package match implements the two-phase vendor-to-client company matching
// engine: name normalization, exact variant lookup, and similarity-scored
// approximate matching over the exact phase's leftovers.
package match

import "strings"

// DefaultLegalSuffixes lists the legal-entity suffix tokens stripped during
// name normalization. Matching is against the final space- or dot-delimited
// token, after lowercasing, with any trailing dot removed.
var DefaultLegalSuffixes = []string{
	"inc", "corp", "ltd", "llc", "limited", "corporation", "incorporated",
	"company", "co", "gmbh", "ag", "sa", "nv", "bv", "srl", "spa", "plc",
}

// DefaultStopwords lists generic tokens removed when building the
// stopword-stripped matching variant.
var DefaultStopwords = []string{
	"the", "and", "&", "group", "international", "global", "services",
}

// Normalizer canonicalizes raw company names into comparison variants.
// It is pure: the same input always yields the same output.
type Normalizer struct {
	minLength int
	suffixes  map[string]struct{}
	stopwords map[string]struct{}
}

// NewNormalizer builds a Normalizer. Empty suffix or stopword lists fall back
// to the defaults; a non-positive minLength falls back to 3.
func NewNormalizer(minLength int, suffixes, stopwords []string) *Normalizer {
	if minLength <= 0 {
		minLength = 3
	}
	if len(suffixes) == 0 {
		suffixes = DefaultLegalSuffixes
	}
	if len(stopwords) == 0 {
		stopwords = DefaultStopwords
	}
	n := &Normalizer{
		minLength: minLength,
		suffixes:  make(map[string]struct{}, len(suffixes)),
		stopwords: make(map[string]struct{}, len(stopwords)),
	}
	for _, s := range suffixes {
		n.suffixes[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range stopwords {
		n.stopwords[strings.ToLower(s)] = struct{}{}
	}
	return n
}

// Normalize trims, lowercases, strips at most one trailing legal-entity
// suffix token, and collapses internal whitespace. Empty input normalizes to
// the empty string, which downstream treats as unmatchable.
func (n *Normalizer) Normalize(name string) string {
	s := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	s = strings.TrimRight(s, ".")
	if s == "" {
		return ""
	}

	// The suffix must be the final token, delimited by a space or a dot, so
	// that a name consisting solely of a suffix word is left intact.
	if cut := strings.LastIndexAny(s, " ."); cut >= 0 {
		tail := strings.TrimSuffix(s[cut+1:], ".")
		if _, ok := n.suffixes[tail]; ok {
			s = strings.TrimSpace(s[:cut])
		}
	}

	return strings.Join(strings.Fields(s), " ")
}

// Variants returns the comparison variants for a name in stable order:
// the raw trimmed name, its normalized form, and the normalized form with
// stopwords removed. Duplicates are dropped, as is any variant shorter than
// the configured minimum length. Names shorter than the minimum yield nil.
func (n *Normalizer) Variants(name string) []string {
	name = strings.TrimSpace(name)
	if len(name) < n.minLength {
		return nil
	}

	candidates := []string{name}

	normalized := n.Normalize(name)
	if normalized != "" && normalized != strings.ToLower(name) {
		candidates = append(candidates, normalized)
	}

	words := strings.Fields(normalized)
	filtered := words[:0:0]
	for _, w := range words {
		if _, ok := n.stopwords[w]; !ok {
			filtered = append(filtered, w)
		}
	}
	if len(filtered) > 0 && len(filtered) != len(words) {
		candidates = append(candidates, strings.Join(filtered, " "))
	}

	var variants []string
	seen := make(map[string]struct{}, len(candidates))
	for _, v := range candidates {
		if len(v) < n.minLength {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}
	return variants
}
