package match

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/sells-group/vendormatch/internal/model"
)

// Similarity is a normalized Levenshtein ratio in [0, 1]: identical strings
// score 1.0, completely dissimilar strings approach 0.0. Distance is over
// runes, normalized by the longer string's length.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longer := la
	if lb > longer {
		longer = lb
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longer)
}

// candidate is one scored client variant from a single comparison pass.
type candidate struct {
	variant string
	score   float64
}

// fuzzyPhase resolves the exact phase's leftover vendors by best string
// similarity. All client variants are pooled into one deduplicated list in
// first-seen order; the variant-to-client map is built with last-write-wins
// semantics when two clients share a variant, matching the documented
// behavior rather than guessing a dedup priority. A vendor's single best
// score across all of its variants must meet the threshold; ties keep the
// first-encountered best.
func (e *Engine) fuzzyPhase(vendors []model.VendorRecord, clients []model.ConsolidatedClient) []model.Match {
	if len(vendors) == 0 {
		return nil
	}

	var pool []string
	seen := make(map[string]struct{})
	lookup := make(map[string]indexEntry)
	for _, c := range clients {
		for _, v := range e.norm.Variants(c.CompanyName) {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				pool = append(pool, v)
			}
			lookup[v] = indexEntry{originalName: c.CompanyName, client: c}
		}
	}
	if len(pool) == 0 {
		return nil
	}

	var matches []model.Match
	for _, vendor := range vendors {
		if len(strings.TrimSpace(vendor.CompanyName)) < e.cfg.MinMatchLength {
			continue
		}

		bestVariant := ""
		bestScore := 0.0

		for _, variant := range e.norm.Variants(vendor.CompanyName) {
			for _, cand := range e.topCandidates(variant, pool) {
				if cand.score >= e.cfg.FuzzyThreshold && cand.score > bestScore {
					bestVariant = cand.variant
					bestScore = cand.score
				}
			}
		}

		if bestVariant == "" || bestScore < e.cfg.FuzzyThreshold {
			continue
		}

		entry := lookup[bestVariant]
		matches = append(matches, model.Match{
			VendorName:     vendor.CompanyName,
			ClientName:     entry.originalName,
			Vendor:         vendor,
			Client:         entry.client,
			Type:           model.MatchFuzzy,
			Score:          bestScore,
			MatchedVariant: bestVariant,
		})
	}

	return matches
}

// topCandidates scores one vendor variant against the full client pool and
// keeps the highest-scoring MaxCandidates variants. Ordering among kept
// candidates is by descending score, first-encountered winning ties.
func (e *Engine) topCandidates(variant string, pool []string) []candidate {
	top := make([]candidate, 0, e.cfg.MaxCandidates)
	for _, p := range pool {
		s := Similarity(variant, p)
		pos := len(top)
		for pos > 0 && top[pos-1].score < s {
			pos--
		}
		if pos >= e.cfg.MaxCandidates {
			continue
		}
		top = append(top, candidate{})
		copy(top[pos+1:], top[pos:])
		top[pos] = candidate{variant: p, score: s}
		if len(top) > e.cfg.MaxCandidates {
			top = top[:e.cfg.MaxCandidates]
		}
	}
	return top
}
