package match

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/vendormatch/internal/model"
)

// Config holds the matching thresholds and normalization lists. The zero
// value is usable: Defaults are applied by NewEngine.
type Config struct {
	// FuzzyThreshold is the minimum similarity score for an approximate
	// match to be accepted. A score exactly equal to the threshold passes.
	FuzzyThreshold float64
	// MinMatchLength is the minimum variant length considered matchable.
	MinMatchLength int
	// MaxCandidates bounds how many client variants are kept per
	// vendor-variant comparison pass in the approximate phase.
	MaxCandidates int

	LegalSuffixes []string
	Stopwords     []string
}

// DefaultConfig returns the production matching configuration.
func DefaultConfig() Config {
	return Config{
		FuzzyThreshold: 0.85,
		MinMatchLength: 3,
		MaxCandidates:  3,
	}
}

// Engine runs the two-phase matching pipeline. It holds no per-run state;
// a single Engine is safe for concurrent use across independent inputs.
type Engine struct {
	cfg  Config
	norm *Normalizer
}

// NewEngine builds an Engine, falling back to defaults for unset fields.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = def.FuzzyThreshold
	}
	if cfg.MinMatchLength <= 0 {
		cfg.MinMatchLength = def.MinMatchLength
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = def.MaxCandidates
	}
	return &Engine{
		cfg:  cfg,
		norm: NewNormalizer(cfg.MinMatchLength, cfg.LegalSuffixes, cfg.Stopwords),
	}
}

// Normalizer exposes the engine's name normalizer.
func (e *Engine) Normalizer() *Normalizer { return e.norm }

// Match resolves each vendor to at most one consolidated client. Exact
// matches are found first; vendors left over go through the approximate
// phase. The combined table carries the per-match total relationship value
// and is sorted descending by it, exact matches ahead of fuzzy matches on
// ties. An empty result is a valid terminal state, not an error.
func (e *Engine) Match(vendors []model.VendorRecord, clients []model.ConsolidatedClient) []model.Match {
	log := zap.L().With(zap.Int("vendors", len(vendors)), zap.Int("clients", len(clients)))

	exact, leftover := e.exactPhase(vendors, clients)
	log.Info("exact phase complete",
		zap.Int("matches", len(exact)),
		zap.Int("unmatched", len(leftover)),
	)

	fuzzy := e.fuzzyPhase(leftover, clients)
	log.Info("fuzzy phase complete", zap.Int("matches", len(fuzzy)))

	matches := make([]model.Match, 0, len(exact)+len(fuzzy))
	matches = append(matches, exact...)
	matches = append(matches, fuzzy...)

	for i := range matches {
		matches[i].TotalRelationshipValue = matches[i].Vendor.TotalValue + matches[i].Client.ClientSpend
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].TotalRelationshipValue > matches[j].TotalRelationshipValue
	})

	return matches
}

// Stats reports matching coverage for a completed run.
func (e *Engine) Stats(vendors []model.VendorRecord, matches []model.Match) *model.MatchStats {
	s := &model.MatchStats{
		TotalVendors:     len(vendors),
		MatchedVendors:   len(matches),
		UnmatchedVendors: len(vendors) - len(matches),
	}
	if s.TotalVendors > 0 {
		s.MatchRate = round1(float64(s.MatchedVendors) / float64(s.TotalVendors) * 100)
	}
	for _, m := range matches {
		switch m.Type {
		case model.MatchExact:
			s.ExactMatches++
		case model.MatchFuzzy:
			s.FuzzyMatches++
		}
		s.TotalVendorSpendUSD += m.Vendor.TotalValue
		s.TotalClientSpendUSD += m.Client.ClientSpend
	}
	s.TotalRelationshipValueUSD = s.TotalVendorSpendUSD + s.TotalClientSpendUSD
	return s
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
