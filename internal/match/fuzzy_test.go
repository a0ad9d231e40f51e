package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/vendormatch/internal/model"
)

func TestSimilarity_Identical(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("acme", "acme"))
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarity_EmptySide(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "acme"))
	assert.Equal(t, 0.0, Similarity("acme", ""))
}

func TestSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"acme systems", "acme system"},
		{"alpha", "omega"},
		{"a", "completely different name"},
		{"nørdic", "nordic"},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	assert.Equal(t, Similarity("acme system", "acme systems"), Similarity("acme systems", "acme system"))
}

func TestSimilarity_RuneBased(t *testing.T) {
	// One rune substituted in a four-rune name, regardless of byte width.
	assert.InDelta(t, 0.75, Similarity("møll", "moll"), 1e-9)
}

func TestSimilarity_KnownRatio(t *testing.T) {
	// Distance 4 over the longer length 16.
	assert.InDelta(t, 0.75, Similarity("aaaabbbbccccdddd", "aaaabbbbccccxxxx"), 1e-9)
}

func fuzzyEngine(threshold float64) *Engine {
	return NewEngine(Config{FuzzyThreshold: threshold})
}

func clientsNamed(names ...string) []model.ConsolidatedClient {
	out := make([]model.ConsolidatedClient, len(names))
	for i, n := range names {
		out[i] = model.ConsolidatedClient{CompanyName: n, ClientSpend: 100}
	}
	return out
}

func vendorsNamed(names ...string) []model.VendorRecord {
	out := make([]model.VendorRecord, len(names))
	for i, n := range names {
		out[i] = model.VendorRecord{CompanyName: n, TotalValue: 50}
	}
	return out
}

func TestFuzzyPhase_AcceptsAtThreshold(t *testing.T) {
	// Distance 4 over length 16 scores exactly 0.75.
	e := fuzzyEngine(0.75)
	matches := e.fuzzyPhase(vendorsNamed("aaaabbbbccccdddd"), clientsNamed("aaaabbbbccccxxxx"))
	require.Len(t, matches, 1)
	assert.Equal(t, model.MatchFuzzy, matches[0].Type)
	assert.InDelta(t, 0.75, matches[0].Score, 1e-9)
	assert.Equal(t, "aaaabbbbccccxxxx", matches[0].ClientName)
}

func TestFuzzyPhase_RejectsBelowThreshold(t *testing.T) {
	// Distance 5 over length 16 scores 0.6875, under a 0.75 threshold.
	e := fuzzyEngine(0.75)
	matches := e.fuzzyPhase(vendorsNamed("aaaabbbbccccdddd"), clientsNamed("aaaabbbbcccxxxxx"))
	assert.Empty(t, matches)
}

func TestFuzzyPhase_PicksBestClient(t *testing.T) {
	e := fuzzyEngine(0.75)
	matches := e.fuzzyPhase(
		vendorsNamed("aaaabbbbccccdddd"),
		clientsNamed("aaaabbbbccccxxxx", "aaaabbbbccccdddx"),
	)
	require.Len(t, matches, 1)
	assert.Equal(t, "aaaabbbbccccdddx", matches[0].ClientName)
	assert.InDelta(t, 0.9375, matches[0].Score, 1e-9)
}

func TestFuzzyPhase_TieKeepsFirstEncountered(t *testing.T) {
	// Both client names score identically against the vendor; the first
	// pooled variant wins because a tie does not displace the current best.
	e := fuzzyEngine(0.75)
	matches := e.fuzzyPhase(
		vendorsNamed("aaaabbbbccccdddd"),
		clientsNamed("aaaabbbbccccdddx", "aaaabbbbccccdddy"),
	)
	require.Len(t, matches, 1)
	assert.Equal(t, "aaaabbbbccccdddx", matches[0].ClientName)
}

func TestFuzzyPhase_SkipsShortVendorNames(t *testing.T) {
	e := fuzzyEngine(0.75)
	matches := e.fuzzyPhase(vendorsNamed("ab"), clientsNamed("abc"))
	assert.Empty(t, matches)
}

func TestFuzzyPhase_EmptyPool(t *testing.T) {
	e := fuzzyEngine(0.75)
	assert.Empty(t, e.fuzzyPhase(vendorsNamed("acme systems"), nil))
	assert.Empty(t, e.fuzzyPhase(nil, clientsNamed("acme")))
}

func TestTopCandidates_KeepsHighestScores(t *testing.T) {
	e := NewEngine(Config{MaxCandidates: 2})
	pool := []string{"alpha", "acme", "acmes", "zzzzz"}
	top := e.topCandidates("acme", pool)
	require.Len(t, top, 2)
	assert.Equal(t, "acme", top[0].variant)
	assert.Equal(t, "acmes", top[1].variant)
	assert.Equal(t, 1.0, top[0].score)
}

func TestTopCandidates_FirstEncounteredWinsTies(t *testing.T) {
	e := NewEngine(Config{MaxCandidates: 1})
	top := e.topCandidates("aaaa", []string{"aaax", "aaay"})
	require.Len(t, top, 1)
	assert.Equal(t, "aaax", top[0].variant)
}
