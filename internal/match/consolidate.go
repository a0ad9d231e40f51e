package match

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/vendormatch/internal/model"
)

// ConsolidateClients merges one or more client tables into one row per
// distinct company name, summing spend and recording provenance. Grouping is
// by exact post-ingestion name: rows differing only in case or suffix are NOT
// merged here, that tolerance belongs to the matchers. Output preserves
// first-appearance order so runs are deterministic.
//
// Conservation invariant: the summed client spend of the output equals the
// summed spend of all input rows.
func ConsolidateClients(tables ...[]model.ClientRecord) []model.ConsolidatedClient {
	var all []model.ClientRecord
	for _, t := range tables {
		all = append(all, t...)
	}
	if len(all) == 0 {
		return nil
	}

	var order []string
	groups := make(map[string][]model.ClientRecord)
	for _, r := range all {
		if _, ok := groups[r.CompanyName]; !ok {
			order = append(order, r.CompanyName)
		}
		groups[r.CompanyName] = append(groups[r.CompanyName], r)
	}

	out := make([]model.ConsolidatedClient, 0, len(order))
	for _, name := range order {
		group := groups[name]

		var spend float64
		currencies := newOrderedSet()
		sources := newOrderedSet()
		recordTypes := newOrderedSet()
		stages := newOrderedSet()
		contractTypes := newOrderedSet()

		for _, r := range group {
			spend += r.ClientSpend
			currencies.add(r.Currency)
			sources.add(r.Source)
			recordTypes.add(r.RecordType)
			stages.add(r.Stage)
			contractTypes.add(r.ContractType)
		}

		// Spend is expected pre-converted to USD; a group showing mixed
		// currency codes is forced to USD rather than guessing.
		currency := "USD"
		if vals := currencies.values(); len(vals) == 1 {
			currency = vals[0]
		}

		out = append(out, model.ConsolidatedClient{
			CompanyName:   name,
			ClientSpend:   spend,
			Currency:      currency,
			Sources:       strings.Join(sources.values(), ", "),
			RecordTypes:   strings.Join(recordTypes.values(), ", "),
			Stages:        strings.Join(stages.values(), ", "),
			ContractTypes: strings.Join(contractTypes.values(), ", "),
			SourceCount:   sources.len(),
		})
	}

	zap.L().Info("consolidated client tables",
		zap.Int("input_rows", len(all)),
		zap.Int("companies", len(out)),
	)
	return out
}

// orderedSet collects distinct non-empty strings in first-seen order.
type orderedSet struct {
	seen map[string]struct{}
	vals []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if v == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.vals = append(s.vals, v)
}

func (s *orderedSet) values() []string { return s.vals }
func (s *orderedSet) len() int         { return len(s.vals) }
