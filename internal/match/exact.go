package match

import "github.com/sells-group/vendormatch/internal/model"

// indexEntry ties a client variant back to the client row that produced it.
type indexEntry struct {
	originalName string
	client       model.ConsolidatedClient
}

// exactPhase resolves vendors by exact variant equality. The client index
// maps each variant to every client that produced it; when variants collide
// the first-inserted client wins at lookup time. Vendor variants are probed
// in generation order and the first hit ends the scan for that vendor.
func (e *Engine) exactPhase(vendors []model.VendorRecord, clients []model.ConsolidatedClient) ([]model.Match, []model.VendorRecord) {
	index := make(map[string][]indexEntry)
	for _, c := range clients {
		for _, v := range e.norm.Variants(c.CompanyName) {
			index[v] = append(index[v], indexEntry{originalName: c.CompanyName, client: c})
		}
	}

	var matches []model.Match
	var leftover []model.VendorRecord

	for _, vendor := range vendors {
		matched := false
		for _, variant := range e.norm.Variants(vendor.CompanyName) {
			bucket, ok := index[variant]
			if !ok {
				continue
			}
			entry := bucket[0]
			matches = append(matches, model.Match{
				VendorName:     vendor.CompanyName,
				ClientName:     entry.originalName,
				Vendor:         vendor,
				Client:         entry.client,
				Type:           model.MatchExact,
				Score:          1.0,
				MatchedVariant: variant,
			})
			matched = true
			break
		}
		if !matched {
			leftover = append(leftover, vendor)
		}
	}

	return matches, leftover
}
