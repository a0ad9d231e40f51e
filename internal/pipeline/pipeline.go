// Package pipeline wires the matching core end to end: client consolidation,
// two-phase matching, and relationship mapping.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/sells-group/vendormatch/internal/match"
	"github.com/sells-group/vendormatch/internal/model"
	"github.com/sells-group/vendormatch/internal/relationship"
)

// Pipeline runs the full matching flow over in-memory tables. It holds no
// per-run state; one Pipeline may serve concurrent independent runs.
type Pipeline struct {
	engine *match.Engine
	mapper *relationship.Mapper
}

// New builds a Pipeline from matcher and mapper configuration.
func New(matchCfg match.Config, relCfg relationship.Config) *Pipeline {
	return &Pipeline{
		engine: match.NewEngine(matchCfg),
		mapper: relationship.NewMapper(relCfg),
	}
}

// Run executes the pipeline: consolidate client tables, match vendors
// against the consolidated clients, then group matches into relationships
// with summary and breakdowns. Empty inputs produce an empty result, never
// an error.
func (p *Pipeline) Run(vendors []model.VendorRecord, clientTables ...[]model.ClientRecord) *model.Result {
	clients := match.ConsolidateClients(clientTables...)
	matches := p.engine.Match(vendors, clients)
	rels := p.mapper.Consolidate(matches)

	result := &model.Result{
		Matches:       matches,
		Relationships: rels,
		Summary:       p.mapper.Summarize(rels),
		Breakdowns:    p.mapper.Breakdown(rels),
		Stats:         p.engine.Stats(vendors, matches),
	}

	zap.L().Info("pipeline complete",
		zap.Int("vendors", len(vendors)),
		zap.Int("clients", len(clients)),
		zap.Int("matches", len(matches)),
		zap.Int("relationships", len(rels)),
	)
	return result
}
