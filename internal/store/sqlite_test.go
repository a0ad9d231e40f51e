package store

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/vendormatch/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func sampleResult() *model.Result {
	return &model.Result{
		Matches: []model.Match{{
			VendorName: "Acme Systems",
			ClientName: "Acme Systems Inc",
			Type:       model.MatchExact,
			Score:      1.0,
		}},
		Stats: &model.MatchStats{TotalVendors: 1, MatchedVendors: 1, MatchRate: 100},
	}
}

func TestCreateRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "vendors.xlsx", []string{"clients.csv", "opps.csv"})
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "vendors.xlsx", got.VendorFile)
	assert.Equal(t, []string{"clients.csv", "opps.csv"}, got.ClientFiles)
	assert.Nil(t, got.Result)
}

func TestCompleteRun_RoundTripsResult(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "vendors.xlsx", []string{"clients.csv"})
	require.NoError(t, err)
	require.NoError(t, st.CompleteRun(ctx, run.ID, sampleResult()))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	require.NotNil(t, got.Result)
	require.Len(t, got.Result.Matches, 1)
	assert.Equal(t, "Acme Systems", got.Result.Matches[0].VendorName)
	assert.Equal(t, 100.0, got.Result.Stats.MatchRate)
}

func TestCompleteRun_InfiniteRatioSurvivesRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	res := sampleResult()
	res.Relationships = []model.ConsolidatedRelationship{{
		CompanyName:       "Acme",
		VendorClientRatio: model.JSONFloat(math.Inf(1)),
	}}

	run, err := st.CreateRun(ctx, "vendors.xlsx", nil)
	require.NoError(t, err)
	require.NoError(t, st.CompleteRun(ctx, run.ID, res))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Result)
	require.Len(t, got.Result.Relationships, 1)
	assert.True(t, math.IsInf(float64(got.Result.Relationships[0].VendorClientRatio), 1))
}

func TestFailRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "vendors.xlsx", nil)
	require.NoError(t, err)
	require.NoError(t, st.FailRun(ctx, run.ID, errors.New("boom")))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
	assert.Equal(t, "boom", got.Error)
}

func TestUpdateMissingRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	assert.Error(t, st.CompleteRun(ctx, "no-such-id", sampleResult()))
	assert.Error(t, st.FailRun(ctx, "no-such-id", errors.New("boom")))

	_, err := st.GetRun(ctx, "no-such-id")
	assert.Error(t, err)
}

func TestListRuns_FilterAndLimit(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a, err := st.CreateRun(ctx, "a.xlsx", nil)
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, "b.xlsx", nil)
	require.NoError(t, err)
	require.NoError(t, st.CompleteRun(ctx, a.ID, sampleResult()))

	complete, err := st.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, a.ID, complete[0].ID)

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	limited, err := st.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
