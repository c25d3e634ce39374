package frontier

import (
	"encoding/json"
	"testing"

	"trajmatch/internal/domain/entity"
	domainerrors "trajmatch/internal/domain/errors"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sub(start, end int) entity.Subroute {
	coords := make(orb.LineString, 0, end-start+1)
	for i := start; i <= end; i++ {
		coords = append(coords, orb.Point{float64(i) * 0.001, 51.5 + float64(i)*0.001})
	}

	return entity.Subroute{StartIdx: start, EndIdx: end, Coords: coords}
}

func resp(committedIdx int, subs ...entity.Subroute) *entity.MatchResponse {
	return &entity.MatchResponse{
		ActiveStates:         json.RawMessage(`[{"id":1}]`),
		CommittedIdx:         committedIdx,
		ProvisionalSubroutes: subs,
	}
}

func spans(subs []entity.Subroute) [][2]int {
	out := make([][2]int, 0, len(subs))
	for _, s := range subs {
		out = append(out, [2]int{s.StartIdx, s.EndIdx})
	}

	return out
}

func TestEngine_NewEngineNotStarted(t *testing.T) {
	e := NewEngine(nil)

	assert.Equal(t, NotStarted, e.AtIdx())
	e.Begin()
	assert.Equal(t, 0, e.AtIdx())
	e.Begin()
	assert.Equal(t, 0, e.AtIdx())
}

func TestEngine_FirstBatchOnEmptyFrontier(t *testing.T) {
	e := NewEngine(nil)
	first := entity.Subroute{StartIdx: 0, EndIdx: 2, Coords: orb.LineString{{0, 0}, {1, 1}}}

	out := e.Apply(0, resp(0, first))

	snap := e.Snapshot()
	assert.Empty(t, snap.Committed)
	require.Len(t, snap.Provisional, 1)
	assert.Equal(t, first, snap.Provisional[0])
	assert.Equal(t, 1, out.Appended)
	assert.Empty(t, out.Gaps)
	assert.Equal(t, 1, snap.AtIdx)
	assert.JSONEq(t, `[{"id":1}]`, string(snap.ActiveStates))
}

func TestEngine_PromoteAndExtend(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))

	out := e.Apply(1, resp(2, sub(2, 4)))

	snap := e.Snapshot()
	assert.Equal(t, [][2]int{{0, 2}}, spans(snap.Committed))
	assert.Equal(t, [][2]int{{2, 4}}, spans(snap.Provisional))
	assert.Equal(t, 1, out.Promoted)
	assert.True(t, snap.Contiguous())
}

func TestEngine_GapBridgedFromHistory(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))
	// {2,3} is recorded in history but trimmed away by the following batch.
	e.Apply(1, resp(0, sub(0, 2), sub(2, 3)))
	e.Apply(2, resp(0, sub(0, 2)))
	require.Equal(t, [][2]int{{0, 2}}, spans(e.Snapshot().Provisional))

	out := e.Apply(3, resp(0, sub(3, 5)))

	snap := e.Snapshot()
	assert.Empty(t, out.Gaps)
	assert.Equal(t, 1, out.Bridged)
	assert.Equal(t, [][2]int{{0, 2}, {2, 3}, {3, 5}}, spans(snap.Provisional))
	assert.True(t, snap.Contiguous())
}

func TestEngine_UnresolvedGapDropsSubroute(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))

	out := e.Apply(1, resp(0, sub(7, 9)))

	require.Len(t, out.Gaps, 1)
	gap := out.Gaps[0]
	assert.ErrorIs(t, gap, domainerrors.ErrUnresolvedConnectionGap)
	assert.Equal(t, 1, gap.RequestIdx)
	assert.Equal(t, 7, gap.StartIdx)
	assert.Equal(t, 9, gap.EndIdx)

	snap := e.Snapshot()
	assert.Equal(t, [][2]int{{0, 2}}, spans(snap.Provisional))
	assert.Equal(t, 2, snap.AtIdx, "at_idx advances even when splicing fails")
	assert.Len(t, snap.History, 2)
}

func TestEngine_PromotionMovesEveryEndedSubrouteInOrder(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 1), sub(1, 2), sub(2, 3), sub(3, 5)))

	out := e.Apply(1, resp(3, sub(5, 6)))

	snap := e.Snapshot()
	assert.Equal(t, 3, out.Promoted)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, spans(snap.Committed))
	for _, p := range snap.Provisional {
		assert.Greater(t, p.EndIdx, 3)
	}
	assert.Equal(t, [][2]int{{3, 5}, {5, 6}}, spans(snap.Provisional))
	assert.True(t, snap.Contiguous())
}

func TestEngine_TrimDropsOverlapWithNewFrontier(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2), sub(2, 4), sub(4, 6)))

	out := e.Apply(1, resp(0, sub(2, 5)))

	assert.Equal(t, 2, out.Trimmed)
	assert.Equal(t, [][2]int{{0, 2}, {2, 5}}, spans(e.Snapshot().Provisional))
}

func TestEngine_EmptyBatchKeepsProvisional(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))

	out := e.Apply(1, resp(0))

	assert.Zero(t, out.Trimmed)
	assert.Equal(t, [][2]int{{0, 2}}, spans(e.Snapshot().Provisional))
	assert.Equal(t, 2, e.AtIdx())
}

func TestEngine_ConnectsToCommittedTail(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))
	e.Apply(1, resp(2, sub(2, 3)))
	// Provisional {2,3} gets promoted and the new batch starts from the committed tail.
	out := e.Apply(2, resp(3, sub(3, 4)))

	snap := e.Snapshot()
	assert.Empty(t, out.Gaps)
	assert.Equal(t, [][2]int{{0, 2}, {2, 3}}, spans(snap.Committed))
	assert.Equal(t, [][2]int{{3, 4}}, spans(snap.Provisional))
	assert.True(t, snap.Contiguous())
}

func TestEngine_BridgeSupersedesCommittedOverlap(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))
	e.Apply(1, resp(0, sub(2, 4)))
	e.Apply(2, resp(4, sub(4, 5)))
	require.Equal(t, [][2]int{{0, 2}, {2, 4}}, spans(e.Snapshot().Committed))
	// A revised path 0-2-3-6 arrives: {2,3} was never spliced, {3,6} references it.
	e.state.History = append(e.state.History, HistoryEntry{RequestIdx: 3, Batch: []entity.Subroute{sub(2, 3)}})

	out := e.Apply(4, resp(4, sub(3, 6)))

	snap := e.Snapshot()
	assert.Empty(t, out.Gaps)
	assert.Equal(t, 2, out.Bridged)
	assert.Empty(t, snap.Committed, "the chain starts at 0 and supersedes the committed prefix")
	assert.Equal(t, [][2]int{{0, 2}, {2, 3}, {3, 6}}, spans(snap.Provisional))
	assert.True(t, snap.Contiguous())
}

func TestEngine_FindConnectionChain_MultiHop(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))
	e.state.History = append(e.state.History,
		HistoryEntry{RequestIdx: 1, Batch: []entity.Subroute{sub(4, 6)}},
		HistoryEntry{RequestIdx: 2, Batch: []entity.Subroute{sub(2, 4)}},
		HistoryEntry{RequestIdx: 3, Batch: []entity.Subroute{sub(6, 7)}},
	)

	chain, ok := e.FindConnectionChain(7)

	require.True(t, ok)
	assert.Equal(t, [][2]int{{2, 4}, {4, 6}, {6, 7}}, spans(chain))
	assert.LessOrEqual(t, len(chain), len(e.state.History))
}

func TestEngine_FindConnectionChain_AnchorsAtZero(t *testing.T) {
	e := NewEngine(nil)
	e.state.History = []HistoryEntry{
		{RequestIdx: 0, Batch: []entity.Subroute{sub(0, 1)}},
		{RequestIdx: 1, Batch: []entity.Subroute{sub(1, 3)}},
	}

	chain, ok := e.FindConnectionChain(3)

	require.True(t, ok)
	assert.Equal(t, [][2]int{{0, 1}, {1, 3}}, spans(chain))
}

func TestEngine_FindConnectionChain_BrokenLink(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))
	e.state.History = append(e.state.History,
		HistoryEntry{RequestIdx: 1, Batch: []entity.Subroute{sub(5, 7)}},
		HistoryEntry{RequestIdx: 2, Batch: []entity.Subroute{sub(7, 9)}},
	)

	chain, ok := e.FindConnectionChain(9)

	assert.False(t, ok, "missing 2..5 link must fail the whole search")
	assert.Nil(t, chain)
}

func TestEngine_FindConnectionChain_CycleTerminates(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))
	e.state.History = append(e.state.History,
		HistoryEntry{RequestIdx: 1, Batch: []entity.Subroute{{StartIdx: 8, EndIdx: 5}}},
		HistoryEntry{RequestIdx: 2, Batch: []entity.Subroute{{StartIdx: 5, EndIdx: 8}}},
	)

	_, ok := e.FindConnectionChain(5)

	assert.False(t, ok)
}

func TestEngine_FindConnectionChain_DepthBound(t *testing.T) {
	const depth = 50
	e := NewEngine(nil)
	for i := depth - 1; i >= 0; i-- {
		e.state.History = append(e.state.History, HistoryEntry{RequestIdx: depth - i, Batch: []entity.Subroute{sub(i, i+1)}})
	}

	chain, ok := e.FindConnectionChain(depth)

	require.True(t, ok)
	assert.Len(t, chain, depth)
	assert.LessOrEqual(t, len(chain), len(e.state.History))
}

func TestEngine_ContiguityHoldsAcrossRun(t *testing.T) {
	batches := []*entity.MatchResponse{
		resp(0, sub(0, 1)),
		resp(0, sub(0, 2)),
		resp(1, sub(1, 3)),
		resp(1, sub(1, 2), sub(2, 4)),
		resp(2, sub(2, 5)),
		resp(4, sub(4, 6)),
		resp(5, sub(5, 7)),
	}

	e := NewEngine(nil)
	for i, b := range batches {
		out := e.Apply(i, b)
		if len(out.Gaps) == 0 {
			assert.True(t, e.Snapshot().Contiguous(), "after request %d: %v", i, spans(e.Snapshot().Path()))
		}
	}
	assert.Equal(t, len(batches), e.AtIdx())
}

func TestEngine_IdempotentReplay(t *testing.T) {
	batches := []*entity.MatchResponse{
		resp(0, sub(0, 2)),
		resp(0, sub(0, 2), sub(2, 3)),
		resp(0, sub(0, 2)),
		resp(2, sub(3, 5)),
		resp(3, sub(9, 11)),
		resp(5, sub(5, 6)),
	}

	run := func() State {
		e := NewEngine(nil)
		e.Begin()
		for i, b := range batches {
			e.Apply(i, b)
		}

		return e.Snapshot()
	}

	first, second := run(), run()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("replay diverged (-first +second):\n%s", diff)
	}
}

func TestEngine_SnapshotIsDetached(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))

	snap := e.Snapshot()
	snap.Provisional[0].Coords[0] = orb.Point{99, 99}
	snap.Provisional = append(snap.Provisional, sub(2, 3))
	snap.History[0].Batch[0].EndIdx = 42

	fresh := e.Snapshot()
	assert.Equal(t, [][2]int{{0, 2}}, spans(fresh.Provisional))
	assert.NotEqual(t, orb.Point{99, 99}, fresh.Provisional[0].Coords[0])
	assert.Equal(t, 2, fresh.History[0].Batch[0].EndIdx)
}

func TestEngine_ResetClearsEverything(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))
	e.Apply(1, resp(2, sub(2, 3)))

	e.Reset()

	snap := e.Snapshot()
	assert.Empty(t, snap.Committed)
	assert.Empty(t, snap.Provisional)
	assert.Empty(t, snap.History)
	assert.Empty(t, snap.ActiveStates)
	assert.Equal(t, NotStarted, snap.AtIdx)
}

func TestEngine_AlternativeParents(t *testing.T) {
	e := NewEngine(nil)
	assert.Empty(t, e.AlternativeParents())

	e.Apply(0, resp(0, sub(0, 2), sub(2, 3)))
	e.Apply(1, resp(2, sub(3, 4)))

	parents := e.AlternativeParents()
	require.Len(t, parents, 3)
	assert.Equal(t, 2, parents[0].Idx, "committed tail comes first")
	assert.Equal(t, 3, parents[1].Idx)
	assert.Equal(t, 4, parents[2].Idx)
	assert.InDelta(t, 51.504, parents[2].Lat, 1e-9)
	assert.InDelta(t, 0.004, parents[2].Lon, 1e-9)
}

func TestState_FeatureCollection(t *testing.T) {
	e := NewEngine(nil)
	e.Apply(0, resp(0, sub(0, 2)))
	e.Apply(1, resp(2, sub(2, 3)))

	fc := e.Snapshot().FeatureCollection([]entity.TrajectoryPoint{{Latitude: 51.5, Longitude: -0.09}})

	require.Len(t, fc.Features, 3)
	assert.Equal(t, KindCommitted, fc.Features[0].Properties["kind"])
	assert.Equal(t, KindProvisional, fc.Features[1].Properties["kind"])
	assert.Equal(t, KindTrajectory, fc.Features[2].Properties["kind"])
	assert.Equal(t, orb.Point{-0.09, 51.5}, fc.Features[2].Geometry)
}
