package frontier

import (
	"log/slog"

	"trajmatch/internal/domain/entity"
	domainerrors "trajmatch/internal/domain/errors"
)

// Outcome summarises what one Apply did to the frontier.
type Outcome struct {
	RequestIdx int
	Promoted   int // provisional subroutes moved to committed
	Trimmed    int // stale provisional subroutes dropped before splicing
	Appended   int // new subroutes spliced onto the frontier
	Bridged    int // historical subroutes pulled in by connection searches
	Gaps       []*domainerrors.ConnectionGapError
}

// Engine owns a frontier State and applies matcher responses to it.
// It is not safe for concurrent use; the simulation driver serialises access.
type Engine struct {
	state  State
	logger *slog.Logger
}

// NewEngine returns an engine holding an empty, not started frontier.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		state:  newState(),
		logger: logger,
	}
}

// Begin moves a not started frontier to index 0. It is a no-op afterwards.
func (e *Engine) Begin() {
	if e.state.AtIdx < 0 {
		e.state.AtIdx = 0
	}
}

// Reset clears everything, history included.
func (e *Engine) Reset() {
	e.state = newState()
}

// AtIdx is the next trajectory index to request, or NotStarted.
func (e *Engine) AtIdx() int {
	return e.state.AtIdx
}

// ActiveStates is the opaque matcher state to echo on the next request.
func (e *Engine) ActiveStates() []byte {
	return e.state.ActiveStates
}

// Counts returns the number of committed and provisional subroutes.
func (e *Engine) Counts() (committed, provisional int) {
	return len(e.state.Committed), len(e.state.Provisional)
}

// Apply merges the provisional subroutes of resp, received for requestIdx,
// into the frontier. Unbridgeable subroutes are dropped and reported in
// Outcome.Gaps; they never abort the update.
func (e *Engine) Apply(requestIdx int, resp *entity.MatchResponse) Outcome {
	out := Outcome{RequestIdx: requestIdx}
	batch := entity.CloneSubroutes(resp.ProvisionalSubroutes)

	e.state.History = append(e.state.History, HistoryEntry{
		RequestIdx: requestIdx,
		Batch:      entity.CloneSubroutes(batch),
	})

	out.Promoted = e.promote(resp.CommittedIdx)

	if len(batch) > 0 {
		before := len(e.state.Provisional)
		e.state.Provisional = keepEndingBy(e.state.Provisional, batch[0].StartIdx)
		out.Trimmed = before - len(e.state.Provisional)
	}

	for _, sub := range batch {
		if e.anchored(sub.StartIdx) {
			e.state.Provisional = append(e.state.Provisional, sub)
			out.Appended++

			continue
		}

		chain, ok := e.FindConnectionChain(sub.StartIdx)
		if !ok {
			gap := &domainerrors.ConnectionGapError{
				RequestIdx: requestIdx,
				StartIdx:   sub.StartIdx,
				EndIdx:     sub.EndIdx,
			}
			out.Gaps = append(out.Gaps, gap)
			e.logger.Warn("Connection subroute not found",
				slog.Int("request_idx", requestIdx),
				slog.Int("start_idx", sub.StartIdx),
				slog.Int("end_idx", sub.EndIdx),
			)

			continue
		}

		cut := chain[0].StartIdx
		e.state.Provisional = keepEndingBy(e.state.Provisional, cut)
		e.state.Committed = keepEndingBy(e.state.Committed, cut)
		e.state.Provisional = append(e.state.Provisional, chain...)
		e.state.Provisional = append(e.state.Provisional, sub)
		out.Bridged += len(chain)
		out.Appended++

		e.logger.Debug("Connection subroute found",
			slog.Int("request_idx", requestIdx),
			slog.Int("start_idx", sub.StartIdx),
			slog.Int("chain_start", cut),
			slog.Int("chain_len", len(chain)),
		)
	}

	e.state.ActiveStates = append(e.state.ActiveStates[:0:0], resp.ActiveStates...)
	e.state.AtIdx = requestIdx + 1

	return out
}

// promote moves every provisional subroute ending at or before committedIdx to
// the committed chain, preserving order.
func (e *Engine) promote(committedIdx int) int {
	var kept []entity.Subroute
	promoted := 0
	for _, sub := range e.state.Provisional {
		if sub.EndIdx <= committedIdx {
			e.state.Committed = append(e.state.Committed, sub)
			promoted++
		} else {
			kept = append(kept, sub)
		}
	}
	e.state.Provisional = kept

	return promoted
}

// anchored reports whether a subroute starting at idx connects to what the
// frontier already holds.
func (e *Engine) anchored(idx int) bool {
	if idx == 0 {
		return true
	}
	if end, ok := tailEnd(e.state.Provisional); ok && end == idx {
		return true
	}
	if end, ok := tailEnd(e.state.Committed); ok && end == idx {
		return true
	}

	return false
}

// FindConnectionChain walks the history backwards from targetStartIdx and
// returns the chain of historical subroutes that links an anchored index
// (0 or a current chain tail) to targetStartIdx, in path order.
//
// Each step takes the first recorded subroute ending at the current index. The
// walk fails when a link is missing or an index repeats, so it ends after at
// most one step per distinct end index in history.
func (e *Engine) FindConnectionChain(targetStartIdx int) ([]entity.Subroute, bool) {
	var reversed []entity.Subroute
	visited := make(map[int]struct{})
	cur := targetStartIdx

	for {
		if _, seen := visited[cur]; seen {
			return nil, false
		}
		visited[cur] = struct{}{}

		candidate, ok := e.findEndingAt(cur)
		if !ok {
			return nil, false
		}
		reversed = append(reversed, candidate)

		if e.anchored(candidate.StartIdx) {
			break
		}
		cur = candidate.StartIdx
	}

	chain := make([]entity.Subroute, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		chain = append(chain, reversed[i].Clone())
	}

	return chain, true
}

func (e *Engine) findEndingAt(idx int) (entity.Subroute, bool) {
	for _, h := range e.state.History {
		for _, sub := range h.Batch {
			if sub.EndIdx == idx {
				return sub, true
			}
		}
	}

	return entity.Subroute{}, false
}

// AlternativeParents lists the tail of the committed chain followed by the
// last point of every provisional subroute.
func (e *Engine) AlternativeParents() []entity.ParentPoint {
	parents := make([]entity.ParentPoint, 0, len(e.state.Provisional)+1)
	if n := len(e.state.Committed); n > 0 {
		if p, ok := parentOf(e.state.Committed[n-1]); ok {
			parents = append(parents, p)
		}
	}
	for _, sub := range e.state.Provisional {
		if p, ok := parentOf(sub); ok {
			parents = append(parents, p)
		}
	}

	return parents
}

func parentOf(sub entity.Subroute) (entity.ParentPoint, bool) {
	last, ok := sub.LastPoint()
	if !ok {
		return entity.ParentPoint{}, false
	}

	return entity.ParentPoint{Lat: last.Lat(), Lon: last.Lon(), Idx: sub.EndIdx}, true
}

// Snapshot returns a deep copy of the frontier for read-only consumers.
func (e *Engine) Snapshot() State {
	return e.state.clone()
}
