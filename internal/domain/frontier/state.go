// Package frontier reconciles per-point map matching results into a committed
// prefix and a provisional frontier, repairing discontinuities from history.
package frontier

import (
	"encoding/json"
	"slices"

	"trajmatch/internal/domain/entity"
)

// NotStarted is the AtIdx of a frontier that has not requested anything yet.
const NotStarted = -1

// HistoryEntry is one batch of provisional subroutes as received for a request index.
type HistoryEntry struct {
	RequestIdx int               `json:"request_idx"`
	Batch      []entity.Subroute `json:"batch"`
}

// State is the frontier record owned by the Engine.
//
// Committed and Provisional each satisfy: sorted by StartIdx and
// s[i].StartIdx == s[i-1].EndIdx, with Provisional chained from the committed tail.
type State struct {
	Committed    []entity.Subroute `json:"committed"`
	Provisional  []entity.Subroute `json:"provisional"`
	History      []HistoryEntry    `json:"history"`
	ActiveStates json.RawMessage   `json:"active_states"`
	AtIdx        int               `json:"at_idx"`
}

func newState() State {
	return State{AtIdx: NotStarted}
}

func (s State) clone() State {
	out := State{
		Committed:    entity.CloneSubroutes(s.Committed),
		Provisional:  entity.CloneSubroutes(s.Provisional),
		ActiveStates: slices.Clone(s.ActiveStates),
		AtIdx:        s.AtIdx,
	}
	if s.History != nil {
		out.History = make([]HistoryEntry, len(s.History))
		for i, h := range s.History {
			out.History[i] = HistoryEntry{RequestIdx: h.RequestIdx, Batch: entity.CloneSubroutes(h.Batch)}
		}
	}

	return out
}

func tailEnd(chain []entity.Subroute) (int, bool) {
	if len(chain) == 0 {
		return 0, false
	}

	return chain[len(chain)-1].EndIdx, true
}

// keepEndingBy returns the prefix-preserving subset of chain whose EndIdx <= bound.
func keepEndingBy(chain []entity.Subroute, bound int) []entity.Subroute {
	kept := chain[:0:0]
	for _, s := range chain {
		if s.EndIdx <= bound {
			kept = append(kept, s)
		}
	}

	return kept
}
