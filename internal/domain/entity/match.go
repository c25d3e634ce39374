package entity

import "encoding/json"

// ParentPoint is a chain tail handed to the matcher as an alternative parent.
type ParentPoint struct {
	Lat float64 `json:"Lat"`
	Lon float64 `json:"Lon"`
	Idx int     `json:"Idx"`
}

// MatchResponse is the parsed answer of the matcher for one trajectory index.
// ActiveStates is opaque and only echoed back on the next request.
type MatchResponse struct {
	ActiveStates         json.RawMessage
	CommittedIdx         int
	ProvisionalSubroutes []Subroute
}
