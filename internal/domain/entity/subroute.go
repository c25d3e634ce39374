package entity

import (
	"encoding/json"

	"github.com/paulmach/orb"
)

// Subroute is a matched path segment attributed to the trajectory index range [StartIdx, EndIdx].
// Subroutes are produced by the matching client and then only moved between collections.
type Subroute struct {
	StartIdx int
	EndIdx   int
	Coords   orb.LineString // orb order: X = longitude, Y = latitude.
}

// Clone returns a copy that shares no backing array with s.
func (s Subroute) Clone() Subroute {
	return Subroute{
		StartIdx: s.StartIdx,
		EndIdx:   s.EndIdx,
		Coords:   s.Coords.Clone(),
	}
}

// LastPoint returns the final coordinate of the subroute.
func (s Subroute) LastPoint() (orb.Point, bool) {
	if len(s.Coords) == 0 {
		return orb.Point{}, false
	}

	return s.Coords[len(s.Coords)-1], true
}

type subrouteJSON struct {
	StartIdx int          `json:"start_idx"`
	EndIdx   int          `json:"end_idx"`
	Coords   [][2]float64 `json:"coords"`
}

// MarshalJSON emits coords as [lat, lng] pairs, the order map clients draw with.
func (s Subroute) MarshalJSON() ([]byte, error) {
	out := subrouteJSON{
		StartIdx: s.StartIdx,
		EndIdx:   s.EndIdx,
		Coords:   make([][2]float64, 0, len(s.Coords)),
	}
	for _, p := range s.Coords {
		out.Coords = append(out.Coords, [2]float64{p.Lat(), p.Lon()})
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads the [lat, lng] form written by MarshalJSON.
func (s *Subroute) UnmarshalJSON(data []byte) error {
	var in subrouteJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	s.StartIdx = in.StartIdx
	s.EndIdx = in.EndIdx
	s.Coords = make(orb.LineString, 0, len(in.Coords))
	for _, c := range in.Coords {
		s.Coords = append(s.Coords, orb.Point{c[1], c[0]})
	}

	return nil
}

// CloneSubroutes deep-copies a subroute slice. A nil input stays nil.
func CloneSubroutes(in []Subroute) []Subroute {
	if in == nil {
		return nil
	}

	out := make([]Subroute, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}

	return out
}
