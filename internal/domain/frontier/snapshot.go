package frontier

import (
	"trajmatch/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature kinds written to the "kind" property of exported features.
const (
	KindCommitted   = "committed"
	KindProvisional = "provisional"
	KindTrajectory  = "trajectory_point"
)

// Path returns committed followed by provisional.
func (s State) Path() []entity.Subroute {
	path := make([]entity.Subroute, 0, len(s.Committed)+len(s.Provisional))
	path = append(path, s.Committed...)
	path = append(path, s.Provisional...)

	return path
}

// Contiguous reports whether every adjacent pair of Path() shares its boundary index.
func (s State) Contiguous() bool {
	path := s.Path()
	for i := 1; i < len(path); i++ {
		if path[i].StartIdx != path[i-1].EndIdx {
			return false
		}
	}

	return true
}

// FeatureCollection renders the frontier as GeoJSON: one LineString per
// subroute tagged committed or provisional, then one Point per trajectory point.
func (s State) FeatureCollection(points []entity.TrajectoryPoint) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	add := func(kind string, subs []entity.Subroute) {
		for _, sub := range subs {
			f := geojson.NewFeature(sub.Coords.Clone())
			f.Properties["kind"] = kind
			f.Properties["start_idx"] = sub.StartIdx
			f.Properties["end_idx"] = sub.EndIdx
			fc.Append(f)
		}
	}
	add(KindCommitted, s.Committed)
	add(KindProvisional, s.Provisional)

	for i, p := range points {
		f := geojson.NewFeature(orb.Point{p.Longitude, p.Latitude})
		f.Properties["kind"] = KindTrajectory
		f.Properties["idx"] = i
		f.Properties["time"] = p.FormattedTimestamp()
		if p.Altitude != nil {
			f.Properties["altitude"] = *p.Altitude
		}
		fc.Append(f)
	}

	return fc
}
