package proximity

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/tidwall/rtree"

	"whereabouts/internal/types"
)

type entry struct {
	seq      int
	geofence Geofence
}

// Registry is a spatial index of registered geofences. It is not safe for
// concurrent use; Notifier guards it.
type Registry struct {
	tree rtree.RTreeG[*entry]
	byID map[string]*entry
	seq  int
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*entry)}
}

// Register adds g to the index
func (r *Registry) Register(g Geofence) error {
	if _, ok := r.byID[g.ID]; ok {
		return fmt.Errorf("%w: geofence %s already registered", ErrRegistrationFailed, g.ID)
	}

	e := &entry{seq: r.seq, geofence: g}
	r.seq++
	center := g.Center.Point()
	for _, b := range wrappedBounds(center, geo.NewBoundAroundPoint(center, g.RadiusMeters)) {
		r.tree.Insert([2]float64(b.Min), [2]float64(b.Max), e)
	}
	r.byID[g.ID] = e
	return nil
}

// wrappedBounds splits a bound that crosses the antimeridian into the parts
// that fall within [-180, 180] longitude
func wrappedBounds(center orb.Point, b orb.Bound) []orb.Bound {
	half := math.Max(center[0]-b.Min[0], b.Max[0]-center[0])
	west, east := center[0]-half, center[0]+half

	switch {
	case east > 180:
		return []orb.Bound{
			{Min: orb.Point{west, b.Min[1]}, Max: orb.Point{180, b.Max[1]}},
			{Min: orb.Point{-180, b.Min[1]}, Max: orb.Point{east - 360, b.Max[1]}},
		}
	case west < -180:
		return []orb.Bound{
			{Min: orb.Point{-180, b.Min[1]}, Max: orb.Point{east, b.Max[1]}},
			{Min: orb.Point{west + 360, b.Min[1]}, Max: orb.Point{180, b.Max[1]}},
		}
	default:
		return []orb.Bound{b}
	}
}

// UnregisterAll removes every geofence and returns how many were removed
func (r *Registry) UnregisterAll() int {
	n := len(r.byID)
	r.tree = rtree.RTreeG[*entry]{}
	r.byID = make(map[string]*entry)
	return n
}

func (r *Registry) Len() int {
	return len(r.byID)
}

// Containing returns the geofences that contain c, in registration order
func (r *Registry) Containing(c types.Coords) []Geofence {
	pt := [2]float64(c.Point())

	var hits []*entry
	seen := make(map[*entry]bool)
	r.tree.Search(pt, pt, func(_, _ [2]float64, e *entry) bool {
		// entries crossing the antimeridian are indexed twice
		if !seen[e] && e.geofence.Contains(c) {
			seen[e] = true
			hits = append(hits, e)
		}
		return true
	})

	sort.Slice(hits, func(i, j int) bool { return hits[i].seq < hits[j].seq })
	out := make([]Geofence, len(hits))
	for i, e := range hits {
		out[i] = e.geofence
	}
	return out
}

// Geofences returns every registered geofence in registration order
func (r *Registry) Geofences() []Geofence {
	entries := make([]*entry, 0, len(r.byID))
	for _, e := range r.byID {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]Geofence, len(entries))
	for i, e := range entries {
		out[i] = e.geofence
	}
	return out
}
