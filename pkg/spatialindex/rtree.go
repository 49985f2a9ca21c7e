package spatialindex

import (
	"math"

	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-tour/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[LocationEntry]
}

// LocationEntry. a graph location stored in a leaf of the r-tree.
type LocationEntry struct {
	id    da.Index
	name  string
	coord geo.Coordinate
}

func (le LocationEntry) GetID() da.Index {
	return le.id
}

func (le LocationEntry) GetName() string {
	return le.name
}

func (le LocationEntry) GetCoordinate() geo.Coordinate {
	return le.coord
}

func newLocationEntry(id da.Index, loc da.Location) LocationEntry {
	return LocationEntry{
		id:    id,
		name:  loc.GetName(),
		coord: loc.GetCoordinate(),
	}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[LocationEntry]
	return &Rtree{
		tr: &tr,
	}
}

// Build. build r-tree, with each leaf having bounding box with radius boundingBoxRadius (in km)
func (rt *Rtree) Build(graph *da.Graph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("locations", graph.NumberOfVertices()))
	for id, loc := range graph.GetLocations() {
		c := loc.GetCoordinate()
		lower, upper := boundingBox(c.Lat, c.Lon, boundingBoxRadius)
		rt.tr.Insert(lower, upper, newLocationEntry(da.Index(id), loc))
	}

	log.Info("R-tree spatial index built.", zap.Int("entries", rt.tr.Len()))
}

// SearchWithinRadius search for all locations whose leaf box intersects the box of radius (in km) around the
// query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []LocationEntry {
	return rt.search(qLat, qLon, radius, 20)
}

// boundingBox. [lon, lat] corners of the box enclosing the circle of radius km around (lat, lon), taken from the
// points due south, west, north and east.
func boundingBox(lat, lon, radius float64) ([2]float64, [2]float64) {
	southLat, _ := geo.GetDestinationPoint(lat, lon, 180, radius)
	_, westLon := geo.GetDestinationPoint(lat, lon, 270, radius)
	northLat, _ := geo.GetDestinationPoint(lat, lon, 0, radius)
	_, eastLon := geo.GetDestinationPoint(lat, lon, 90, radius)
	return [2]float64{westLon, southLat}, [2]float64{eastLon, northLat}
}

func (rt *Rtree) search(qLat, qLon, radius float64, limit int) []LocationEntry {
	lower, upper := boundingBox(qLat, qLon, radius)

	results := make([]LocationEntry, 0, 10)
	rt.tr.Search(lower, upper,
		func(min, max [2]float64, data LocationEntry) bool {
			results = append(results, data)
			return limit <= 0 || len(results) < limit
		})
	return results
}

// Nearest. closest location within radius km of (qLat, qLon), by great-circle distance.
func (rt *Rtree) Nearest(qLat, qLon, radius float64) (LocationEntry, float64, bool) {
	q := geo.NewCoordinate(qLat, qLon)
	if q.Validate() != nil {
		return LocationEntry{}, 0, false
	}

	best, bestDist := LocationEntry{}, math.Inf(1)
	for _, cand := range rt.search(qLat, qLon, radius, 0) {
		d, err := geo.Distance(q, cand.coord)
		if err != nil {
			continue
		}
		if d < bestDist || (d == bestDist && cand.id < best.id) {
			best, bestDist = cand, d
		}
	}
	if math.IsInf(bestDist, 1) || bestDist > radius {
		return LocationEntry{}, 0, false
	}
	return best, bestDist, true
}
