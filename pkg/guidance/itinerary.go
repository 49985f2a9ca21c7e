package guidance

import (
	"fmt"

	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-tour/pkg/geo"
	"github.com/lintang-b-s/navigatorx-tour/pkg/util"
)

// Leg. travel between two consecutive tour stops. the underlying shortest path may pass other locations (Via).
type Leg struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Via       []string `json:"via,omitempty"`
	Modes     []string `json:"modes"`
	Distance  float64  `json:"distance_km"`
	Time      float64  `json:"time_hours"`
	Cost      float64  `json:"cost"`
	Transfers int      `json:"transfers"`
	Weight    float64  `json:"weight"`
	Bearing   float64  `json:"bearing"`
	Turn      Turn     `json:"turn"`
}

// Itinerary. Center is the centroid of the tour stops, a map center for Polyline.
type Itinerary struct {
	Legs          []Leg          `json:"legs"`
	TotalDistance float64        `json:"total_distance_km"`
	Polyline      string         `json:"polyline"`
	Center        geo.Coordinate `json:"center"`
}

/*
BuildItinerary. expand the tour (order[0] -> order[1] -> ... -> order[0]) into legs.

every leg follows the shortest path of table between its two stops, hop by hop over the graph edges. Turn is
the change of heading between the last hop of the previous leg and the first hop of the leg.
*/
func BuildItinerary(g Graph, table PathTable, order []int) (Itinerary, error) {
	it := Itinerary{Legs: make([]Leg, 0, len(order))}
	stops := make([]geo.Coordinate, len(order))
	for i, v := range order {
		stops[i] = g.GetLocation(da.Index(v)).GetCoordinate()
	}
	it.Center = geo.Centroid(stops)
	if len(order) < 2 {
		if len(order) == 1 {
			it.Polyline = geo.PolylineFromCoords([]geo.Coordinate{g.GetLocation(da.Index(order[0])).GetCoordinate()})
		}
		return it, nil
	}

	coords := make([]geo.Coordinate, 0, len(order)+1)
	coords = append(coords, g.GetLocation(da.Index(order[0])).GetCoordinate())

	prevBearing := 0.0
	for i := range order {
		from, to := order[i], order[(i+1)%len(order)]
		path := table.Path(from, to)
		if len(path) < 2 {
			return Itinerary{}, fmt.Errorf("no path between %s and %s", g.GetLocation(da.Index(from)).GetName(),
				g.GetLocation(da.Index(to)).GetName())
		}

		leg := Leg{
			From:  g.GetLocation(da.Index(from)).GetName(),
			To:    g.GetLocation(da.Index(to)).GetName(),
			Modes: make([]string, 0, len(path)-1),
		}
		for p := 0; p+1 < len(path); p++ {
			u, v := da.Index(path[p]), da.Index(path[p+1])
			e, ok := g.GetEdge(u, v)
			if !ok {
				return Itinerary{}, fmt.Errorf("no edge between %s and %s", g.GetLocation(u).GetName(),
					g.GetLocation(v).GetName())
			}
			if p > 0 {
				leg.Via = append(leg.Via, g.GetLocation(u).GetName())
			}
			leg.Modes = append(leg.Modes, e.GetTravelMode())
			leg.Distance += e.GetLength()
			leg.Time += e.GetTime()
			leg.Cost += e.GetCost()
			leg.Weight += e.GetWeight()
			leg.Transfers++

			a, b := g.GetLocation(u).GetCoordinate(), g.GetLocation(v).GetCoordinate()
			bearing := computeInitialBearing(a, b)
			if p == 0 {
				leg.Bearing = util.RoundFloat(a.BearingTo(b), 2)
				if i == 0 {
					leg.Turn = DEPART
				} else {
					leg.Turn = getTurnDirection(prevBearing, bearing)
				}
			}
			prevBearing = bearing
			coords = append(coords, b)
		}

		it.TotalDistance += leg.Distance
		it.Legs = append(it.Legs, leg)
	}

	it.Polyline = geo.PolylineFromCoords(coords)
	return it, nil
}
