package routeparser

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-tour/pkg/geo"
	"go.uber.org/zap"
)

/*
BuildGraph. build the undirected transport network of records, weighted by criterion.

for each record (in order):
  - distance = great-circle distance of the two coordinates (km)
  - time = distance / travel_speed, cost = distance * cost_per_km
  - weight = time, cost or 1 (transfers) depending on criterion

locations are added on first sight. a later record for the same pair of locations replaces the earlier edge.
the first invalid record stops the build.
*/
func (p *RouteParser) BuildGraph(records []da.RouteRecord, criterion costfunction.Criterion) (*da.Graph, error) {
	p.log.Info("Building the graph...", zap.Int("records", len(records)), zap.Stringer("criterion", criterion))

	g := da.NewGraph(criterion)
	costFunction := costfunction.NewCostFunction(criterion)

	for i, r := range records {
		e, err := p.buildEdge(g, r)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s -> %s): %w", i, r.Name1, r.Name2, err)
		}
		if e == nil {
			continue
		}
		e.SetWeight(costFunction.GetWeight(e))

		if g.AddEdge(e) {
			p.log.Warn("duplicate route replaces earlier edge",
				zap.Int("record", i), zap.String("from", r.Name1), zap.String("to", r.Name2))
		}
		p.log.Debug("Added edge", zap.String("from", r.Name1), zap.String("to", r.Name2),
			zap.Float64("distance", e.GetLength()), zap.Float64("weight", e.GetWeight()))
	}

	p.log.Info("Graph construction completed.", zap.Int("vertices", g.NumberOfVertices()),
		zap.Int("edges", g.NumberOfEdges()), zap.Int("overwrites", g.NumberOfOverwrites()))
	return g, nil
}

// buildEdge. validate r, add both locations to g and return the (unweighted) edge. nil edge for a self loop.
func (p *RouteParser) buildEdge(g *da.Graph, r da.RouteRecord) (*da.RouteEdge, error) {
	if r.Name1 == "" || r.Name2 == "" {
		return nil, ErrEmptyLocationName
	}
	c1, err := r.Coordinate1()
	if err != nil {
		return nil, err
	}
	c2, err := r.Coordinate2()
	if err != nil {
		return nil, err
	}
	dist, err := geo.Distance(c1, c2)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(r.TravelSpeed) || math.IsInf(r.TravelSpeed, 0) || r.TravelSpeed <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSpeed, r.TravelSpeed)
	}
	if math.IsNaN(r.CostPerKm) || math.IsInf(r.CostPerKm, 0) || r.CostPerKm < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCost, r.CostPerKm)
	}
	if math.IsInf(dist/r.TravelSpeed, 0) {
		return nil, fmt.Errorf("%w: travel time of %.3f km at %v km/h overflows", ErrInvalidSpeed, dist, r.TravelSpeed)
	}
	if math.IsInf(dist*r.CostPerKm, 0) {
		return nil, fmt.Errorf("%w: cost of %.3f km at %v per km overflows", ErrInvalidCost, dist, r.CostPerKm)
	}

	u := g.AddLocation(da.NewLocation(r.Name1, c1))
	v := g.AddLocation(da.NewLocation(r.Name2, c2))
	if u == v {
		return nil, nil
	}
	return da.NewRouteEdge(u, v, dist, r.TravelSpeed, r.CostPerKm, r.TravelMode), nil
}
