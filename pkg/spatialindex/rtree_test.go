package spatialindex

import (
	"fmt"
	"testing"

	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-tour/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func seoulGraph() *da.Graph {
	g := da.NewGraph(costfunction.Time)
	g.AddLocation(da.NewLocation("Tarjan's Home", geo.NewCoordinate(37.52389, 126.92667)))
	g.AddLocation(da.NewLocation("Relative_1", geo.NewCoordinate(37.47833, 126.95167)))
	g.AddLocation(da.NewLocation("Relative_4", geo.NewCoordinate(37.54639, 126.94944)))
	return g
}

func TestNearest(t *testing.T) {
	rt := NewRtree()
	rt.Build(seoulGraph(), 0.05, zaptest.NewLogger(t))

	testCases := []struct {
		name     string
		lat, lon float64
		radius   float64
		want     string
		wantOK   bool
	}{
		{name: "exact point", lat: 37.52389, lon: 126.92667, radius: 0.5, want: "Tarjan's Home", wantOK: true},
		{name: "close to relative 4", lat: 37.5460, lon: 126.9490, radius: 1, want: "Relative_4", wantOK: true},
		{name: "too far", lat: 37.60, lon: 127.10, radius: 1, wantOK: false},
		{name: "invalid coordinate", lat: 95, lon: 126.9, radius: 1, wantOK: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			entry, dist, ok := rt.Nearest(tt.lat, tt.lon, tt.radius)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.want, entry.GetName())
			assert.LessOrEqual(t, dist, tt.radius)
		})
	}
}

func TestNearestAlongAxes(t *testing.T) {
	q := geo.NewCoordinate(37.5, 127.0)
	g := da.NewGraph(costfunction.Time)
	for i, bearing := range []float64{0, 90, 180, 270} {
		lat, lon := geo.GetDestinationPoint(q.Lat, q.Lon, bearing, 0.9)
		g.AddLocation(da.NewLocation(fmt.Sprintf("L%d", i), geo.NewCoordinate(lat, lon)))
	}

	for i, bearing := range []float64{0, 90, 180, 270} {
		t.Run(fmt.Sprintf("bearing_%.0f", bearing), func(t *testing.T) {
			// only location i is indexed
			single := da.NewGraph(costfunction.Time)
			single.AddLocation(g.GetLocation(da.Index(i)))
			rt := NewRtree()
			rt.Build(single, 0.05, zaptest.NewLogger(t))

			entry, dist, ok := rt.Nearest(q.Lat, q.Lon, 1.0)
			require.True(t, ok)
			assert.Equal(t, fmt.Sprintf("L%d", i), entry.GetName())
			assert.InDelta(t, 0.9, dist, 1e-3)
		})
	}
}

func TestSearchWithinRadius(t *testing.T) {
	rt := NewRtree()
	rt.Build(seoulGraph(), 0.05, zaptest.NewLogger(t))

	// every location lies within 10 km of the home location
	got := rt.SearchWithinRadius(37.52389, 126.92667, 10)
	names := make([]string, 0, len(got))
	for _, e := range got {
		names = append(names, e.GetName())
	}
	assert.ElementsMatch(t, []string{"Tarjan's Home", "Relative_1", "Relative_4"}, names)
}
