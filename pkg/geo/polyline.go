package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords. google encoded polyline (precision 5) of coords in order.
func PolylineFromCoords(coords []Coordinate) string {
	if len(coords) == 0 {
		return ""
	}
	points := make([][]float64, len(coords))
	for i, c := range coords {
		points[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(points))
}
