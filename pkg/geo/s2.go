package geo

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

func toLatLng(c Coordinate) s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}

// greatCircleDistance. central angle between c1 and c2 on the unit sphere scaled by the mean earth radius (km).
func greatCircleDistance(c1, c2 Coordinate) float64 {
	angle := toLatLng(c1).Distance(toLatLng(c2))
	return angle.Radians() * earthRadiusKM
}

// Centroid. normalized centroid of coords on the sphere.
func Centroid(coords []Coordinate) Coordinate {
	if len(coords) == 0 {
		return Coordinate{}
	}
	var sum r3.Vector
	for _, c := range coords {
		sum = sum.Add(s2.PointFromLatLng(toLatLng(c)).Vector)
	}
	if sum.Norm() == 0 {
		return coords[0]
	}
	ll := s2.LatLngFromPoint(s2.Point{Vector: sum.Normalize()})
	return NewCoordinate(ll.Lat.Degrees(), ll.Lng.Degrees())
}
