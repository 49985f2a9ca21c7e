package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/lintang-b-s/navigatorx-tour/pkg/util"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// Validate. latitude in [-90,90], longitude in [-180,180], both finite.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90,90]", ErrInvalidCoordinate, c.Lat)
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180,180]", ErrInvalidCoordinate, c.Lon)
	}
	return nil
}

const (
	earthRadiusKM = 6371.0
)

// Distance. great-circle distance in km between two validated coordinates.
func Distance(c1, c2 Coordinate) (float64, error) {
	if err := c1.Validate(); err != nil {
		return 0, err
	}
	if err := c2.Validate(); err != nil {
		return 0, err
	}
	return greatCircleDistance(c1, c2), nil
}

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

// GetDestinationPoint returns the destination point given the starting point, bearing and distance
// dist in km
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {

	dr := dist / earthRadiusKM

	bearing = util.DegreeToRadians(bearing)

	lat1 = util.DegreeToRadians(lat1)
	lon1 = util.DegreeToRadians(lon1)

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)

	return radToDeg(lat2), normalizeLongitude(radToDeg(lon2))
}

// normalizeLongitude. long in degree
func normalizeLongitude(long float64) float64 {
	return math.Mod((long+540), 360) - 180.0
}
