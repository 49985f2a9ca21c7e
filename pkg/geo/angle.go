package geo

import (
	"math"

	"github.com/lintang-b-s/navigatorx-tour/pkg/util"
)

// BearingTo. initial heading from c towards to, in degrees clockwise from north, in [0, 360).
// the heading changes along a great-circle arc, this is the one at c.
func (c Coordinate) BearingTo(to Coordinate) float64 {
	if c == to {
		return 0
	}
	phi1, phi2 := util.DegreeToRadians(c.Lat), util.DegreeToRadians(to.Lat)
	dLambda := util.DegreeToRadians(to.Lon - c.Lon)

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)

	return math.Mod(util.RadiansToDegree(math.Atan2(y, x))+360, 360)
}
