package guidance

import (
	"math"

	"github.com/lintang-b-s/navigatorx-tour/pkg/geo"
	"github.com/lintang-b-s/navigatorx-tour/pkg/util"
)

type Turn string

const (
	DEPART            Turn = "depart"
	CONTINUE          Turn = "continue"
	TURN_SLIGHT_LEFT  Turn = "slight left"
	TURN_SLIGHT_RIGHT Turn = "slight right"
	TURN_LEFT         Turn = "left"
	TURN_RIGHT        Turn = "right"
	TURN_SHARP_LEFT   Turn = "sharp left"
	TURN_SHARP_RIGHT  Turn = "sharp right"
)

// computeInitialBearing. heading from a to b, in radians.
func computeInitialBearing(a, b geo.Coordinate) float64 {
	return util.DegreeToRadians(a.BearingTo(b))
}

// computeDeltaBearing. current hop initial bearing - previous hop initial bearing, in radians.
func computeDeltaBearing(prevInitialBearing, initialBearing float64) float64 {
	prevInitialBearing, initialBearing = alignInitialBearing(prevInitialBearing, initialBearing)
	return initialBearing - prevInitialBearing
}

/*
alignInitialBearing. keep the bearing difference inside [-180°, 180°].

e.g. previous bearing 20°, current bearing 350°: the raw difference (330°) reads as a right turn but it is a
left turn, so the previous bearing gets +360°.
previous bearing 340°, current bearing 10°: the raw difference (-330°) reads as a left turn, so the current
bearing gets +360°.
*/
func alignInitialBearing(prevInitialBearing, initialBearing float64) (float64, float64) {
	dif := util.RadiansToDegree(initialBearing) - util.RadiansToDegree(prevInitialBearing)
	if dif > 180 {
		prevInitialBearing += 2 * math.Pi
	} else if dif < -180 {
		initialBearing += 2 * math.Pi
	}
	return prevInitialBearing, initialBearing
}

func getTurnDirection(prevInitialBearing, initialBearing float64) Turn {
	delta := computeDeltaBearing(prevInitialBearing, initialBearing)
	deltaDegree := util.RadiansToDegree(math.Abs(delta))
	if deltaDegree < 12 {
		return CONTINUE
	} else if deltaDegree < 40 {
		if delta < 0 {
			return TURN_SLIGHT_LEFT
		}
		return TURN_SLIGHT_RIGHT
	} else if deltaDegree < 105 {
		if delta < 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	} else if delta < 0 {
		return TURN_SHARP_LEFT
	}
	return TURN_SHARP_RIGHT
}
