package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/navigatorx-tour/pkg/geo"
)

// RouteRecord. one direct connection between two locations, as found in the routes data file.
// coordinates are [lat, lon] in degree.
type RouteRecord struct {
	RouteName    string    `json:"routeName,omitempty"`
	Name1        string    `json:"position_1" validate:"required"`
	StreetName1  string    `json:"position1_streetName,omitempty"`
	Coordinates1 []float64 `json:"position1_coordinates" validate:"required,len=2"`
	Name2        string    `json:"position_2" validate:"required"`
	StreetName2  string    `json:"position2_streetName,omitempty"`
	Coordinates2 []float64 `json:"position2_coordinates" validate:"required,len=2"`
	TravelMode   string    `json:"travel_mode"`
	TravelSpeed  float64   `json:"travel_speed"`
	CostPerKm    float64   `json:"cost_per_km"`
}

func NewRouteRecord(name1 string, c1 geo.Coordinate, name2 string, c2 geo.Coordinate, speed, costPerKm float64,
	mode string) RouteRecord {
	return RouteRecord{
		Name1:        name1,
		Coordinates1: []float64{c1.Lat, c1.Lon},
		Name2:        name2,
		Coordinates2: []float64{c2.Lat, c2.Lon},
		TravelMode:   mode,
		TravelSpeed:  speed,
		CostPerKm:    costPerKm,
	}
}

func (r RouteRecord) Coordinate1() (geo.Coordinate, error) {
	return toCoordinate(r.Coordinates1)
}

func (r RouteRecord) Coordinate2() (geo.Coordinate, error) {
	return toCoordinate(r.Coordinates2)
}

func toCoordinate(latLon []float64) (geo.Coordinate, error) {
	if len(latLon) != 2 {
		return geo.Coordinate{}, fmt.Errorf("%w: want [lat, lon], got %d values", geo.ErrInvalidCoordinate, len(latLon))
	}
	c := geo.NewCoordinate(latLon[0], latLon[1])
	if err := c.Validate(); err != nil {
		return geo.Coordinate{}, err
	}
	return c, nil
}

// Location. a named node of the transport network. immutable after load.
type Location struct {
	name  string
	coord geo.Coordinate
}

func NewLocation(name string, coord geo.Coordinate) Location {
	return Location{name: name, coord: coord}
}

func (l Location) GetName() string {
	return l.name
}

func (l Location) GetCoordinate() geo.Coordinate {
	return l.coord
}

// RouteEdge. undirected connection between two locations.
// distance in km, time in hours, cost in currency units. weight depends on the graph criterion.
type RouteEdge struct {
	from, to    Index
	travelSpeed float64
	costPerKm   float64
	travelMode  string
	distance    float64
	weight      float64
}

func NewRouteEdge(from, to Index, distance, travelSpeed, costPerKm float64, travelMode string) *RouteEdge {
	return &RouteEdge{
		from:        from,
		to:          to,
		distance:    distance,
		travelSpeed: travelSpeed,
		costPerKm:   costPerKm,
		travelMode:  travelMode,
	}
}

func (e *RouteEdge) GetFrom() Index {
	return e.from
}

func (e *RouteEdge) GetTo() Index {
	return e.to
}

// Other. the endpoint of e that is not v.
func (e *RouteEdge) Other(v Index) Index {
	if e.from == v {
		return e.to
	}
	return e.from
}

func (e *RouteEdge) GetLength() float64 {
	return e.distance
}

func (e *RouteEdge) GetEdgeSpeed() float64 {
	return e.travelSpeed
}

func (e *RouteEdge) GetCostPerKm() float64 {
	return e.costPerKm
}

func (e *RouteEdge) GetTravelMode() string {
	return e.travelMode
}

func (e *RouteEdge) GetTime() float64 {
	return e.distance / e.travelSpeed
}

func (e *RouteEdge) GetCost() float64 {
	return e.distance * e.costPerKm
}

func (e *RouteEdge) GetWeight() float64 {
	return e.weight
}

func (e *RouteEdge) SetWeight(w float64) {
	e.weight = w
}
