package controllers

import (
	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-tour/pkg/engine"
	"github.com/lintang-b-s/navigatorx-tour/pkg/geo"
	"github.com/lintang-b-s/navigatorx-tour/pkg/guidance"
)

// home is either a location name or a coordinate resolved to the nearest location.
type computeTourRequest struct {
	Criterion string           `json:"criterion" validate:"omitempty,oneof=time cost transfers 1 2 3"`
	Home      string           `json:"home" validate:"required_without_all=HomeLat HomeLon"`
	HomeLat   *float64         `json:"home_lat" validate:"required_with=HomeLon,omitempty,min=-90,max=90"`
	HomeLon   *float64         `json:"home_lon" validate:"required_with=HomeLat,omitempty,min=-180,max=180"`
	Routes    []da.RouteRecord `json:"routes" validate:"required,min=1,dive"`
}

type tourResponse struct {
	Criterion     string         `json:"criterion"`
	Unit          string         `json:"unit"`
	Home          string         `json:"home"`
	Path          []string       `json:"path"`
	TotalWeight   float64        `json:"total_weight"`
	Summary       string         `json:"summary"`
	TotalDistance float64        `json:"total_distance_km"`
	Legs          []guidance.Leg `json:"legs"`
	Polyline      string         `json:"polyline"`
	Center        geo.Coordinate `json:"center"`
}

func NewTourResponse(plan *engine.Plan) tourResponse {
	return tourResponse{
		Criterion:     plan.Criterion.String(),
		Unit:          plan.Criterion.Unit(),
		Home:          plan.Home,
		Path:          plan.Path,
		TotalWeight:   plan.TotalWeight,
		Summary:       guidance.Summary(plan.Criterion, plan.TotalWeight),
		TotalDistance: plan.Itinerary.TotalDistance,
		Legs:          plan.Itinerary.Legs,
		Polyline:      plan.Itinerary.Polyline,
		Center:        plan.Itinerary.Center,
	}
}

func NewToursResponse(plans []*engine.Plan) []tourResponse {
	tours := make([]tourResponse, len(plans))
	for i, p := range plans {
		tours[i] = NewTourResponse(p)
	}
	return tours
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
