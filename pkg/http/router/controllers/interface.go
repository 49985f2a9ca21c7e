package controllers

import (
	"context"

	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-tour/pkg/engine"
)

type TourService interface {
	ComputeTour(ctx context.Context, records []da.RouteRecord, criterion costfunction.Criterion,
		home string) (*engine.Plan, error)
	ComputeTours(ctx context.Context, records []da.RouteRecord, home string) ([]*engine.Plan, error)
	ResolveHome(records []da.RouteRecord, lat, lon float64) (string, error)
}
