package usecases

import (
	"context"

	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-tour/pkg/engine"
)

type TourEngine interface {
	Plan(ctx context.Context, records []da.RouteRecord, criterion costfunction.Criterion, home string) (*engine.Plan,
		error)
	PlanAll(ctx context.Context, records []da.RouteRecord, home string) ([]*engine.Plan, error)
}

type GraphBuilder interface {
	BuildGraph(records []da.RouteRecord, criterion costfunction.Criterion) (*da.Graph, error)
}
