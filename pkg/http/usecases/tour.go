package usecases

import (
	"context"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/navigatorx-tour/pkg/allpairs"
	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-tour/pkg/engine"
	"github.com/lintang-b-s/navigatorx-tour/pkg/geo"
	"github.com/lintang-b-s/navigatorx-tour/pkg/routeparser"
	"github.com/lintang-b-s/navigatorx-tour/pkg/spatialindex"
	"github.com/lintang-b-s/navigatorx-tour/pkg/tsp"
	"github.com/lintang-b-s/navigatorx-tour/pkg/util"
	"go.uber.org/zap"
)

const allCriteria = "all"

type TourService struct {
	log          *zap.Logger
	engine       TourEngine
	builder      GraphBuilder
	cache        *lru.Cache[string, []*engine.Plan]
	searchRadius float64
	leafRadius   float64
}

// NewTourService. cacheSize <= 0 disables the plan cache. searchRadius (km) bounds the home lookup by
// coordinate, leafRadius (km) is the r-tree leaf box radius.
func NewTourService(log *zap.Logger, tourEngine TourEngine, builder GraphBuilder, cacheSize int,
	searchRadius, leafRadius float64) (*TourService, error) {
	ts := &TourService{
		log:          log,
		engine:       tourEngine,
		builder:      builder,
		searchRadius: searchRadius,
		leafRadius:   leafRadius,
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, []*engine.Plan](cacheSize)
		if err != nil {
			return nil, err
		}
		ts.cache = cache
	}
	return ts, nil
}

func (ts *TourService) ComputeTour(ctx context.Context, records []da.RouteRecord, criterion costfunction.Criterion,
	home string) (*engine.Plan, error) {
	plans, err := ts.cached(records, criterion.String(), home, func() ([]*engine.Plan, error) {
		plan, err := ts.engine.Plan(ctx, records, criterion, home)
		if err != nil {
			return nil, err
		}
		return []*engine.Plan{plan}, nil
	})
	if err != nil {
		return nil, err
	}
	return plans[0], nil
}

func (ts *TourService) ComputeTours(ctx context.Context, records []da.RouteRecord, home string) ([]*engine.Plan,
	error) {
	return ts.cached(records, allCriteria, home, func() ([]*engine.Plan, error) {
		return ts.engine.PlanAll(ctx, records, home)
	})
}

func (ts *TourService) cached(records []da.RouteRecord, criterion, home string,
	compute func() ([]*engine.Plan, error)) ([]*engine.Plan, error) {
	var key string
	if ts.cache != nil {
		k, err := planCacheKey(records, criterion, home)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "cannot hash request")
		}
		key = k
		if plans, ok := ts.cache.Get(key); ok {
			ts.log.Debug("plan cache hit", zap.String("criterion", criterion), zap.String("home", home))
			return plans, nil
		}
	}

	plans, err := compute()
	if err != nil {
		return nil, wrapPlanError(err)
	}
	if ts.cache != nil {
		ts.cache.Add(key, plans)
	}
	return plans, nil
}

// ResolveHome. name of the location of records nearest to (lat, lon), at most searchRadius km away.
func (ts *TourService) ResolveHome(records []da.RouteRecord, lat, lon float64) (string, error) {
	if err := geo.NewCoordinate(lat, lon).Validate(); err != nil {
		return "", util.WrapErrorf(err, util.ErrBadParamInput, "invalid home coordinate")
	}
	g, err := ts.builder.BuildGraph(records, costfunction.Time)
	if err != nil {
		return "", wrapPlanError(err)
	}

	rt := spatialindex.NewRtree()
	rt.Build(g, ts.leafRadius, ts.log)
	entry, dist, ok := rt.Nearest(lat, lon, ts.searchRadius)
	if !ok {
		return "", util.WrapErrorf(tsp.ErrStartNotFound, util.ErrNotFound,
			"no location within %.2f km of %f,%f", ts.searchRadius, lat, lon)
	}
	ts.log.Debug("home resolved", zap.String("home", entry.GetName()), zap.Float64("distance", dist))
	return entry.GetName(), nil
}

// wrapPlanError. attach the transport error code of a pipeline error.
func wrapPlanError(err error) error {
	switch {
	case errors.Is(err, tsp.ErrStartNotFound):
		return util.WrapErrorf(err, util.ErrNotFound, "home location not found")
	case errors.Is(err, geo.ErrInvalidCoordinate),
		errors.Is(err, routeparser.ErrInvalidSpeed),
		errors.Is(err, routeparser.ErrInvalidCost),
		errors.Is(err, routeparser.ErrEmptyLocationName),
		errors.Is(err, routeparser.ErrMalformedRouteFile),
		errors.Is(err, allpairs.ErrDisconnectedGraph),
		errors.Is(err, allpairs.ErrWeightOverflow),
		errors.Is(err, tsp.ErrEmptyGraph),
		errors.Is(err, tsp.ErrTooManyNodes),
		errors.Is(err, tsp.ErrNoHamiltonianCycle):
		return util.WrapErrorf(err, util.ErrBadParamInput, "cannot plan a round trip")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return util.WrapErrorf(err, util.ErrInternalServerError, "planning cancelled")
	default:
		return util.WrapErrorf(err, util.ErrInternalServerError, "planning failed")
	}
}
