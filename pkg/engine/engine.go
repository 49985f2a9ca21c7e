package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lintang-b-s/navigatorx-tour/pkg/allpairs"
	"github.com/lintang-b-s/navigatorx-tour/pkg/concurrent"
	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-tour/pkg/guidance"
	"github.com/lintang-b-s/navigatorx-tour/pkg/metrics"
	"github.com/lintang-b-s/navigatorx-tour/pkg/routeparser"
	"github.com/lintang-b-s/navigatorx-tour/pkg/tsp"
	"go.uber.org/zap"
)

type Options struct {
	// goroutines used inside the all pairs resolver and the held-karp levels. <= 1 runs sequentially.
	Workers  int
	MaxNodes int
	// ResolverDijkstra or ResolverFloydWarshall (default).
	Resolver string
	Recorder metrics.Recorder
}

const (
	ResolverFloydWarshall = "floyd-warshall"
	ResolverDijkstra      = "dijkstra"
)

type Engine struct {
	log    *zap.Logger
	parser *routeparser.RouteParser
	opts   Options
}

func NewEngine(log *zap.Logger, opts Options) *Engine {
	if opts.MaxNodes <= 0 || opts.MaxNodes > tsp.MaxNodes {
		opts.MaxNodes = tsp.MaxNodes
	}
	if opts.Resolver != ResolverDijkstra {
		opts.Resolver = ResolverFloydWarshall
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NopRecorder{}
	}
	return &Engine{
		log:    log,
		parser: routeparser.NewRouteParser(log),
		opts:   opts,
	}
}

func (e *Engine) GetRouteParser() *routeparser.RouteParser {
	return e.parser
}

// Plan. optimal round trip of one criterion.
type Plan struct {
	Criterion   costfunction.Criterion
	Home        string
	Path        []string
	TotalWeight float64
	Order       []int
	Graph       *da.Graph
	Table       *allpairs.Table
	Matrix      *da.DistanceMatrix
	Itinerary   guidance.Itinerary
}

/*
Plan. compute the minimum weight round trip from home through every location of records.

records -> graph (weights of criterion) -> all pairs shortest paths -> distance matrix -> held-karp -> rotation
to home -> itinerary. the first failing stage stops the pipeline and its error is returned unchanged.
*/
func (e *Engine) Plan(ctx context.Context, records []da.RouteRecord, criterion costfunction.Criterion,
	home string) (*Plan, error) {
	plan, err := e.plan(ctx, records, criterion, home)
	status := "ok"
	if err != nil {
		status = "error"
	}
	e.opts.Recorder.IncPlans(criterion.String(), status)
	return plan, err
}

func (e *Engine) plan(ctx context.Context, records []da.RouteRecord, criterion costfunction.Criterion,
	home string) (*Plan, error) {
	if len(records) == 0 {
		return nil, tsp.ErrEmptyGraph
	}

	var (
		graph *da.Graph
		table *allpairs.Table
		tour  tsp.Tour
		err   error
	)

	err = e.stage("build", func() error {
		graph, err = e.parser.BuildGraph(records, criterion)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = e.stage("resolve", func() error {
		resolve := allpairs.Resolve
		if e.opts.Resolver == ResolverDijkstra {
			resolve = allpairs.ResolveDijkstra
		}
		table, err = resolve(ctx, graph, allpairs.WithWorkers(e.opts.Workers))
		return err
	})
	if err != nil {
		return nil, err
	}

	var matrix *da.DistanceMatrix
	_ = e.stage("assemble", func() error {
		matrix = da.NewDistanceMatrix(graph.GetNames(), table.Dist)
		return nil
	})

	start, ok := matrix.IndexOf(home)
	if !ok {
		return nil, fmt.Errorf("%w: %q", tsp.ErrStartNotFound, home)
	}

	err = e.stage("solve", func() error {
		tour, err = tsp.SolveExact(ctx, matrix.Matrix, start,
			tsp.WithWorkers(e.opts.Workers),
			tsp.WithMaxNodes(e.opts.MaxNodes),
			tsp.WithObserver(func(level, states int) {
				e.opts.Recorder.AddStates(criterion.String(), states)
			}),
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	path, err := tsp.Normalize(tour.Order, start, matrix.Nodes)
	if err != nil {
		return nil, err
	}
	order, _ := tsp.Rotate(tour.Order, start)

	var itinerary guidance.Itinerary
	err = e.stage("itinerary", func() error {
		itinerary, err = guidance.BuildItinerary(graph, table, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("Optimal round trip found", zap.Stringer("criterion", criterion), zap.String("home", home),
		zap.Strings("path", path), zap.Float64("totalWeight", tour.Cost))

	return &Plan{
		Criterion:   graph.GetCriterion(),
		Home:        home,
		Path:        path,
		TotalWeight: tour.Cost,
		Order:       order,
		Graph:       graph,
		Table:       table,
		Matrix:      matrix,
		Itinerary:   itinerary,
	}, nil
}

func (e *Engine) stage(name string, run func() error) error {
	start := time.Now()
	err := run()
	elapsed := time.Since(start)
	e.opts.Recorder.ObserveStage(name, elapsed)
	if err != nil {
		e.log.Error("stage failed", zap.String("stage", name), zap.Duration("elapsed", elapsed), zap.Error(err))
		return err
	}
	e.log.Debug("stage done", zap.String("stage", name), zap.Duration("elapsed", elapsed))
	return nil
}

type planResult struct {
	plan *Plan
	err  error
}

// PlanAll. plan every criterion concurrently. plans are returned in costfunction.Criteria order.
func (e *Engine) PlanAll(ctx context.Context, records []da.RouteRecord, home string) ([]*Plan, error) {
	results := concurrent.Map(ctx, len(costfunction.Criteria), costfunction.Criteria,
		func(ctx context.Context, c costfunction.Criterion) planResult {
			plan, err := e.Plan(ctx, records, c, home)
			return planResult{plan: plan, err: err}
		})

	plans := make([]*Plan, len(results))
	errs := make([]error, 0)
	for i, res := range results {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", costfunction.Criteria[i], res.err))
			continue
		}
		plans[i] = res.plan
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return plans, nil
}
