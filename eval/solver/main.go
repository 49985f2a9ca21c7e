package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/lintang-b-s/navigatorx-tour/pkg/concurrent"
	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-tour/pkg/engine"
	"github.com/lintang-b-s/navigatorx-tour/pkg/geo"
	log "github.com/lintang-b-s/navigatorx-tour/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	minNodes = flag.Int("min_nodes", 4, "smallest instance")
	maxNodes = flag.Int("max_nodes", 18, "largest instance")
	degree   = flag.Int("degree", 3, "extra random routes per location")
	workers  = flag.Int("workers", 8, "solver goroutines of the parallel runs")
	seed     = flag.Uint64("seed", 42, "instance seed")
	output   = flag.String("output", "solver_eval.csv", "csv output")
)

const home = "Home"

// stageTimer. keeps the latest duration of every stage.
type stageTimer struct {
	mu     sync.Mutex
	stages map[string]time.Duration
	states int
}

func (s *stageTimer) ObserveStage(stage string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stages[stage] = d
}

func (s *stageTimer) AddStates(criterion string, states int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states += states
}

func (s *stageTimer) IncPlans(criterion, status string) {}

// randomInstance. n locations within 20km of seoul city hall, a chain through all of them plus random routes.
func randomInstance(n int) []da.RouteRecord {
	rd := rand.New(rand.NewSource(*seed + uint64(n)))
	center := geo.NewCoordinate(37.5663, 126.9779)

	names := make([]string, n)
	coords := make([]geo.Coordinate, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("Relative_%d", i)
		lat, lon := geo.GetDestinationPoint(center.Lat, center.Lon, rd.Float64()*360, rd.Float64()*20)
		coords[i] = geo.NewCoordinate(lat, lon)
	}
	names[0] = home

	modes := []string{"bus", "train", "walk", "taxi"}
	route := func(u, v int) da.RouteRecord {
		return da.NewRouteRecord(names[u], coords[u], names[v], coords[v], 5+rd.Float64()*75, rd.Float64()*5,
			modes[rd.Intn(len(modes))])
	}

	records := make([]da.RouteRecord, 0, n*(*degree+1))
	for v := 1; v < n; v++ {
		records = append(records, route(v-1, v))
	}
	for u := 0; u < n; u++ {
		for d := 0; d < *degree; d++ {
			if v := rd.Intn(n); v != u {
				records = append(records, route(u, v))
			}
		}
	}
	return records
}

func main() {
	flag.Parse()
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	sizes := make([]int, 0, *maxNodes-*minNodes+1)
	for n := *minNodes; n <= *maxNodes; n++ {
		sizes = append(sizes, n)
	}
	instances := concurrent.Map(context.Background(), *workers, sizes,
		func(ctx context.Context, n int) []da.RouteRecord {
			return randomInstance(n)
		})

	fout, err := os.Create(*output)
	if err != nil {
		panic(err)
	}
	defer fout.Close()

	writer := csv.NewWriter(fout)
	defer writer.Flush()
	if err := writer.Write([]string{"n", "criterion", "resolver", "workers", "build_ms", "resolve_ms", "solve_ms",
		"states", "total_weight"}); err != nil {
		panic(err)
	}

	ms := func(d time.Duration) string {
		return strconv.FormatFloat(float64(d.Microseconds())/1000, 'f', 3, 64)
	}

	for i, n := range sizes {
		for _, criterion := range costfunction.Criteria {
			for _, resolver := range []string{engine.ResolverFloydWarshall, engine.ResolverDijkstra} {
				for _, w := range []int{1, *workers} {
					timer := &stageTimer{stages: make(map[string]time.Duration)}
					e := engine.NewEngine(logger, engine.Options{
						Workers:  w,
						MaxNodes: n,
						Resolver: resolver,
						Recorder: timer,
					})

					plan, err := e.Plan(context.Background(), instances[i], criterion, home)
					if err != nil {
						logger.Error("plan failed", zap.Int("n", n), zap.Error(err))
						continue
					}

					logger.Sugar().Infof("n: %d, criterion: %s, resolver: %s, workers: %d, solve: %v", n, criterion,
						resolver, w, timer.stages["solve"])
					if err := writer.Write([]string{
						strconv.Itoa(n), criterion.String(), resolver, strconv.Itoa(w),
						ms(timer.stages["build"]), ms(timer.stages["resolve"]), ms(timer.stages["solve"]),
						strconv.Itoa(timer.states),
						strconv.FormatFloat(plan.TotalWeight, 'f', -1, 64),
					}); err != nil {
						panic(err)
					}
				}
			}
		}
	}
}
