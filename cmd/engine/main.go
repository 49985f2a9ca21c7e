package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lintang-b-s/navigatorx-tour/pkg/engine"
	"github.com/lintang-b-s/navigatorx-tour/pkg/http"
	"github.com/lintang-b-s/navigatorx-tour/pkg/http/usecases"
	"github.com/lintang-b-s/navigatorx-tour/pkg/logger"
	"github.com/lintang-b-s/navigatorx-tour/pkg/metrics"
	"github.com/lintang-b-s/navigatorx-tour/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configPath   = flag.String("config", "./data", "directory of config.yaml")
	searchRadius = flag.Float64("home_search_radius", 1.0, "max distance (km) between a home coordinate and its location")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configPath); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	solverMetrics := metrics.NewSolverMetrics(prometheus.DefaultRegisterer)
	tourEngine := engine.NewEngine(logger, engine.Options{
		Workers:  viper.GetInt("SOLVER_WORKERS"),
		MaxNodes: viper.GetInt("SOLVER_MAX_NODES"),
		Resolver: viper.GetString("ALLPAIRS_RESOLVER"),
		Recorder: solverMetrics,
	})

	tourService, err := usecases.NewTourService(logger, tourEngine, tourEngine.GetRouteParser(),
		viper.GetInt("PLAN_CACHE_SIZE"), *searchRadius, viper.GetFloat64("SPATIAL_INDEX_RADIUS"))
	if err != nil {
		panic(err)
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, solverMetrics, tourService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	logger.Info("Navigatorx Tour Server Stopped", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
