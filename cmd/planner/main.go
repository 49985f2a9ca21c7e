package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
	"github.com/lintang-b-s/navigatorx-tour/pkg/engine"
	"github.com/lintang-b-s/navigatorx-tour/pkg/guidance"
	"github.com/lintang-b-s/navigatorx-tour/pkg/logger"
	"github.com/lintang-b-s/navigatorx-tour/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configPath  = flag.String("config", "./data", "directory of config.yaml")
	routesFile  = flag.String("routes", "", "route records json file (overrides ROUTES_FILE)")
	home        = flag.String("home", "", "home location name (overrides HOME_LOCATION)")
	criterion   = flag.String("criterion", "", "time, cost or transfers (1, 2, 3). empty shows the menu")
	all         = flag.Bool("all", false, "plan every criterion")
	workers     = flag.Int("workers", 0, "solver goroutines (overrides SOLVER_WORKERS)")
	interactive = flag.Bool("interactive", false, "always ask for the criterion")
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

	if *routesFile != "" {
		viper.Set("ROUTES_FILE", *routesFile)
	}
	if *home != "" {
		viper.Set("HOME_LOCATION", *home)
	}
	if *workers > 0 {
		viper.Set("SOLVER_WORKERS", *workers)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("planning failed", zap.Error(err))
		stop()
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	tourEngine := engine.NewEngine(logger, engine.Options{
		Workers:  viper.GetInt("SOLVER_WORKERS"),
		MaxNodes: viper.GetInt("SOLVER_MAX_NODES"),
		Resolver: viper.GetString("ALLPAIRS_RESOLVER"),
	})

	records, err := tourEngine.GetRouteParser().LoadRoutes(viper.GetString("ROUTES_FILE"))
	if err != nil {
		return err
	}
	homeLocation := viper.GetString("HOME_LOCATION")

	var plans []*engine.Plan
	if *all {
		plans, err = tourEngine.PlanAll(ctx, records, homeLocation)
		if err != nil {
			return err
		}
	} else {
		plan, err := tourEngine.Plan(ctx, records, chooseCriterion(logger), homeLocation)
		if err != nil {
			return err
		}
		plans = append(plans, plan)
	}

	for i, plan := range plans {
		if i > 0 {
			os.Stdout.WriteString("\n")
		}
		if err := guidance.WriteReport(os.Stdout, plan.Criterion, plan.Path, plan.TotalWeight,
			plan.Itinerary); err != nil {
			return err
		}
	}
	return nil
}

// chooseCriterion. -criterion flag, then CRITERION config, then the interactive menu.
func chooseCriterion(logger *zap.Logger) costfunction.Criterion {
	if *interactive {
		return selectCriterion(os.Stdin, os.Stdout)
	}
	value := *criterion
	if value == "" {
		value = viper.GetString("CRITERION")
	}
	if value == "" {
		return selectCriterion(os.Stdin, os.Stdout)
	}
	c, ok := costfunction.ParseCriterion(value)
	if !ok {
		logger.Warn("Invalid criterion, defaulting to shortest travel time", zap.String("criterion", value))
	}
	return c
}
