package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/navigatorx-tour/pkg/http/router"
	"github.com/lintang-b-s/navigatorx-tour/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/navigatorx-tour/pkg/http/server"
	"github.com/lintang-b-s/navigatorx-tour/pkg/metrics"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use. start the API in the background. Wait blocks until it stops.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	solverMetrics *metrics.SolverMetrics,
	tourService controllers.TourService,
) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("RATE_LIMIT", 0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}
	limit := http_router.RateLimit{
		RPS:   viper.GetFloat64("RATE_LIMIT"),
		Burst: viper.GetInt("RATE_LIMIT_BURST"),
	}

	server := http_router.NewAPI(log, solverMetrics)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gCtx, config, tourService, limit)
	})
	s.g = g

	return s, nil
}

func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}

// GracefulShutdown. block until SIGINT or SIGTERM and return it.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	return <-quit
}
