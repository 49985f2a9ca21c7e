package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/navigatorx-tour/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/navigatorx-tour/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/navigatorx-tour/pkg/http/server"
	"github.com/lintang-b-s/navigatorx-tour/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/lintang-b-s/navigatorx-tour/pkg/http/docs"
)

type API struct {
	log     *zap.Logger
	metrics *metrics.SolverMetrics
}

func NewAPI(log *zap.Logger, m *metrics.SolverMetrics) *API {
	return &API{log: log, metrics: m}
}

// RateLimit. requests per second and burst of the Limit middleware. RPS <= 0 disables it.
type RateLimit struct {
	RPS   float64
	Burst int
}

//	@title			Navigatorx Tour API
//	@version		1.0
//	@description	Exact round trip planner over a transport network of named locations.

//	@contact.name	Lintang Birda Saputra
//	@contact.url	_
//	@contact.email	lintang.birda.saputra@mail.ugm.ac.id

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Handler(tourService controllers.TourService, limit RateLimit) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.GET("/doc/*any", swaggerHandler)
	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	group := router_helper.NewRouteGroup(router, "/api")
	tourRoutes := controllers.New(tourService, api.log)
	tourRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log), Labels(router)}
	if api.metrics != nil {
		mwChain = append(mwChain, Metrics(api.metrics, router))
	}
	if limit.RPS > 0 {
		mwChain = append(mwChain, Limit(limit.RPS, max(limit.Burst, 1)))
	}
	return alice.New(mwChain...).Then(router)
}

// Run. serve until ctx is done or the server fails.
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	tourService controllers.TourService,
	limit RateLimit,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(tourService, limit), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.log.Info("HTTP server stopped", zap.Error(err))
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		return ctx.Err()
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
