package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/navigatorx-tour/pkg/engine"
	"github.com/lintang-b-s/navigatorx-tour/pkg/http/usecases"
	"github.com/lintang-b-s/navigatorx-tour/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const testRoutes = `[
	{"routeName": "route1", "position_1": "Tarjan's Home", "position1_coordinates": [37.52389, 126.92667],
	 "position_2": "Relative_1", "position2_coordinates": [37.47833, 126.95167],
	 "travel_mode": "bus", "travel_speed": 40, "cost_per_km": 2},
	{"routeName": "route2", "position_1": "Tarjan's Home", "position1_coordinates": [37.52389, 126.92667],
	 "position_2": "Relative_4", "position2_coordinates": [37.54639, 126.94944],
	 "travel_mode": "train", "travel_speed": 80, "cost_per_km": 5},
	{"routeName": "route5", "position_1": "Relative_1", "position1_coordinates": [37.47833, 126.95167],
	 "position_2": "Relative_4", "position2_coordinates": [37.54639, 126.94944],
	 "travel_mode": "bus", "travel_speed": 40, "cost_per_km": 2},
	{"routeName": "route10", "position_1": "Relative_4", "position1_coordinates": [37.54639, 126.94944],
	 "position_2": "Relative_8", "position2_coordinates": [37.58000, 126.98440],
	 "travel_mode": "train", "travel_speed": 80, "cost_per_km": 5},
	{"routeName": "route14", "position_1": "Tarjan's Home", "position1_coordinates": [37.52389, 126.92667],
	 "position_2": "Relative_8", "position2_coordinates": [37.58000, 126.98440],
	 "travel_mode": "bus", "travel_speed": 40, "cost_per_km": 2}
]`

func newTestHandler(t *testing.T, limit RateLimit) http.Handler {
	log := zaptest.NewLogger(t)
	m := metrics.NewSolverMetrics(prometheus.NewRegistry())
	e := engine.NewEngine(log, engine.Options{Workers: 2, Recorder: m})
	svc, err := usecases.NewTourService(log, e, e.GetRouteParser(), 16, 1, 0.05)
	require.NoError(t, err)
	return NewAPI(log, m).Handler(svc, limit)
}

func postJSON(h http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type tourBody struct {
	Criterion   string   `json:"criterion"`
	Unit        string   `json:"unit"`
	Home        string   `json:"home"`
	Path        []string `json:"path"`
	TotalWeight float64  `json:"total_weight"`
	Summary     string   `json:"summary"`
	Legs        []struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"legs"`
	Polyline string `json:"polyline"`
	Center   struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
}

func TestComputeTour(t *testing.T) {
	h := newTestHandler(t, RateLimit{})

	rec := postJSON(h, "/api/computeTour",
		`{"criterion": "cost", "home": "Tarjan's Home", "routes": `+testRoutes+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data tourBody `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cost", resp.Data.Criterion)
	assert.Equal(t, "units", resp.Data.Unit)
	require.Len(t, resp.Data.Path, 4)
	assert.Equal(t, "Tarjan's Home", resp.Data.Path[0])
	assert.Len(t, resp.Data.Legs, 4)
	assert.Greater(t, resp.Data.TotalWeight, 0.0)
	assert.True(t, strings.HasPrefix(resp.Data.Summary, "Total travel cost: "))
	assert.NotEmpty(t, resp.Data.Polyline)
	assert.InDelta(t, 37.53, resp.Data.Center.Lat, 0.06)
	assert.InDelta(t, 126.95, resp.Data.Center.Lon, 0.06)
}

func TestComputeTourHomeByCoordinate(t *testing.T) {
	h := newTestHandler(t, RateLimit{})

	rec := postJSON(h, "/api/computeTour",
		`{"criterion": "3", "home_lat": 37.5464, "home_lon": 126.9494, "routes": `+testRoutes+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data tourBody `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "transfers", resp.Data.Criterion)
	assert.Equal(t, "Relative_4", resp.Data.Home)
	assert.Equal(t, "Relative_4", resp.Data.Path[0])
	assert.Equal(t, 4.0, resp.Data.TotalWeight)
}

func TestComputeTourErrors(t *testing.T) {
	h := newTestHandler(t, RateLimit{})

	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown home",
			body:       `{"home": "Nobody", "routes": ` + testRoutes + `}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "no location near home coordinate",
			body:       `{"home_lat": 10, "home_lon": 10, "routes": ` + testRoutes + `}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name: "invalid speed",
			body: `{"home": "A", "routes": [{"position_1": "A", "position1_coordinates": [1, 1],
				"position_2": "B", "position2_coordinates": [1, 2], "travel_mode": "bus", "travel_speed": 0,
				"cost_per_km": 1}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name: "disconnected",
			body: `{"home": "A", "routes": [
				{"position_1": "A", "position1_coordinates": [1, 1], "position_2": "B",
				 "position2_coordinates": [1, 2], "travel_mode": "bus", "travel_speed": 10, "cost_per_km": 1},
				{"position_1": "C", "position1_coordinates": [2, 1], "position_2": "D",
				 "position2_coordinates": [2, 2], "travel_mode": "bus", "travel_speed": 10, "cost_per_km": 1}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "missing routes",
			body:       `{"home": "A"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "missing home",
			body:       `{"routes": ` + testRoutes + `}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "unknown criterion",
			body:       `{"criterion": "fastest", "home": "Tarjan's Home", "routes": ` + testRoutes + `}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "malformed json",
			body:       `{"home": `,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "unknown field",
			body:       `{"home": "A", "vehicles": 2, "routes": ` + testRoutes + `}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(h, "/api/computeTour", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			var resp struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestComputeTours(t *testing.T) {
	h := newTestHandler(t, RateLimit{})

	rec := postJSON(h, "/api/computeTours", `{"home": "Tarjan's Home", "routes": `+testRoutes+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data []tourBody `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "time", resp.Data[0].Criterion)
	assert.Equal(t, "cost", resp.Data[1].Criterion)
	assert.Equal(t, "transfers", resp.Data[2].Criterion)
}

func TestMiddleware(t *testing.T) {
	h := newTestHandler(t, RateLimit{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ".", rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/api/computeTour", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsUseRoutePatterns(t *testing.T) {
	log := zaptest.NewLogger(t)
	reg := prometheus.NewRegistry()
	m := metrics.NewSolverMetrics(reg)
	e := engine.NewEngine(log, engine.Options{Recorder: m})
	svc, err := usecases.NewTourService(log, e, e.GetRouteParser(), 16, 1, 0.05)
	require.NoError(t, err)
	h := NewAPI(log, m).Handler(svc, RateLimit{})

	for _, path := range []string{"/doc/index.html", "/doc/a/b/c", "/nope/1", "/nope/2", "/metrics"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	body := `{"home": "Tarjan's Home", "routes": ` + testRoutes + `}`
	require.Equal(t, http.StatusOK, postJSON(h, "/api/computeTour", body).Code)

	families, err := reg.Gather()
	require.NoError(t, err)
	paths := map[string]bool{}
	for _, f := range families {
		if f.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == "path" {
					paths[l.GetValue()] = true
				}
			}
		}
	}
	assert.Equal(t, map[string]bool{
		"/doc/*any":        true,
		unmatchedRoute:     true,
		"/metrics":         true,
		"/api/computeTour": true,
	}, paths)
}

func TestRoutePattern(t *testing.T) {
	router := httprouter.New()
	noop := func(http.ResponseWriter, *http.Request, httprouter.Params) {}
	router.GET("/doc/*any", noop)
	router.GET("/api/tours/:id/legs", noop)
	router.POST("/api/computeTour", noop)

	testCases := []struct {
		method, path string
		want         string
	}{
		{method: http.MethodGet, path: "/doc/", want: "/doc/*any"},
		{method: http.MethodGet, path: "/doc/swagger/index.html", want: "/doc/*any"},
		{method: http.MethodGet, path: "/api/tours/42/legs", want: "/api/tours/:id/legs"},
		{method: http.MethodPost, path: "/api/computeTour", want: "/api/computeTour"},
		{method: http.MethodGet, path: "/api/computeTour", want: unmatchedRoute},
		{method: http.MethodGet, path: "/random/abc", want: unmatchedRoute},
	}

	for _, tt := range testCases {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, routePattern(router, httptest.NewRequest(tt.method, tt.path, nil)))
		})
	}
}

func TestRateLimit(t *testing.T) {
	h := newTestHandler(t, RateLimit{RPS: 0.001, Burst: 1})

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// heartbeat answers before the limiter
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)

	body := `{"home": "Tarjan's Home", "routes": ` + testRoutes + `}`
	assert.Equal(t, http.StatusOK, postJSON(h, "/api/computeTour", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, postJSON(h, "/api/computeTour", body).Code)
}

func TestRealIP(t *testing.T) {
	var got string
	h := RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.RemoteAddr
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.7, 10.0.0.1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "10.0.0.7", got)
}

func TestRecoverPanic(t *testing.T) {
	api := NewAPI(zap.NewNop(), nil)
	h := api.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
