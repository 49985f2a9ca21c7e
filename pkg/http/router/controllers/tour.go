package controllers

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
	helper "github.com/lintang-b-s/navigatorx-tour/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type tourAPI struct {
	tourService TourService
	log         *zap.Logger
	validate    *validator.Validate
	trans       ut.Translator
}

func New(tourService TourService, log *zap.Logger) *tourAPI {
	validate, trans := newValidator()
	return &tourAPI{
		tourService: tourService,
		log:         log,
		validate:    validate,
		trans:       trans,
	}
}

func (api *tourAPI) Routes(group *helper.RouteGroup) {
	group.POST("/computeTour", api.computeTour)
	group.POST("/computeTours", api.computeTours)
}

// computeTour
//
//	@Summary		optimal round trip through every location of the given routes
//	@Description	exact (held-karp) minimum weight round trip from home under one criterion
//	@Tags			tour
//	@Accept			json
//	@Produce		json
//	@Param			request	body		computeTourRequest	true	"routes, criterion and home location"
//	@Success		200		{object}	tourResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Failure		500		{object}	errorResponse
//	@Router			/computeTour [post]
func (api *tourAPI) computeTour(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request, home, ok := api.readTourRequest(w, r)
	if !ok {
		return
	}

	criterion, valid := costfunction.ParseCriterion(request.Criterion)
	if !valid && request.Criterion != "" {
		api.log.Warn("unknown criterion, defaulting to time", zap.String("criterion", request.Criterion))
	}

	plan, err := api.tourService.ComputeTour(r.Context(), request.Routes, criterion, home)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewTourResponse(plan)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// computeTours
//
//	@Summary		optimal round trips for every criterion
//	@Tags			tour
//	@Accept			json
//	@Produce		json
//	@Param			request	body		computeTourRequest	true	"routes and home location, criterion is ignored"
//	@Success		200		{array}		tourResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Failure		500		{object}	errorResponse
//	@Router			/computeTours [post]
func (api *tourAPI) computeTours(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request, home, ok := api.readTourRequest(w, r)
	if !ok {
		return
	}

	plans, err := api.tourService.ComputeTours(r.Context(), request.Routes, home)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewToursResponse(plans)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// readTourRequest. decode + validate the body and resolve the home location. writes the error response itself.
func (api *tourAPI) readTourRequest(w http.ResponseWriter, r *http.Request) (computeTourRequest, string, bool) {
	var request computeTourRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return request, "", false
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return request, "", false
	}

	home := request.Home
	if home == "" {
		var err error
		home, err = api.tourService.ResolveHome(request.Routes, *request.HomeLat, *request.HomeLon)
		if err != nil {
			api.getStatusCode(w, r, err)
			return request, "", false
		}
	}
	return request, home, true
}
