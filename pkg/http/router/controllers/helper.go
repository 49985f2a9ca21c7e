package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/navigatorx-tour/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]any

// 8 MiB
const maxBodyBytes = 8 << 20

func (api *tourAPI) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func (api *tourAPI) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var (
			syntaxError   *json.SyntaxError
			typeError     *json.UnmarshalTypeError
			maxBytesError *http.MaxBytesError
		)
		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.As(err, &typeError):
			return fmt.Errorf("body contains incorrect JSON type for field %q", typeError.Field)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			return fmt.Errorf("body contains unknown key %s", strings.TrimPrefix(err.Error(), "json: unknown field "))
		default:
			return err
		}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

// validateRequest. validate request struct, errors translated to english.
func (api *tourAPI) validateRequest(request any) error {
	err := api.validate.Struct(request)
	if err == nil {
		return nil
	}
	vv := translateError(err, api.trans)
	vvString := make([]string, 0, len(vv))
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	return fmt.Errorf("validation error: %v", vvString)
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return validate, trans
}

func translateError(err error, trans ut.Translator) []error {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	errs := make([]error, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}

func (api *tourAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var resp errorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	if err := api.writeJSON(w, status, envelope{"error": resp.Error}, nil); err != nil {
		api.log.Error("cannot write error response", zap.String("path", r.URL.Path), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *tourAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error", zap.String("method", r.Method), zap.String("path", r.URL.Path),
		zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, "internal_server_error", util.MessageInternalServerError)
}

func (api *tourAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

func (api *tourAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, "not_found", err.Error())
}

// getStatusCode. write the error response matching the code attached with util.WrapErrorf.
func (api *tourAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	var ierr *util.Error
	if !errors.As(err, &ierr) {
		api.ServerErrorResponse(w, r, err)
		return
	}

	switch ierr.Code() {
	case util.ErrBadParamInput:
		api.BadRequestResponse(w, r, err)
	case util.ErrNotFound:
		api.NotFoundResponse(w, r, err)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}
