package routeparser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"go.uber.org/zap"
)

var (
	ErrInvalidSpeed       = errors.New("travel speed must be positive")
	ErrInvalidCost        = errors.New("cost per km must not be negative")
	ErrEmptyLocationName  = errors.New("location name is empty")
	ErrMalformedRouteFile = errors.New("malformed route file")
)

type RouteParser struct {
	log      *zap.Logger
	validate *validator.Validate
}

func NewRouteParser(log *zap.Logger) *RouteParser {
	return &RouteParser{
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// LoadRoutes. read the route records of a json file (array of records).
func (p *RouteParser) LoadRoutes(filename string) ([]da.RouteRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		p.log.Error("cannot open route file", zap.String("filename", filename), zap.Error(err))
		return nil, fmt.Errorf("open route file %s: %w", filename, err)
	}
	defer f.Close()

	records, err := p.ParseRoutes(f)
	if err != nil {
		p.log.Error("cannot parse route file", zap.String("filename", filename), zap.Error(err))
		return nil, fmt.Errorf("parse route file %s: %w", filename, err)
	}

	p.log.Info("Parsed route records", zap.String("filename", filename), zap.Int("records", len(records)))
	return records, nil
}

// ParseRoutes. decode a json array of route records and validate the shape of each record.
// value ranges (coordinates, speed, cost) are checked when the graph is built.
func (p *RouteParser) ParseRoutes(r io.Reader) ([]da.RouteRecord, error) {
	var records []da.RouteRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRouteFile, err)
	}

	if err := p.ValidateRecords(records); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *RouteParser) ValidateRecords(records []da.RouteRecord) error {
	for i := range records {
		if err := p.validate.Struct(records[i]); err != nil {
			var vErrs validator.ValidationErrors
			if errors.As(err, &vErrs) && len(vErrs) > 0 {
				return fmt.Errorf("%w: record %d (%s): field %s failed on %q", ErrMalformedRouteFile, i,
					records[i].RouteName, vErrs[0].Field(), vErrs[0].Tag())
			}
			return fmt.Errorf("%w: record %d: %v", ErrMalformedRouteFile, i, err)
		}
	}
	return nil
}
