package costfunction

import (
	"fmt"
	"strings"
)

type EdgeAttributes interface {
	GetLength() float64    // km
	GetEdgeSpeed() float64 // km/h
	GetCostPerKm() float64
}

type CostFunction interface {
	GetWeight(e EdgeAttributes) float64
}

// Criterion. the optimization objective that decides edge weights.
type Criterion uint8

const (
	Time Criterion = iota
	Cost
	Transfers
)

// Criteria. every criterion in declaration order.
var Criteria = []Criterion{Time, Cost, Transfers}

func (c Criterion) String() string {
	switch c {
	case Time:
		return "time"
	case Cost:
		return "cost"
	case Transfers:
		return "transfers"
	default:
		return fmt.Sprintf("criterion(%d)", uint8(c))
	}
}

// Unit. unit of a total weight computed under c.
func (c Criterion) Unit() string {
	switch c {
	case Time:
		return "hours"
	case Cost:
		return "units"
	case Transfers:
		return "transfers"
	default:
		return ""
	}
}

func (c Criterion) Valid() bool {
	return c <= Transfers
}

/*
ParseCriterion. decoding rule for user supplied criteria:

	"time" | "1"      -> Time
	"cost" | "2"      -> Cost
	"transfers" | "3" -> Transfers

matching is case-insensitive and ignores surrounding spaces. anything else decodes to Time with ok=false,
so callers can report the fallback.
*/
func ParseCriterion(s string) (Criterion, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "time", "1":
		return Time, true
	case "cost", "2":
		return Cost, true
	case "transfers", "3":
		return Transfers, true
	default:
		return Time, false
	}
}

func (c Criterion) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid criterion %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText. uses ParseCriterion, so unknown values decode to Time.
func (c *Criterion) UnmarshalText(text []byte) error {
	*c, _ = ParseCriterion(string(text))
	return nil
}

// NewCostFunction. cost function of criterion c. panics on a criterion outside Criteria.
func NewCostFunction(c Criterion) CostFunction {
	switch c {
	case Time:
		return NewTimeCostFunction()
	case Cost:
		return NewMonetaryCostFunction()
	case Transfers:
		return NewTransferCostFunction()
	default:
		panic(fmt.Sprintf("costfunction: unknown criterion %d", uint8(c)))
	}
}
