package costfunction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edge struct {
	length, speed, costPerKm float64
}

func (e edge) GetLength() float64    { return e.length }
func (e edge) GetEdgeSpeed() float64 { return e.speed }
func (e edge) GetCostPerKm() float64 { return e.costPerKm }

func TestParseCriterion(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		want   Criterion
		wantOk bool
	}{
		{name: "time", in: "time", want: Time, wantOk: true},
		{name: "menu 2", in: "2", want: Cost, wantOk: true},
		{name: "transfers upper case", in: " TRANSFERS ", want: Transfers, wantOk: true},
		{name: "menu 3", in: "3", want: Transfers, wantOk: true},
		{name: "unknown falls back to time", in: "comfort", want: Time, wantOk: false},
		{name: "empty falls back to time", in: "", want: Time, wantOk: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCriterion(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}

func TestCostFunctions(t *testing.T) {
	e := edge{length: 12, speed: 40, costPerKm: 2}

	testCases := []struct {
		criterion Criterion
		want      float64
		unit      string
	}{
		{criterion: Time, want: 0.3, unit: "hours"},
		{criterion: Cost, want: 24, unit: "units"},
		{criterion: Transfers, want: 1, unit: "transfers"},
	}

	for _, tt := range testCases {
		t.Run(tt.criterion.String(), func(t *testing.T) {
			cf := NewCostFunction(tt.criterion)
			assert.InDelta(t, tt.want, cf.GetWeight(e), 1e-12)
			assert.Equal(t, tt.unit, tt.criterion.Unit())
		})
	}

	assert.Panics(t, func() { NewCostFunction(Criterion(9)) })
}

func TestCriterionText(t *testing.T) {
	for _, c := range Criteria {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var back Criterion
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, c, back)
	}

	_, err := Criterion(7).MarshalText()
	assert.Error(t, err)

	var c Criterion = Transfers
	require.NoError(t, c.UnmarshalText([]byte("walking")))
	assert.Equal(t, Time, c)
}
