package costfunction

type TimeFunction struct {
}

func NewTimeCostFunction() *TimeFunction {
	return &TimeFunction{}
}

// GetWeight. travel time in hours. speed is validated positive by the graph builder.
func (tf *TimeFunction) GetWeight(e EdgeAttributes) float64 {
	return e.GetLength() / e.GetEdgeSpeed()
}
