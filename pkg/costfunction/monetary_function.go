package costfunction

type MonetaryFunction struct {
}

func NewMonetaryCostFunction() *MonetaryFunction {
	return &MonetaryFunction{}
}

func (mf *MonetaryFunction) GetWeight(e EdgeAttributes) float64 {
	return e.GetLength() * e.GetCostPerKm()
}

// TransferFunction. every edge is one transfer, regardless of length.
type TransferFunction struct {
}

func NewTransferCostFunction() *TransferFunction {
	return &TransferFunction{}
}

func (tf *TransferFunction) GetWeight(e EdgeAttributes) float64 {
	return 1
}
