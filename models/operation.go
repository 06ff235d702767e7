package models

// Operation names one of the routes the dispatcher serves.
type Operation string

const (
	OperationFactorial Operation = "factorial"
	OperationFibonacci Operation = "fibonacci"
	OperationMean      Operation = "mean"

	// OperationNone is reported for requests no route matched.
	OperationNone Operation = "none"
)

func (o Operation) String() string {
	return string(o)
}
