package dispatch

import (
	"context"

	"github.com/lambda-feedback/mathy/numeric"
)

// factorial handles GET /factorial?n=<int>.
func factorial(_ context.Context, query QueryParams) (any, error) {
	raw, ok := query.First("n")
	if !ok {
		return nil, ErrParameterRequired
	}

	n, err := parseNonNegative(raw)
	if err != nil {
		return nil, err
	}

	return numeric.Factorial(n), nil
}
