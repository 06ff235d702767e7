package dispatch

import (
	"context"
	"strings"

	"github.com/lambda-feedback/mathy/numeric"
)

// fibonacci handles GET /fibonacci/<n>. The candidate for n is the final
// segment of the path, so a bare /fibonacci yields "fibonacci".
func fibonacci(_ context.Context, path string) (any, error) {
	raw := path[strings.LastIndex(path, "/")+1:]

	n, err := parseNonNegative(raw)
	if err != nil {
		return nil, err
	}

	return numeric.Fibonacci(n), nil
}
