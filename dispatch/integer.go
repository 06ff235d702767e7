package dispatch

import (
	"math/big"
	"regexp"
	"strings"
)

// integerLiteral matches base-10 integers with an optional sign and single
// underscores between digits.
var integerLiteral = regexp.MustCompile(`^[+-]?[0-9](?:_?[0-9])*$`)

// parseNonNegative validates the raw value of parameter n and returns it as
// an int64. The checks run in order: integer syntax, sign, range.
func parseNonNegative(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if !integerLiteral.MatchString(s) {
		return 0, ErrParameterNotInteger
	}

	n, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 10)
	if !ok {
		return 0, ErrParameterNotInteger
	}

	if n.Sign() < 0 {
		return 0, ErrParameterNegative
	}

	if !n.IsInt64() {
		return 0, ErrParameterOutOfRange
	}

	return n.Int64(), nil
}
