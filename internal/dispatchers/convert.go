package dispatchers

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Converter transforms one argument token before it reaches a handler.
type Converter func(arg string) any

var (
	decimalNumber = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)$`)
	prefixedInt   = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// NumberOrString returns arg as a float64 when it reads as a number and arg
// itself otherwise. Accepted forms are signed decimals with an optional
// exponent, signed "Infinity", and unsigned 0x/0o/0b integers, with
// surrounding whitespace ignored. Blank arguments stay strings.
func NumberOrString(arg string) any {
	s := strings.TrimSpace(arg)
	if s == "" {
		return arg
	}

	switch {
	case decimalNumber.MatchString(s):
		if f, err := cast.ToFloat64E(s); err == nil {
			return f
		}
		// Out of range decimals parse as ±Inf with an error.
		if f, _ := strconv.ParseFloat(s, 64); math.IsInf(f, 0) {
			return f
		}
	case prefixedInt.MatchString(s):
		if n, err := cast.ToInt64E(s); err == nil {
			return float64(n)
		}
		if n, ok := new(big.Int).SetString(s, 0); ok {
			f, _ := new(big.Float).SetInt(n).Float64()
			return f
		}
	}

	return arg
}

func (e *Engine) convert(args []string) []any {
	values := make([]any, len(args))
	for i, arg := range args {
		if e.converter != nil {
			values[i] = e.converter(arg)
		} else {
			values[i] = arg
		}
	}
	return values
}
