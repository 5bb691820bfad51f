package shell

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned when a line holds no usable number.
var ErrNotNumeric = errors.New("not a numeric value")

// ParseFunc converts one line of input to a number.
type ParseFunc func(string) (float64, error)

var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseFloat parses the longest numeric prefix of s after trimming
// surrounding whitespace. Trailing text is ignored:
//
//	ParseFloat("12abc")    // 12
//	ParseFloat(" -1.5e3 ") // -1500
//	ParseFloat("abc")      // ErrNotNumeric
//
// Values beyond float64 range become ±Inf.
func ParseFloat(s string) (float64, error) {
	prefix := numericPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}
	return convert(s, prefix)
}

// ParseFloatStrict accepts the same grammar as ParseFloat but requires
// it to cover the whole trimmed line, so "12abc", "nan" and "0x10" are
// all rejected.
func ParseFloatStrict(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	prefix := numericPrefix.FindString(trimmed)
	if prefix == "" || prefix != trimmed {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}
	return convert(s, prefix)
}

// convert parses a literal already matched by numericPrefix.
func convert(original, literal string) (float64, error) {
	if strings.TrimLeft(literal, "+-") == "Infinity" {
		if strings.HasPrefix(literal, "-") {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("%q: %w", original, ErrNotNumeric)
	}
	return v, nil
}
