package report

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatFloat renders f with the shortest digits that round-trip. Values whose
// decimal exponent lies in [-4, 16) use fixed notation and always carry a
// fractional part ("2.0"); everything else uses exponent notation ("1e+16").
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if f != 0 {
		exp := decimalExponent(f)
		if exp < -4 || exp >= 16 {
			return strconv.FormatFloat(f, 'e', -1, 64)
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// FormatSeconds renders an elapsed duration as fractional seconds.
func FormatSeconds(d time.Duration) string {
	return FormatFloat(d.Seconds())
}

// decimalExponent returns the exponent of f in shortest scientific notation
func decimalExponent(f float64) int {
	s := strconv.FormatFloat(f, 'e', -1, 64)

	idx := strings.IndexByte(s, 'e')
	if idx < 0 {
		return 0
	}

	exp, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return 0
	}

	return exp
}
