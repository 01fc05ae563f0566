package loader

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidNumber is returned by ParseNumber for text that is not a decimal float literal.
var ErrInvalidNumber = errors.New("invalid number")

// ParseNumber parses a trimmed decimal float literal. It accepts an optional
// sign, digits with an optional fraction and exponent, "inf", "infinity" and
// "nan" in any case, and single underscores between digits. Decimal digits of
// any script count as digits. Hexadecimal and other prefixed forms are rejected.
func ParseNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidNumber)
	}

	body := asciiDigits(s)
	negative := false

	switch body[0] {
	case '+':
		body = body[1:]
	case '-':
		negative = true
		body = body[1:]
	}

	switch strings.ToLower(body) {
	case "inf", "infinity":
		if negative {
			return math.Inf(-1), nil
		}

		return math.Inf(1), nil
	case "nan":
		return math.NaN(), nil
	}

	if !isDecimalLiteral(body) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(body, "_", ""), 64)
	// out of range literals saturate to ±Inf
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	if negative {
		value = -value
	}

	return value, nil
}

// isDecimalLiteral checks digits[.digits][e[sign]digits] with underscores only between digits
func isDecimalLiteral(s string) bool {
	mantissa, exponent := s, ""
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		mantissa, exponent = s[:idx], s[idx+1:]
		if exponent == "" {
			return false
		}

		if exponent[0] == '+' || exponent[0] == '-' {
			exponent = exponent[1:]
		}

		if !isDigitRun(exponent) {
			return false
		}
	}

	intPart, fracPart, hasDot := strings.Cut(mantissa, ".")
	if !hasDot {
		return isDigitRun(intPart)
	}

	if intPart == "" && fracPart == "" {
		return false
	}

	return (intPart == "" || isDigitRun(intPart)) && (fracPart == "" || isDigitRun(fracPart))
}

// isDigitRun reports whether s is a non-empty run of ASCII digits, allowing
// single underscores strictly between two digits
func isDigitRun(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c == '_' {
			if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
				return false
			}

			continue
		}

		if !isDigit(c) {
			return false
		}
	}

	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// asciiDigits rewrites Unicode decimal digits (category Nd) as ASCII digits
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf || !unicode.IsDigit(r) {
			return r
		}

		return '0' + digitValue(r)
	}, s)
}

// digitValue returns the value of an Nd rune. Every Nd range is a run of
// complete 0-9 sequences starting at its zero.
func digitValue(r rune) rune {
	for _, rng := range unicode.Nd.R16 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return (r - rune(rng.Lo)) % 10
		}
	}

	for _, rng := range unicode.Nd.R32 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return (r - rune(rng.Lo)) % 10
		}
	}

	return 0
}
