package analysis

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"
	"textreports/internal/loader"
	"textreports/internal/report"
	"time"
)

// ConversionRow is one input number with its base-2 and base-16 renderings
type ConversionRow struct {
	Index  int // 1-based position among parsed values
	Value  float64
	Binary string
	Hex    string
}

// ConversionReport lists conversions in input order
type ConversionReport struct {
	Rows []ConversionRow
}

// DecimalToBinary renders the integer part of |v| in base 2.
func DecimalToBinary(v float64) string {
	return convertMagnitude(v, 2)
}

// DecimalToHexadecimal renders the integer part of |v| in base 16 with uppercase digits.
func DecimalToHexadecimal(v float64) string {
	return strings.ToUpper(convertMagnitude(v, 16))
}

// convertMagnitude drops the sign, truncates toward zero and formats in base.
// Any float64 beyond 2^53 is already integral, so big.Int keeps every digit.
func convertMagnitude(v float64, base int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 0):
		return "inf"
	}

	magnitude := math.Trunc(math.Abs(v))
	if magnitude == 0 {
		return "0"
	}

	n, _ := big.NewFloat(magnitude).Int(nil)

	return n.Text(base)
}

// Convert builds a report row for every value
func Convert(values []float64) ConversionReport {
	rows := make([]ConversionRow, 0, len(values))

	for i, v := range values {
		rows = append(rows, ConversionRow{
			Index:  i + 1,
			Value:  v,
			Binary: DecimalToBinary(v),
			Hex:    DecimalToHexadecimal(v),
		})
	}

	return ConversionReport{Rows: rows}
}

// Body renders one right-aligned row per value followed by the elapsed time.
func (r ConversionReport) Body(elapsed time.Duration) string {
	var b strings.Builder

	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%5d %s | %s | %s\n", row.Index, report.FormatFloat(row.Value), row.Binary, row.Hex)
	}

	fmt.Fprintf(&b, "Total execution time %s", report.FormatSeconds(elapsed))

	return b.String()
}

// ConverterAnalyzer loads a numeric file and converts every value to binary and hexadecimal
type ConverterAnalyzer struct{}

func (a *ConverterAnalyzer) Analyze(inputPath string, diag io.Writer, maxLineBytes int) (Report, error) {
	numbers, err := loader.LoadNumbers(inputPath, diag, maxLineBytes)
	if err != nil {
		return nil, err
	}

	return Convert(numbers.Values), nil
}
