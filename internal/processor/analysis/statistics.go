package analysis

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"textreports/internal/loader"
	"textreports/internal/report"
	"time"
)

// ErrEmptyInput is returned by the statistics functions for an empty list.
var ErrEmptyInput = errors.New("no numeric values to analyze")

// StatisticsReport holds the descriptive statistics of one number list
type StatisticsReport struct {
	Count             int
	Mean              float64
	Median            float64
	Mode              *float64 // nil only when no mode exists
	Variance          float64
	StandardDeviation float64
}

// Mean returns sum/count using plain running summation.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	total := 0.0
	for _, v := range values {
		total += v
	}

	return total / float64(len(values)), nil
}

// Median sorts a copy of values and returns the middle element, or the
// average of the two middle elements for an even count.
func Median(values []float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}

	return sorted[mid], nil
}

// Mode returns the most frequent value. Ties go to the value seen first.
func Mode(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	counts := NewFrequencyMap[float64]()
	for _, v := range values {
		counts.Add(v)
	}

	best, _ := counts.Max()

	return best.Key, nil
}

// Variance returns the population variance (divisor = count).
func Variance(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}

	squaredDiffSum := 0.0
	for _, v := range values {
		diff := v - mean
		squaredDiffSum += diff * diff
	}

	return squaredDiffSum / float64(len(values)), nil
}

func StandardDeviation(values []float64) (float64, error) {
	variance, err := Variance(values)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(variance), nil
}

// Statistics computes the full report for values
func Statistics(values []float64) (StatisticsReport, error) {
	mean, err := Mean(values)
	if err != nil {
		return StatisticsReport{}, err
	}

	median, err := Median(values)
	if err != nil {
		return StatisticsReport{}, err
	}

	mode, err := Mode(values)
	if err != nil {
		return StatisticsReport{}, err
	}

	variance, err := Variance(values)
	if err != nil {
		return StatisticsReport{}, err
	}

	return StatisticsReport{
		Count:             len(values),
		Mean:              mean,
		Median:            median,
		Mode:              &mode,
		Variance:          variance,
		StandardDeviation: math.Sqrt(variance),
	}, nil
}

// Body renders the report in the fixed statistics layout.
func (r StatisticsReport) Body(elapsed time.Duration) string {
	mode := "None"
	if r.Mode != nil {
		mode = report.FormatFloat(*r.Mode)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "COUNT: %d\n", r.Count)
	fmt.Fprintf(&b, "MEAN: %s\n", report.FormatFloat(r.Mean))
	fmt.Fprintf(&b, "MEDIAN: %s\n", report.FormatFloat(r.Median))
	fmt.Fprintf(&b, "MODE: %s\n", mode)
	fmt.Fprintf(&b, "SD: %s\n", report.FormatFloat(r.StandardDeviation))
	fmt.Fprintf(&b, "Variance: %s\n", report.FormatFloat(r.Variance))
	fmt.Fprintf(&b, "Total execution time %s", report.FormatSeconds(elapsed))

	return b.String()
}

// StatisticsAnalyzer loads a numeric file and computes its descriptive statistics
type StatisticsAnalyzer struct{}

func (a *StatisticsAnalyzer) Analyze(inputPath string, diag io.Writer, maxLineBytes int) (Report, error) {
	numbers, err := loader.LoadNumbers(inputPath, diag, maxLineBytes)
	if err != nil {
		return nil, err
	}

	stats, err := Statistics(numbers.Values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}

	return stats, nil
}
