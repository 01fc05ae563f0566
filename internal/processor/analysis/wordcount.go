package analysis

import (
	"fmt"
	"io"
	"strings"
	"textreports/internal/loader"
	"time"
)

// wordCountHeader is emitted without a newline before the rule; existing
// results files depend on that exact byte layout.
const wordCountHeader = "  WORD    |  COUNT" + "===================\n"

// WordCountReport holds word occurrences in first-seen order
type WordCountReport struct {
	Counts *FrequencyMap[string]
}

// CountWords counts tokens by exact, case-sensitive equality.
func CountWords(words []string) *FrequencyMap[string] {
	counts := NewFrequencyMap[string]()
	for _, w := range words {
		counts.Add(w)
	}

	return counts
}

// Body renders the word table. The elapsed time is not part of this layout.
func (r WordCountReport) Body(_ time.Duration) string {
	var b strings.Builder

	b.WriteString(wordCountHeader)

	if r.Counts != nil {
		for _, e := range r.Counts.Entries() {
			fmt.Fprintf(&b, "%-10s - %4d\n", e.Key, e.Count)
		}
	}

	return b.String()
}

// WordCountAnalyzer loads a text file and counts its words
type WordCountAnalyzer struct{}

func (a *WordCountAnalyzer) Analyze(inputPath string, _ io.Writer, _ int) (Report, error) {
	words, err := loader.LoadWords(inputPath)
	if err != nil {
		return nil, err
	}

	return WordCountReport{Counts: CountWords(words)}, nil
}
