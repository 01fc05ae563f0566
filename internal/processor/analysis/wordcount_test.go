package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountWords(t *testing.T) {
	counts := CountWords([]string{"a", "a", "b"})

	assert.Equal(t, []Entry[string]{{Key: "a", Count: 2}, {Key: "b", Count: 1}}, counts.Entries())
	assert.Equal(t, 2, counts.Count("a"))
	assert.Equal(t, 0, counts.Count("c"))
}

func TestCountWords_NoNormalization(t *testing.T) {
	counts := CountWords([]string{"Go", "go", "go.", "go"})

	assert.Equal(t, []Entry[string]{
		{Key: "Go", Count: 1},
		{Key: "go", Count: 2},
		{Key: "go.", Count: 1},
	}, counts.Entries())
}

func TestFrequencyMap_Max(t *testing.T) {
	m := NewFrequencyMap[string]()

	_, ok := m.Max()
	assert.False(t, ok)

	for _, w := range []string{"x", "y", "y", "x", "z"} {
		m.Add(w)
	}

	best, ok := m.Max()
	require.True(t, ok)
	assert.Equal(t, Entry[string]{Key: "x", Count: 2}, best)
	assert.Equal(t, 3, m.Len())
}

func TestWordCountReport_Body(t *testing.T) {
	body := WordCountReport{Counts: CountWords([]string{"a", "a", "b", "elephantine-word"})}.Body(0)

	// header and rule share one line
	want := "  WORD    |  COUNT===================\n" +
		"a          -    2\n" +
		"b          -    1\n" +
		"elephantine-word -    1\n"

	assert.Equal(t, want, body)
}

func TestWordCountReport_EmptyBody(t *testing.T) {
	assert.Equal(t, "  WORD    |  COUNT===================\n", WordCountReport{}.Body(0))
}

func TestWordCountAnalyzer_Analyze(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("the cat\nthe  hat\n"), 0o644))

	analyzer := &WordCountAnalyzer{}

	result, err := analyzer.Analyze(path, nil, 0)
	require.NoError(t, err)

	words, ok := result.(WordCountReport)
	require.True(t, ok)
	assert.Equal(t, []Entry[string]{
		{Key: "the", Count: 2},
		{Key: "cat", Count: 1},
		{Key: "hat", Count: 1},
	}, words.Counts.Entries())
}
