package analysis

// Entry is one key of a FrequencyMap with its occurrence count
type Entry[K comparable] struct {
	Key   K
	Count int
}

// FrequencyMap counts occurrences and remembers the order in which keys were
// first seen. The stored key is always the first one seen among equal keys.
type FrequencyMap[K comparable] struct {
	index   map[K]int
	entries []Entry[K]
}

func NewFrequencyMap[K comparable]() *FrequencyMap[K] {
	return &FrequencyMap[K]{index: make(map[K]int)}
}

// Add increments the count for key.
func (m *FrequencyMap[K]) Add(key K) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Count++
		return
	}

	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry[K]{Key: key, Count: 1})
}

// Count returns the occurrences of key, zero when unseen.
func (m *FrequencyMap[K]) Count(key K) int {
	if i, ok := m.index[key]; ok {
		return m.entries[i].Count
	}

	return 0
}

func (m *FrequencyMap[K]) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in first-seen order.
func (m *FrequencyMap[K]) Entries() []Entry[K] {
	out := make([]Entry[K], len(m.entries))
	copy(out, m.entries)

	return out
}

// Max returns the first-seen entry with the highest count.
func (m *FrequencyMap[K]) Max() (Entry[K], bool) {
	var best Entry[K]

	found := false

	for _, e := range m.entries {
		if e.Count > best.Count {
			best = e
			found = true
		}
	}

	return best, found
}
