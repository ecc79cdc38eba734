package model

// History remembers the hashes of recent generations so that still lifes and
// short-period oscillators can be recognised
type History struct {
	capacity int
	hashes   []string
}

// NewHistory keeps at most capacity recent states, minimum 1
func NewHistory(capacity int) *History {
	capacity = max(capacity, 1)
	return &History{
		capacity: capacity,
		hashes:   make([]string, 0, capacity),
	}
}

// Record adds g as the most recent state, evicting the oldest when full
func (h *History) Record(g Grid) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > h.capacity {
		h.hashes = h.hashes[1:]
	}
}

// Period returns the smallest k >= 1 such that g matches the state recorded
// k entries ago, or 0 when g matches nothing remembered. A still life reports
// 1 and a blinker reports 2.
func (h *History) Period(g Grid) int {
	current := g.Hash()
	for k := 1; k <= len(h.hashes); k++ {
		if h.hashes[len(h.hashes)-k] == current {
			return k
		}
	}
	return 0
}

// Len returns the number of remembered states
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}
