package common

// History keeps a bounded trailing window of sample durations for one
// function record, oldest first. Appending beyond the bound evicts from the
// head. It is display-oriented and deliberately not safe for concurrent use;
// the driver owns all mutation on a single logical timeline.
type History struct {
	durations []float64
	bound     int
}

func NewHistory(bound int) *History {
	if bound <= 0 {
		bound = DefaultHistoryLength
	}

	return &History{
		durations: make([]float64, 0, bound),
		bound:     bound,
	}
}

// Append adds a duration to the tail, evicting the oldest entry first when the
// window is full.
func (h *History) Append(duration float64) {
	h.durations = append(h.durations, duration)

	if len(h.durations) > h.bound {
		h.durations = h.durations[1:]
	}
}

// Snapshot returns a copy of the window, oldest first.
func (h *History) Snapshot() []float64 {
	result := make([]float64, len(h.durations))
	copy(result, h.durations)

	return result
}

func (h *History) Len() int {
	return len(h.durations)
}

func (h *History) Bound() int {
	return h.bound
}

// Reset empties the window without changing its bound.
func (h *History) Reset() {
	h.durations = h.durations[:0]
}
