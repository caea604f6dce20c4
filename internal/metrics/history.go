package metrics

// History is a bounded series of recent values, oldest first.
type History struct {
	values   []float64
	capacity int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{values: make([]float64, 0, capacity), capacity: capacity}
}

func (h *History) Push(v float64) {
	h.values = append(h.values, v)
	if len(h.values) > h.capacity {
		h.values = h.values[1:]
	}
}

// Values returns the stored series. The slice must not be modified.
func (h *History) Values() []float64 { return h.values }

func (h *History) Len() int { return len(h.values) }

func (h *History) Reset() { h.values = h.values[:0] }
