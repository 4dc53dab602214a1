package coverage

import "math"

// welfordState accumulates running statistics with Welford's online
// algorithm, so density summaries need a single pass over the areas.
type welfordState struct {
	count int
	mean  float64
	m2    float64
}

func (w *welfordState) update(value float64) {
	w.count++
	delta := value - w.mean
	w.mean += delta / float64(w.count)
	w.m2 += delta * (value - w.mean)
}

func (w *welfordState) stdDev() float64 {
	if w.count < 2 {
		return 0
	}
	return math.Sqrt(w.m2 / float64(w.count))
}
