package tqdm

import "math"

// ema is an exponential moving average with start-up bias correction.
// alpha 1 keeps only the latest value.
type ema struct {
	alpha float64
	last  float64
	calls int
}

func (e *ema) update(x float64) {
	e.last = e.alpha*x + (1-e.alpha)*e.last
	e.calls++
}

func (e *ema) value() float64 {
	if e.calls == 0 {
		return 0
	}
	beta := 1 - e.alpha
	if beta == 0 {
		return e.last
	}
	return e.last / (1 - math.Pow(beta, float64(e.calls)))
}
