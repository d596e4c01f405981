package soilwater

import "math"

// SteadyState scans the completed run for the earliest time index at which
// each storage row's moisture, rounded to the given number of decimals,
// equals its rounded final value; rows that never match earlier report the
// final index. The overall steady-state time is the row-wise maximum. The
// scan is read-only and may be repeated freely.
func (e *Engine) SteadyState(decimals int) (steps []int, overall int, err error) {
	if e.t < e.nt {
		return nil, 0, &DimensionError{"time", e.nt, e.t}
	}
	p := math.Pow(10., float64(decimals))
	rnd := func(v float64) float64 { return math.Round(v*p) / p }

	steps = make([]int, e.nl+1)
	for i := 0; i <= e.nl; i++ {
		f := rnd(e.theta[i*(e.nt+1)+e.nt])
		steps[i] = e.nt
		for j := 0; j <= e.nt; j++ {
			if rnd(e.theta[i*(e.nt+1)+j]) == f {
				steps[i] = j
				break
			}
		}
		if steps[i] > overall {
			overall = steps[i]
		}
	}
	return steps, overall, nil
}
