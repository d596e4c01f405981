package soilwater

import (
	"fmt"
	"log"
	"math"

	"github.com/gosuri/uiprogress"
)

// Step advances the column by one time step, reading storage column t and
// writing column t+1 plus the derived arrays at index t. The clamping below
// keeps every moisture value physically bounded, so once construction
// succeeds the update arithmetic cannot fail.
func (e *Engine) Step() error {
	if e.t >= e.nt {
		return &DimensionError{"time", e.t, e.nt - 1}
	}
	t, nt, nl := e.t, e.nt, e.nl
	ts, b, dz := e.prf.ThetaSat, e.prf.B, e.prf.Dz

	// conductivity at the interface below row i takes the moisture of the
	// soil layer one storage row down
	for i := 0; i < nl; i++ {
		e.k[i*nt+t] = e.prf.Ksat * math.Pow(e.theta[(i+1)*(nt+1)+t]/ts, 2.*b+3.)
	}

	// potential: the surface store is treated as a ponding depth
	e.psi[t] = e.theta[t]
	for i := 1; i <= nl; i++ {
		e.psi[i*nt+t] = e.prf.H[i] + e.prf.PsiSat*math.Pow(e.theta[i*(nt+1)+t]/ts, -b)
	}

	// Darcy flux, downward positive
	for i := 0; i < nl; i++ {
		e.flux[i*nt+t] = -e.k[i*nt+t] * (e.psi[(i+1)*nt+t] - e.psi[i*nt+t]) / dz
	}

	// volume transfer, clamped to what the source can give and the
	// receiver can hold; never negative (no upward flow in this model)
	for i := 0; i < nl; i++ {
		avail := e.theta[i*(nt+1)+t]
		if i > 0 {
			avail -= e.prf.ThetaDry
		}
		room := ts - e.theta[(i+1)*(nt+1)+t]
		v := math.Min(e.flux[i*nt+t]*e.dt, math.Min(avail, room))
		if v < 0. {
			v = 0.
		}
		e.vol[i*nt+t] = v
	}

	// conservative update: row 0 only loses, the terminal row only gains
	e.theta[t+1] = e.theta[t] - e.vol[t]
	for i := 1; i < nl; i++ {
		e.theta[i*(nt+1)+t+1] = e.theta[i*(nt+1)+t] + e.vol[(i-1)*nt+t] - e.vol[i*nt+t]
	}
	e.theta[nl*(nt+1)+t+1] = e.theta[nl*(nt+1)+t] + e.vol[(nl-1)*nt+t]

	e.checkWbal(t)
	e.t++
	return nil
}

// checkWbal verifies column-total mass is unchanged across the step.
func (e *Engine) checkWbal(t int) {
	s0, s1 := 0., 0.
	for i := 0; i <= e.nl; i++ {
		s0 += e.theta[i*(e.nt+1)+t]
		s1 += e.theta[i*(e.nt+1)+t+1]
	}
	if math.Abs(s1-s0) > nearzero {
		fmt.Printf("%10d%14.6e%14.6e\n", t, s0, s1)
		log.Fatalln("column wbal error")
	}
}

// Run completes all remaining time steps.
func (e *Engine) Run() error {
	for e.t < e.nt {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunProgress completes all remaining time steps behind a console progress
// bar.
func (e *Engine) RunProgress() error {
	uiprogress.Start()
	bar := uiprogress.AddBar(e.nt - e.t).AppendCompleted().PrependElapsed()
	for e.t < e.nt {
		if err := e.Step(); err != nil {
			uiprogress.Stop()
			return err
		}
		bar.Incr()
	}
	uiprogress.Stop()
	return nil
}
