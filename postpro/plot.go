// Package postpro renders the simulation output arrays as static and
// interactive plots. It only consumes engine accessors; nothing here
// mutates simulation state.
package postpro

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	soilwater "github.com/JoshClayton/PEcAn-GSoC"
)

// PlotTheta saves a PNG of every soil layer's moisture time series, sampled
// every stride steps.
func PlotTheta(e *soilwater.Engine, fp string, stride int) error {
	if stride < 1 {
		stride = 1
	}
	p := plot.New()
	p.Title.Text = "soil moisture"
	p.X.Label.Text = "time [hr]"
	p.Y.Label.Text = "moisture content [-]"

	args := make([]interface{}, 0, 2*e.Nlay())
	for i := 1; i <= e.Nlay(); i++ {
		ts, err := e.ThetaSeries(i)
		if err != nil {
			return err
		}
		xys := make(plotter.XYs, 0, len(ts)/stride+1)
		for j := 0; j < len(ts); j += stride {
			xys = append(xys, plotter.XY{X: float64(j) * e.Dt() / 3600., Y: ts[j]})
		}
		args = append(args, fmt.Sprintf("layer %d", i), xys)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, fp)
}

// PlotProfile saves a PNG of moisture-with-depth snapshots at the given
// time indices.
func PlotProfile(e *soilwater.Engine, times []int, fp string) error {
	p := plot.New()
	p.Title.Text = "moisture profile"
	p.X.Label.Text = "moisture content [-]"
	p.Y.Label.Text = "depth [m]"

	dz := e.Profile().Dz
	args := make([]interface{}, 0, 2*len(times))
	for _, j := range times {
		prof, err := e.ThetaProfile(j)
		if err != nil {
			return err
		}
		xys := make(plotter.XYs, 0, len(prof)-1)
		for i := 1; i < len(prof); i++ { // soil rows only, at layer midpoints
			xys = append(xys, plotter.XY{X: prof[i], Y: -(float64(i) - .5) * dz})
		}
		args = append(args, fmt.Sprintf("t = %.1f hr", float64(j)*e.Dt()/3600.), xys)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 6*vg.Inch, fp)
}
