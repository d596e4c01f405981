package postpro

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	soilwater "github.com/JoshClayton/PEcAn-GSoC"
)

// RenderHTML writes an interactive moisture time-series chart, sampled
// every stride steps.
func RenderHTML(e *soilwater.Engine, fp string, stride int) error {
	if stride < 1 {
		stride = 1
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "soil moisture", Subtitle: "layer moisture content over time"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "hr"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "theta"}),
	)

	var xs []string
	for j := 0; j <= e.Steps(); j += stride {
		xs = append(xs, fmt.Sprintf("%.2f", float64(j)*e.Dt()/3600.))
	}
	line.SetXAxis(xs)
	for i := 1; i <= e.Nlay(); i++ {
		ts, err := e.ThetaSeries(i)
		if err != nil {
			return err
		}
		data := make([]opts.LineData, 0, len(xs))
		for j := 0; j < len(ts); j += stride {
			data = append(data, opts.LineData{Value: ts[j]})
		}
		line.AddSeries(fmt.Sprintf("layer %d", i), data)
	}

	f, err := os.Create(fp)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}
