package main

import (
	"fmt"
	"log"

	"github.com/maseology/mmio"

	soilwater "github.com/JoshClayton/PEcAn-GSoC"
	"github.com/JoshClayton/PEcAn-GSoC/postpro"
	"github.com/JoshClayton/PEcAn-GSoC/soiltexture"
)

func main() {

	const (
		texture  = "loamy sand"
		depth    = 2.    // column depth [m]
		nlay     = 8     // soil layers
		theta0   = .3    // initial soil moisture [-]
		surface0 = .3    // initial surface ponding store [-]; set 0. for the dry-surface case
		dt       = 10.   // time step [s]
		nt       = 12960 // 36 hr
		outprfx  = "out/"
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nrun complete")

	tex, err := soiltexture.Get(texture)
	if err != nil {
		log.Fatalf("%v", err)
	}
	prf, err := soilwater.NewProfile(tex, depth, nlay)
	if err != nil {
		log.Fatalf("%v", err)
	}
	sim, err := soilwater.New(prf, theta0, surface0, dt, nt)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf(" %s: %d layers of %.2f m, dt %.0f s, %s steps\n", texture, nlay, prf.Dz, dt, mmio.Thousands(int64(nt)))
	if err := sim.RunProgress(); err != nil {
		log.Fatalf("%v", err)
	}
	tt.Print("simulation complete")

	// outputs
	mmio.MakeDir(outprfx)
	sim.WriteThetaCSV(outprfx + "theta.csv")
	sim.WriteBins(outprfx)
	if err := postpro.PlotTheta(sim, outprfx+"theta.png", 36); err != nil {
		log.Fatalf("%v", err)
	}
	if err := postpro.PlotProfile(sim, []int{0, nt / 36, nt / 6, nt / 2, nt}, outprfx+"profile.png"); err != nil {
		log.Fatalf("%v", err)
	}
	if err := postpro.RenderHTML(sim, outprfx+"theta.html", 36); err != nil {
		log.Fatalf("%v", err)
	}

	// summary
	steps, overall, err := sim.SteadyState(4)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("\n cumulative deep drainage: %.5f\n", sim.Drainage())
	for i, s := range steps {
		fmt.Printf("  row %d steady at step %d (%.2f hr)\n", i, s, float64(s)*dt/3600.)
	}
	fmt.Printf(" column steady state: step %d (%.2f hr)\n", overall, float64(overall)*dt/3600.)
}
