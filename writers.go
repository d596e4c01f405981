package soilwater

import (
	"fmt"
	"log"
	"sync"

	"github.com/maseology/mmio"
)

// WriteBins dumps the completed state arrays as little-endian float32
// binaries, one file per quantity, written concurrently.
func (e *Engine) WriteBins(prfx string) {
	var wg sync.WaitGroup
	w := func(nm string, f []float64) {
		defer wg.Done()
		mmio.WriteFloats(prfx+nm+".bin", f)
	}
	wg.Add(5)
	go w("theta", e.theta)
	go w("k", e.k)
	go w("psi", e.psi)
	go w("flux", e.flux)
	go w("vol", e.vol)
	wg.Wait()
}

// WriteThetaCSV writes the moisture time series of every storage row over
// the completed steps, one line per time index.
func (e *Engine) WriteThetaCSV(fp string) {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()

	h := "t,hr"
	for i := 0; i <= e.nl; i++ {
		h += fmt.Sprintf(",theta%d", i)
	}
	if err := csvw.WriteHead(h); err != nil {
		log.Fatalf("%v", err)
	}
	for j := 0; j <= e.t; j++ {
		row := make([]interface{}, e.nl+3)
		row[0] = j
		row[1] = float64(j) * e.dt / 3600.
		for i := 0; i <= e.nl; i++ {
			row[i+2] = e.theta[i*(e.nt+1)+j]
		}
		csvw.WriteLine(row...)
	}
}
