package soilwater

// Theta returns the moisture content of storage row i at time index j.
// Row 0 is the surface store; j may run to the last completed step.
func (e *Engine) Theta(i, j int) (float64, error) {
	if i < 0 || i > e.nl {
		return 0., &DimensionError{"layer", i, e.nl}
	}
	if j < 0 || j > e.t {
		return 0., &DimensionError{"time", j, e.t}
	}
	return e.theta[i*(e.nt+1)+j], nil
}

// K returns the hydraulic conductivity at the interface below row i for
// step j.
func (e *Engine) K(i, j int) (float64, error) {
	if err := e.chkStep(i, j, e.nl-1); err != nil {
		return 0., err
	}
	return e.k[i*e.nt+j], nil
}

// Psi returns the water potential of storage row i for step j.
func (e *Engine) Psi(i, j int) (float64, error) {
	if err := e.chkStep(i, j, e.nl); err != nil {
		return 0., err
	}
	return e.psi[i*e.nt+j], nil
}

// Flux returns the Darcy flux across the interface below row i for step j.
func (e *Engine) Flux(i, j int) (float64, error) {
	if err := e.chkStep(i, j, e.nl-1); err != nil {
		return 0., err
	}
	return e.flux[i*e.nt+j], nil
}

// Vol returns the volume transferred across the interface below row i in
// step j.
func (e *Engine) Vol(i, j int) (float64, error) {
	if err := e.chkStep(i, j, e.nl-1); err != nil {
		return 0., err
	}
	return e.vol[i*e.nt+j], nil
}

func (e *Engine) chkStep(i, j, imax int) error {
	if i < 0 || i > imax {
		return &DimensionError{"layer", i, imax}
	}
	if j < 0 || j >= e.t {
		return &DimensionError{"time", j, e.t - 1}
	}
	return nil
}

// ThetaSeries returns a copy of row i's moisture time series over the
// completed steps.
func (e *Engine) ThetaSeries(i int) ([]float64, error) {
	if i < 0 || i > e.nl {
		return nil, &DimensionError{"layer", i, e.nl}
	}
	o := make([]float64, e.t+1)
	copy(o, e.theta[i*(e.nt+1):i*(e.nt+1)+e.t+1])
	return o, nil
}

// ThetaProfile returns a copy of the full column's moisture at time index j.
func (e *Engine) ThetaProfile(j int) ([]float64, error) {
	if j < 0 || j > e.t {
		return nil, &DimensionError{"time", j, e.t}
	}
	o := make([]float64, e.nl+1)
	for i := 0; i <= e.nl; i++ {
		o[i] = e.theta[i*(e.nt+1)+j]
	}
	return o, nil
}

// Drainage returns the cumulative volume delivered to the terminal row over
// the completed steps.
func (e *Engine) Drainage() float64 {
	d := 0.
	for j := 0; j < e.t; j++ {
		d += e.vol[(e.nl-1)*e.nt+j]
	}
	return d
}
