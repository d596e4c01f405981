package soilwater

import "fmt"

// Engine owns and evolves the column's time series state. Storage rows are
// indexed 0..Nlay: row 0 is the surface/ponding store, rows 1..Nlay the soil
// layers, row Nlay doubling as the deep-drainage receiver. State is held in
// flat layer-major slices: theta at i*(nt+1)+j, the per-step arrays at
// i*nt+j.
type Engine struct {
	prf *Profile
	dt  float64 // time step [s]
	nt  int     // number of steps
	t   int     // completed steps
	nl  int     // soil layers

	theta []float64 // (nl+1) x (nt+1) moisture content [-]
	k     []float64 // nl x nt hydraulic conductivity [m/s]
	psi   []float64 // (nl+1) x nt water potential [m]
	flux  []float64 // nl x nt Darcy flux [m/s], downward positive
	vol   []float64 // nl x nt transferred volume [-], clamped
}

// New allocates an engine for nt steps of dt seconds, seeding every soil
// layer with theta0 and the surface store with surface0 at t=0.
func New(prf *Profile, theta0, surface0, dt float64, nt int) (*Engine, error) {
	if prf == nil {
		return nil, &ConfigurationError{"profile", "nil"}
	}
	if err := prf.validate(); err != nil {
		return nil, err
	}
	if dt <= 0. {
		return nil, &ConfigurationError{"dt", fmt.Sprintf("must be positive, got %g", dt)}
	}
	if nt < 1 {
		return nil, &ConfigurationError{"nt", fmt.Sprintf("need at least one step, got %d", nt)}
	}
	if theta0 < prf.ThetaDry || theta0 > prf.ThetaSat {
		return nil, &ConfigurationError{"theta0", fmt.Sprintf("initial moisture %g outside [%g,%g]", theta0, prf.ThetaDry, prf.ThetaSat)}
	}
	if surface0 < 0. {
		return nil, &ConfigurationError{"surface0", fmt.Sprintf("surface store cannot be negative, got %g", surface0)}
	}

	nl := prf.Nlay
	e := &Engine{
		prf:   prf,
		dt:    dt,
		nt:    nt,
		nl:    nl,
		theta: make([]float64, (nl+1)*(nt+1)),
		k:     make([]float64, nl*nt),
		psi:   make([]float64, (nl+1)*nt),
		flux:  make([]float64, nl*nt),
		vol:   make([]float64, nl*nt),
	}
	e.theta[0] = surface0 // row 0, t=0
	for i := 1; i <= nl; i++ {
		e.theta[i*(nt+1)] = theta0
	}
	return e, nil
}

// Nlay returns the number of soil layers.
func (e *Engine) Nlay() int { return e.nl }

// Nt returns the configured number of time steps.
func (e *Engine) Nt() int { return e.nt }

// Steps returns the number of completed steps.
func (e *Engine) Steps() int { return e.t }

// Dt returns the time step length in seconds.
func (e *Engine) Dt() float64 { return e.dt }

// Profile returns the column configuration.
func (e *Engine) Profile() *Profile { return e.prf }
