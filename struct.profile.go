package soilwater

import (
	"fmt"
	"math"

	"github.com/JoshClayton/PEcAn-GSoC/soiltexture"
)

// Profile holds the immutable description of the soil column: geometry,
// the static gravitational head of every storage row, and the texture
// scalars governing conductivity and matric potential.
type Profile struct {
	Depth float64   // column depth [m]
	Nlay  int       // number of soil layers
	Dz    float64   // layer thickness [m]
	H     []float64 // gravitational head per storage row [m], H[i] = -i*Dz

	Ksat     float64 // saturated hydraulic conductivity [m/s]
	ThetaSat float64 // saturated moisture content [-]
	B        float64 // Clapp-Hornberger exponent [-]
	PsiSat   float64 // saturated matric potential [m], <0
	ThetaDry float64 // dry-soil moisture threshold [-]
}

// NewProfile builds and validates a column of nlay layers over the given
// depth, parameterized by a soil texture.
func NewProfile(tex soiltexture.Texture, depth float64, nlay int) (*Profile, error) {
	if depth <= 0. {
		return nil, &ConfigurationError{"depth", fmt.Sprintf("must be positive, got %g", depth)}
	}
	if nlay < 1 {
		return nil, &ConfigurationError{"nlay", fmt.Sprintf("need at least one layer, got %d", nlay)}
	}
	p := &Profile{
		Depth:    depth,
		Nlay:     nlay,
		Dz:       depth / float64(nlay),
		Ksat:     tex.KsatSurface,
		ThetaSat: tex.ThetaSat,
		B:        tex.B,
		PsiSat:   tex.PsiSat,
		ThetaDry: tex.ThetaDry,
	}
	p.H = make([]float64, nlay+1)
	for i := range p.H {
		p.H[i] = -float64(i) * p.Dz
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewProfileByTexture builds a column from a built-in texture class name.
func NewProfileByTexture(name string, depth float64, nlay int) (*Profile, error) {
	tex, err := soiltexture.Get(name)
	if err != nil {
		return nil, &ConfigurationError{"texture", err.Error()}
	}
	return NewProfile(tex, depth, nlay)
}

func (p *Profile) validate() error {
	if math.Abs(p.Depth-float64(p.Nlay)*p.Dz) > nearzero {
		return &ConfigurationError{"dz", fmt.Sprintf("depth %g inconsistent with %d x %g", p.Depth, p.Nlay, p.Dz)}
	}
	if p.Ksat <= 0. {
		return &ConfigurationError{"ksat", fmt.Sprintf("must be positive, got %g", p.Ksat)}
	}
	if p.ThetaSat <= 0. {
		return &ConfigurationError{"thetasat", fmt.Sprintf("must be positive, got %g", p.ThetaSat)}
	}
	if p.B <= 0. {
		return &ConfigurationError{"b", fmt.Sprintf("must be positive, got %g", p.B)}
	}
	if p.PsiSat >= 0. {
		return &ConfigurationError{"psisat", fmt.Sprintf("saturated matric potential must be negative, got %g", p.PsiSat)}
	}
	if p.ThetaDry <= 0. || p.ThetaDry >= p.ThetaSat {
		return &ConfigurationError{"thetadry", fmt.Sprintf("need 0 < thetadry < thetasat, got %g (thetasat %g)", p.ThetaDry, p.ThetaSat)}
	}
	return nil
}
