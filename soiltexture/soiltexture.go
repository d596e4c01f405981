// Package soiltexture tabulates Clapp-Hornberger (1978) soil hydraulic
// parameters by USDA texture class, in SI units.
package soiltexture

import (
	"fmt"
	"strings"
)

// Texture holds the hydraulic parameter set of one soil texture class.
type Texture struct {
	Name        string
	PsiSat      float64 // saturated matric potential [m], <0
	ThetaSat    float64 // saturated moisture content [-]
	KsatSurface float64 // surface saturated hydraulic conductivity [m/s]
	B           float64 // retention-curve exponent [-]
	ThetaDry    float64 // dry-soil moisture threshold [-]
}

// textures : Clapp & Hornberger (1978) representative values; conductivity
// converted from cm/min, potential from cm of suction.
var textures = map[string]Texture{
	"sand":            {"sand", -0.121, 0.395, 1.760e-4, 4.05, 0.045},
	"loamy sand":      {"loamy sand", -0.090, 0.410, 1.5633e-4, 4.38, 0.057},
	"sandy loam":      {"sandy loam", -0.218, 0.435, 3.467e-5, 4.90, 0.065},
	"silt loam":       {"silt loam", -0.786, 0.485, 7.200e-6, 5.30, 0.100},
	"loam":            {"loam", -0.478, 0.451, 6.950e-6, 5.39, 0.110},
	"sandy clay loam": {"sandy clay loam", -0.299, 0.420, 6.300e-6, 7.12, 0.135},
	"silty clay loam": {"silty clay loam", -0.356, 0.477, 1.700e-6, 7.75, 0.170},
	"clay loam":       {"clay loam", -0.630, 0.476, 2.450e-6, 8.52, 0.185},
	"sandy clay":      {"sandy clay", -0.153, 0.426, 2.167e-6, 10.40, 0.195},
	"silty clay":      {"silty clay", -0.490, 0.492, 1.033e-6, 10.40, 0.215},
	"clay":            {"clay", -0.405, 0.482, 1.283e-6, 11.40, 0.230},
}

// Get returns the built-in parameter set for a texture class name.
// Matching is case-insensitive and treats underscores and hyphens as
// spaces.
func Get(name string) (Texture, error) {
	t, ok := textures[normalize(name)]
	if !ok {
		return Texture{}, fmt.Errorf("soiltexture: unknown texture %q", name)
	}
	return t, nil
}

// Names returns the built-in texture class names.
func Names() []string {
	o := make([]string, 0, len(textures))
	for n := range textures {
		o = append(o, n)
	}
	return o
}

func normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

func (t Texture) validate() error {
	switch {
	case t.KsatSurface <= 0.:
		return fmt.Errorf("soiltexture %q: ksat must be positive, got %g", t.Name, t.KsatSurface)
	case t.ThetaSat <= 0.:
		return fmt.Errorf("soiltexture %q: thetasat must be positive, got %g", t.Name, t.ThetaSat)
	case t.B <= 0.:
		return fmt.Errorf("soiltexture %q: b must be positive, got %g", t.Name, t.B)
	case t.PsiSat >= 0.:
		return fmt.Errorf("soiltexture %q: psisat must be negative, got %g", t.Name, t.PsiSat)
	case t.ThetaDry <= 0. || t.ThetaDry >= t.ThetaSat:
		return fmt.Errorf("soiltexture %q: need 0 < thetadry < thetasat, got %g", t.Name, t.ThetaDry)
	}
	return nil
}
