package soiltexture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// Load reads a texture parameter table from a comma-delimited file with
// columns name,psisat,thetasat,ksat,b,thetadry (one header line). Rows are
// validated before being returned.
func Load(fp string) (map[string]Texture, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("soiltexture.Load %s: %v", fp, err)
	}

	m := make(map[string]Texture)
	for i, ln := range lns {
		if i == 0 || len(strings.TrimSpace(ln)) == 0 {
			continue // header
		}
		stp := strings.Split(ln, ",")
		if len(stp) != 6 {
			return nil, fmt.Errorf("soiltexture.Load %s line %d: need 6 columns, found %d", fp, i+1, len(stp))
		}
		v := make([]float64, 5)
		for j := 1; j < 6; j++ {
			if v[j-1], err = strconv.ParseFloat(strings.TrimSpace(stp[j]), 64); err != nil {
				return nil, fmt.Errorf("soiltexture.Load %s line %d: %v", fp, i+1, err)
			}
		}
		t := Texture{
			Name:        normalize(stp[0]),
			PsiSat:      v[0],
			ThetaSat:    v[1],
			KsatSurface: v[2],
			B:           v[3],
			ThetaDry:    v[4],
		}
		if err := t.validate(); err != nil {
			return nil, err
		}
		m[t.Name] = t
	}
	return m, nil
}
