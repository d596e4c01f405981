package soiltexture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	ls, err := Get("loamy sand")
	require.NoError(t, err)
	require.Equal(t, .41, ls.ThetaSat)
	require.Equal(t, 4.38, ls.B)
	require.Negative(t, ls.PsiSat)
	require.Positive(t, ls.KsatSurface)
	require.Less(t, ls.ThetaDry, ls.ThetaSat)
}

func TestGetNormalization(t *testing.T) {
	a, err := Get("Loamy_Sand")
	require.NoError(t, err)
	b, err := Get("  loamy-sand ")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("peat")
	require.Error(t, err)
}

func TestNames(t *testing.T) {
	require.Len(t, Names(), 11)
}

func TestLoad(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "textures.csv")
	require.NoError(t, os.WriteFile(fp, []byte(
		"name,psisat,thetasat,ksat,b,thetadry\n"+
			"loamy sand,-0.09,0.41,1.5633e-4,4.38,0.057\n"+
			"clay,-0.405,0.482,1.283e-6,11.4,0.23\n"), 0644))

	m, err := Load(fp)
	require.NoError(t, err)
	require.Len(t, m, 2)
	require.Equal(t, .41, m["loamy sand"].ThetaSat)
	require.Equal(t, 11.4, m["clay"].B)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	fp := filepath.Join(dir, "cols.csv")
	require.NoError(t, os.WriteFile(fp, []byte("name,psisat,thetasat,ksat,b,thetadry\nclay,-0.405,0.482\n"), 0644))
	_, err := Load(fp)
	require.Error(t, err)

	fp = filepath.Join(dir, "psi.csv")
	require.NoError(t, os.WriteFile(fp, []byte("name,psisat,thetasat,ksat,b,thetadry\nclay,0.405,0.482,1.283e-6,11.4,0.23\n"), 0644))
	_, err = Load(fp)
	require.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
}
