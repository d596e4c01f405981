package soilwater

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JoshClayton/PEcAn-GSoC/soiltexture"
)

// loamy-sand column: 8 layers of 0.25 m, dt 10 s
func loamySandColumn(t *testing.T, theta0, surface0 float64, nt int) *Engine {
	t.Helper()
	tex, err := soiltexture.Get("loamy sand")
	require.NoError(t, err)
	prf, err := NewProfile(tex, 2., 8)
	require.NoError(t, err)
	e, err := New(prf, theta0, surface0, 10., nt)
	require.NoError(t, err)
	return e
}

func TestDrySurfaceScenario(t *testing.T) {
	e := loamySandColumn(t, .3, 0., 12960)
	require.NoError(t, e.Run())

	// no water available to infiltrate on the first step
	v00, err := e.Vol(0, 0)
	require.NoError(t, err)
	require.Zero(t, v00)

	th11, err := e.Theta(1, 1)
	require.NoError(t, err)
	require.LessOrEqual(t, th11, e.prf.ThetaSat)
	require.GreaterOrEqual(t, th11, e.prf.ThetaDry)
}

func TestFloodScenario(t *testing.T) {
	e := loamySandColumn(t, .3, .3, 12960)
	require.NoError(t, e.Run())

	v00, err := e.Vol(0, 0)
	require.NoError(t, err)
	require.Greater(t, v00, 0.)

	th10, err := e.Theta(1, 0)
	require.NoError(t, err)
	th11, err := e.Theta(1, 1)
	require.NoError(t, err)
	require.Greater(t, th11, th10)

	require.Greater(t, e.Drainage(), 0.)
}

func TestBounds(t *testing.T) {
	e := loamySandColumn(t, .3, .3, 12960)
	require.NoError(t, e.Run())

	for j := 0; j <= e.Nt(); j++ {
		s, err := e.Theta(0, j)
		require.NoError(t, err)
		require.GreaterOrEqual(t, s, 0.)
		for i := 1; i <= e.Nlay(); i++ {
			th, err := e.Theta(i, j)
			require.NoError(t, err)
			require.GreaterOrEqual(t, th, e.prf.ThetaDry-1e-12)
			require.LessOrEqual(t, th, e.prf.ThetaSat+1e-12)
		}
	}
}

func TestMassConservation(t *testing.T) {
	e := loamySandColumn(t, .3, .3, 12960)
	require.NoError(t, e.Run())

	sum := func(j int) float64 {
		s := 0.
		for i := 0; i <= e.Nlay(); i++ {
			th, err := e.Theta(i, j)
			require.NoError(t, err)
			s += th
		}
		return s
	}
	s0 := sum(0)
	for j := 1; j <= e.Nt(); j++ {
		require.InDelta(t, s0, sum(j), 1e-8)
	}

	// terminal-row gain is exactly the cumulative drainage
	d0, err := e.Theta(e.Nlay(), 0)
	require.NoError(t, err)
	dn, err := e.Theta(e.Nlay(), e.Nt())
	require.NoError(t, err)
	require.InDelta(t, dn-d0, e.Drainage(), 1e-9)
}

func TestVolumeClamping(t *testing.T) {
	e := loamySandColumn(t, .3, .3, 12960)
	require.NoError(t, e.Run())

	for j := 0; j < e.Nt(); j++ {
		for i := 0; i < e.Nlay(); i++ {
			v, err := e.Vol(i, j)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, 0.)

			avail, err := e.Theta(i, j)
			require.NoError(t, err)
			if i > 0 {
				avail -= e.prf.ThetaDry
			}
			room := e.prf.ThetaSat
			thb, err := e.Theta(i+1, j)
			require.NoError(t, err)
			room -= thb
			require.LessOrEqual(t, v, math.Max(avail, 0.)+1e-12)
			require.LessOrEqual(t, v, math.Max(room, 0.)+1e-12)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := loamySandColumn(t, .3, .3, 3600)
	b := loamySandColumn(t, .3, .3, 3600)
	require.NoError(t, a.Run())
	require.NoError(t, b.Run())
	for i := 0; i <= a.Nlay(); i++ {
		sa, err := a.ThetaSeries(i)
		require.NoError(t, err)
		sb, err := b.ThetaSeries(i)
		require.NoError(t, err)
		require.Equal(t, sa, sb)
	}
}

func TestStepBeyondEnd(t *testing.T) {
	e := loamySandColumn(t, .3, 0., 2)
	require.NoError(t, e.Run())
	err := e.Step()
	var derr *DimensionError
	require.ErrorAs(t, err, &derr)
}

func TestAccessorRanges(t *testing.T) {
	e := loamySandColumn(t, .3, 0., 10)
	var derr *DimensionError

	// time index not yet simulated
	_, err := e.Theta(1, 1)
	require.ErrorAs(t, err, &derr)
	_, err = e.K(0, 0)
	require.ErrorAs(t, err, &derr)

	require.NoError(t, e.Step())
	_, err = e.Theta(1, 1)
	require.NoError(t, err)
	_, err = e.K(0, 0)
	require.NoError(t, err)

	// layer out of range
	_, err = e.Theta(e.Nlay()+1, 0)
	require.ErrorAs(t, err, &derr)
	_, err = e.Vol(e.Nlay(), 0)
	require.ErrorAs(t, err, &derr)
	_, err = e.Theta(-1, 0)
	require.ErrorAs(t, err, &derr)
}
