package soilwater

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSteadyStateRequiresCompletedRun(t *testing.T) {
	e := loamySandColumn(t, .3, 0., 100)
	require.NoError(t, e.Step())
	_, _, err := e.SteadyState(4)
	var derr *DimensionError
	require.ErrorAs(t, err, &derr)
}

func TestSteadyStateIdempotent(t *testing.T) {
	e := loamySandColumn(t, .3, .3, 12960)
	require.NoError(t, e.Run())

	s1, o1, err := e.SteadyState(4)
	require.NoError(t, err)
	s2, o2, err := e.SteadyState(4)
	require.NoError(t, err)
	require.Equal(t, s1, s2)
	require.Equal(t, o1, o2)

	require.Len(t, s1, e.Nlay()+1)
	max := 0
	for _, s := range s1 {
		require.GreaterOrEqual(t, s, 0)
		require.LessOrEqual(t, s, e.Nt())
		if s > max {
			max = s
		}
	}
	require.Equal(t, max, o1)
}

func TestSteadyStateImmediate(t *testing.T) {
	// dry surface over soil at the dry threshold: nothing can move, so
	// every row matches its final value from the start
	e := loamySandColumn(t, e2thetaDry(t), 0., 50)
	require.NoError(t, e.Run())
	steps, overall, err := e.SteadyState(4)
	require.NoError(t, err)
	require.Equal(t, 0, overall)
	for _, s := range steps {
		require.Equal(t, 0, s)
	}
}

func e2thetaDry(t *testing.T) float64 {
	t.Helper()
	e := loamySandColumn(t, .3, 0., 1)
	return e.prf.ThetaDry
}
