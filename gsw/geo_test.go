package gsw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanum/seawater/gibbs"
)

func TestZFromP(t *testing.T) {
	const lat = 4
	want := []float64{
		-9.94460074, -49.71817465, -124.27282750,
		-248.47044828, -595.82618014, -992.09317480,
	}
	for i, p := range castP {
		assert.InDelta(t, want[i], ZFromP(p, lat), 1e-6, "p=%g", p)
	}

	assert.InDelta(t, 0, ZFromP(0, lat), 1e-12)
}

func TestPFromZ(t *testing.T) {
	const lat = 4
	z := []float64{10, 50, 125, 250, 600, 1000}
	want := []float64{
		-10.05521794, -50.27117510, -125.65488570,
		-251.23284504, -602.44050752, -1003.07609807,
	}
	for i := range z {
		assert.InDelta(t, want[i], PFromZ(z[i], lat), 1e-6, "z=%g", z[i])
	}
}

func TestPZRoundTrip(t *testing.T) {
	const lat = 4
	for _, p := range castP {
		back := PFromZ(ZFromP(p, lat), lat)
		assert.InDelta(t, p, back, 1e-6, "p=%g", p)
	}
}

func TestGrav(t *testing.T) {
	lats := []float64{-90, -60, -30, 0}
	want := []float64{9.83218621, 9.81917886, 9.79324926, 9.78032700}
	for i := range lats {
		assert.InDelta(t, want[i], Grav(lats[i], 0), 1e-8, "lat=%g", lats[i])
	}

	assert.InDelta(t, 9.8061998770458008, Grav(45, 0), 1e-9)

	// Gravity grows with depth.
	assert.Greater(t, Grav(45, 1000), Grav(45, 0))
}

func TestDistance(t *testing.T) {
	lon := []float64{159, 220}
	lat := []float64{-35, 35}

	t.Run("Surface", func(t *testing.T) {
		got, err := Distance(lon, lat, []float64{0})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.InDelta(t, 10030974.652916, got[0], 1e-4)
	})

	t.Run("AtDepth", func(t *testing.T) {
		// The path between adjacent stations is evaluated at the mean
		// of their pressures, shrinking the great circle by the ratio
		// of (R+z) to R.
		surface, err := Distance(lon, lat, []float64{0})
		require.NoError(t, err)
		got, err := Distance(lon, lat, []float64{200, 1000})
		require.NoError(t, err)

		z := ZFromP(600, 0)
		want := surface[0] * (gibbs.EarthRadius + z) / gibbs.EarthRadius
		assert.InDelta(t, want, got[0], 1e-6)
		assert.Less(t, got[0], surface[0])
	})

	t.Run("BadArguments", func(t *testing.T) {
		_, err := Distance([]float64{159}, []float64{-35}, []float64{0})
		assert.Error(t, err)
		_, err = Distance(lon, []float64{-35}, []float64{0})
		assert.Error(t, err)
		_, err = Distance(lon, lat, []float64{0, 0, 0})
		assert.Error(t, err)
	})
}
