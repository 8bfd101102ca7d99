package gsw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/oceanum/seawater/gibbs"
	"github.com/oceanum/seawater/saar"
)

// constAtlas covers the given lon/lat box with a constant anomaly at
// every depth.
func constAtlas(t *testing.T, lon, lat []float64, dsa float64) *saar.Atlas {
	t.Helper()
	p := []float64{0, 1000, 2000}
	levels := make([]*mat.Dense, len(p))
	for k := range levels {
		levels[k] = mat.NewDense(len(lat), len(lon), nil)
		for i := range lat {
			for j := range lon {
				levels[k].Set(i, j, dsa)
			}
		}
	}
	ndepth := mat.NewDense(len(lat), len(lon), nil)
	for i := range lat {
		for j := range lon {
			ndepth.Set(i, j, float64(len(p)-1))
		}
	}
	a, err := saar.New(lon, lat, p, levels, ndepth)
	require.NoError(t, err)
	return a
}

func pacificSalinity(t *testing.T, dsa float64) *Salinity {
	t.Helper()
	return NewSalinity(constAtlas(t,
		[]float64{180, 190}, []float64{0, 10}, dsa))
}

func TestSAFromSP(t *testing.T) {
	const dsa = 0.005
	c := pacificSalinity(t, dsa)
	sp := []float64{34.5487, 34.7275, 34.8605}
	lon := []float64{188}
	lat := []float64{4}
	p := []float64{10, 50, 125}

	got, err := c.SAFromSP(sp, p, lon, lat)
	require.NoError(t, err)
	for i := range sp {
		want := gibbs.SSO/35*sp[i] + dsa
		assert.InDelta(t, want, got[i], 1e-12, "bottle %d", i)
	}
}

func TestSalinityRoundTrips(t *testing.T) {
	c := pacificSalinity(t, 0.0087)
	sp := []float64{34.5487, 34.7275, 34.8605, 34.6810}
	p := []float64{10, 50, 125, 250}
	lon := []float64{188}
	lat := []float64{4}

	sa, err := c.SAFromSP(sp, p, lon, lat)
	require.NoError(t, err)
	back, err := c.SPFromSA(sa, p, lon, lat)
	require.NoError(t, err)
	for i := range sp {
		assert.InDelta(t, sp[i], back[i], 1e-12, "SP->SA->SP bottle %d", i)
	}

	sstar, err := c.SstarFromSA(sa, p, lon, lat)
	require.NoError(t, err)
	sa2, err := c.SAFromSstar(sstar, p, lon, lat)
	require.NoError(t, err)
	for i := range sp {
		assert.InDelta(t, sa[i], sa2[i], 1e-12, "SA->Sstar->SA bottle %d", i)
	}

	sstar2, err := c.SstarFromSP(sp, p, lon, lat)
	require.NoError(t, err)
	back2, err := c.SPFromSstar(sstar2, p, lon, lat)
	require.NoError(t, err)
	for i := range sp {
		assert.InDelta(t, sp[i], back2[i], 1e-12, "SP->Sstar->SP bottle %d", i)
	}
}

func TestSASstarFromSP(t *testing.T) {
	c := pacificSalinity(t, 0.005)
	sp := []float64{34.5487, 34.7275}
	p := []float64{10, 50}
	lon := []float64{188}
	lat := []float64{4}

	sa, sstar, err := c.SASstarFromSP(sp, p, lon, lat)
	require.NoError(t, err)

	wantSA, err := c.SAFromSP(sp, p, lon, lat)
	require.NoError(t, err)
	wantSstar, err := c.SstarFromSP(sp, p, lon, lat)
	require.NoError(t, err)
	assert.Equal(t, wantSA, sa)
	assert.Equal(t, wantSstar, sstar)
}

func TestSalinityUndefinedInputs(t *testing.T) {
	c := pacificSalinity(t, 0.005)

	got, err := c.SAFromSP(
		[]float64{34.5, math.NaN()},
		[]float64{10, 10},
		[]float64{188, 188},
		[]float64{4, 4})
	require.NoError(t, err)
	assert.False(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
}

func TestSalinityDryPosition(t *testing.T) {
	lon := []float64{180, 190}
	lat := []float64{0, 10}
	p := []float64{0, 1000}
	nan := math.NaN()
	levels := []*mat.Dense{
		mat.NewDense(2, 2, []float64{nan, nan, nan, nan}),
		mat.NewDense(2, 2, []float64{nan, nan, nan, nan}),
	}
	ndepth := mat.NewDense(2, 2, []float64{nan, nan, nan, nan})
	atlas, err := saar.New(lon, lat, p, levels, ndepth)
	require.NoError(t, err)
	c := NewSalinity(atlas)

	got, err := c.SAFromSP([]float64{34.5}, []float64{10},
		[]float64{188}, []float64{4})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got[0]))
}

func balticSalinity(t *testing.T) *Salinity {
	t.Helper()
	return NewSalinity(constAtlas(t,
		[]float64{10, 30}, []float64{50, 65}, 0.003))
}

func TestSAFromSPBaltic(t *testing.T) {
	c := balticSalinity(t)
	sp := []float64{6.5683, 6.6719, 6.8108, 7.2629, 7.4825, 10.2796}
	want := []float64{
		6.66994543234, 6.77377643074, 6.91298613806,
		7.36609419189, 7.58618383714, 10.38952057100,
	}

	got, err := c.SAFromSP(sp, []float64{10}, []float64{20}, []float64{59})
	require.NoError(t, err)
	for i := range sp {
		assert.InDelta(t, want[i], got[i], 1e-9, "sample %d", i)
	}
}

func TestSPFromSABaltic(t *testing.T) {
	c := balticSalinity(t)
	sa := []float64{6.6699, 6.7738, 6.9130, 7.3661, 7.5862, 10.3895}
	want := []float64{
		6.56825466873, 6.67192351682, 6.81081383110,
		7.26290579519, 7.48251612690, 10.27957947480,
	}

	got, err := c.SPFromSA(sa, []float64{10}, []float64{20}, []float64{59})
	require.NoError(t, err)
	for i := range sa {
		assert.InDelta(t, want[i], got[i], 1e-9, "sample %d", i)
	}
}

func TestBalticSstarEqualsSA(t *testing.T) {
	c := balticSalinity(t)
	sa := []float64{7.5862}
	p := []float64{10}
	lon := []float64{20}
	lat := []float64{59}

	sstar, err := c.SstarFromSA(sa, p, lon, lat)
	require.NoError(t, err)
	assert.InDelta(t, sa[0], sstar[0], 1e-12)

	back, err := c.SAFromSstar(sstar, p, lon, lat)
	require.NoError(t, err)
	assert.InDelta(t, sa[0], back[0], 1e-12)
}

func TestInBalticBoundary(t *testing.T) {
	cases := []struct {
		name     string
		lon, lat float64
		want     bool
	}{
		{"central Baltic", 20, 59, true},
		{"Gulf of Bothnia", 20, 63, true},
		{"North Sea", 3, 56, false},
		{"Norwegian Sea", 5, 64, false},
		{"south of bounds", 20, 49, false},
		{"north of bounds", 20, 70, false},
		{"east of bounds", 50, 59, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inBaltic(tc.lon, tc.lat))
		})
	}
}
