package gsw

import (
	"math"

	"github.com/oceanum/seawater/batch"
	"github.com/oceanum/seawater/gibbs"
	"github.com/oceanum/seawater/saar"
)

// Salinity converts between the three salinity scales: Practical
// Salinity SP (PSS-78, unitless), Absolute Salinity SA [g/kg] and
// Preformed Salinity Sstar [g/kg]. The open-ocean conversions need the
// anomaly atlas; inside the Baltic Sea the analytic corrections take
// over. Positions the atlas cannot resolve (dry land) come back
// undefined.
type Salinity struct {
	atlas *saar.Atlas
}

// NewSalinity wraps an anomaly atlas for salinity conversions.
func NewSalinity(a *saar.Atlas) *Salinity {
	return &Salinity{atlas: a}
}

// conv broadcasts (s, p, lon, lat) to a common length, clamps the
// salinity argument when clampS is set, and evaluates f elementwise
// with the anomaly for the position. Non-finite inputs and unresolved
// positions yield NaN.
func (c *Salinity) conv(s, p, lon, lat []float64, clampS bool,
	f func(s, dsa, lon, lat float64) float64) ([]float64, error) {

	n := len(s)
	for _, a := range [][]float64{p, lon, lat} {
		if len(a) > n {
			n = len(a)
		}
	}
	args, err := batch.Conform(n, s, p, lon, lat)
	if err != nil {
		return nil, err
	}
	s, p, lon, lat = args[0], args[1], args[2], args[3]
	if clampS {
		s = batch.ClampNonNegative(s)
	}

	out := make([]float64, n)
	for i := range out {
		if math.IsNaN(s[i]) || math.IsNaN(p[i]) ||
			math.IsNaN(lon[i]) || math.IsNaN(lat[i]) {
			out[i] = math.NaN()
			continue
		}
		dsa, ok := c.atlas.DeltaSA(p[i], lon[i], lat[i])
		if !ok {
			out[i] = math.NaN()
			continue
		}
		out[i] = f(s[i], dsa, lon[i], lat[i])
	}
	return out, nil
}

// SAFromSP computes Absolute Salinity from Practical Salinity.
// Negative SP is treated as zero.
func (c *Salinity) SAFromSP(sp, p, lon, lat []float64) ([]float64, error) {
	return c.conv(sp, p, lon, lat, true,
		func(sp, dsa, lon, lat float64) float64 {
			if sa, ok := balticSAFromSP(sp, lon, lat); ok {
				return sa
			}
			return gibbs.SSO/35*sp + dsa
		})
}

// SPFromSA computes Practical Salinity from Absolute Salinity.
func (c *Salinity) SPFromSA(sa, p, lon, lat []float64) ([]float64, error) {
	return c.conv(sa, p, lon, lat, false,
		func(sa, dsa, lon, lat float64) float64 {
			if sp, ok := balticSPFromSA(sa, lon, lat); ok {
				return sp
			}
			return 35 / gibbs.SSO * (sa - dsa)
		})
}

// SstarFromSA computes Preformed Salinity from Absolute Salinity. In
// the Baltic the anomaly is zero, so Sstar equals SA there.
func (c *Salinity) SstarFromSA(sa, p, lon, lat []float64) ([]float64, error) {
	return c.conv(sa, p, lon, lat, false,
		func(sa, dsa, lon, lat float64) float64 {
			if inBaltic(lon, lat) {
				return sa
			}
			return sa - (1+gibbs.R1)*dsa
		})
}

// SAFromSstar computes Absolute Salinity from Preformed Salinity.
func (c *Salinity) SAFromSstar(sstar, p, lon, lat []float64) ([]float64, error) {
	return c.conv(sstar, p, lon, lat, false,
		func(sstar, dsa, lon, lat float64) float64 {
			if inBaltic(lon, lat) {
				return sstar
			}
			return sstar + (1+gibbs.R1)*dsa
		})
}

// SPFromSstar computes Practical Salinity from Preformed Salinity. In
// the Baltic Sstar equals SA, so the Baltic SP correction applies
// directly.
func (c *Salinity) SPFromSstar(sstar, p, lon, lat []float64) ([]float64, error) {
	return c.conv(sstar, p, lon, lat, false,
		func(sstar, dsa, lon, lat float64) float64 {
			if sp, ok := balticSPFromSA(sstar, lon, lat); ok {
				return sp
			}
			return 35 / gibbs.SSO * (sstar + gibbs.R1*dsa)
		})
}

// SstarFromSP computes Preformed Salinity from Practical Salinity.
// Negative SP is treated as zero.
func (c *Salinity) SstarFromSP(sp, p, lon, lat []float64) ([]float64, error) {
	return c.conv(sp, p, lon, lat, true,
		func(sp, dsa, lon, lat float64) float64 {
			if sa, ok := balticSAFromSP(sp, lon, lat); ok {
				return sa
			}
			return gibbs.SSO/35*sp - gibbs.R1*dsa
		})
}

// SASstarFromSP computes Absolute and Preformed Salinity from
// Practical Salinity.
func (c *Salinity) SASstarFromSP(sp, p, lon, lat []float64) (sa, sstar []float64, err error) {
	sa, err = c.SAFromSP(sp, p, lon, lat)
	if err != nil {
		return nil, nil, err
	}
	sstar, err = c.SstarFromSP(sp, p, lon, lat)
	if err != nil {
		return nil, nil, err
	}
	return sa, sstar, nil
}
