package gsw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/oceanum/seawater/gibbs"
)

// surfaceGravity is the Moritz (1980) normal gravity at the surface
// for latitude lat [m/s^2].
func surfaceGravity(lat float64) float64 {
	sin2 := math.Sin(lat * math.Pi / 180)
	sin2 *= sin2
	return 9.780327 * (1.0 + (5.2792e-3+2.32e-5*sin2)*sin2)
}

// ZFromP computes height from sea pressure [m]. Height is positive
// upward, so ocean values are negative. Uses the pressure integral of
// the standard-ocean 25-term density profile.
func ZFromP(p, lat float64) float64 {
	b := surfaceGravity(lat)
	a := -0.5 * gibbs.Gamma * b
	c := gibbs.EnthalpySSO0CT25(p)
	return -2 * c / (b + math.Sqrt(b*b-4*a*c))
}

// PFromZ computes sea pressure from height [dbar]: the Saunders (1981)
// estimate refined by one pass of the modified Newton-Raphson scheme
// against the standard-ocean enthalpy profile.
func PFromZ(z, lat float64) float64 {
	sin2 := math.Sin(lat * math.Pi / 180)
	sin2 *= sin2
	gs := 9.780327 * (1.0 + (5.2792e-3+2.32e-5*sin2)*sin2)

	c1 := 5.25e-3*sin2 + 5.92e-3
	p := -2 * z / ((1 - c1) + math.Sqrt((1-c1)*(1-c1)+8.84e-6*z))

	dfDp := gibbs.DB2Pascal * gibbs.SpecVolSSO0CT25(p)
	f := gibbs.EnthalpySSO0CT25(p) + gs*(z-0.5*gibbs.Gamma*z*z)
	pOld := p
	p = pOld - f/dfDp
	pm := 0.5 * (p + pOld)
	dfDp = gibbs.DB2Pascal * gibbs.SpecVolSSO0CT25(pm)
	return pOld - f/dfDp
}

// Grav computes gravitational acceleration at latitude lat and sea
// pressure p [m/s^2], correcting the surface value to the height of
// the pressure surface.
func Grav(lat, p float64) float64 {
	return surfaceGravity(lat) * (1 - gibbs.Gamma*ZFromP(p, lat))
}

// Distance computes the great-circle distance [m] between successive
// positions, corrected to the depth of the mid-pressure between each
// pair. The result has one fewer element than the inputs. p may be a
// single value applied throughout.
func Distance(lon, lat, p []float64) ([]float64, error) {
	if len(lon) < 2 {
		return nil, fmt.Errorf("gsw: distance needs at least two positions")
	}
	if len(lat) != len(lon) {
		return nil, fmt.Errorf("gsw: distance: %d longitudes, %d latitudes",
			len(lon), len(lat))
	}
	if len(p) == 1 {
		pp := make([]float64, len(lon))
		for i := range pp {
			pp[i] = p[0]
		}
		p = pp
	}
	if len(p) != len(lon) {
		return nil, fmt.Errorf("gsw: distance: %d positions, %d pressures",
			len(lon), len(p))
	}

	const deg = math.Pi / 180
	rlon := make([]float64, len(lon))
	rlat := make([]float64, len(lat))
	floats.ScaleTo(rlon, deg, lon)
	floats.ScaleTo(rlat, deg, lat)

	out := make([]float64, len(lon)-1)
	for i := range out {
		dlon := rlon[i+1] - rlon[i]
		dlat := rlat[i+1] - rlat[i]
		sdlat := math.Sin(dlat / 2)
		sdlon := math.Sin(dlon / 2)
		a := sdlat*sdlat + math.Cos(rlat[i])*math.Cos(rlat[i+1])*sdlon*sdlon
		angle := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

		pMid := 0.5 * (p[i] + p[i+1])
		latMid := 0.5 * (lat[i] + lat[i+1])
		z := ZFromP(pMid, latMid)
		out[i] = (gibbs.EarthRadius + z) * angle
	}
	return out, nil
}
