package gsw

import (
	"math"

	"github.com/oceanum/seawater/gibbs"
)

// SAFromRho solves for the Absolute Salinity [g/kg] at which seawater
// of the given in-situ temperature and pressure has the given density.
// A secant estimate over the 0-120 g/kg specific-volume span seeds two
// passes of the modified Newton-Raphson scheme. Densities outside the
// span give NaN.
func SAFromRho(rho, t, p float64) float64 {
	vLab := 1 / rho
	v0 := g(gibbs.GP, 0, t, p)
	v120 := g(gibbs.GP, 120, t, p)

	sa := 120 * (vLab - v0) / (v120 - v0)
	if sa < 0 || sa > 120 {
		return math.NaN()
	}
	vSA := (v120 - v0) / 120

	for iter := 0; iter < 2; iter++ {
		saOld := sa
		deltaV := g(gibbs.GP, saOld, t, p) - vLab
		sa = saOld - deltaV/vSA
		saMean := 0.5 * (sa + saOld)
		vSA = g(gibbs.GSAP, saMean, t, p)
		sa = saOld - deltaV/vSA
	}
	return sa
}
