// Package gsw is the public seawater toolbox: derived thermodynamic
// quantities, the iterative temperature and salinity solvers, salinity
// scale conversions and the pressure/height helpers, all built on the
// Gibbs-function engine in package gibbs.
//
// Scalar functions take SA in g/kg, in-situ temperature t in deg C
// (ITS-90) and sea pressure p in dbar. Apply3 lifts any pointwise
// function to slices with the toolbox's broadcasting and
// undefined-propagation conventions.
package gsw

import (
	"math"

	"github.com/oceanum/seawater/batch"
	"github.com/oceanum/seawater/gibbs"
)

// g evaluates one Gibbs derivative; the order tags used in this
// package are all members of the supported set, so the error case
// cannot arise.
func g(d gibbs.Deriv, sa, t, p float64) float64 {
	v, _ := gibbs.Eval(d, sa, t, p)
	return v
}

// Entropy computes specific entropy [J/(kg K)], -g_T.
func Entropy(sa, t, p float64) float64 {
	return -g(gibbs.GT, sa, t, p)
}

// Rho computes in-situ density [kg/m^3], 1/g_P.
func Rho(sa, t, p float64) float64 {
	return 1 / g(gibbs.GP, sa, t, p)
}

// SpecVol computes specific volume [m^3/kg], g_P.
func SpecVol(sa, t, p float64) float64 {
	return g(gibbs.GP, sa, t, p)
}

// SpecVolAnom computes the specific volume anomaly [m^3/kg]: specific
// volume minus that of a standard-ocean parcel (SA = SSO, CT = 0)
// brought to the same pressure.
func SpecVolAnom(sa, t, p float64) float64 {
	ptZero := PTFromCT(gibbs.SSO, 0)
	tZero := PotentialTemperature(gibbs.SSO, ptZero, 0, p)
	return g(gibbs.GP, sa, t, p) - g(gibbs.GP, gibbs.SSO, tZero, p)
}

// Cp computes isobaric heat capacity [J/(kg K)], -(Kelvin+t)*g_TT.
func Cp(sa, t, p float64) float64 {
	return -(t + gibbs.Kelvin) * g(gibbs.GTT, sa, t, p)
}

// HelmholtzEnergy computes the specific Helmholtz energy [J/kg],
// g - (P0 + p)*g_P with p converted to Pa.
func HelmholtzEnergy(sa, t, p float64) float64 {
	return g(gibbs.G, sa, t, p) -
		(gibbs.DB2Pascal*p+gibbs.P0)*g(gibbs.GP, sa, t, p)
}

// InternalEnergy computes specific internal energy [J/kg].
func InternalEnergy(sa, t, p float64) float64 {
	return g(gibbs.G, sa, t, p) -
		(gibbs.Kelvin+t)*g(gibbs.GT, sa, t, p) -
		(gibbs.DB2Pascal*p+gibbs.P0)*g(gibbs.GP, sa, t, p)
}

// Enthalpy computes specific enthalpy [J/kg], g - (Kelvin+t)*g_T.
func Enthalpy(sa, t, p float64) float64 {
	return g(gibbs.G, sa, t, p) - (t+gibbs.Kelvin)*g(gibbs.GT, sa, t, p)
}

// SoundSpeed computes the speed of sound [m/s].
func SoundSpeed(sa, t, p float64) float64 {
	gtt := g(gibbs.GTT, sa, t, p)
	gtp := g(gibbs.GTP, sa, t, p)
	return g(gibbs.GP, sa, t, p) *
		math.Sqrt(gtt/(gtp*gtp-gtt*g(gibbs.GPP, sa, t, p)))
}

// AdiabaticLapseRate computes the adiabatic lapse rate [K/Pa],
// -g_TP/g_TT. Note the TEOS-10 unit: per Pa, not per dbar.
func AdiabaticLapseRate(sa, t, p float64) float64 {
	return -g(gibbs.GTP, sa, t, p) / g(gibbs.GTT, sa, t, p)
}

// IsochoricHeatCap computes isochoric heat capacity [J/(kg K)].
func IsochoricHeatCap(sa, t, p float64) float64 {
	gtt := g(gibbs.GTT, sa, t, p)
	gtp := g(gibbs.GTP, sa, t, p)
	return -(gibbs.Kelvin + t) * (gtt - gtp*gtp/g(gibbs.GPP, sa, t, p))
}

// Kappa computes isentropic (and isohaline) compressibility [1/Pa].
func Kappa(sa, t, p float64) float64 {
	gtt := g(gibbs.GTT, sa, t, p)
	gtp := g(gibbs.GTP, sa, t, p)
	return (gtp*gtp - gtt*g(gibbs.GPP, sa, t, p)) /
		(g(gibbs.GP, sa, t, p) * gtt)
}

// KappaConstT computes isothermal compressibility [1/Pa], -g_PP/g_P.
func KappaConstT(sa, t, p float64) float64 {
	return -g(gibbs.GPP, sa, t, p) / g(gibbs.GP, sa, t, p)
}

// PotRho computes potential density [kg/m^3] referenced to pressure
// pref.
func PotRho(sa, t, p, pref float64) float64 {
	return Rho(sa, PotentialTemperature(sa, t, p, pref), pref)
}

// AlphaWrtT computes the thermal expansion coefficient with respect to
// in-situ temperature [1/K], g_TP/g_P.
func AlphaWrtT(sa, t, p float64) float64 {
	return g(gibbs.GTP, sa, t, p) / g(gibbs.GP, sa, t, p)
}

// AlphaWrtCT computes the thermal expansion coefficient with respect
// to Conservative Temperature [1/K].
func AlphaWrtCT(sa, t, p float64) float64 {
	pt0 := PT0FromT(sa, t, p)
	factor := -gibbs.CP0 / ((gibbs.Kelvin + pt0) * g(gibbs.GTT, sa, t, p))
	return factor * (g(gibbs.GTP, sa, t, p) / g(gibbs.GP, sa, t, p))
}

// AlphaWrtPT computes the thermal expansion coefficient with respect
// to potential temperature referenced to 0 dbar [1/K].
func AlphaWrtPT(sa, t, p float64) float64 {
	pt0 := PT0FromT(sa, t, p)
	factor := g(gibbs.GTT, sa, pt0, 0) / g(gibbs.GTT, sa, t, p)
	return factor * (g(gibbs.GTP, sa, t, p) / g(gibbs.GP, sa, t, p))
}

// BetaConstT computes the saline contraction coefficient at constant
// in-situ temperature [kg/g], -g_SAP/g_P.
func BetaConstT(sa, t, p float64) float64 {
	return -g(gibbs.GSAP, sa, t, p) / g(gibbs.GP, sa, t, p)
}

// BetaConstCT computes the saline contraction coefficient at constant
// Conservative Temperature [kg/g].
func BetaConstCT(sa, t, p float64) float64 {
	pt0 := PT0FromT(sa, t, p)
	g001 := g(gibbs.GP, sa, t, p)
	factora := g(gibbs.GSAT, sa, t, p) -
		g(gibbs.GSA, sa, pt0, 0)/(gibbs.Kelvin+pt0)
	factor := factora / (g001 * g(gibbs.GTT, sa, t, p))
	return g(gibbs.GTP, sa, t, p)*factor - g(gibbs.GSAP, sa, t, p)/g001
}

// BetaConstPT computes the saline contraction coefficient at constant
// potential temperature referenced to 0 dbar [kg/g].
func BetaConstPT(sa, t, p float64) float64 {
	pt0 := PT0FromT(sa, t, p)
	g001 := g(gibbs.GP, sa, t, p)
	factora := g(gibbs.GSAT, sa, t, p) - g(gibbs.GSAT, sa, pt0, 0)
	factor := factora / (g001 * g(gibbs.GTT, sa, t, p))
	return g(gibbs.GTP, sa, t, p)*factor - g(gibbs.GSAP, sa, t, p)/g001
}

// Apply3 lifts a pointwise (SA, t, p) function to slices: arguments are
// broadcast (length 1 or n), negative SA is clamped to zero, and
// positions with any non-finite input stay undefined in the output.
// Placeholder values are substituted at those positions so the kernel
// never sees non-finite input, then reversed before returning.
func Apply3(f func(sa, t, p float64) float64, sa, t, p []float64) ([]float64, error) {
	n := len(sa)
	if len(t) > n {
		n = len(t)
	}
	if len(p) > n {
		n = len(p)
	}
	args, err := batch.Conform(n, sa, t, p)
	if err != nil {
		return nil, err
	}
	sa, t, p = batch.ClampNonNegative(args[0]), args[1], args[2]

	mask := batch.FromNonFinite(sa).
		Union(batch.FromNonFinite(t)).
		Union(batch.FromNonFinite(p))
	sa = batch.Fill(sa, mask, 0)
	t = batch.Fill(t, mask, 20)
	p = batch.Fill(p, mask, 10)

	out := make([]float64, n)
	for i := range out {
		out[i] = f(sa[i], t[i], p[i])
	}
	batch.Restore(out, mask)
	return out, nil
}
