package gsw

import (
	"math"

	"github.com/oceanum/seawater/gibbs"
)

// PotentialTemperature computes the potential temperature of a parcel
// moved adiabatically from pressure p to reference pressure pref
// [deg C]. Two passes of a modified Newton-Raphson scheme on the
// entropy balance; the derivative is refreshed at the midpoint of each
// step and the step retaken from the original estimate. Accurate to
// better than 2e-14 deg C over the oceanographic funnel.
func PotentialTemperature(sa, t, p, pref float64) float64 {
	if sa < 0 {
		sa = 0
	}
	s1 := sa * 35.0 / gibbs.SSO

	pt := t + (p-pref)*(8.65483913395442e-6-
		s1*1.41636299744881e-6-
		(p+pref)*7.38286467135737e-9+
		t*(-8.38241357039698e-6+
			s1*2.83933368585534e-8+
			t*1.77803965218656e-8+
			(p+pref)*1.71155619208233e-10))

	dentropyDT := gibbs.CP0 / ((gibbs.Kelvin + pt) * (1 - 0.05*(1-sa/gibbs.SSO)))
	trueEntropyPart := gibbs.EntropyPart(sa, t, p)

	for iter := 0; iter < 2; iter++ {
		ptOld := pt
		dentropy := gibbs.EntropyPart(sa, ptOld, pref) - trueEntropyPart
		pt = ptOld - dentropy/dentropyDT
		ptm := 0.5 * (pt + ptOld)
		dentropyDT = -g(gibbs.GTT, sa, ptm, pref)
		pt = ptOld - dentropy/dentropyDT
	}
	return pt
}

// PT0FromT computes potential temperature referenced to 0 dbar
// [deg C]. Same scheme as PotentialTemperature, against the
// zero-pressure closed forms so the inner loop avoids the full engine.
func PT0FromT(sa, t, p float64) float64 {
	if sa < 0 {
		sa = 0
	}
	s1 := sa * (35.0 / gibbs.SSO)

	pt0 := t + p*(8.65483913395442e-6-
		s1*1.41636299744881e-6-
		p*7.38286467135737e-9+
		t*(-8.38241357039698e-6+
			s1*2.83933368585534e-8+
			t*1.77803965218656e-8+
			p*1.71155619208233e-10))

	dentropyDT := gibbs.CP0 / ((gibbs.Kelvin + pt0) * (1 - 0.05*(1-sa/gibbs.SSO)))
	trueEntropyPart := gibbs.EntropyPart(sa, t, p)

	for iter := 0; iter < 2; iter++ {
		pt0Old := pt0
		dentropy := gibbs.EntropyPartZeroP(sa, pt0Old) - trueEntropyPart
		pt0 = pt0Old - dentropy/dentropyDT
		pt0m := 0.5 * (pt0 + pt0Old)
		dentropyDT = -gibbs.GibbsPT0PT0(sa, pt0m)
		pt0 = pt0Old - dentropy/dentropyDT
	}
	return pt0
}

// CTFromPT computes Conservative Temperature from potential
// temperature referenced to 0 dbar: potential enthalpy over CP0.
func CTFromPT(sa, pt float64) float64 {
	return gibbs.PotEnthalpyFromPT(sa, pt) / gibbs.CP0
}

// CTFromT computes Conservative Temperature from in-situ temperature.
func CTFromT(sa, t, p float64) float64 {
	return CTFromPT(sa, PT0FromT(sa, t, p))
}

// PTFromCT computes potential temperature (0 dbar reference) from
// Conservative Temperature. A rational initial estimate followed by
// one and a half passes of the modified Newton-Raphson scheme; the
// error is below 2e-14 deg C over the full range of validity.
func PTFromCT(sa, ct float64) float64 {
	if sa < 0 {
		sa = 0
	}
	s1 := sa * 35.0 / gibbs.SSO

	const (
		a0 = -1.446013646344788e-2
		a1 = -3.305308995852924e-3
		a2 = 1.062415929128982e-4
		a3 = 9.477566673794488e-1
		a4 = 2.166591947736613e-3
		a5 = 3.828842955039902e-3

		b0 = 1.000000000000000e+0
		b1 = 6.506097115635800e-4
		b2 = 3.830289486850898e-3
		b3 = 1.247811760368034e-6
	)

	a5ct := a5 * ct
	b3ct := b3 * ct
	ctFactor := a3 + a4*s1 + a5ct
	ptNum := a0 + s1*(a1+a2*s1) + ct*ctFactor
	ptDen := b0 + b1*s1 + ct*(b2+b3ct)
	pt := ptNum / ptDen

	dctDpt := ptDen / (ctFactor + a5ct - (b2+b3ct+b3ct)*pt)

	ctDiff := CTFromPT(sa, pt) - ct
	ptOld := pt
	pt = ptOld - ctDiff/dctDpt
	ptm := 0.5 * (pt + ptOld)

	dctDpt = -(ptm + gibbs.Kelvin) * gibbs.GibbsPT0PT0(sa, ptm) / gibbs.CP0
	pt = ptOld - ctDiff/dctDpt
	ctDiff = CTFromPT(sa, pt) - ct
	ptOld = pt
	return ptOld - ctDiff/dctDpt
}

// TFromCT computes in-situ temperature at pressure p from Conservative
// Temperature.
func TFromCT(sa, ct, p float64) float64 {
	return PotentialTemperature(sa, PTFromCT(sa, ct), 0, p)
}

// EntropyFromPT computes specific entropy from potential temperature
// referenced to 0 dbar [J/(kg K)].
func EntropyFromPT(sa, pt float64) float64 {
	if sa < 0 {
		sa = 0
	}
	return -g(gibbs.GT, sa, pt, 0)
}

// EntropyFromCT computes specific entropy from Conservative
// Temperature [J/(kg K)].
func EntropyFromCT(sa, ct float64) float64 {
	return EntropyFromPT(sa, PTFromCT(sa, ct))
}

// PTFromEntropy computes potential temperature (0 dbar reference) from
// specific entropy, with three passes of the modified Newton-Raphson
// scheme from a closed-form initial estimate.
func PTFromEntropy(sa, entropy float64) float64 {
	if sa < 0 {
		sa = 0
	}
	part1 := 1 - sa/gibbs.SSO
	part2 := 1 - 0.05*part1
	entSA := (gibbs.CP0 / gibbs.Kelvin) * part1 * (1 - 1.01*part1)
	c := (entropy - entSA) * part2 / gibbs.CP0
	pt := gibbs.Kelvin * (math.Exp(c) - 1)
	dentropyDT := gibbs.CP0 / ((gibbs.Kelvin + pt) * part2)

	for iter := 0; iter < 3; iter++ {
		ptOld := pt
		dentropy := EntropyFromPT(sa, ptOld) - entropy
		pt = ptOld - dentropy/dentropyDT
		ptm := 0.5 * (pt + ptOld)
		dentropyDT = -gibbs.GibbsPT0PT0(sa, ptm)
		pt = ptOld - dentropy/dentropyDT
	}
	return pt
}

// CTFromEntropy computes Conservative Temperature from specific
// entropy.
func CTFromEntropy(sa, entropy float64) float64 {
	return CTFromPT(sa, PTFromEntropy(sa, entropy))
}
