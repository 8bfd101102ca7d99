package gibbs

import (
	"errors"
	"fmt"
)

// Deriv selects one partial derivative of the Gibbs function with
// respect to Absolute Salinity, in-situ temperature and sea pressure.
// Only the orders needed by the toolbox are supported.
type Deriv uint8

const (
	G     Deriv = iota // g(SA,t,p) [J/kg]
	GSA                // dg/dSA [J/kg per g/kg]
	GT                 // dg/dt [J/(kg K)]
	GP                 // dg/dP [m^3/kg]
	GSAT               // d2g/dSA dt
	GSAP               // d2g/dSA dP
	GTP                // d2g/dt dP
	GSASA              // d2g/dSA2
	GTT                // d2g/dt2
	GPP                // d2g/dP2
	numDerivs
)

// ErrOrder reports a derivative order outside the supported set.
var ErrOrder = errors.New("gibbs: unsupported derivative order")

var derivOrders = [numDerivs][3]int{
	G:     {0, 0, 0},
	GSA:   {1, 0, 0},
	GT:    {0, 1, 0},
	GP:    {0, 0, 1},
	GSAT:  {1, 1, 0},
	GSAP:  {1, 0, 1},
	GTP:   {0, 1, 1},
	GSASA: {2, 0, 0},
	GTT:   {0, 2, 0},
	GPP:   {0, 0, 2},
}

var derivNames = [numDerivs]string{
	"g", "g_SA", "g_T", "g_P", "g_SAT", "g_SAP", "g_TP",
	"g_SASA", "g_TT", "g_PP",
}

// Order returns the (ns, nt, np) differentiation orders of d.
func (d Deriv) Order() (ns, nt, np int) {
	o := derivOrders[d]
	return o[0], o[1], o[2]
}

func (d Deriv) String() string {
	if d >= numDerivs {
		return fmt.Sprintf("Deriv(%d)", uint8(d))
	}
	return derivNames[d]
}

// DerivFromOrder maps an (ns, nt, np) triple onto its Deriv tag,
// returning ErrOrder for any combination outside the nine supported.
func DerivFromOrder(ns, nt, np int) (Deriv, error) {
	for d := G; d < numDerivs; d++ {
		o := derivOrders[d]
		if o[0] == ns && o[1] == nt && o[2] == np {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: (%d,%d,%d)", ErrOrder, ns, nt, np)
}
