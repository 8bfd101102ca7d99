package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oceanum/seawater/gsw"
)

// Request is one evaluation order from a client. Op selects the
// quantity; the argument slices are broadcast against each other, so
// any of them may hold a single value.
type Request struct {
	ID int    `json:"id"`
	Op string `json:"op"`

	SA    []float64 `json:"sa,omitempty"`
	T     []float64 `json:"t,omitempty"`
	P     []float64 `json:"p,omitempty"`
	SP    []float64 `json:"sp,omitempty"`
	Sstar []float64 `json:"sstar,omitempty"`
	Lon   []float64 `json:"lon,omitempty"`
	Lat   []float64 `json:"lat,omitempty"`
}

// Response carries the result back. NaN has no JSON encoding, so
// undefined elements are sent as null via jsonFloats.
type Response struct {
	ID     int        `json:"id"`
	Op     string     `json:"op"`
	Result []*float64 `json:"result,omitempty"`
	Extra  []*float64 `json:"extra,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// propOps maps the water-property operations, all with the in-situ
// (SA, t, p) signature.
var propOps = map[string]func(sa, t, p float64) float64{
	"entropy":              gsw.Entropy,
	"rho":                  gsw.Rho,
	"specvol":              gsw.SpecVol,
	"specvol_anom":         gsw.SpecVolAnom,
	"cp":                   gsw.Cp,
	"helmholtz_energy":     gsw.HelmholtzEnergy,
	"internal_energy":      gsw.InternalEnergy,
	"enthalpy":             gsw.Enthalpy,
	"sound_speed":          gsw.SoundSpeed,
	"adiabatic_lapse_rate": gsw.AdiabaticLapseRate,
	"isochoric_heat_cap":   gsw.IsochoricHeatCap,
	"kappa":                gsw.Kappa,
	"kappa_const_t":        gsw.KappaConstT,
	"alpha_wrt_t":          gsw.AlphaWrtT,
	"alpha_wrt_ct":         gsw.AlphaWrtCT,
	"alpha_wrt_pt":         gsw.AlphaWrtPT,
	"beta_const_t":         gsw.BetaConstT,
	"beta_const_ct":        gsw.BetaConstCT,
	"beta_const_pt":        gsw.BetaConstPT,
	"chem_potential_relative": gsw.ChemPotentialRelative,
	"chem_potential_water":    gsw.ChemPotentialWater,
	"chem_potential_salt":     gsw.ChemPotentialSalt,
	"osmotic_coefficient":     gsw.OsmoticCoefficient,
	"ct_from_t":               gsw.CTFromT,
	"pt0_from_t":              gsw.PT0FromT,
}

// Hub evaluates requests from one connection and queues responses for
// the write loop. Salinity-scale operations need an atlas; without one
// they report an error instead.
type Hub struct {
	sal *gsw.Salinity
	log *logrus.Logger

	requests  chan Request
	responses chan Response
}

func NewHub(sal *gsw.Salinity, log *logrus.Logger, backlog int) *Hub {
	return &Hub{
		sal:       sal,
		log:       log,
		requests:  make(chan Request, backlog),
		responses: make(chan Response, backlog),
	}
}

// run drains the request queue until it closes, then closes the
// response queue.
func (h *Hub) run() {
	for req := range h.requests {
		h.responses <- h.eval(req)
	}
	close(h.responses)
}

func (h *Hub) eval(req Request) Response {
	resp := Response{ID: req.ID, Op: req.Op}

	if f, ok := propOps[req.Op]; ok {
		out, err := gsw.Apply3(f, req.SA, req.T, req.P)
		if err != nil {
			resp.Error = err.Error()
			return resp
		}
		resp.Result = jsonFloats(out)
		return resp
	}

	out, extra, err := h.evalSalinity(req)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"op": req.Op,
			"id": req.ID,
		}).WithError(err).Warn("request failed")
		resp.Error = err.Error()
		return resp
	}
	resp.Result = jsonFloats(out)
	if extra != nil {
		resp.Extra = jsonFloats(extra)
	}
	return resp
}

func (h *Hub) evalSalinity(req Request) (out, extra []float64, err error) {
	if h.sal == nil {
		if _, ok := salinityOp(req.Op); ok {
			return nil, nil, fmt.Errorf("server: op %q needs an anomaly atlas", req.Op)
		}
		return nil, nil, fmt.Errorf("server: unknown op %q", req.Op)
	}
	switch req.Op {
	case "sa_from_sp":
		out, err = h.sal.SAFromSP(req.SP, req.P, req.Lon, req.Lat)
	case "sp_from_sa":
		out, err = h.sal.SPFromSA(req.SA, req.P, req.Lon, req.Lat)
	case "sstar_from_sa":
		out, err = h.sal.SstarFromSA(req.SA, req.P, req.Lon, req.Lat)
	case "sa_from_sstar":
		out, err = h.sal.SAFromSstar(req.Sstar, req.P, req.Lon, req.Lat)
	case "sp_from_sstar":
		out, err = h.sal.SPFromSstar(req.Sstar, req.P, req.Lon, req.Lat)
	case "sstar_from_sp":
		out, err = h.sal.SstarFromSP(req.SP, req.P, req.Lon, req.Lat)
	case "sa_sstar_from_sp":
		out, extra, err = h.sal.SASstarFromSP(req.SP, req.P, req.Lon, req.Lat)
	default:
		err = fmt.Errorf("server: unknown op %q", req.Op)
	}
	return out, extra, err
}

func salinityOp(op string) (string, bool) {
	switch op {
	case "sa_from_sp", "sp_from_sa", "sstar_from_sa", "sa_from_sstar",
		"sp_from_sstar", "sstar_from_sp", "sa_sstar_from_sp":
		return op, true
	}
	return "", false
}

// jsonFloats replaces NaN with null for JSON transport.
func jsonFloats(data []float64) []*float64 {
	out := make([]*float64, len(data))
	for i := range data {
		if data[i] == data[i] {
			v := data[i]
			out[i] = &v
		}
	}
	return out
}
