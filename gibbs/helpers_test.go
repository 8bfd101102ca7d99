package gibbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnthalpySSO0CT25(t *testing.T) {
	cases := []struct {
		p, want float64
	}{
		{10, 97.26405500301036},
		{1000, 9704.33272089792},
		{4500, 43334.57269136134},
	}
	for _, tc := range cases {
		got := EnthalpySSO0CT25(tc.p)
		assert.InDelta(t, tc.want, got, relTol*tc.want)
	}
}

func TestSpecVolSSO0CT25(t *testing.T) {
	cases := []struct {
		p, want float64
	}{
		{10, 0.0009726180175506392},
		{1000, 0.00096822715582463},
		{4500, 0.0009537683518639587},
	}
	for _, tc := range cases {
		got := SpecVolSSO0CT25(tc.p)
		assert.InDelta(t, tc.want, got, relTol*tc.want)
	}
}

func TestEntropyPart(t *testing.T) {
	cases := []struct {
		sa, t, p, want float64
	}{
		{34.7118, 28.7856, 10, 400.25530580025315},
		{35, 10, 1000, 141.7166583974936},
	}
	for _, tc := range cases {
		got := EntropyPart(tc.sa, tc.t, tc.p)
		assert.InDelta(t, tc.want, got, relTol*tc.want)
	}

	// The zero-pressure variant agrees with the general one at p=0.
	for _, tc := range cases {
		assert.InDelta(t,
			EntropyPart(tc.sa, tc.t, 0),
			EntropyPartZeroP(tc.sa, tc.t), 1e-9)
	}
}

func TestGibbsPT0PT0(t *testing.T) {
	cases := []struct {
		sa, pt0, want float64
	}{
		{34.7118, 28.7832, -13.25824657611475},
		{35, 10, -14.094783429500465},
	}
	for _, tc := range cases {
		got := GibbsPT0PT0(tc.sa, tc.pt0)
		assert.InDelta(t, tc.want, got, relTol*-tc.want)
	}
}

func TestPotEnthalpyFromPT(t *testing.T) {
	cases := []struct {
		sa, pt, want float64
	}{
		{34.7118, 28.7832, 115005.4085345822},
		{35, 10, 39890.15669599263},
	}
	for _, tc := range cases {
		got := PotEnthalpyFromPT(tc.sa, tc.pt)
		assert.InDelta(t, tc.want, got, relTol*tc.want)
	}
}
