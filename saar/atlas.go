// Package saar provides the Absolute Salinity Anomaly atlas: a gridded
// global climatology of delta_SA = SA - SR interpolated to sample
// positions. The toolbox's salinity conversions consume it through the
// DeltaSA lookup; positions over land (or deeper than the water column
// holds data) come back undefined.
package saar

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Fence through Central America. Grid cells straddling it must not mix
// Pacific and Atlantic water in the interpolation.
var (
	longsPan = []float64{260.0000, 272.5900, 276.5000, 278.6500, 280.7300, 295.2170}
	latsPan  = []float64{19.5500, 13.9700, 9.6000, 8.1000, 9.3300, 0}
)

// Atlas holds the anomaly climatology on a regular lon/lat grid with a
// fixed set of depth levels. Levels are stored densest-first: level k
// is a nlat x nlon matrix with NaN over land.
type Atlas struct {
	lon []float64 // uniform, ascending, degrees east [0, 360)
	lat []float64 // uniform, ascending
	p   []float64 // depth levels [dbar], ascending

	levels []*mat.Dense // one per entry of p
	ndepth *mat.Dense   // deepest valid level index per column, NaN where none
}

// New builds an Atlas from in-memory grids. levels[k] must be
// nlat x nlon; ndepth gives, per (lat,lon) column, the 0-based index of
// the deepest level holding data, or NaN where the column is dry.
func New(lon, lat, p []float64, levels []*mat.Dense, ndepth *mat.Dense) (*Atlas, error) {
	if len(lon) < 2 || len(lat) < 2 || len(p) < 2 {
		return nil, fmt.Errorf("saar: axes need at least two points")
	}
	if len(levels) != len(p) {
		return nil, fmt.Errorf("saar: %d levels for %d depth entries", len(levels), len(p))
	}
	for k, l := range levels {
		r, c := l.Dims()
		if r != len(lat) || c != len(lon) {
			return nil, fmt.Errorf("saar: level %d is %dx%d, want %dx%d",
				k, r, c, len(lat), len(lon))
		}
	}
	return &Atlas{lon: lon, lat: lat, p: p, levels: levels, ndepth: ndepth}, nil
}

// DeltaSA interpolates the anomaly to (p, lon, lat) trilinearly. The
// second return is false where the atlas has no data for the position.
func (a *Atlas) DeltaSA(p, lon, lat float64) (float64, bool) {
	if math.IsNaN(p) || math.IsNaN(lon) || math.IsNaN(lat) {
		return math.NaN(), false
	}
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}

	dlon := a.lon[1] - a.lon[0]
	dlat := a.lat[1] - a.lat[0]
	ix := clampIndex(int((lon-a.lon[0])/dlon), len(a.lon)-2)
	iy := clampIndex(int((lat-a.lat[0])/dlat), len(a.lat)-2)

	// Deepest level with data anywhere in the bracketing cell.
	nmax := -1
	for _, n := range []float64{
		a.ndepth.At(iy, ix), a.ndepth.At(iy, ix+1),
		a.ndepth.At(iy+1, ix+1), a.ndepth.At(iy+1, ix),
	} {
		if !math.IsNaN(n) && int(n) > nmax {
			nmax = int(n)
		}
	}
	if nmax < 0 {
		return math.NaN(), false
	}

	iz := sort.SearchFloat64s(a.p, p)
	if iz >= len(a.p) || a.p[iz] != p {
		iz--
	}
	if iz < 0 {
		iz = 0
	}
	if iz >= nmax {
		// Sample below the data column: evaluate at the deepest level.
		p = a.p[nmax]
		iz = nmax - 1
		if iz < 0 {
			iz = 0
		}
	}
	if iz > len(a.p)-2 {
		iz = len(a.p) - 2
	}

	r := (lon - a.lon[ix]) / dlon
	s := (lat - a.lat[iy]) / dlat
	t := (p - a.p[iz]) / (a.p[iz+1] - a.p[iz])

	upper := a.corners(iz, iy, ix, lon, lat)
	lower := a.corners(iz+1, iy, ix, lon, lat)

	sa0 := bilinear(upper, r, s)
	sa1 := bilinear(lower, r, s)
	if !math.IsNaN(sa0) && math.IsNaN(sa1) {
		sa1 = sa0
	}
	dsa := sa0 + t*(sa1-sa0)
	if math.IsNaN(dsa) {
		return math.NaN(), false
	}
	return dsa, true
}

// DeltaSASlice evaluates DeltaSA elementwise, writing NaN at undefined
// positions. The three slices must share a length.
func (a *Atlas) DeltaSASlice(p, lon, lat []float64) ([]float64, error) {
	if len(lon) != len(p) || len(lat) != len(p) {
		return nil, fmt.Errorf("saar: %d pressures, %d longitudes, %d latitudes",
			len(p), len(lon), len(lat))
	}
	out := make([]float64, len(p))
	for i := range p {
		v, ok := a.DeltaSA(p[i], lon[i], lat[i])
		if !ok {
			v = math.NaN()
		}
		out[i] = v
	}
	return out, nil
}

// corners fetches the four cell corners at level k in the order
// (iy,ix), (iy,ix+1), (iy+1,ix+1), (iy+1,ix), applies the
// Central-America barrier where the cell straddles it, and fills
// remaining NaN corners with the mean of the valid ones.
func (a *Atlas) corners(k, iy, ix int, lon, lat float64) [4]float64 {
	g := a.levels[k]
	c := [4]float64{
		g.At(iy, ix), g.At(iy, ix+1),
		g.At(iy+1, ix+1), g.At(iy+1, ix),
	}
	if lon >= longsPan[0] && lon <= longsPan[len(longsPan)-1] &&
		lat >= 0 && lat <= latsPan[0] {
		applyBarrier(&c, lon, lat,
			[4]float64{a.lon[ix], a.lon[ix+1], a.lon[ix+1], a.lon[ix]},
			[4]float64{a.lat[iy], a.lat[iy], a.lat[iy+1], a.lat[iy+1]})
	}
	fillMean(&c)
	return c
}

// applyBarrier discards corners lying on the other side of the Panama
// fence from the sample position.
func applyBarrier(c *[4]float64, lon, lat float64, clon, clat [4]float64) {
	above := interp1(longsPan, latsPan, lon) <= lat
	for i := range c {
		if (interp1(longsPan, latsPan, clon[i]) <= clat[i]) != above {
			c[i] = math.NaN()
		}
	}
}

// fillMean replaces NaN corners by the mean of the valid corners. With
// no valid corner the cell stays undefined.
func fillMean(c *[4]float64) {
	var sum float64
	var n int
	for _, v := range c {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 || n == len(c) {
		return
	}
	mean := sum / float64(n)
	for i, v := range c {
		if math.IsNaN(v) {
			c[i] = mean
		}
	}
}

// bilinear interpolates the cell corners (ordered as in corners) at
// fractional position (r, s).
func bilinear(c [4]float64, r, s float64) float64 {
	return (1-s)*(c[0]+r*(c[1]-c[0])) + s*(c[3]+r*(c[2]-c[3]))
}

// interp1 is piecewise-linear interpolation over ascending xs,
// clamping outside the range.
func interp1(xs, ys []float64, x float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}
	i := sort.SearchFloat64s(xs, x) - 1
	f := (x - xs[i]) / (xs[i+1] - xs[i])
	return ys[i] + f*(ys[i+1]-ys[i])
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
