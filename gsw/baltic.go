package gsw

import "github.com/oceanum/seawater/gibbs"

// The Baltic Sea carries river salts whose composition differs enough
// from the open ocean that Absolute Salinity there is a function of
// Practical Salinity alone (Feistel et al. 2010). The region is a
// polygon in lon/lat: east of a three-point western shore line,
// west of a two-point eastern line.
var (
	balticLatBound  = []float64{50, 59, 69}
	balticLonLeft   = []float64{12.6, 7, 26}
	balticLatRight  = []float64{50, 69}
	balticLonRight  = []float64{45, 26}
)

// inBaltic reports whether the position lies inside the Baltic Sea
// polygon.
func inBaltic(lon, lat float64) bool {
	if lon <= balticLonLeft[1] || lon >= balticLonRight[0] {
		return false
	}
	if lat <= balticLatBound[0] || lat >= balticLatBound[2] {
		return false
	}
	left := interpClamped(balticLatBound, balticLonLeft, lat)
	right := interpClamped(balticLatRight, balticLonRight, lat)
	return left <= lon && lon <= right
}

// balticSAFromSP converts Practical to Absolute Salinity inside the
// Baltic; the second return is false outside it.
func balticSAFromSP(sp, lon, lat float64) (float64, bool) {
	if !inBaltic(lon, lat) {
		return 0, false
	}
	return (gibbs.SSO-0.087)/35*sp + 0.087, true
}

// balticSPFromSA converts Absolute to Practical Salinity inside the
// Baltic; the second return is false outside it.
func balticSPFromSA(sa, lon, lat float64) (float64, bool) {
	if !inBaltic(lon, lat) {
		return 0, false
	}
	return 35 / (gibbs.SSO - 0.087) * (sa - 0.087), true
}

// interpClamped is piecewise-linear interpolation over ascending xs,
// clamped at the ends.
func interpClamped(xs, ys []float64, x float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	for i := 1; i < len(xs); i++ {
		if x <= xs[i] {
			f := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + f*(ys[i]-ys[i-1])
		}
	}
	return ys[len(ys)-1]
}
