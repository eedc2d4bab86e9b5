package bloom

import "math"

// OptimalHashCount returns the hash count minimizing the false positive
// probability of an m-bit filter holding n items: floor((m/n) * ln 2).
// The result truncates toward zero rather than rounding; for m/n < 1/ln 2
// it is 0, which degenerates the filter (see Filter).
func OptimalHashCount(n, m int) int {
	return int(float64(m) / float64(n) * math.Ln2)
}

// OptimalBitCount returns the minimum bit array length keeping the false
// positive probability of an n-item filter under p, assuming the optimal
// real-valued hash count: ceil(-(n * ln p) / (ln 2)^2).
func OptimalBitCount(n int, p float64) int {
	return int(math.Ceil(-(float64(n) * math.Log(p)) / (math.Ln2 * math.Ln2)))
}

// EstimateFalsePositiveRate returns the theoretical false positive
// probability of an m-bit filter holding n items at the optimal hash
// count: exp(-(m/n) * (ln 2)^2). The formula assumes the continuous
// optimum, not the truncated count OptimalHashCount installs, so for an
// instantiated filter it is an approximation rather than an exact bound.
func EstimateFalsePositiveRate(n, m int) float64 {
	return math.Exp(-(float64(m) / float64(n)) * math.Ln2 * math.Ln2)
}
