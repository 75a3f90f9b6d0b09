// Package stats holds the order-statistic helpers the cleaning stage
// needs. Means and deviations come from gonum at the call sites; only the
// percentile rule lives here, because gonum's quantile kinds do not match
// the linear interpolation used by dataframe libraries.
package stats

import "sort"

// Percentile returns the p-th percentile value of the slice
// (0 <= p <= 100), interpolating linearly between order statistics at
// rank p/100*(n-1).
func Percentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	if p <= 0 {
		return cp[0]
	}
	if p >= 100 {
		return cp[n-1]
	}
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return cp[lower]
	}
	return cp[lower]*(1-weight) + cp[upper]*weight
}

// IQR returns the first quartile, third quartile and interquartile range.
func IQR(x []float64) (q1, q3, iqr float64) {
	q1 = Percentile(x, 25)
	q3 = Percentile(x, 75)
	return q1, q3, q3 - q1
}
