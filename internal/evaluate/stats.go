package evaluate

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Pearson computes the Pearson correlation coefficient between x and y
// together with the two-sided p-value from the t-distribution on n-2
// degrees of freedom. With exactly two observations the p-value is 1;
// a perfect correlation yields a p-value of 0.
func Pearson(x, y []float64) (r, p float64) {
	n := len(x)
	r = stat.Correlation(x, y, nil)

	switch {
	case math.IsNaN(r):
		return r, math.NaN()
	case n <= 2:
		return r, 1.0
	case 1-r*r <= 0:
		return r, 0.0
	}

	t := r * math.Sqrt(float64(n-2)/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	return r, 2 * dist.CDF(-math.Abs(t))
}
