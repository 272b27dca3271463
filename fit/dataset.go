package fit

import (
	"fmt"

	"github.com/survlab/survfit/errs"
)

// Dataset is a prepared (x, y, weight) triple for one category, ready for
// weighted least-squares fitting.
//
// X holds distances including the two anchor points, Y the empirical survival
// probabilities, W the per-point fit weights. The three slices always have
// equal length.
type Dataset struct {
	X []float64
	Y []float64
	W []float64
}

// Len returns the number of points, anchors included.
func (d *Dataset) Len() int {
	return len(d.X)
}

// Prepare converts one category's sorted distances into an anchored dataset.
//
// For l input samples the output has l+2 points:
//
//   - (0, 1) prepended, anchoring the curve at full survival probability
//   - sample i (1-indexed) at y = 1 - i/(l+1), the ECDF complement with
//     plotting-position correction
//   - a far sentinel appended at twice the largest observed distance with
//     y = 0, anchoring the decay toward zero
//
// Every point carries weight = distance², which emphasizes fit accuracy at
// larger distances; the zero-distance anchor consequently carries zero weight.
//
// Distances must be non-negative and ascending. An empty input is a
// precondition violation (errs.ErrNoSamples): two anchor points alone cannot
// constrain a 2-parameter model.
func Prepare(distances []float64) (*Dataset, error) {
	l := len(distances)
	if l == 0 {
		return nil, errs.ErrNoSamples
	}

	for i, d := range distances {
		if d < 0 {
			return nil, fmt.Errorf("%w: %g at index %d", errs.ErrNegativeDistance, d, i)
		}
		if i > 0 && d < distances[i-1] {
			return nil, fmt.Errorf("%w: %g after %g at index %d",
				errs.ErrUnsortedSamples, d, distances[i-1], i)
		}
	}

	// The reference implementation appended a literal 1.0 because its
	// distances were pre-normalized to [0,1]; for unnormalized inputs the
	// sentinel must land beyond the observed range.
	sentinel := 2.0 * distances[l-1]
	if sentinel == 0 {
		sentinel = 1.0
	}

	x := make([]float64, 0, l+2)
	y := make([]float64, 0, l+2)

	x = append(x, 0)
	y = append(y, 1)
	for i, d := range distances {
		x = append(x, d)
		y = append(y, 1.0-float64(i+1)/float64(l+1))
	}
	x = append(x, sentinel)
	y = append(y, 0)

	w := make([]float64, len(x))
	for i, d := range x {
		w[i] = d * d
	}

	return &Dataset{X: x, Y: y, W: w}, nil
}
