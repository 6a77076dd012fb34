package hierarchy

import "sort"

// Thresholds maps hierarchy level 0..5 to the minimum composite score
// (exclusive) required to qualify for that level. Level assignment picks
// the smallest k with score > Thresholds[k].
type Thresholds [6]float64

// DefaultThresholds are the fixed thresholds spec.md §4.7 uses when
// adaptive thresholding is off.
func DefaultThresholds() Thresholds {
	return Thresholds{0.8, 0.6, 0.4, 0.25, 0.15, 0.0}
}

// AdaptiveThresholds derives per-level thresholds from the 95th, 80th,
// 60th, 40th, and 20th percentiles of the supplied score distribution,
// falling back to DefaultThresholds when scores is empty.
func AdaptiveThresholds(scores []float64) Thresholds {
	if len(scores) == 0 {
		return DefaultThresholds()
	}
	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)
	return Thresholds{
		percentile(sorted, 95),
		percentile(sorted, 80),
		percentile(sorted, 60),
		percentile(sorted, 40),
		percentile(sorted, 20),
		0.0,
	}
}

// percentile computes the p-th percentile of a pre-sorted slice using
// linear interpolation between closest ranks, matching numpy.percentile's
// default behaviour.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := (p / 100.0) * float64(n-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Level returns the smallest level k (0-5) with score strictly greater
// than t[k], i.e. the highest-priority band the score qualifies for.
func (t Thresholds) Level(score float64) int {
	for k := 0; k < 5; k++ {
		if score > t[k] {
			return k
		}
	}
	return 5
}
