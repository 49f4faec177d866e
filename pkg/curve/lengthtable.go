package curve

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// lengthTableResolutionFactor sets the table's sample count relative to the
// number of cubic segments (spec §4.12: "resolution proportional to the
// number of cubic segments").
const lengthTableResolutionFactor = 16

// lengthTable maps uniformly spaced parameter samples ts[i] to the
// normalized cumulative arc-length fraction sAt[i], built once at curve
// construction and never mutated afterward (spec §5).
type lengthTable struct {
	ts  []float64
	sAt []float64
}

// buildLengthTable samples every axis's cumulative length concurrently
// (one goroutine per axis, spec's length table is the only place this core
// does real eager work) and sums them into a single monotone s(t) curve.
func buildLengthTable(ctx context.Context, axes []axis, segmentCount int) (lengthTable, error) {
	resolution := segmentCount * lengthTableResolutionFactor
	ts := make([]float64, resolution+1)
	for i := range ts {
		ts[i] = float64(i) / float64(resolution)
	}

	perAxis := make([][]float64, len(axes))
	g, _ := errgroup.WithContext(ctx)
	for i, a := range axes {
		i, a := i, a
		g.Go(func() error {
			lengths := make([]float64, len(ts))
			for j, t := range ts {
				lengths[j] = a.cumulativeLength(t)
			}
			perAxis[i] = lengths
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return lengthTable{}, err
	}

	total := make([]float64, len(ts))
	for _, lengths := range perAxis {
		for j, l := range lengths {
			total[j] += l
		}
	}

	sAt := make([]float64, len(ts))
	grandTotal := total[len(total)-1]
	if grandTotal == 0 {
		copy(sAt, ts)
	} else {
		for i, l := range total {
			sAt[i] = l / grandTotal
		}
	}

	return lengthTable{ts: ts, sAt: sAt}, nil
}

// lookup returns the parameter t whose normalized arc-length fraction is s,
// via binary search over the monotone table followed by linear
// interpolation between the bracketing knots (spec §4.12).
func (lt lengthTable) lookup(s float64) float64 {
	n := len(lt.sAt)
	idx := sort.Search(n, func(i int) bool { return lt.sAt[i] >= s })
	if idx == 0 {
		return lt.ts[0]
	}
	if idx >= n {
		return lt.ts[n-1]
	}
	s0, s1 := lt.sAt[idx-1], lt.sAt[idx]
	t0, t1 := lt.ts[idx-1], lt.ts[idx]
	if s1 == s0 {
		return t0
	}
	frac := (s - s0) / (s1 - s0)
	return t0 + frac*(t1-t0)
}
