// Package num has small numeric helpers shared by the generator, layout and state packages.
package num

import (
	"golang.org/x/exp/constraints"
	"math"
)

// Clamp returns v limited to the closed range lo:hi
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Snap rounds v to the nearest multiple of step, then clamps it to lo:hi.
func Snap(v, step, lo, hi int) int {
	if step > 1 {
		v = int(math.Round(float64(v)/float64(step))) * step
	}
	return Clamp(v, lo, hi)
}

// Lerp interpolates linearly from a to b, t=0 gives a.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Uniform returns a value in the range lo:hi given a sample u in [0,1).
func Uniform(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}

// Max returns the largest element, or zero for an empty slice.
func Max[T constraints.Ordered](vals ...T) T {
	var m T
	for i, v := range vals {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// Sum of the products of adjacent elements, e.g. the number of edges in a
// fully connected layered graph with the given layer widths.
func SumAdjacent(widths []int) int {
	total := 0
	for i := 0; i+1 < len(widths); i++ {
		total += widths[i] * widths[i+1]
	}
	return total
}
