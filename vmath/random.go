package vmath

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// RandomCircularDistribution returns n angles in [0, span) degrees, in ascending order around the
// circle from a random start, with every neighbouring pair (including the wrap-around pair) at
// least minSep apart
func RandomCircularDistribution(rng *rand.Rand, n int, minSep, span float64) ([]float64, error) {
	if n <= 0 {
		return nil, nil
	}
	slack := span - float64(n)*minSep
	if slack < 0 {
		return nil, fmt.Errorf("vmath: %d angles at %.1f separation exceed span %.1f", n, minSep, span)
	}

	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = rng.Float64() * slack
	}
	slices.Sort(offsets)

	start := rng.Float64() * span
	angles := make([]float64, n)
	for i, off := range offsets {
		a := start + off + float64(i)*minSep
		for a >= span {
			a -= span
		}
		angles[i] = a
	}
	return angles, nil
}

// RandomSubdivisions splits total into n random integer parts, each at least minPart
func RandomSubdivisions(rng *rand.Rand, n, total, minPart int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}
	free := total - n*minPart
	if free < 0 {
		return nil, fmt.Errorf("vmath: cannot split %d into %d parts of at least %d", total, n, minPart)
	}

	cuts := make([]int, n-1)
	for i := range cuts {
		cuts[i] = rng.IntN(free + 1)
	}
	slices.Sort(cuts)

	parts := make([]int, n)
	prev := 0
	for i, c := range cuts {
		parts[i] = minPart + c - prev
		prev = c
	}
	parts[n-1] = minPart + free - prev
	return parts, nil
}

// UniformRange returns a float in [lo, hi)
func UniformRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
